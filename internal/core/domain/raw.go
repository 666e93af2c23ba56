package domain

// RawDocument represents opaque bytes fetched by a corpus source.
// It is the source's output before normalisation.
type RawDocument struct {
	// Source names the corpus source that produced this document.
	Source string

	// URI is the original location (file path, repository path, etc).
	URI string

	// MIMEType is the content type (e.g., "text/markdown").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains source-specific key-value pairs.
	Metadata map[string]any
}
