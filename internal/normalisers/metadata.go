package normalisers

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// Metadata keys understood by the normalisers. Sources and front matter
// both use them.
const (
	MetaTitle    = "title"
	MetaHref     = "href"
	MetaSection  = "section"
	MetaKeywords = "keywords"
	MetaTags     = "tags"
)

// NewDocument builds a Document from raw using title and content, then
// fills href, section and keywords from the raw metadata.
func NewDocument(raw *domain.RawDocument, title, content string) *domain.Document {
	doc := &domain.Document{
		Title:   title,
		Content: content,
		Source:  raw.Source,
	}
	ApplyMetadata(doc, raw.Metadata)
	if doc.Href == "" {
		doc.Href = HrefFromURI(raw.URI)
	}
	if doc.Title == "" {
		doc.Title = TitleFromURI(raw.URI)
	}
	return doc
}

// ApplyMetadata overlays recognised metadata keys onto doc.
// Keywords are merged; other fields are replaced when non-empty.
func ApplyMetadata(doc *domain.Document, meta map[string]any) {
	if meta == nil {
		return
	}
	if s := stringValue(meta[MetaTitle]); s != "" {
		doc.Title = s
	}
	if s := stringValue(meta[MetaHref]); s != "" {
		doc.Href = s
	}
	if s := stringValue(meta[MetaSection]); s != "" {
		doc.Section = s
	}
	for _, key := range []string{MetaKeywords, MetaTags} {
		for _, k := range stringList(meta[key]) {
			if !doc.HasKeyword(k) {
				doc.Keywords = append(doc.Keywords, k)
			}
		}
	}
}

// TitleFromURI derives a human-readable title from a file name.
func TitleFromURI(uri string) string {
	name := filepath.Base(uri)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// HrefFromURI turns a relative file path into a site path.
// "guides/getting-started.md" becomes "/guides/getting-started" and
// "index.html" becomes "/".
func HrefFromURI(uri string) string {
	p := path.Clean("/" + filepath.ToSlash(uri))
	p = strings.TrimSuffix(p, path.Ext(p))
	if path.Base(p) == "index" || path.Base(p) == "README" {
		p = path.Dir(p)
	}
	return p
}

func stringValue(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// stringList accepts a list of strings or a comma-separated string.
func stringList(v any) []string {
	var items []string
	switch t := v.(type) {
	case string:
		items = strings.Split(t, ",")
	case []string:
		items = t
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	}

	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// DetectMIMEType maps a documentation file extension to its MIME type.
// Unknown extensions return an empty string.
func DetectMIMEType(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".mdx":
		return "text/markdown"
	case ".html", ".htm", ".xhtml":
		return "text/html"
	case ".txt", ".text", ".rst":
		return "text/plain"
	default:
		return ""
	}
}
