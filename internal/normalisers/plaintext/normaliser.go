// Package plaintext provides the fallback Normaliser for plain text files.
package plaintext

import (
	"context"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text documents.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
// HTML and Markdown are listed so that raw text is still searchable
// when no format-specific normaliser is registered.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/markdown", "text/x-markdown", "text/html", "text/x-rst"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // Fallback normaliser
}

// Normalise keeps the text as-is. The title comes from metadata, then the
// first non-empty line if it is short, then the file name.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := strings.TrimSpace(strings.ReplaceAll(string(raw.Content), "\r\n", "\n"))
	return normalisers.NewDocument(raw, firstLineTitle(content), content), nil
}

const maxTitleLen = 80

func firstLineTitle(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSpace(line)
	if line == "" || len(line) > maxTitleLen || !strings.Contains(content, "\n") {
		return ""
	}
	return line
}
