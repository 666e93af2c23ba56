package html

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/normalisers"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/html", "application/xhtml+xml"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise strips tags from an HTML page.
// Page <meta> tags fill keywords and section unless the source set them.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*domain.Document, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	page := string(raw.Content)
	doc := normalisers.NewDocument(raw, extractTitle(page), Strip(page))

	meta := extractMeta(page)
	if doc.Section == "" {
		doc.Section = meta["section"]
	}
	normalisers.ApplyMetadata(doc, map[string]any{normalisers.MetaKeywords: meta["keywords"]})

	return doc, nil
}

var (
	titleTag      = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Tag         = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	metaTag       = regexp.MustCompile(`(?is)<meta\s+[^>]*>`)
	metaName      = regexp.MustCompile(`(?is)\bname\s*=\s*["']([^"']+)["']`)
	metaContent   = regexp.MustCompile(`(?is)\bcontent\s*=\s*["']([^"']*)["']`)
	droppedBlocks = regexp.MustCompile(`(?is)<(script|style|noscript|head|svg|nav|footer)[^>]*>.*?</(script|style|noscript|head|svg|nav|footer)>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockTags     = regexp.MustCompile(`(?i)</?(p|div|br|hr|h[1-6]|li|tr|td|blockquote|pre|table|section|article|main)\b[^>]*>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiSpaces   = regexp.MustCompile(`[ \t\r\f]+`)
)

// extractTitle prefers <title>, then the first <h1>.
func extractTitle(page string) string {
	for _, re := range []*regexp.Regexp{titleTag, h1Tag} {
		if m := re.FindStringSubmatch(page); len(m) > 1 {
			title := strings.TrimSpace(html.UnescapeString(allTags.ReplaceAllString(m[1], "")))
			if title != "" {
				return title
			}
		}
	}
	return ""
}

// extractMeta collects <meta name=... content=...> pairs with lowercased names.
func extractMeta(page string) map[string]string {
	out := make(map[string]string)
	for _, tag := range metaTag.FindAllString(page, -1) {
		name := metaName.FindStringSubmatch(tag)
		content := metaContent.FindStringSubmatch(tag)
		if len(name) < 2 || len(content) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(name[1]))
		key = strings.TrimPrefix(key, "docsearch:")
		out[key] = html.UnescapeString(strings.TrimSpace(content[1]))
	}
	return out
}

// Strip removes tags, scripts and navigation chrome and returns readable text,
// one block per line.
func Strip(page string) string {
	page = droppedBlocks.ReplaceAllString(page, "")
	page = htmlComments.ReplaceAllString(page, "")
	page = blockTags.ReplaceAllString(page, "\n")
	page = allTags.ReplaceAllString(page, "")
	page = html.UnescapeString(page)
	page = multiSpaces.ReplaceAllString(page, " ")

	var lines []string
	for _, line := range strings.Split(page, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
