package markdown

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SplitFrontMatter separates front matter from the Markdown body.
// It returns nil metadata when the document has no front matter block.
func SplitFrontMatter(content string) (map[string]any, string, error) {
	content = strings.TrimPrefix(content, "\ufeff")

	var fence string
	switch {
	case strings.HasPrefix(content, "---"):
		fence = "---"
	case strings.HasPrefix(content, "+++"):
		fence = "+++"
	default:
		return nil, content, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 64*1024), len(content)+1)

	var header []string
	offset := 0
	opened, closed := false, false
	for scanner.Scan() {
		line := scanner.Text()
		offset += len(line) + 1
		if !opened {
			if strings.TrimSpace(line) != fence {
				return nil, content, nil
			}
			opened = true
			continue
		}
		if strings.TrimSpace(line) == fence {
			closed = true
			break
		}
		header = append(header, line)
	}
	if !closed {
		return nil, content, nil
	}

	body := ""
	if offset < len(content) {
		body = content[offset:]
	}

	meta := make(map[string]any)
	raw := []byte(strings.Join(header, "\n"))
	var err error
	if fence == "---" {
		err = yaml.Unmarshal(raw, &meta)
	} else {
		err = toml.Unmarshal(raw, &meta)
	}
	if err != nil {
		return nil, body, fmt.Errorf("parse front matter: %w", err)
	}

	aliasKey(meta, "slug", "href")
	aliasKey(meta, "permalink", "href")
	aliasKey(meta, "category", "section")
	return meta, body, nil
}

// aliasKey copies meta[from] to meta[to] when to is unset.
func aliasKey(meta map[string]any, from, to string) {
	if _, ok := meta[to]; ok {
		return
	}
	if v, ok := meta[from]; ok {
		meta[to] = v
	}
}
