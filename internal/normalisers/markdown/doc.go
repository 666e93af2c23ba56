// Package markdown provides a Normaliser implementation for Markdown documents.
//
// Front matter is read before the body is stripped. YAML front matter is
// fenced by "---" lines and TOML front matter by "+++" lines. Recognised keys
// are title, href (or slug), section (or category), keywords and tags.
package markdown
