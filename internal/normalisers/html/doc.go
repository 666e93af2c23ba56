// Package html provides a Normaliser implementation for HTML documents.
// It extracts readable text from HTML pages and reads the title, keywords
// and section from <title> and <meta> tags.
package html
