// Package domain defines the core business entities for docsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A page of the documentation corpus
//   - MatchResult: A ranked document with its match breakdown
//   - Weights: The numeric constants of the ranking pipeline
//   - Lexicon: Synonym and typo-correction tables used for query expansion
//   - RawDocument: Opaque bytes fetched by a corpus source
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
