// Package normalisers provides implementations of the Normaliser interface
// for the markup formats found in documentation sites. Each normaliser strips
// markup from a raw document and produces a corpus Document.
//
// Shared helpers in this package resolve the document href, section and
// keywords from source metadata. Normalisers are registered with a Registry
// at startup.
package normalisers
