// Package corpus groups the corpus sources that feed the search engine.
//
// Sources:
//   - static: the built-in list of site pages
//   - filesystem: markup files in a local directory, optionally watched
//   - github: markup files in a repository directory
package corpus
