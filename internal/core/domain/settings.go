package domain

// Default values for search presentation.
const (
	DefaultResultLimit   = 10
	DefaultSnippetLength = 160
)

// DefaultCurated lists the hrefs that receive the curated boost.
func DefaultCurated() []string {
	return []string{"/", "/docs/getting-started"}
}

// SearchSettings holds search behaviour configuration.
type SearchSettings struct {
	// Limit is the default number of results returned.
	Limit int

	// SnippetLength is the maximum snippet length in runes, excluding ellipses.
	SnippetLength int

	// Curated lists the hrefs that receive the curated boost.
	Curated []string
}

// CorpusSettings selects which corpus sources are loaded.
type CorpusSettings struct {
	// Static enables the built-in page list.
	Static bool

	// Dir is a directory of markup files to load. Empty disables it.
	Dir string

	// Exclude lists glob patterns, relative to Dir, that are never loaded.
	Exclude []string

	// Watch reloads the corpus when files under Dir change.
	Watch bool
}

// GitHubSettings configures the GitHub corpus source.
type GitHubSettings struct {
	// Owner is the repository owner.
	Owner string

	// Repo is the repository name.
	Repo string

	// Ref is the branch, tag, or commit. Empty means the default branch.
	Ref string

	// Path is the directory inside the repository holding the docs.
	Path string

	// Token is an optional access token.
	Token string
}

// IsConfigured returns true if enough is set to fetch from GitHub.
func (g GitHubSettings) IsConfigured() bool {
	return g.Owner != "" && g.Repo != ""
}

// HistorySettings configures the optional query log.
type HistorySettings struct {
	// Enabled turns on query logging.
	Enabled bool

	// Dir is where the query log database lives.
	Dir string
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Search  SearchSettings
	Weights Weights
	Lexicon Lexicon
	Corpus  CorpusSettings
	GitHub  GitHubSettings
	History HistorySettings
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Search: SearchSettings{
			Limit:         DefaultResultLimit,
			SnippetLength: DefaultSnippetLength,
			Curated:       DefaultCurated(),
		},
		Weights: DefaultWeights(),
		Lexicon: DefaultLexicon(),
		Corpus: CorpusSettings{
			Static: true,
		},
		GitHub: GitHubSettings{
			Path: "docs",
		},
	}
}
