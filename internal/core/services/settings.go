package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/core/ports/driving"
	"github.com/custodia-labs/docsearch/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// EnvGitHubToken overrides github.token when set.
//
//nolint:gosec // G101: This is an environment variable name, not a credential.
const EnvGitHubToken = "DOCSEARCH_GITHUB_TOKEN"

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keySearchLimit   = "search.limit"
	keySnippetLength = "search.snippet_length"
	keySearchBoost   = "search.boost"
	keyCorpusStatic  = "corpus.static"
	keyCorpusDir     = "corpus.dir"
	keyCorpusExclude = "corpus.exclude"
	keyCorpusWatch   = "corpus.watch"
	keyGitHubOwner   = "github.owner"
	keyGitHubRepo    = "github.repo"
	keyGitHubRef     = "github.ref"
	keyGitHubPath    = "github.path"
	keyGitHubToken   = "github.token"
	keyHistoryOn     = "history.enabled"
	keyHistoryDir    = "history.dir"

	prefixWeights  = "weights"
	prefixSynonyms = "synonyms"
	prefixTypos    = "typos"
)

// weightFloats maps weights.<name> keys to Weights fields.
var weightFloats = map[string]func(*domain.Weights) *float64{
	"exact_title":        func(w *domain.Weights) *float64 { return &w.ExactTitle },
	"title_substring":    func(w *domain.Weights) *float64 { return &w.TitleSubstring },
	"url":                func(w *domain.Weights) *float64 { return &w.URL },
	"token_title":        func(w *domain.Weights) *float64 { return &w.TokenTitle },
	"token_url":          func(w *domain.Weights) *float64 { return &w.TokenURL },
	"keyword_exact":      func(w *domain.Weights) *float64 { return &w.KeywordExact },
	"keyword_partial":    func(w *domain.Weights) *float64 { return &w.KeywordPartial },
	"content":            func(w *domain.Weights) *float64 { return &w.Content },
	"section":            func(w *domain.Weights) *float64 { return &w.Section },
	"fuzzy_title":        func(w *domain.Weights) *float64 { return &w.FuzzyTitle },
	"fuzzy_keyword":      func(w *domain.Weights) *float64 { return &w.FuzzyKeyword },
	"fuzzy_threshold":    func(w *domain.Weights) *float64 { return &w.FuzzyThreshold },
	"synonym_title":      func(w *domain.Weights) *float64 { return &w.SynonymTitle },
	"synonym_keyword":    func(w *domain.Weights) *float64 { return &w.SynonymKeyword },
	"synonym_content":    func(w *domain.Weights) *float64 { return &w.SynonymContent },
	"ngram_cap":          func(w *domain.Weights) *float64 { return &w.NGramCap },
	"multi_match_factor": func(w *domain.Weights) *float64 { return &w.MultiMatchFactor },
	"curated_boost":      func(w *domain.Weights) *float64 { return &w.CuratedBoost },
}

// weightInts maps the integer weights.<name> keys to Weights fields.
var weightInts = map[string]func(*domain.Weights) *int{
	"fuzzy_max_len_diff": func(w *domain.Weights) *int { return &w.FuzzyMaxLenDiff },
	"ngram_size":         func(w *domain.Weights) *int { return &w.NGramSize },
}

// SettingsService builds application settings from the config store.
type SettingsService struct {
	configStore driven.ConfigStore
	getenv      func(string) string
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		getenv:      os.Getenv,
	}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Search: domain.SearchSettings{
			Limit:         s.getPositiveInt(keySearchLimit, defaults.Search.Limit),
			SnippetLength: s.getPositiveInt(keySnippetLength, defaults.Search.SnippetLength),
			Curated:       s.getStringSlice(keySearchBoost, defaults.Search.Curated),
		},
		Weights: s.getWeights(defaults.Weights),
		Lexicon: s.getLexicon(defaults.Lexicon),
		Corpus: domain.CorpusSettings{
			Static:  s.getBool(keyCorpusStatic, defaults.Corpus.Static),
			Dir:     s.configStore.GetString(keyCorpusDir),
			Exclude: s.getStringSlice(keyCorpusExclude, nil),
			Watch:   s.getBool(keyCorpusWatch, defaults.Corpus.Watch),
		},
		GitHub: domain.GitHubSettings{
			Owner: s.configStore.GetString(keyGitHubOwner),
			Repo:  s.configStore.GetString(keyGitHubRepo),
			Ref:   s.configStore.GetString(keyGitHubRef),
			Path:  s.getString(keyGitHubPath, defaults.GitHub.Path),
			Token: s.configStore.GetString(keyGitHubToken),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryOn, defaults.History.Enabled),
			Dir:     s.getString(keyHistoryDir, s.configDir()),
		},
	}

	if token := s.getenv(EnvGitHubToken); token != "" {
		settings.GitHub.Token = token
	}

	return settings, nil
}

// Set stores a single configuration value and persists it.
// String values are converted to the type the key expects.
func (s *SettingsService) Set(key string, value any) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("empty key: %w", domain.ErrInvalidInput)
	}

	if str, ok := value.(string); ok {
		converted, err := coerce(key, str)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		value = converted
	}

	if err := s.configStore.Set(key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) configDir() string {
	path := s.configStore.Path()
	if path == "" || strings.HasPrefix(path, ":") {
		return ""
	}
	return filepath.Dir(path)
}

func (s *SettingsService) getWeights(defaults domain.Weights) domain.Weights {
	w := defaults
	for name, field := range weightFloats {
		if v, ok := s.configStore.GetFloat(prefixWeights + "." + name); ok {
			*field(&w) = v
		}
	}
	for name, field := range weightInts {
		if v, ok := s.configStore.GetFloat(prefixWeights + "." + name); ok {
			*field(&w) = int(v)
		}
	}

	if err := w.Validate(); err != nil {
		logger.Warn("ignoring configured weights: %v", err)
		return defaults
	}
	return w
}

func (s *SettingsService) getLexicon(defaults domain.Lexicon) domain.Lexicon {
	synonyms := make(map[string][]string)
	for _, key := range s.configStore.Keys(prefixSynonyms) {
		term := strings.TrimPrefix(key, prefixSynonyms+".")
		if related := s.configStore.GetStringSlice(key); len(related) > 0 {
			synonyms[term] = related
		}
	}

	typos := make(map[string]string)
	for _, key := range s.configStore.Keys(prefixTypos) {
		wrong := strings.TrimPrefix(key, prefixTypos+".")
		if right := s.configStore.GetString(key); right != "" {
			typos[wrong] = right
		}
	}

	if len(synonyms) == 0 && len(typos) == 0 {
		return defaults
	}
	return defaults.Merge(synonyms, typos)
}

// getString returns the string value or default if empty.
func (s *SettingsService) getString(key, defaultVal string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return defaultVal
}

// getPositiveInt returns the int value or default if unset or not positive.
func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return defaultVal
}

// getBool returns the bool value or default if not set.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	v, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	b, ok := v.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

// getStringSlice returns the list or default if not set. An explicit
// empty list is kept.
func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	if v := s.configStore.GetStringSlice(key); v != nil {
		return v
	}
	return defaultVal
}

// coerce converts a string from the command line to the type key expects.
func coerce(key, value string) (any, error) {
	switch {
	case key == keySearchLimit || key == keySnippetLength:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("expected a positive integer: %w", domain.ErrInvalidInput)
		}
		return n, nil
	case key == keyCorpusStatic || key == keyCorpusWatch || key == keyHistoryOn:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("expected true or false: %w", domain.ErrInvalidInput)
		}
		return b, nil
	case key == keySearchBoost || key == keyCorpusExclude || strings.HasPrefix(key, prefixSynonyms+"."):
		return splitList(value), nil
	case strings.HasPrefix(key, prefixWeights+"."):
		name := strings.TrimPrefix(key, prefixWeights+".")
		if _, ok := weightInts[name]; ok {
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("expected an integer: %w", domain.ErrInvalidInput)
			}
			return n, nil
		}
		if _, ok := weightFloats[name]; !ok {
			return nil, fmt.Errorf("unknown weight %q: %w", name, domain.ErrInvalidInput)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("expected a number: %w", domain.ErrInvalidInput)
		}
		return f, nil
	default:
		return value, nil
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// WeightKeys lists every configurable weights.<name> key in sorted order.
func WeightKeys() []string {
	keys := make([]string, 0, len(weightFloats)+len(weightInts))
	for name := range weightFloats {
		keys = append(keys, prefixWeights+"."+name)
	}
	for name := range weightInts {
		keys = append(keys, prefixWeights+"."+name)
	}
	sort.Strings(keys)
	return keys
}
