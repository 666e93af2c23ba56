package domain

import (
	"sort"
	"strings"
)

// Lexicon holds the synonym and typo-correction tables used for query expansion.
// A Lexicon is immutable once built. Use NewLexicon to construct one.
type Lexicon struct {
	synonyms map[string][]string
	typos    map[string]string
	reverse  map[string][]string
}

// NewLexicon builds a Lexicon from a synonym table (term to related terms)
// and a typo table (misspelling to canonical form). Inputs are copied and
// lowercased, so later changes to the maps do not leak in.
func NewLexicon(synonyms map[string][]string, typos map[string]string) Lexicon {
	l := Lexicon{
		synonyms: make(map[string][]string, len(synonyms)),
		typos:    make(map[string]string, len(typos)),
		reverse:  make(map[string][]string),
	}

	// Iterate in sorted order so reverse lookups are deterministic.
	keys := make([]string, 0, len(synonyms))
	for k := range synonyms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" {
			continue
		}
		for _, v := range synonyms[k] {
			val := strings.ToLower(strings.TrimSpace(v))
			if val == "" || val == key {
				continue
			}
			l.synonyms[key] = appendUnique(l.synonyms[key], val)
			l.reverse[val] = appendUnique(l.reverse[val], key)
		}
	}

	for wrong, right := range typos {
		w := strings.ToLower(strings.TrimSpace(wrong))
		r := strings.ToLower(strings.TrimSpace(right))
		if w == "" || r == "" || w == r {
			continue
		}
		l.typos[w] = r
	}

	return l
}

// Expand returns the terms related to token, excluding token itself.
// Synonym lookup is symmetric: a key expands to its values and a value
// expands to every key listing it. A known misspelling also expands to
// its canonical form and that form's synonyms.
func (l Lexicon) Expand(token string) []string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return nil
	}

	var out []string
	add := func(terms ...string) {
		for _, t := range terms {
			if t != token {
				out = appendUnique(out, t)
			}
		}
	}

	roots := []string{token}
	if fixed, ok := l.typos[token]; ok {
		add(fixed)
		roots = append(roots, fixed)
	}
	for _, root := range roots {
		add(l.synonyms[root]...)
		add(l.reverse[root]...)
	}
	return out
}

// Correct returns the canonical spelling of token if it is a known typo.
func (l Lexicon) Correct(token string) (string, bool) {
	fixed, ok := l.typos[strings.ToLower(strings.TrimSpace(token))]
	return fixed, ok
}

// Synonyms returns a copy of the synonym table.
func (l Lexicon) Synonyms() map[string][]string {
	out := make(map[string][]string, len(l.synonyms))
	for k, v := range l.synonyms {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Typos returns a copy of the typo table.
func (l Lexicon) Typos() map[string]string {
	out := make(map[string]string, len(l.typos))
	for k, v := range l.typos {
		out[k] = v
	}
	return out
}

// Merge returns a new Lexicon with extra entries layered over l.
func (l Lexicon) Merge(synonyms map[string][]string, typos map[string]string) Lexicon {
	syn := l.Synonyms()
	for k, v := range synonyms {
		key := strings.ToLower(strings.TrimSpace(k))
		syn[key] = append(syn[key], v...)
	}
	ty := l.Typos()
	for k, v := range typos {
		ty[k] = v
	}
	return NewLexicon(syn, ty)
}

// DefaultLexicon returns the built-in tables for the agent framework docs.
func DefaultLexicon() Lexicon {
	return NewLexicon(
		map[string][]string{
			"debug":     {"trace", "tracing", "xray", "inspect", "troubleshoot"},
			"agent":     {"assistant", "bot"},
			"tool":      {"function", "action", "plugin"},
			"tools":     {"functions", "actions", "plugins"},
			"memory":    {"state", "history", "context"},
			"deploy":    {"deployment", "production", "hosting", "release"},
			"install":   {"setup", "quickstart", "pip"},
			"llm":       {"model", "provider"},
			"api":       {"reference", "sdk"},
			"prompt":    {"instruction", "instructions"},
			"stream":    {"streaming", "realtime"},
			"workflow":  {"pipeline", "orchestration", "graph"},
			"error":     {"exception", "failure", "retry"},
			"test":      {"evaluation", "eval", "benchmark"},
			"structure": {"schema", "pydantic", "validation"},
		},
		map[string]string{
			"agnet":    "agent",
			"agetn":    "agent",
			"tols":     "tools",
			"tooles":   "tools",
			"memroy":   "memory",
			"deply":    "deploy",
			"depoly":   "deploy",
			"promt":    "prompt",
			"instal":   "install",
			"strem":    "stream",
			"xrey":     "xray",
			"xary":     "xray",
			"debgu":    "debug",
			"wrokflow": "workflow",
			"schmea":   "schema",
		},
	)
}

func appendUnique(list []string, s string) []string {
	for _, existing := range list {
		if existing == s {
			return list
		}
	}
	return append(list, s)
}
