package github

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"

	gh "github.com/google/go-github/v80/github"
	"github.com/panjf2000/ants/v2"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
	"github.com/custodia-labs/docsearch/internal/normalisers"
)

// SourceName identifies the GitHub source.
const SourceName = "github"

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// DefaultWorkers is the number of files fetched concurrently.
const DefaultWorkers = 4

// Config identifies the repository directory to load.
type Config struct {
	Owner string
	Repo  string
	Ref   string
	Path  string

	// Workers bounds concurrent file fetches. Zero means DefaultWorkers.
	Workers int
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return DefaultWorkers
	}
	return c.Workers
}

// Source loads supported files under a repository path.
type Source struct {
	cfg      Config
	client   *Client
	registry driven.NormaliserRegistry
}

// New creates a GitHub source.
func New(cfg Config, client *Client, registry driven.NormaliserRegistry) *Source {
	cfg.Path = strings.Trim(cfg.Path, "/")
	return &Source{
		cfg:      cfg,
		client:   client,
		registry: registry,
	}
}

// Name returns "github".
func (s *Source) Name() string {
	return SourceName
}

// Load lists the repository tree and normalises each supported file under
// the docs path. Listing failures fail the source; a single file that
// cannot be fetched or normalised is logged and skipped.
func (s *Source) Load(ctx context.Context) ([]domain.Document, error) {
	if s.cfg.Owner == "" || s.cfg.Repo == "" {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, ErrRepoNotConfigured)
	}

	ref := s.cfg.Ref
	if ref == "" {
		branch, err := s.client.DefaultBranch(ctx, s.cfg.Owner, s.cfg.Repo)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
		}
		ref = branch
	}

	tree, err := s.client.GetTree(ctx, s.cfg.Owner, s.cfg.Repo, ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if tree.GetTruncated() {
		logger.Warn("github: tree for %s/%s@%s truncated, some files are missing", s.cfg.Owner, s.cfg.Repo, ref)
	}

	var files []*gh.TreeEntry
	for _, entry := range tree.Entries {
		if entry.GetType() != "blob" {
			continue
		}
		rel, ok := s.relativePath(entry.GetPath())
		if !ok || normalisers.DetectMIMEType(rel) == "" {
			continue
		}
		if entry.GetSize() > MaxBlobSize {
			logger.Debug("github: skipping %s (%d bytes)", entry.GetPath(), entry.GetSize())
			continue
		}
		files = append(files, entry)
	}

	docs, err := s.fetchAll(ctx, ref, files)
	if err != nil {
		return nil, err
	}

	logger.Debug("github: %d document(s) from %s/%s@%s", len(docs), s.cfg.Owner, s.cfg.Repo, ref)
	return docs, nil
}

// fetchAll downloads and normalises files on a bounded worker pool.
// Documents keep tree order. A rate limit stops every worker and fails the
// whole source; any other per-file failure only skips that file.
func (s *Source) fetchAll(ctx context.Context, ref string, files []*gh.TreeEntry) ([]domain.Document, error) {
	if len(files) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(min(s.cfg.workers(), len(files)))
	if err != nil {
		return nil, fmt.Errorf("create fetch pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	results := make([]*domain.Document, len(files))
	var wg sync.WaitGroup
	for i, entry := range files {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			doc, err := s.fetchFile(ctx, ref, entry)
			if err != nil {
				if IsRateLimited(err) {
					cancel(err)
					return
				}
				if ctx.Err() != nil {
					return
				}
				logger.Warn("github: %s: %v", entry.GetPath(), err)
				return
			}
			results[i] = doc
		})
		if submitErr != nil {
			wg.Done()
			cancel(submitErr)
			break
		}
	}
	wg.Wait()

	if cause := context.Cause(ctx); cause != nil {
		if IsRateLimited(cause) {
			return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, cause)
		}
		return nil, cause
	}

	docs := make([]domain.Document, 0, len(results))
	for _, doc := range results {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

// fetchFile downloads one blob and normalises it.
func (s *Source) fetchFile(ctx context.Context, ref string, entry *gh.TreeEntry) (*domain.Document, error) {
	content, err := s.client.GetBlobContent(ctx, s.cfg.Owner, s.cfg.Repo, entry.GetSHA())
	if err != nil {
		return nil, err
	}

	rel, _ := s.relativePath(entry.GetPath())
	raw := &domain.RawDocument{
		Source:   SourceName,
		URI:      rel,
		MIMEType: normalisers.DetectMIMEType(rel),
		Content:  content,
		Metadata: map[string]any{
			"owner": s.cfg.Owner,
			"repo":  s.cfg.Repo,
			"ref":   ref,
			"path":  entry.GetPath(),
			"sha":   entry.GetSHA(),
			"html_url": fmt.Sprintf(
				"https://github.com/%s/%s/blob/%s/%s",
				s.cfg.Owner, s.cfg.Repo, ref, entry.GetPath(),
			),
		},
	}
	doc, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("normalise: %w", err)
	}
	return doc, nil
}

// relativePath returns p relative to the docs path. Files outside the docs
// path and hidden files or directories are rejected.
func (s *Source) relativePath(p string) (string, bool) {
	rel := p
	if s.cfg.Path != "" {
		prefix := s.cfg.Path + "/"
		if !strings.HasPrefix(p, prefix) {
			return "", false
		}
		rel = strings.TrimPrefix(p, prefix)
	}

	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") {
			return "", false
		}
	}
	return path.Clean(rel), true
}
