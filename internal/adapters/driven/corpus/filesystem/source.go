// Package filesystem loads documentation files from a local directory.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docsearch/internal/core/domain"
	"github.com/custodia-labs/docsearch/internal/core/ports/driven"
	"github.com/custodia-labs/docsearch/internal/logger"
	"github.com/custodia-labs/docsearch/internal/normalisers"
)

// SourceName identifies the filesystem source.
const SourceName = "filesystem"

// MetaPath is the raw metadata key holding the absolute file path.
const MetaPath = "path"

// Ensure Source implements the interfaces.
var (
	_ driven.CorpusSource  = (*Source)(nil)
	_ driven.SourceWatcher = (*Source)(nil)
)

// Source walks a directory and normalises every supported file.
type Source struct {
	rootPath string
	registry driven.NormaliserRegistry
	exclude  []string
}

// Option configures a Source.
type Option func(*Source)

// WithExclude skips files and directories whose slash-separated path
// relative to the root matches any of the doublestar patterns,
// e.g. "drafts/**" or "**/CHANGELOG.md". Invalid patterns are logged and ignored.
func WithExclude(patterns ...string) Option {
	return func(s *Source) {
		for _, p := range patterns {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if !doublestar.ValidatePattern(p) {
				logger.Warn("filesystem: ignoring invalid exclude pattern %q", p)
				continue
			}
			s.exclude = append(s.exclude, p)
		}
	}
}

// New creates a filesystem source rooted at rootPath.
func New(rootPath string, registry driven.NormaliserRegistry, opts ...Option) *Source {
	s := &Source{
		rootPath: rootPath,
		registry: registry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "filesystem".
func (s *Source) Name() string {
	return SourceName
}

// Root returns the directory being loaded.
func (s *Source) Root() string {
	return s.rootPath
}

// Load walks the root directory. Hidden files and directories are skipped,
// as are files no normaliser supports. A file that fails to read or
// normalise is logged and skipped.
func (s *Source) Load(ctx context.Context) ([]domain.Document, error) {
	info, err := os.Stat(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrSourceUnavailable, s.rootPath)
	}

	var docs []domain.Document
	err = filepath.WalkDir(s.rootPath, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			logger.Warn("skipping %s: %v", path, walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path != s.rootPath && (isHidden(d.Name()) || s.excluded(path)) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		doc, ok := s.loadFile(ctx, path)
		if ok {
			docs = append(docs, *doc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("filesystem: %d document(s) under %s", len(docs), s.rootPath)
	return docs, nil
}

func (s *Source) loadFile(ctx context.Context, path string) (*domain.Document, bool) {
	mime := normalisers.DetectMIMEType(path)
	if mime == "" || !s.supports(mime) {
		return nil, false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to read %s: %v", path, err)
		return nil, false
	}

	rel, err := filepath.Rel(s.rootPath, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	raw := &domain.RawDocument{
		Source:   SourceName,
		URI:      rel,
		MIMEType: mime,
		Content:  content,
		Metadata: map[string]any{MetaPath: path},
	}
	doc, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		logger.Warn("failed to normalise %s: %v", path, err)
		return nil, false
	}
	return doc, true
}

func (s *Source) supports(mime string) bool {
	for _, m := range s.registry.SupportedMIMETypes() {
		if m == mime {
			return true
		}
	}
	return false
}

// Watch reports changes to supported files under the root directory.
// Bursts of events coalesce into a single signal.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := s.addDirs(watcher, s.rootPath); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	changes := make(chan struct{}, 1)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !s.handleFsEvent(watcher, event) {
					continue
				}
				select {
				case changes <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("filesystem watch error: %v", err)
			}
		}
	}()

	return changes, nil
}

// addDirs registers root and every non-hidden directory below it.
func (s *Source) addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (isHidden(d.Name()) || s.excluded(path)) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// handleFsEvent reports whether event changes the corpus.
// New directories are added to the watcher and count as a change, since a
// directory moved into the root may already hold pages. A removed or renamed
// path without an extension may have been a directory of pages.
func (s *Source) handleFsEvent(watcher *fsnotify.Watcher, event fsnotify.Event) bool {
	if isHidden(filepath.Base(event.Name)) || s.excluded(event.Name) {
		return false
	}

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if watcher != nil {
				if err := s.addDirs(watcher, event.Name); err != nil {
					logger.Warn("%v", err)
				}
			}
			return true
		}
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if filepath.Ext(event.Name) == "" {
			return true
		}
	} else if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}

	return normalisers.DetectMIMEType(event.Name) != ""
}

// excluded reports whether path matches an exclude pattern.
func (s *Source) excluded(path string) bool {
	if len(s.exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(s.rootPath, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, p := range s.exclude {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
