package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsearch/internal/core/domain"
)

// --- Mock implementations ---

// mockSource implements driven.CorpusSource for testing.
type mockSource struct {
	name    string
	docs    []domain.Document
	err     error
	release chan struct{}
	loads   atomic.Int32
}

func (m *mockSource) Name() string { return m.name }

func (m *mockSource) Load(ctx context.Context) ([]domain.Document, error) {
	m.loads.Add(1)
	if m.release != nil {
		select {
		case <-m.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.Document, len(m.docs))
	copy(out, m.docs)
	return out, nil
}

// mockWatchingSource adds driven.SourceWatcher to mockSource.
type mockWatchingSource struct {
	mockSource
	changes  chan struct{}
	watchErr error
}

func (m *mockWatchingSource) Watch(_ context.Context) (<-chan struct{}, error) {
	if m.watchErr != nil {
		return nil, m.watchErr
	}
	return m.changes, nil
}

// snapshotSource reads its title before blocking, like a source that
// fetches data and then spends time normalising it.
type snapshotSource struct {
	title   atomic.Value
	started chan struct{}
	release chan struct{}
	loads   atomic.Int32
}

func (m *snapshotSource) Name() string { return "snapshot" }

func (m *snapshotSource) Load(ctx context.Context) ([]domain.Document, error) {
	m.loads.Add(1)
	title, _ := m.title.Load().(string)
	select {
	case m.started <- struct{}{}:
	default:
	}
	select {
	case <-m.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return []domain.Document{doc(title, "/", "")}, nil
}

func doc(title, href, section string) domain.Document {
	return domain.Document{Title: title, Href: href, Section: section, Content: title + " page"}
}

// --- Tests ---

func TestCorpusService_Documents_MergesSourcesInOrder(t *testing.T) {
	a := &mockSource{name: "a", docs: []domain.Document{doc("Home", "/", "Docs")}}
	b := &mockSource{name: "b", docs: []domain.Document{doc("Agents", "/docs/agents", "Concepts")}}
	svc := NewCorpusService(a, b)

	docs, err := svc.Documents(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "/", docs[0].Href)
	assert.Equal(t, "a", docs[0].Source)
	assert.Equal(t, "/docs/agents", docs[1].Href)
	assert.Equal(t, "b", docs[1].Source)
}

func TestCorpusService_Documents_FirstSourceWinsOnDuplicateHref(t *testing.T) {
	a := &mockSource{name: "a", docs: []domain.Document{doc("Agents", "/docs/agents", "")}}
	b := &mockSource{name: "b", docs: []domain.Document{doc("Agents v2", "/docs/agents", "")}}
	svc := NewCorpusService(a, b)

	docs, err := svc.Documents(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Agents", docs[0].Title)
}

func TestCorpusService_Documents_SkipsEmptyHref(t *testing.T) {
	src := &mockSource{name: "a", docs: []domain.Document{doc("Orphan", "", ""), doc("Home", "/", "")}}
	svc := NewCorpusService(src)

	docs, err := svc.Documents(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "/", docs[0].Href)
}

func TestCorpusService_Documents_FailingSourceExcluded(t *testing.T) {
	bad := &mockSource{name: "bad", err: errors.New("connection refused")}
	good := &mockSource{name: "good", docs: []domain.Document{doc("Home", "/", "")}}
	svc := NewCorpusService(bad, good)

	docs, err := svc.Documents(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "good", docs[0].Source)
}

func TestCorpusService_Documents_AllSourcesFailing(t *testing.T) {
	svc := NewCorpusService(&mockSource{name: "bad", err: errors.New("boom")})

	docs, err := svc.Documents(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestCorpusService_Documents_Memoized(t *testing.T) {
	src := &mockSource{name: "a", docs: []domain.Document{doc("Home", "/", "")}}
	svc := NewCorpusService(src)

	_, err := svc.Documents(context.Background())
	require.NoError(t, err)
	_, err = svc.Documents(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), src.loads.Load())
}

func TestCorpusService_Documents_ConcurrentCallersShareLoad(t *testing.T) {
	src := &mockSource{
		name:    "slow",
		docs:    []domain.Document{doc("Home", "/", "")},
		release: make(chan struct{}),
	}
	svc := NewCorpusService(src)

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			docs, err := svc.Documents(context.Background())
			if err == nil {
				results[i] = len(docs)
			}
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(src.release)
	wg.Wait()

	assert.Equal(t, int32(1), src.loads.Load())
	for _, n := range results {
		assert.Equal(t, 1, n)
	}
}

func TestCorpusService_Invalidate_DuringLoadIsNotCached(t *testing.T) {
	src := &snapshotSource{started: make(chan struct{}, 1), release: make(chan struct{})}
	src.title.Store("v0")
	svc := NewCorpusService(src)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Documents(context.Background())
		done <- err
	}()

	<-src.started
	src.title.Store("v1")
	svc.Invalidate()
	close(src.release)
	require.NoError(t, <-done)

	docs, err := svc.Documents(context.Background())

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "v1", docs[0].Title)
	assert.Equal(t, int32(2), src.loads.Load())
}

func TestCorpusService_Documents_CancelledWaiterDoesNotFailOthers(t *testing.T) {
	src := &mockSource{
		name:    "slow",
		docs:    []domain.Document{doc("Home", "/", "")},
		release: make(chan struct{}),
	}
	svc := NewCorpusService(src)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := svc.Documents(ctx)
		first <- err
	}()
	require.Eventually(t, func() bool { return src.loads.Load() == 1 }, time.Second, 5*time.Millisecond)

	second := make(chan []domain.Document, 1)
	go func() {
		docs, _ := svc.Documents(context.Background())
		second <- docs
	}()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(src.release)
	assert.Len(t, <-second, 1)
	assert.Equal(t, int32(1), src.loads.Load())
}

func TestCorpusService_Documents_CancelledContext(t *testing.T) {
	svc := NewCorpusService(&mockSource{name: "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Documents(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCorpusService_Get(t *testing.T) {
	src := &mockSource{name: "a", docs: []domain.Document{doc("Home", "/", ""), doc("Agents", "/docs/agents", "")}}
	svc := NewCorpusService(src)

	got, err := svc.Get(context.Background(), "/docs/agents")
	require.NoError(t, err)
	assert.Equal(t, "Agents", got.Title)

	_, err = svc.Get(context.Background(), "/missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCorpusService_Get_ReturnsCopy(t *testing.T) {
	src := &mockSource{name: "a", docs: []domain.Document{doc("Home", "/", "")}}
	svc := NewCorpusService(src)

	got, err := svc.Get(context.Background(), "/")
	require.NoError(t, err)
	got.Title = "changed"

	again, err := svc.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, "Home", again.Title)
}

func TestCorpusService_Sections(t *testing.T) {
	src := &mockSource{name: "a", docs: []domain.Document{
		doc("Home", "/", ""),
		doc("Agents", "/docs/agents", "Concepts"),
		doc("Tools", "/docs/tools", "Concepts"),
		doc("Deploy", "/docs/deploy", "Guides"),
	}}
	svc := NewCorpusService(src)

	sections, err := svc.Sections(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Concepts", "Guides"}, sections)
}

func TestCorpusService_Reload(t *testing.T) {
	src := &mockSource{name: "a", docs: []domain.Document{doc("Home", "/", "")}}
	svc := NewCorpusService(src)

	_, err := svc.Documents(context.Background())
	require.NoError(t, err)

	src.docs = append(src.docs, doc("Agents", "/docs/agents", ""))
	docs, err := svc.Reload(context.Background())

	require.NoError(t, err)
	assert.Len(t, docs, 2)
	assert.Equal(t, int32(2), src.loads.Load())
}

func TestCorpusService_WatchSources_InvalidatesOnChange(t *testing.T) {
	src := &mockWatchingSource{
		mockSource: mockSource{name: "fs", docs: []domain.Document{doc("Home", "/", "")}},
		changes:    make(chan struct{}, 1),
	}
	svc := NewCorpusService(src, &mockSource{name: "static"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := svc.Documents(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.WatchSources(ctx))

	src.changes <- struct{}{}

	assert.Eventually(t, func() bool {
		_, _ = svc.Documents(ctx)
		return src.loads.Load() == 2
	}, time.Second, 10*time.Millisecond)
	close(src.changes)
}

func TestCorpusService_WatchSources_Error(t *testing.T) {
	src := &mockWatchingSource{
		mockSource: mockSource{name: "fs"},
		watchErr:   errors.New("too many open files"),
	}
	svc := NewCorpusService(src)

	err := svc.WatchSources(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch fs")
}
