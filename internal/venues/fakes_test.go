package venues

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"venuebuilder/internal/seating"
	"venuebuilder/internal/shared/config"
	"venuebuilder/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeRepository keeps layouts in memory with the same error contract as the
// gorm repository.
type fakeRepository struct {
	mu      sync.Mutex
	layouts map[uuid.UUID]VenueLayout
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{layouts: make(map[uuid.UUID]VenueLayout)}
}

func (f *fakeRepository) Create(_ context.Context, layout *VenueLayout) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.layouts {
		if l.Code == layout.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	now := time.Now()
	layout.CreatedAt, layout.UpdatedAt = now, now
	f.layouts[layout.ID] = *layout
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*VenueLayout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.layouts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (f *fakeRepository) GetByCode(_ context.Context, code string) (*VenueLayout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.layouts {
		if l.Code == code {
			return &l, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) List(_ context.Context, filters LayoutFilters) (*PaginatedLayouts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []VenueLayout
	for _, l := range f.layouts {
		if filters.LayoutType != "" && l.LayoutType != filters.LayoutType {
			continue
		}
		if filters.Search != "" && !strings.Contains(strings.ToLower(l.Name), strings.ToLower(filters.Search)) {
			continue
		}
		matched = append(matched, l)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Code < matched[j].Code })

	start := (filters.Page - 1) * filters.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filters.Limit
	if end > len(matched) {
		end = len(matched)
	}
	items := make([]LayoutResponse, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, matched[i].ToResponse())
	}
	total := int64(len(matched))
	return &PaginatedLayouts{
		Layouts:    items,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: int((total + int64(filters.Limit) - 1) / int64(filters.Limit)),
	}, nil
}

func (f *fakeRepository) SaveDocument(_ context.Context, id uuid.UUID, document []byte, stats LayoutStats) (*VenueLayout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.layouts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	l.Name, l.Code = stats.Name, stats.Code
	l.Document = document
	l.TotalCapacity, l.SellableCapacity, l.StandCount = stats.TotalCapacity, stats.SellableCapacity, stats.StandCount
	l.Version++
	l.UpdatedAt = time.Now()
	f.layouts[id] = l
	return &l, nil
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.layouts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.layouts, id)
	return nil
}

// recordingPublisher hands every event to a buffered channel.
type recordingPublisher struct {
	events chan LayoutEvent
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan LayoutEvent, 16)}
}

func (r *recordingPublisher) PublishLayoutSaved(_ context.Context, event LayoutEvent) error {
	r.events <- event
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) wait(t *testing.T) LayoutEvent {
	t.Helper()
	select {
	case event := <-r.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no layout event published")
		return LayoutEvent{}
	}
}

type testEnv struct {
	service   Service
	repo      *fakeRepository
	publisher *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	quiet := logger.NewWithLevel("error", io.Discard)
	logger.SetDefault(quiet)

	env := &testEnv{
		repo:      newFakeRepository(),
		publisher: newRecordingPublisher(),
	}
	editor := NewEditor(config.BuilderConfig{}, quiet)
	env.service = NewService(env.repo, NewMemorySessionStore(time.Hour), env.publisher, editor)
	return env
}

func (env *testEnv) createLayout(t *testing.T, code string, useTemplate bool) *LayoutResponse {
	t.Helper()
	layout, err := env.service.CreateLayout(context.Background(), CreateLayoutRequest{
		Name:        "Layout " + code,
		Code:        code,
		LayoutType:  string(LayoutTypeStadium),
		UseTemplate: useTemplate,
	})
	if err != nil {
		t.Fatalf("CreateLayout(%s): %v", code, err)
	}
	return layout
}

func (env *testEnv) openSession(t *testing.T, layoutID string) *SessionResponse {
	t.Helper()
	session, err := env.service.OpenSession(context.Background(), layoutID)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	return session
}

func addStand(name string, created *string) seating.Mutation {
	return func(e *seating.Editor, s *seating.Stadium) (*seating.Stadium, error) {
		next, id, err := e.AddStand(s, name)
		*created = id
		return next, err
	}
}
