package venues

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"strings"
	"sync"
	"time"

	"venuebuilder/internal/seating"
	"venuebuilder/internal/shared/constants"
	"venuebuilder/pkg/cache"
	"venuebuilder/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLayoutNotFound  = errors.New("layout not found")
	ErrLayoutCodeTaken = errors.New("layout code already in use")
	ErrSessionNotFound = errors.New("editing session not found")
	ErrInvalidID       = errors.New("invalid id")
)

type Service interface {
	// Persisted layouts
	CreateLayout(ctx context.Context, req CreateLayoutRequest) (*LayoutResponse, error)
	GetLayout(ctx context.Context, id string) (*LayoutDetailResponse, error)
	ListLayouts(ctx context.Context, filters LayoutFilters) (*PaginatedLayouts, error)
	DeleteLayout(ctx context.Context, id string) error

	// Reads for renderers and ticketing
	GetSummary(ctx context.Context, id string) (*CapacitySummaryResponse, error)
	RenderNode(ctx context.Context, layoutID, nodeID string) (*seating.RenderInfo, error)
	GetRowSeats(ctx context.Context, layoutID, rowID string) ([]seating.Seat, error)

	// Editing sessions
	OpenSession(ctx context.Context, layoutID string) (*SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*SessionResponse, error)
	ApplyMutation(ctx context.Context, sessionID string, m seating.Mutation) (*SessionResponse, error)
	QuickAddStand(ctx context.Context, sessionID, name string) (*SessionResponse, error)
	Select(ctx context.Context, sessionID string, req SelectRequest) (*SessionResponse, error)
	SaveSession(ctx context.Context, sessionID string) (*LayoutResponse, error)
	CloseSession(ctx context.Context, sessionID string) error
}

type service struct {
	repo      Repository
	sessions  SessionStore
	publisher Publisher
	editor    *seating.Editor
	cache     cache.Service
	log       *logger.Logger

	// one in-flight mutation per session; sessions share a fixed set of stripes
	locks [sessionLockStripes]sync.Mutex
}

const sessionLockStripes = 64

func NewService(repo Repository, sessions SessionStore, publisher Publisher, editor *seating.Editor) Service {
	s := &service{
		repo:      repo,
		sessions:  sessions,
		publisher: publisher,
		editor:    editor,
		log:       logger.GetDefault(),
	}
	if client := cache.Client(); client != nil {
		s.cache = cache.NewService(client)
	}
	if s.publisher == nil {
		s.publisher = NewNoopPublisher()
	}
	return s
}

// LAYOUTS

func (s *service) CreateLayout(ctx context.Context, req CreateLayoutRequest) (*LayoutResponse, error) {
	code := strings.TrimSpace(req.Code)
	existing, err := s.repo.GetByCode(ctx, code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check layout code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutCodeTaken, code)
	}

	stadium := s.editor.NewStadium(req.Name, code)
	if tpl, ok := seating.TemplateFor(req.LayoutType); ok && req.UseTemplate {
		if stadium, err = s.editor.NewFromTemplate(req.Name, code, tpl); err != nil {
			return nil, fmt.Errorf("failed to build template: %w", err)
		}
	}

	document, err := seating.Marshal(stadium)
	if err != nil {
		return nil, err
	}
	stats := statsFor(stadium)
	layout := &VenueLayout{
		ID:               uuid.New(),
		Name:             stats.Name,
		Code:             stats.Code,
		LayoutType:       req.LayoutType,
		Document:         document,
		TotalCapacity:    stats.TotalCapacity,
		SellableCapacity: stats.SellableCapacity,
		StandCount:       stats.StandCount,
		Version:          1,
	}
	if err := s.repo.Create(ctx, layout); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", ErrLayoutCodeTaken, code)
		}
		return nil, fmt.Errorf("failed to create layout: %w", err)
	}

	s.invalidateListings(ctx)

	resp := layout.ToResponse()
	return &resp, nil
}

func (s *service) GetLayout(ctx context.Context, id string) (*LayoutDetailResponse, error) {
	cacheKey := constants.BuildLayoutDetailKey(id)

	var cached LayoutDetailResponse
	if s.getCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	layout, err := s.loadLayout(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := layout.ToDetailResponse()
	s.setCache(ctx, cacheKey, resp, constants.TTL_LAYOUT_DETAIL)
	return &resp, nil
}

func (s *service) ListLayouts(ctx context.Context, filters LayoutFilters) (*PaginatedLayouts, error) {
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}
	if filters.SortBy == "" {
		filters.SortBy = "created_at"
	}
	if filters.SortOrder == "" {
		filters.SortOrder = "desc"
	}

	cacheKey := constants.BuildLayoutListKey(filters.Page, filters.Limit, filters.LayoutType, filters.Search, filters.SortBy, filters.SortOrder)

	var cached PaginatedLayouts
	if s.getCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	result, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}

	s.setCache(ctx, cacheKey, result, constants.TTL_LAYOUTS_LIST)
	return result, nil
}

// DeleteLayout leaves open sessions alone; saving one afterwards fails with
// ErrLayoutNotFound.
func (s *service) DeleteLayout(ctx context.Context, id string) error {
	layoutID, err := parseLayoutID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, layoutID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrLayoutNotFound, id)
		}
		return fmt.Errorf("failed to delete layout: %w", err)
	}

	s.invalidateLayout(ctx, id)
	return nil
}

// READS

func (s *service) GetSummary(ctx context.Context, id string) (*CapacitySummaryResponse, error) {
	cacheKey := constants.BuildLayoutSummaryKey(id)

	var cached CapacitySummaryResponse
	if s.getCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	layout, stadium, err := s.loadStadium(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &CapacitySummaryResponse{
		LayoutID:         id,
		Version:          layout.Version,
		TotalCapacity:    stadium.StadiumCapacity(seating.CapacityOptions{IncludeBlocked: true}),
		SellableCapacity: stadium.StadiumCapacity(seating.CapacityOptions{}),
		Stands:           stadium.Summary(),
	}
	s.setCache(ctx, cacheKey, resp, constants.TTL_LAYOUT_SUMMARY)
	return resp, nil
}

func (s *service) RenderNode(ctx context.Context, layoutID, nodeID string) (*seating.RenderInfo, error) {
	cacheKey := constants.BuildLayoutNodeKey(layoutID, nodeID)

	var cached seating.RenderInfo
	if s.getCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	_, stadium, err := s.loadStadium(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	info, ok := stadium.Render(nodeID)
	if !ok {
		return nil, fmt.Errorf("%w: node %q", seating.ErrNotFound, nodeID)
	}

	s.setCache(ctx, cacheKey, info, constants.TTL_LAYOUT_NODE)
	return &info, nil
}

func (s *service) GetRowSeats(ctx context.Context, layoutID, rowID string) ([]seating.Seat, error) {
	_, stadium, err := s.loadStadium(ctx, layoutID)
	if err != nil {
		return nil, err
	}
	seats, ok := stadium.Seats(rowID)
	if !ok {
		return nil, fmt.Errorf("%w: row %q", seating.ErrNotFound, rowID)
	}
	return seats, nil
}

// SESSIONS

func (s *service) OpenSession(ctx context.Context, layoutID string) (*SessionResponse, error) {
	_, stadium, err := s.loadStadium(ctx, layoutID)
	if err != nil {
		return nil, err
	}

	session := seating.NewSession(uuid.NewString(), layoutID, stadium)
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.log.LogSessionOpened(ctx, session.ID, layoutID)
	return toSessionResponse(session), nil
}

func (s *service) GetSession(ctx context.Context, sessionID string) (*SessionResponse, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// ApplyMutation runs m against the session's tree and stores the result
// before returning. A no-op is still stored (the selection may have been
// repaired) and is returned together with the current session.
func (s *service) ApplyMutation(ctx context.Context, sessionID string, m seating.Mutation) (*SessionResponse, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	applyErr := session.Apply(s.editor, m)
	if applyErr != nil && !seating.IsNoOp(applyErr) {
		return toSessionResponse(session), applyErr
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return toSessionResponse(session), applyErr
}

func (s *service) QuickAddStand(ctx context.Context, sessionID, name string) (*SessionResponse, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	added, err := session.QuickAddStand(s.editor, name)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	resp := toSessionResponse(session)
	resp.CreatedID = added.StandID
	return resp, nil
}

// Select moves the focus to the deepest level named in req and drills down
// from there.
func (s *service) Select(ctx context.Context, sessionID string, req SelectRequest) (*SessionResponse, error) {
	if req.SectionID != "" && req.TierID == "" {
		return nil, fmt.Errorf("%w: section_id requires tier_id", seating.ErrInvalidInput)
	}

	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var ok bool
	switch {
	case req.SectionID != "":
		ok = session.SelectSection(req.StandID, req.TierID, req.SectionID)
	case req.TierID != "":
		ok = session.SelectTier(req.StandID, req.TierID)
	default:
		ok = session.SelectStand(req.StandID)
	}
	if !ok {
		return toSessionResponse(session), fmt.Errorf("%w: selection target is not in the layout", seating.ErrNotFound)
	}

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return toSessionResponse(session), nil
}

// SaveSession persists the session's tree, then announces the new version.
// The announcement never fails the save.
func (s *service) SaveSession(ctx context.Context, sessionID string) (*LayoutResponse, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	layoutID, err := parseLayoutID(session.LayoutID)
	if err != nil {
		return nil, err
	}

	document, err := seating.Marshal(session.Stadium)
	if err != nil {
		return nil, err
	}
	stats := statsFor(session.Stadium)

	layout, err := s.repo.SaveDocument(ctx, layoutID, document, stats)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, session.LayoutID)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, fmt.Errorf("%w: %s", ErrLayoutCodeTaken, stats.Code)
		}
		return nil, fmt.Errorf("failed to save layout: %w", err)
	}

	session.MarkSaved()
	if err := s.sessions.Put(ctx, session); err != nil {
		log.Printf("Warning: failed to store saved session %s: %v", sessionID, err)
	}

	s.invalidateLayout(ctx, session.LayoutID)
	s.log.LogLayoutSaved(ctx, session.LayoutID, layout.Version, layout.SellableCapacity)
	s.publishSaved(layout)

	resp := layout.ToResponse()
	return &resp, nil
}

func (s *service) CloseSession(ctx context.Context, sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	return nil
}

// helpers

func (s *service) loadLayout(ctx context.Context, id string) (*VenueLayout, error) {
	layoutID, err := parseLayoutID(id)
	if err != nil {
		return nil, err
	}
	layout, err := s.repo.GetByID(ctx, layoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, id)
		}
		return nil, fmt.Errorf("failed to get layout: %w", err)
	}
	return layout, nil
}

func (s *service) loadStadium(ctx context.Context, id string) (*VenueLayout, *seating.Stadium, error) {
	layout, err := s.loadLayout(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	stadium, err := seating.Unmarshal(layout.Document)
	if err != nil {
		return nil, nil, fmt.Errorf("stored layout %s is unreadable: %w", id, err)
	}
	return layout, stadium, nil
}

func (s *service) publishSaved(layout *VenueLayout) {
	event := LayoutEvent{
		EventType:        EventLayoutSaved,
		LayoutID:         layout.ID.String(),
		Code:             layout.Code,
		Name:             layout.Name,
		Version:          layout.Version,
		TotalCapacity:    layout.TotalCapacity,
		SellableCapacity: layout.SellableCapacity,
		StandCount:       layout.StandCount,
		SavedAt:          layout.UpdatedAt,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.publisher.PublishLayoutSaved(ctx, event); err != nil {
			log.Printf("Warning: failed to publish layout event for %s: %v", event.LayoutID, err)
		}
	}()
}

func (s *service) lockFor(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%sessionLockStripes]
}

func (s *service) lock(sessionID string) func() {
	m := s.lockFor(sessionID)
	m.Lock()
	return m.Unlock
}
