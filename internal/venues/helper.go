package venues

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"venuebuilder/internal/seating"
	"venuebuilder/internal/shared/constants"
	"venuebuilder/internal/shared/utils/response"
	"venuebuilder/pkg/cache"
	"venuebuilder/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func statsFor(s *seating.Stadium) LayoutStats {
	return LayoutStats{
		Name:             s.Name,
		Code:             s.Code,
		TotalCapacity:    s.StadiumCapacity(seating.CapacityOptions{IncludeBlocked: true}),
		SellableCapacity: s.StadiumCapacity(seating.CapacityOptions{}),
		StandCount:       len(s.Stands),
	}
}

func parseLayoutID(id string) (uuid.UUID, error) {
	layoutID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: layout id %q", ErrInvalidID, id)
	}
	return layoutID, nil
}

// Cache helpers. A nil cache skips caching; failures are logged and ignored.

func (s *service) getCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	if err := s.cache.Get(ctx, key, dest); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("Warning: failed to read cache key %s: %v", key, err)
		}
		return false
	}
	return true
}

func (s *service) setCache(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		log.Printf("Warning: failed to cache key %s: %v", key, err)
	}
}

func (s *service) invalidateListings(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_LAYOUTS_LIST); err != nil {
		log.Printf("Warning: failed to invalidate layout listings: %v", err)
	}
}

func (s *service) invalidateLayout(ctx context.Context, layoutID string) {
	if s.cache == nil {
		return
	}
	for _, pattern := range constants.BuildLayoutPattern(layoutID) {
		if err := s.cache.DeletePattern(ctx, pattern); err != nil {
			log.Printf("Warning: failed to invalidate cache pattern %s: %v", pattern, err)
		}
	}
	s.invalidateListings(ctx)
}

// statusFor maps service and engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrLayoutNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, seating.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, seating.ErrStructuralViolation),
		errors.Is(err, ErrLayoutCodeTaken):
		return http.StatusConflict
	case errors.Is(err, seating.ErrInvalidGeometry),
		errors.Is(err, seating.ErrInvalidInput),
		errors.Is(err, seating.ErrInvalidDocument),
		errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. data may carry the session state
// so a client can redraw after a rejected mutation.
func respondError(ctx *gin.Context, message string, err error, data interface{}) {
	code := statusFor(err)
	logger.GetDefault().LogHTTPError(ctx, err, code)
	response.RespondJSON(ctx, "error", code, message, data, err.Error())
}

func bindJSON(ctx *gin.Context, dest interface{}) bool {
	if err := ctx.ShouldBindJSON(dest); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body, leaving dest at its zero value.
func bindOptionalJSON(ctx *gin.Context, dest interface{}) bool {
	if ctx.Request.Body == nil || ctx.Request.Body == http.NoBody || ctx.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(ctx, dest)
}

// sessionData keeps a nil session out of the envelope as an explicit null.
func sessionData(session *SessionResponse) interface{} {
	if session == nil {
		return nil
	}
	return session
}
