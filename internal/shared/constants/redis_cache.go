package constants

import (
	"fmt"
	"time"
)

// Redis key layout for the builder.
// Pattern: venuebuilder:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_STATIC_MEDIUM     = 12 * time.Hour   // published layouts rarely change
	TTL_SEMI_STATIC_LONG  = 4 * time.Hour    // derived layout reads
	TTL_SEMI_STATIC_QUICK = 15 * time.Minute // layout listings
	TTL_EDITING_SESSION   = 8 * time.Hour    // an editing session idles out after a working day
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "venuebuilder"
)

// ================== LAYOUTS MODULE ==================

const (
	CACHE_KEY_LAYOUTS_LIST    = CACHE_PREFIX + ":layouts:list"          // + :page:X:limit:Y:type:Z:search:Q
	CACHE_KEY_LAYOUT_DETAIL   = CACHE_PREFIX + ":layouts:detail:uuid:"  // + layout-id
	CACHE_KEY_LAYOUT_SUMMARY  = CACHE_PREFIX + ":layouts:summary:uuid:" // + layout-id
	CACHE_KEY_LAYOUT_NODE     = CACHE_PREFIX + ":layouts:node:uuid:"    // + layout-id:node-id
	CACHE_KEY_LAYOUT_SESSION  = CACHE_PREFIX + ":layouts:session:"      // + session-id
	CACHE_KEY_RATE_LIMIT_BASE = CACHE_PREFIX + ":ratelimit:"            // + type:ip
)

const (
	TTL_LAYOUTS_LIST   = TTL_SEMI_STATIC_QUICK
	TTL_LAYOUT_DETAIL  = TTL_STATIC_MEDIUM
	TTL_LAYOUT_SUMMARY = TTL_SEMI_STATIC_LONG
	TTL_LAYOUT_NODE    = TTL_SEMI_STATIC_LONG
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_LAYOUTS_LIST = CACHE_KEY_LAYOUTS_LIST + "*"
)

// ================== HELPER FUNCTIONS ==================

func BuildLayoutListKey(page, limit int, layoutType, search, sortBy, sortOrder string) string {
	return fmt.Sprintf("%s:page:%d:limit:%d:type:%s:search:%s:sort:%s:%s",
		CACHE_KEY_LAYOUTS_LIST, page, limit, layoutType, search, sortBy, sortOrder)
}

func BuildLayoutDetailKey(layoutID string) string {
	return CACHE_KEY_LAYOUT_DETAIL + layoutID
}

func BuildLayoutSummaryKey(layoutID string) string {
	return CACHE_KEY_LAYOUT_SUMMARY + layoutID
}

func BuildLayoutNodeKey(layoutID, nodeID string) string {
	return CACHE_KEY_LAYOUT_NODE + layoutID + ":" + nodeID
}

func BuildSessionKey(sessionID string) string {
	return CACHE_KEY_LAYOUT_SESSION + sessionID
}

// BuildLayoutPattern matches every derived read cached for one layout.
func BuildLayoutPattern(layoutID string) []string {
	return []string{
		CACHE_KEY_LAYOUT_DETAIL + layoutID,
		CACHE_KEY_LAYOUT_SUMMARY + layoutID,
		CACHE_KEY_LAYOUT_NODE + layoutID + ":*",
	}
}
