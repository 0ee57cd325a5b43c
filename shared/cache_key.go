package shared

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"strings"

	"adscape/shared/cache"
	"adscape/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins the prefix and parts into a single redis key.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key for a paginated, filtered listing. Equal filters and
// paging always hash to the same key whatever the map order of the arguments.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	var builder strings.Builder

	builder.WriteString(where)

	for _, key := range slices.Sorted(maps.Keys(args)) {
		fmt.Fprintf(&builder, "|%s=%v", key, args[key])
	}

	fmt.Fprintf(&builder, "|%d|%d|%s|%s", params.Page, params.Limit, params.SortBy, params.SortDir)

	sum := sha1.Sum([]byte(builder.String())) //nolint:gosec

	return BuildCacheKey(prefix, hex.EncodeToString(sum[:]))
}

// InvalidateCaches removes every key stored under prefix. Failures are only logged, entries
// expire on their own TTL.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
