package shared

import (
	"bookit/shared/cache"
	"bookit/shared/constant"
	"bookit/shared/dto"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins prefix and parts into a redis key, e.g. "booking:get:ABCD1234".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key from the JSON form of the query values.
func BuildCacheKeyWithQuery(prefix string, query ...any) string {
	hash := fnv.New64a()

	for _, q := range query {
		raw, err := json.Marshal(q)
		if err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")

			raw = []byte(fmt.Sprintf("%v", q))
		}

		_, _ = hash.Write(raw)
	}

	return BuildCacheKey(prefix, strconv.FormatUint(hash.Sum64(), 16))
}

// InvalidateCaches removes every key under prefix. Errors are logged only.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// ConvertStringToInt returns nil for an empty value.
func ConvertStringToInt(value string) (*int, error) {
	if value == constant.Empty {
		return nil, nil //nolint:nilnil
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("failed to convert %q to int: %w", value, err)
	}

	return &intValue, nil
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []dto.Clause{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
