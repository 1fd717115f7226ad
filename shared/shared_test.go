package shared_test

import (
	"bookit/shared"
	"bookit/shared/cache/mocks"
	"bookit/shared/dto"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{name: "prefix only", prefix: "experience:gets", expected: "experience:gets"},
		{name: "single part", prefix: "booking:get", parts: []string{"ABCD1234"}, expected: "booking:get:ABCD1234"},
		{name: "multiple parts", prefix: "ratelimit", parts: []string{"10.0.0.1", "curl"}, expected: "ratelimit:10.0.0.1:curl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	type query struct {
		Search   string
		MinPrice *int
	}

	minPrice := 500

	a := shared.BuildCacheKeyWithQuery("experience:gets", query{Search: "goa", MinPrice: &minPrice})
	b := shared.BuildCacheKeyWithQuery("experience:gets", query{Search: "goa", MinPrice: &minPrice})
	c := shared.BuildCacheKeyWithQuery("experience:gets", query{Search: "kerala"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "experience:gets:"))
}

func TestInvalidateCaches(t *testing.T) {
	tests := []struct {
		name     string
		clearErr error
	}{
		{name: "clears prefix"},
		{name: "clear error is swallowed", clearErr: errors.New("redis down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCache := mocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Clear(gomock.Any(), "experience:gets:*").Return(tt.clearErr)

			shared.InvalidateCaches(context.Background(), mockCache, "experience:gets")
		})
	}
}

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  *int
		expectErr bool
	}{
		{name: "empty string returns nil", input: ""},
		{name: "valid number", input: "1500", expected: intPtr(1500)},
		{name: "surrounding spaces", input: " 42 ", expected: intPtr(42)},
		{name: "negative number", input: "-3", expected: intPtr(-3)},
		{name: "not a number", input: "cheap", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "experiences")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(experiences.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "abc"}, args)
	assert.Len(t, group.Filters, 1)
	assert.IsType(t, dto.Filter{}, group.Filters[0])
}

func intPtr(i int) *int {
	return &i
}
