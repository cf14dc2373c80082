package shared

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)

		assert.Regexp(t, regexp.MustCompile("^[0-9a-f]{32}$"), traceID)
	})

	t.Run("absent trace id is empty", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("ids are unique per request", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id := GetTraceID(SetTraceID(context.Background()))
			assert.False(t, seen[id], "duplicate trace ID generated")
			seen[id] = true
		}
	})
}
