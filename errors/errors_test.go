package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHint(New("error"), "run protodts generate")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "run protodts generate", hints[0])
}

func TestWithDetailf(t *testing.T) {
	err := WithDetailf(New("error"), "unresolved reference %q", "Page.FrameId")

	details := GetAllDetails(err)
	require.Len(t, details, 1)
	assert.Equal(t, `unresolved reference "Page.FrameId"`, details[0])
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		schema  bool
		stale   bool
		message string
	}{
		{
			name:    "invalid schema",
			err:     NewInvalidSchemaError("domain %s has no name", "#3"),
			schema:  true,
			message: "domain #3 has no name",
		},
		{
			name:    "wrapped invalid schema",
			err:     Wrap(NewInvalidSchemaError("bad"), "failed to load schema"),
			schema:  true,
			message: "failed to load schema",
		},
		{
			name:    "out of date",
			err:     Wrapf(ErrOutOfDate, "%d artifacts differ", 2),
			stale:   true,
			message: "2 artifacts differ",
		},
		{
			name:    "invalid config is neither",
			err:     NewInvalidConfigError("output.dir is empty"),
			message: "output.dir is empty",
		},
		{
			name: "nil",
			err:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.schema, IsInvalidSchema(tt.err))
			assert.Equal(t, tt.stale, IsOutOfDate(tt.err))
			if tt.err != nil {
				assert.Contains(t, tt.err.Error(), tt.message)
			}
		})
	}
}

func ExampleWrap() {
	err := Wrap(New("permission denied"), "failed to write types/protocol.d.ts")
	fmt.Println(err)
	// Output: failed to write types/protocol.d.ts: permission denied
}
