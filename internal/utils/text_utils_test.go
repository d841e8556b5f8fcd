package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTruncateTextOverLimit(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())
	text := strings.Repeat("a", 30001)

	got := tp.TruncateText(text, 30000)

	assert.Len(t, got, 30000+len(TruncationMarker))
	assert.True(t, strings.HasSuffix(got, TruncationMarker))
	assert.Equal(t, text[:30000], strings.TrimSuffix(got, TruncationMarker))
}

func TestTruncateTextAtOrUnderLimitUnchanged(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	exact := strings.Repeat("b", 30000)
	assert.Equal(t, exact, tp.TruncateText(exact, 30000))
	assert.Equal(t, "short", tp.TruncateText("short", 30000))
	assert.Equal(t, "", tp.TruncateText("", 30000))
}

func TestTruncateTextNoLimit(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())
	assert.Equal(t, "anything", tp.TruncateText("anything", 0))
}

func TestTruncateTextBacksOffToUTF8Boundary(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	// "é" is two bytes; a cut at 5 lands mid-rune
	text := strings.Repeat("é", 3)
	got := tp.TruncateText(text, 5)

	trimmed := strings.TrimSuffix(got, TruncationMarker)
	assert.Equal(t, "éé", trimmed)
}
