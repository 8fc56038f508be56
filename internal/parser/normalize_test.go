package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Run("统一换行符", func(t *testing.T) {
		assert.Equal(t, "a\nb\nc", NormalizeText("a\r\nb\rc"))
	})

	t.Run("剔除BOM", func(t *testing.T) {
		assert.Equal(t, "hello", NormalizeText("\uFEFFhello"))
		assert.Equal(t, "x\uFEFFy", NormalizeText("x\uFEFFy"))
	})

	t.Run("压缩过多空行", func(t *testing.T) {
		assert.Equal(t, "a\n\n\nb", NormalizeText("a\n\n\n\n\n\nb"))
	})

	t.Run("保留两个空行", func(t *testing.T) {
		assert.Equal(t, "a\n\n\nb", NormalizeText("a\n\n\nb"))
	})
}

func TestCollapseNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\nc", CollapseNewlines("a\n\n\nb\r\n\r\nc"))
	assert.Equal(t, "a", CollapseNewlines("\n\na\n\n"))
}

func TestNonEmptyLines(t *testing.T) {
	lines := NonEmptyLines("  a  \n\n\t\nb\n")
	assert.Equal(t, []string{"a", "b"}, lines)
}
