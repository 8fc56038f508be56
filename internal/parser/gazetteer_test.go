package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGazetteerLookupLine(t *testing.T) {
	g := NewGazetteer()

	t.Run("基本查找", func(t *testing.T) {
		loc, ok := g.LookupLine("Currently living in Chennai")
		require.True(t, ok)
		assert.Equal(t, "Chennai, Tamil Nadu", loc)
	})

	t.Run("大小写不敏感", func(t *testing.T) {
		loc, ok := g.LookupLine("PUNE")
		require.True(t, ok)
		assert.Equal(t, "Pune, Maharashtra", loc)
	})

	t.Run("同一行多个城市按注册顺序取先注册的", func(t *testing.T) {
		loc, ok := g.LookupLine("Worked in Mumbai and Bangalore")
		require.True(t, ok)
		assert.Equal(t, "Bangalore, Karnataka", loc)
	})

	t.Run("同名城市映射到最后注册的邦", func(t *testing.T) {
		loc, ok := g.LookupLine("Bijapur")
		require.True(t, ok)
		assert.Equal(t, "Bijapur, Chhattisgarh", loc)

		loc, ok = g.LookupLine("Udaipur")
		require.True(t, ok)
		assert.Equal(t, "Udaipur, Tripura", loc)
	})

	t.Run("单词边界", func(t *testing.T) {
		_, ok := g.LookupLine("goal-oriented engineer")
		assert.False(t, ok)
	})

	t.Run("未命中", func(t *testing.T) {
		_, ok := g.LookupLine("remote only")
		assert.False(t, ok)
	})
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "New Delhi", titleCase("new delhi"))
	assert.Equal(t, "Vasco Da Gama", titleCase("vasco da gama"))
	assert.Equal(t, "", titleCase(""))
}
