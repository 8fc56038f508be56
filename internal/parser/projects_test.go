package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectsExtractor(t *testing.T) {
	e := NewProjectsExtractor()

	t.Run("按列表符切分并在下一章节结束", func(t *testing.T) {
		text := "PROJECTS\n" +
			"- Inventory tracker built with Flask and SQLite\n" +
			"- Chat application using websockets\n" +
			"Skills\n" +
			"Python\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Equal(t, "Inventory tracker built with Flask and SQLite", entries[0])
		assert.Equal(t, "Chat application using websockets", entries[1])
	})

	t.Run("按空行切分条目", func(t *testing.T) {
		text := "Projects:\n" +
			"Movie recommender\nCollaborative filtering on ratings data\n" +
			"\n" +
			"Portfolio website\nStatic site deployed on a VPS\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Contains(t, entries[0], "Movie recommender")
		assert.Contains(t, entries[1], "Portfolio website")
	})

	t.Run("没有章节返回空切片", func(t *testing.T) {
		entries := e.Extract("EDUCATION\nB.Tech in CS\n")
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("无法切分时整段返回", func(t *testing.T) {
		text := "Projects\nBuilt an expense tracker for personal use\n"
		entries := e.Extract(text)

		require.Len(t, entries, 1)
		assert.Equal(t, "Built an expense tracker for personal use", entries[0])
	})
}
