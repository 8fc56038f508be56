package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmenterExtractSection(t *testing.T) {
	s := NewSegmenter()

	t.Run("在下一个已知标题处结束", func(t *testing.T) {
		text := "Skills:\nPython, Java\n\nEducation:\nB.Tech from ABC University\n"
		body, end := s.ExtractSection(text, []string{"Skills"})

		require.NotEqual(t, -1, end)
		assert.Equal(t, "Python, Java", body)
		assert.Equal(t, strings.Index(text, "Education:"), end)
	})

	t.Run("标题大小写不敏感", func(t *testing.T) {
		body, end := s.ExtractSection("SKILLS\nDocker\n", []string{"Skills"})
		require.NotEqual(t, -1, end)
		assert.Equal(t, "Docker", body)
	})

	t.Run("标题必须在行首", func(t *testing.T) {
		_, end := s.ExtractSection("My Skills: python\n", []string{"Skills"})
		assert.Equal(t, -1, end)
	})

	t.Run("没有后续标题时取到文末", func(t *testing.T) {
		body, end := s.ExtractSection("Certifications\n- AWS Associate\n", []string{"Certifications"})
		require.NotEqual(t, -1, end)
		assert.Equal(t, "- AWS Associate", body)
	})

	t.Run("未找到标题", func(t *testing.T) {
		body, end := s.ExtractSection("nothing here", []string{"Skills"})
		assert.Equal(t, "", body)
		assert.Equal(t, -1, end)
	})
}

func TestIsHeaderLine(t *testing.T) {
	headers := []string{"Projects", "Academic Projects"}

	assert.True(t, IsHeaderLine("Projects", headers))
	assert.True(t, IsHeaderLine("  projects:  ", headers))
	assert.True(t, IsHeaderLine("ACADEMIC PROJECTS", headers))
	assert.False(t, IsHeaderLine("My Projects", headers))
	assert.False(t, IsHeaderLine("Projects I did", headers))
}
