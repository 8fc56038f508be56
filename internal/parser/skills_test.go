package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsExtractor(t *testing.T) {
	e := NewSkillsExtractor(NewSegmenter())

	t.Run("章节内匹配并按字典序输出", func(t *testing.T) {
		text := "Name\n\nSkills:\nPython, Java, SQL and Docker\n\nEducation:\nB.Tech\n"
		skills := e.Extract(text)
		assert.Equal(t, []string{"docker", "java", "python", "sql"}, skills)
	})

	t.Run("关键词按单词边界匹配", func(t *testing.T) {
		// javascript 不应命中 java
		skills := e.Extract("Skills:\njavascript, html\n")
		assert.Equal(t, []string{"html", "javascript"}, skills)
	})

	t.Run("章节无命中时回退到全文", func(t *testing.T) {
		text := "Skills:\nTeam player with great communication\n\nSummary:\nBuilt services in python on aws\n"
		skills := e.Extract(text)
		assert.Equal(t, []string{"aws", "python"}, skills)
	})

	t.Run("没有命中返回空切片", func(t *testing.T) {
		skills := e.Extract("An enthusiastic fresher looking for opportunities.")
		assert.NotNil(t, skills)
		assert.Empty(t, skills)
	})
}
