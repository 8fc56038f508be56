package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificationsExtractor(t *testing.T) {
	e := NewCertificationsExtractor(NewSegmenter())

	t.Run("章节内按列表符切分", func(t *testing.T) {
		text := "CERTIFICATIONS\n" +
			"- AWS Certified Solutions Architect\n" +
			"- Google Data Analytics Certificate\n" +
			"Skills:\nPython\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Equal(t, "AWS Certified Solutions Architect", entries[0])
		assert.Equal(t, "Google Data Analytics Certificate", entries[1])
	})

	t.Run("丢弃列表前的引言行", func(t *testing.T) {
		text := "Certifications\n" +
			"Completed the following during college\n" +
			"- Python Bootcamp by Udemy\n" +
			"- Machine Learning Specialization\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Equal(t, "Python Bootcamp by Udemy", entries[0])
	})

	t.Run("保留含证书关键词的首行", func(t *testing.T) {
		text := "Certification\n" +
			"1. Scrum Master Training\n" +
			"2. Tally Course\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Equal(t, "Scrum Master Training", entries[0])
		assert.Equal(t, "Tally Course", entries[1])
	})

	t.Run("没有章节时检索行内提及", func(t *testing.T) {
		text := "Summary\nI am certified in AWS cloud computing and enjoy building systems.\n"
		entries := e.Extract(text)

		require.Len(t, entries, 1)
		assert.Contains(t, entries[0], "certified in AWS")
	})

	t.Run("没有证书返回空切片", func(t *testing.T) {
		entries := e.Extract("EDUCATION\nB.Tech in CS\n")
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})
}
