package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationExtractor(t *testing.T) {
	e := NewEducationExtractor()

	t.Run("学历行切分", func(t *testing.T) {
		text := "EDUCATION\n" +
			"B.Tech in Computer Science, ABC University, 2018-2022, CGPA 8.5\n" +
			"HSC, XYZ Junior College, 2016-2018, Percentage 85\n" +
			"\nSKILLS\nPython\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Contains(t, entries[0], "B.Tech")
		assert.Contains(t, entries[1], "HSC")
	})

	t.Run("在下一个章节标题处截断", func(t *testing.T) {
		text := "EDUCATION\n" +
			"Bachelor of Arts, DEF College, 2015 - 2019\n" +
			"PROJECTS\nBuilt a chatbot with Python and Flask\n"
		entries := e.Extract(text)

		require.NotEmpty(t, entries)
		for _, entry := range entries {
			assert.NotContains(t, entry, "chatbot")
		}
	})

	t.Run("没有教育内容返回空切片", func(t *testing.T) {
		entries := e.Extract("I enjoy hiking and photography.\n")
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("没有标题时从学历关键词所在行开始", func(t *testing.T) {
		text := "Some intro line\nB.Tech in Mechanical Engineering, GHI Institute, CGPA 7.9\n"
		entries := e.Extract(text)

		require.NotEmpty(t, entries)
		assert.Contains(t, entries[0], "B.Tech")
	})

	t.Run("列表符条目", func(t *testing.T) {
		text := "EDUCATION\n" +
			"• Master of Science, JKL University, 2020-2022\n" +
			"• Bachelor of Science, MNO College, 2016-2020\n" +
			"\nSKILLS\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Contains(t, entries[0], "Master of Science")
		assert.Contains(t, entries[1], "Bachelor of Science")
	})
}

func TestYearRangeValidation(t *testing.T) {
	// 年份区间的结束词只认小写
	assert.True(t, yearRangeRe.MatchString("2019 - 2023"))
	assert.True(t, yearRangeRe.MatchString("2019 - present"))
	assert.True(t, yearRangeRe.MatchString("2021-ongoing"))
	assert.False(t, yearRangeRe.MatchString("2019 - Present"))
	assert.False(t, yearRangeRe.MatchString("1899 - 1905"))
}
