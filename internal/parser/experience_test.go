package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceExtractor(t *testing.T) {
	e := NewExperienceExtractor()

	t.Run("识别经历章节", func(t *testing.T) {
		assert.True(t, e.HasExperienceSection("WORK EXPERIENCE\nSoftware Engineer\n"))
		assert.True(t, e.HasExperienceSection("Intro\nProfessional Experience\nstuff"))
		assert.False(t, e.HasExperienceSection("EDUCATION\nB.Tech\n"))
	})

	t.Run("按日期加职位切分条目", func(t *testing.T) {
		text := "WORK EXPERIENCE\n" +
			"Software Engineer at TechCorp Inc Jan 2020 - Dec 2022\n" +
			"- Built data pipelines\n" +
			"- Led a team of three\n" +
			"Data Analyst at DataWorks 2018 - 2020\n" +
			"- Prepared weekly reports\n" +
			"SKILLS\nPython\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)

		assert.Equal(t, "Software Engineer", entries[0].Role)
		assert.Equal(t, "Jan 2020 - Dec 2022", entries[0].Duration)
		assert.Contains(t, entries[0].Company, "TechCorp")
		assert.Contains(t, entries[0].Description, "Built data pipelines")

		assert.Equal(t, "Data Analyst", entries[1].Role)
		assert.Equal(t, "2018 - 2020", entries[1].Duration)
		assert.Contains(t, entries[1].Description, "Prepared weekly reports")
	})

	t.Run("小写公司名也能切分条目", func(t *testing.T) {
		text := "WORK EXPERIENCE\n" +
			"Software Engineer at TechCorp Inc Jan 2020 - Dec 2022\n" +
			"- Built data pipelines\n" +
			"at zenith softworks 2017 - 2018\n" +
			"- maintained internal tooling\n"
		entries := e.Extract(text)

		require.Len(t, entries, 2)
		assert.Equal(t, "2017 - 2018", entries[1].Duration)
		assert.Contains(t, entries[1].Company, "zenith")
		assert.Contains(t, entries[1].Description, "maintained internal tooling")
	})

	t.Run("没有章节返回空切片", func(t *testing.T) {
		entries := e.Extract("EDUCATION\nB.Tech in CS\n")
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("丢弃误入的联系方式块", func(t *testing.T) {
		text := "PROFESSIONAL EXPERIENCE\n" +
			"Email: jane@corp.example.com\n" +
			"Software Engineer at CloudNine Inc 2019 - 2021\n" +
			"- Developed internal dashboards\n"
		entries := e.Extract(text)

		require.Len(t, entries, 1)
		assert.Equal(t, "Software Engineer", entries[0].Role)
	})

	t.Run("截断误入的教育内容", func(t *testing.T) {
		text := "WORK EXPERIENCE\n" +
			"Backend Developer at WebWorks 2019 - 2021\n" +
			"- Shipped payment APIs\n" +
			"Bachelor of Technology from PQR University\n"
		entries := e.Extract(text)

		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Description, "Shipped payment APIs")
		assert.NotContains(t, entries[0].Description, "Bachelor")
	})

	t.Run("展示行汇总公司职位时间", func(t *testing.T) {
		text := "EXPERIENCE\n" +
			"QA Engineer at QualitySoft 2021 - 2023\n" +
			"- Automated regression suites\n"
		entries := e.Extract(text)

		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Display, "QA Engineer")
		assert.Contains(t, entries[0].Display, "2021 - 2023")
		assert.Contains(t, entries[0].Display, " | ")
	})
}
