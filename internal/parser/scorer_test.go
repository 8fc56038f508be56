package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/types"
)

func emptyResume() *types.ParsedResume {
	return &types.ParsedResume{
		ContactDetails: types.ContactDetails{
			Name:     types.NotFound,
			Email:    types.NotFound,
			Phone:    types.NotFound,
			Location: types.NotFound,
		},
		Education:      []string{},
		Experience:     []types.ExperienceEntry{},
		Skills:         []string{},
		Projects:       []string{},
		Certifications: []string{},
	}
}

func fullResume() *types.ParsedResume {
	return &types.ParsedResume{
		ContactDetails: types.ContactDetails{
			Name:     "Arjun Kumar",
			Email:    "arjun.kumar@example.com",
			Phone:    "+91-9876543210",
			Location: "Bangalore, Karnataka",
		},
		Education: []string{
			"B.Tech in Computer Science, ABC University, 2016 - 2020",
			"HSC, XYZ Junior College, 2016",
		},
		Experience: []types.ExperienceEntry{
			{Role: "Software Engineer", Duration: "2020 - 2022", Description: "Built data pipelines"},
			{Role: "Data Analyst", Duration: "2018 - 2020", Description: "Prepared weekly reports"},
			{Role: "Intern", Duration: "2017 - 2018", Description: "Wrote internal tooling"},
		},
		Skills: []string{"aws", "docker", "java", "python", "sql", "tableau"},
	}
}

func TestWeightedScorer(t *testing.T) {
	s := &WeightedScorer{}

	t.Run("完整简历加权得分", func(t *testing.T) {
		// 联系方式20 + 教育(10+2*5)=20 + 经历(10+3*3+10)=29 + 技能(5+6)=11
		score := s.Score(fullResume())

		assert.Equal(t, 80, score.Score)
		assert.Equal(t, 100, score.MaxScore)
		assert.Equal(t, "80%", score.Percentage)
		assert.Equal(t, "Very Good", score.Rating)

		require.Contains(t, score.DetailedScores, "contact")
		assert.Equal(t, 20, score.DetailedScores["contact"].Score)
		assert.Equal(t, "All essential contact information provided.", score.DetailedScores["contact"].Feedback)
		assert.Equal(t, 20, score.DetailedScores["education"].Score)
		assert.Equal(t, 29, score.DetailedScores["experience"].Score)
		assert.Equal(t, 11, score.DetailedScores["skills"].Score)
	})

	t.Run("空简历得零分", func(t *testing.T) {
		score := s.Score(emptyResume())

		assert.Equal(t, 0, score.Score)
		assert.Equal(t, "0%", score.Percentage)
		assert.Equal(t, "Needs Improvement", score.Rating)
		assert.Equal(t,
			"Missing name, email, phone number. Complete contact information improves ATS visibility.",
			score.DetailedScores["contact"].Feedback)
	})

	t.Run("各类别有数量上限", func(t *testing.T) {
		parsed := emptyResume()
		for i := 0; i < 20; i++ {
			parsed.Skills = append(parsed.Skills, fmt.Sprintf("skill-%d", i))
		}
		for i := 0; i < 5; i++ {
			parsed.Education = append(parsed.Education, fmt.Sprintf("Degree %d", i))
		}
		for i := 0; i < 7; i++ {
			parsed.Experience = append(parsed.Experience, types.ExperienceEntry{Role: "Engineer"})
		}

		score := s.Score(parsed)

		// 技能5+15、教育10+15、经历10+15（无描述不加分）
		assert.Equal(t, 20, score.DetailedScores["skills"].Score)
		assert.Equal(t, 25, score.DetailedScores["education"].Score)
		assert.Equal(t, 25, score.DetailedScores["experience"].Score)
	})

	t.Run("缺少描述时给出提示", func(t *testing.T) {
		parsed := emptyResume()
		parsed.Experience = []types.ExperienceEntry{{Role: "Engineer"}, {Role: "Analyst"}}

		score := s.Score(parsed)
		assert.Contains(t, score.DetailedScores["experience"].Feedback, "detailed descriptions are missing")
	})
}

func TestSimpleScorer(t *testing.T) {
	s := &SimpleScorer{}

	t.Run("完整简历得满分", func(t *testing.T) {
		score := s.Score(fullResume())

		assert.Equal(t, 100, score.Score)
		assert.Equal(t, "Excellent", score.Rating)
	})

	t.Run("只按板块有无计分", func(t *testing.T) {
		parsed := emptyResume()
		parsed.Skills = []string{"python"}

		score := s.Score(parsed)
		assert.Equal(t, 25, score.Score)
	})
}

func TestNewScorer(t *testing.T) {
	assert.Equal(t, "simple", NewScorer("simple").Name())
	assert.Equal(t, "simple", NewScorer("SIMPLE").Name())
	assert.Equal(t, "weighted", NewScorer("weighted").Name())
	// 未知策略回退到加权
	assert.Equal(t, "weighted", NewScorer("fancy").Name())
	assert.Equal(t, "weighted", NewScorer("").Name())
}

func TestRating(t *testing.T) {
	cases := []struct {
		score  int
		rating string
	}{
		{95, "Excellent"},
		{90, "Excellent"},
		{89, "Very Good"},
		{75, "Very Good"},
		{74, "Good"},
		{60, "Good"},
		{59, "Average"},
		{45, "Average"},
		{44, "Below Average"},
		{30, "Below Average"},
		{29, "Needs Improvement"},
		{0, "Needs Improvement"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.rating, Rating(tc.score), "score=%d", tc.score)
	}
}
