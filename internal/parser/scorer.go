package parser

import (
	"fmt"
	"strings"

	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/types"
)

// Scorer 评分策略接口
type Scorer interface {
	// Score 根据解析结果计算综合评分
	Score(parsed *types.ParsedResume) *types.ATSScore
	// Name 策略名称
	Name() string
}

// NewScorer 按名称返回评分策略，未知名称回退到加权策略
func NewScorer(strategy string) Scorer {
	if strings.EqualFold(strategy, constants.ScoringStrategySimple) {
		return &SimpleScorer{}
	}
	return &WeightedScorer{}
}

// WeightedScorer 加权评分策略
// 联系方式20分、教育25分、经历35分、技能20分
type WeightedScorer struct{}

// Name 实现Scorer接口
func (s *WeightedScorer) Name() string { return constants.ScoringStrategyWeighted }

// Score 实现Scorer接口
func (s *WeightedScorer) Score(parsed *types.ParsedResume) *types.ATSScore {
	contactScore := 0
	if parsed.ContactDetails.Name != types.NotFound {
		contactScore += 7
	}
	if parsed.ContactDetails.Email != types.NotFound {
		contactScore += 7
	}
	if parsed.ContactDetails.Phone != types.NotFound {
		contactScore += 6
	}

	educationScore := 0
	if len(parsed.Education) > 0 {
		educationScore += 10
		count := len(parsed.Education)
		if count > 3 {
			count = 3
		}
		educationScore += count * 5
	}

	experienceScore := 0
	if len(parsed.Experience) > 0 {
		experienceScore += 10
		count := len(parsed.Experience)
		if count > 5 {
			count = 5
		}
		experienceScore += count * 3
		if hasDescriptions(parsed.Experience) {
			experienceScore += 10
		}
	}

	skillsScore := 0
	if len(parsed.Skills) > 0 {
		skillsScore += 5
		count := len(parsed.Skills)
		if count > 15 {
			count = 15
		}
		skillsScore += count
	}

	total := contactScore + educationScore + experienceScore + skillsScore

	return &types.ATSScore{
		Score:      total,
		MaxScore:   constants.TotalMaxScore,
		Percentage: fmt.Sprintf("%d%%", total),
		DetailedScores: map[string]types.CategoryScore{
			"contact": {
				Score:    contactScore,
				Max:      constants.ContactMaxScore,
				Feedback: contactFeedback(parsed.ContactDetails),
			},
			"education": {
				Score:    educationScore,
				Max:      constants.EducationMaxScore,
				Feedback: educationFeedback(parsed.Education),
			},
			"experience": {
				Score:    experienceScore,
				Max:      constants.ExperienceMaxScore,
				Feedback: experienceFeedback(parsed.Experience),
			},
			"skills": {
				Score:    skillsScore,
				Max:      constants.SkillsMaxScore,
				Feedback: skillsFeedback(parsed.Skills),
			},
		},
		Rating: Rating(total),
	}
}

// SimpleScorer 只看各板块有无内容的朴素策略
type SimpleScorer struct{}

// Name 实现Scorer接口
func (s *SimpleScorer) Name() string { return constants.ScoringStrategySimple }

// Score 实现Scorer接口
// 姓名、邮箱、电话各10分，教育20分，经历和技能各25分
func (s *SimpleScorer) Score(parsed *types.ParsedResume) *types.ATSScore {
	contactScore := 0
	if parsed.ContactDetails.Name != types.NotFound {
		contactScore += 10
	}
	if parsed.ContactDetails.Email != types.NotFound {
		contactScore += 10
	}
	if parsed.ContactDetails.Phone != types.NotFound {
		contactScore += 10
	}

	educationScore := 0
	if len(parsed.Education) > 0 {
		educationScore = 20
	}
	experienceScore := 0
	if len(parsed.Experience) > 0 {
		experienceScore = 25
	}
	skillsScore := 0
	if len(parsed.Skills) > 0 {
		skillsScore = 25
	}

	total := contactScore + educationScore + experienceScore + skillsScore

	return &types.ATSScore{
		Score:      total,
		MaxScore:   constants.TotalMaxScore,
		Percentage: fmt.Sprintf("%d%%", total),
		DetailedScores: map[string]types.CategoryScore{
			"contact": {
				Score:    contactScore,
				Max:      30,
				Feedback: contactFeedback(parsed.ContactDetails),
			},
			"education": {
				Score:    educationScore,
				Max:      20,
				Feedback: educationFeedback(parsed.Education),
			},
			"experience": {
				Score:    experienceScore,
				Max:      25,
				Feedback: experienceFeedback(parsed.Experience),
			},
			"skills": {
				Score:    skillsScore,
				Max:      25,
				Feedback: skillsFeedback(parsed.Skills),
			},
		},
		Rating: Rating(total),
	}
}

func hasDescriptions(entries []types.ExperienceEntry) bool {
	for _, exp := range entries {
		if len(exp.Description) > 10 {
			return true
		}
	}
	return false
}

func contactFeedback(cd types.ContactDetails) string {
	var missing []string
	if cd.Name == types.NotFound {
		missing = append(missing, "name")
	}
	if cd.Email == types.NotFound {
		missing = append(missing, "email")
	}
	if cd.Phone == types.NotFound {
		missing = append(missing, "phone number")
	}

	if len(missing) == 0 {
		return "All essential contact information provided."
	}
	return fmt.Sprintf("Missing %s. Complete contact information improves ATS visibility.", strings.Join(missing, ", "))
}

func educationFeedback(education []string) string {
	switch {
	case len(education) == 0:
		return "No education details found. Adding educational background enhances your profile."
	case len(education) == 1:
		return "Basic education information provided. Consider adding more details about courses, achievements, or additional certifications."
	default:
		return fmt.Sprintf("Strong education section with %d entries. Well structured educational background.", len(education))
	}
}

func experienceFeedback(experience []types.ExperienceEntry) string {
	if len(experience) == 0 {
		return "No work experience found. Adding relevant work history is crucial for most positions."
	}

	if !hasDescriptions(experience) {
		return fmt.Sprintf("%d work experiences listed, but detailed descriptions are missing. Add specific accomplishments and responsibilities.", len(experience))
	}
	if len(experience) <= 2 {
		return fmt.Sprintf("%d work experiences with descriptions. Consider adding more relevant work history if available.", len(experience))
	}
	return fmt.Sprintf("Strong work history with %d detailed positions. Good demonstration of career progression.", len(experience))
}

func skillsFeedback(skills []string) string {
	switch {
	case len(skills) == 0:
		return "No skills listed. Adding relevant skills significantly improves ATS matching."
	case len(skills) < 5:
		return fmt.Sprintf("Only %d skills listed. Consider expanding your skills section with both technical and soft skills.", len(skills))
	case len(skills) < 10:
		return fmt.Sprintf("%d skills listed. Good range of skills, but consider adding more industry-specific keywords.", len(skills))
	default:
		return fmt.Sprintf("Excellent skills section with %d skills. Good balance of technical and professional skills.", len(skills))
	}
}

// Rating 根据总分给出等级
func Rating(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 75:
		return "Very Good"
	case score >= 60:
		return "Good"
	case score >= 45:
		return "Average"
	case score >= 30:
		return "Below Average"
	default:
		return "Needs Improvement"
	}
}
