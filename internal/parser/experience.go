package parser

import (
	"regexp"
	"strings"

	"resume-ats-go/internal/types"
)

// experienceHeaderRes 工作经历章节标题
var experienceHeaderRes = buildBoundedHeaderRes([]string{
	"WORK EXPERIENCE",
	"EMPLOYMENT HISTORY",
	"EXPERIENCE",
	"PROFESSIONAL EXPERIENCE",
	"WORK HISTORY",
	"RELEVANT EXPERIENCE",
	"CAREER HISTORY",
	"EMPLOYMENT",
	"PROFESSIONAL BACKGROUND",
	"CAREER EXPERIENCE",
	"JOB EXPERIENCE",
	"INDUSTRY EXPERIENCE",
	"WORK PROFILE",
	"EMPLOYMENT DETAILS",
	"CAREER PROGRESSION",
	"EMPLOYMENT RECORD",
})

// experienceEndRes 工作经历章节之后可能出现的标题
var experienceEndRes = buildBoundedHeaderRes([]string{
	"EDUCATION",
	"SKILLS",
	"CERTIFICATIONS",
	"AWARDS",
	"PROJECTS",
	"ACHIEVEMENTS",
	"PUBLICATIONS",
	"REFERENCES",
	"VOLUNTEER",
	"LANGUAGES",
	"INTERESTS",
	"ADDITIONAL INFORMATION",
	"TRAINING",
	"HOBBIES",
	"TECHNICAL SKILLS",
	"ACADEMIC PROJECTS",
	"COURSEWORK",
	"TECHNICAL PROFICIENCY",
	"LEADERSHIP",
	"Personal Details",
	"Educational Qualification",
})

// buildBoundedHeaderRes 生成独占一行的标题匹配正则
func buildBoundedHeaderRes(headers []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(headers))
	for _, header := range headers {
		res = append(res, regexp.MustCompile(`(?i)(?:^|\n)\s*`+regexp.QuoteMeta(header)+`\s*(?:$|\n)`))
	}
	return res
}

var (
	expDateRe  = regexp.MustCompile(`(?i)(?:\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b|(?:19|20)\d{2})\s*[-–—]\s*(?:\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}\b|(?:19|20)\d{2}|Present|Current|Now)`)
	expTitleRe = regexp.MustCompile(`(?i)\b(?:Senior|Junior|Lead|Chief|Principal|Associate|Assistant|Head|VP|Director|Executive|Manager)?\s*(?:Software|Systems|Data|Project|Product|Marketing|Sales|HR|Human Resources|Financial|Finance|Web|UI/UX|Frontend|Backend|Full[ -]Stack|DevOps|QA|Test|Operations|Business|Research)?\s*(?:Engineer|Developer|Analyst|Manager|Consultant|Coordinator|Specialist|Director|Designer|Architect|Intern|Administrator|Officer|Executive|Representative|Associate|Lead|Scientist)\b`)
	expCompRe  = regexp.MustCompile(`(?i)\b[A-Z][A-Za-z0-9\s,\.&'-]+(?:Inc|LLC|Ltd|Corporation|Corp|Company|Co|Group|GmbH)?\b`)

	expActionVerbRe   = regexp.MustCompile(`(?i)\b(?:developed|managed|led|built|created|designed|implemented|worked|responsible|coordinated|analyzed|maintained|improved|delivered|automated|launched|supported)\b`)
	expContactEmailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	expLinkedInRe     = regexp.MustCompile(`(?i)linkedin\.com`)
)

// expEducationKeywordRes 用于识别误入经历条目的教育内容
var expEducationKeywordRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bEDUCATION\b`),
	regexp.MustCompile(`(?i)\bDEGREE\b`),
	regexp.MustCompile(`(?i)\bB\.?S\.?\b`),
	regexp.MustCompile(`(?i)\bB\.?A\.?\b`),
	regexp.MustCompile(`(?i)\bM\.?S\.?\b`),
	regexp.MustCompile(`(?i)\bM\.?A\.?\b`),
	regexp.MustCompile(`(?i)\bPh\.?D\.?\b`),
	regexp.MustCompile(`(?i)\bBachelor(?:'?s)?\b`),
	regexp.MustCompile(`(?i)\bMaster(?:'?s)?\b`),
	regexp.MustCompile(`(?i)\bDoctorate\b`),
	regexp.MustCompile(`(?i)\bUniversity\b`),
	regexp.MustCompile(`(?i)\bCollege\b`),
	regexp.MustCompile(`(?i)\bInstitute\b`),
	regexp.MustCompile(`(?i)\bSchool\b`),
	regexp.MustCompile(`(?i)\bAcademic\b`),
	regexp.MustCompile(`(?i)\bGPA\b`),
	regexp.MustCompile(`(?i)\bCourse(?:work)?\b`),
	regexp.MustCompile(`(?i)\bMajor\b`),
	regexp.MustCompile(`(?i)\bMinor\b`),
	regexp.MustCompile(`(?i)\bGraduate[d]?\b`),
	regexp.MustCompile(`(?i)\bClass of\b`),
	regexp.MustCompile(`(?i)\bCommencement\b`),
}

// ExperienceExtractor 工作经历抽取器
type ExperienceExtractor struct{}

// NewExperienceExtractor 构造工作经历抽取器
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

// HasExperienceSection 判断文本是否包含工作经历章节
func (e *ExperienceExtractor) HasExperienceSection(text string) bool {
	for _, re := range experienceHeaderRes {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Extract 抽取结构化的工作经历条目，没有经历章节时返回空切片
func (e *ExperienceExtractor) Extract(text string) []types.ExperienceEntry {
	section := e.extractSection(text)
	if section == "" {
		return []types.ExperienceEntry{}
	}

	raw := e.parseEntries(section)
	if len(raw) == 0 {
		return []types.ExperienceEntry{}
	}

	raw = filterExperienceEntries(raw)

	var cleaned []string
	for _, entry := range raw {
		if !containsEducationContent(entry) {
			cleaned = append(cleaned, entry)
			continue
		}
		// 出现教育内容时截断到教育内容之前
		if truncated := cutOffAtEducation(entry); truncated != "" {
			cleaned = append(cleaned, truncated)
		}
	}

	entries := make([]types.ExperienceEntry, 0, len(cleaned))
	for _, entry := range cleaned {
		entries = append(entries, structureEntry(entry))
	}
	return entries
}

// extractSection 定位工作经历章节正文
// 定位前先折叠空行，章节在下一个已知标题处结束
func (e *ExperienceExtractor) extractSection(text string) string {
	text = CollapseNewlines(text)

	startIdx := -1
	for _, re := range experienceHeaderRes {
		if loc := re.FindStringIndex(text); loc != nil {
			if startIdx == -1 || loc[0] < startIdx {
				startIdx = loc[1]
			}
		}
	}
	if startIdx == -1 {
		return ""
	}

	endIdx := len(text)
	rest := text[startIdx:]
	for _, re := range experienceEndRes {
		if loc := re.FindStringIndex(rest); loc != nil {
			if candidate := startIdx + loc[0]; candidate < endIdx {
				endIdx = candidate
			}
		}
	}

	return strings.TrimSpace(text[startIdx:endIdx])
}

// parseEntries 将章节正文切分为独立的经历条目
func (e *ExperienceExtractor) parseEntries(section string) []string {
	if section == "" {
		return nil
	}

	// 先尝试按空行切分
	if parts := splitBlankLines(section); len(parts) > 1 {
		return parts
	}

	// 再按"日期+职位/公司"的条目首行切分
	lines := strings.Split(section, "\n")
	var current []string
	var all []string

	for _, line := range lines {
		hasDate := expDateRe.MatchString(line)
		hasJob := expTitleRe.MatchString(line)
		hasCompany := expCompRe.MatchString(line)
		trimmed := strings.TrimSpace(line)
		isBullet := strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "*")

		if hasDate && (hasJob || hasCompany) && !isBullet {
			if len(current) > 0 {
				all = append(all, strings.Join(current, "\n"))
			}
			current = []string{line}
		} else if trimmed != "" {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		all = append(all, strings.Join(current, "\n"))
	}

	if len(all) > 1 {
		trimAll(all)
		return all
	}
	return []string{strings.TrimSpace(section)}
}

func trimAll(entries []string) {
	for i := range entries {
		entries[i] = strings.TrimSpace(entries[i])
	}
}

// filterExperienceEntries 丢弃既无时间、职位也无动作动词线索的条目，
// 以及被误切进来的联系方式块
func filterExperienceEntries(entries []string) []string {
	var kept []string
	for _, entry := range entries {
		hasCue := expDateRe.MatchString(entry) ||
			expTitleRe.MatchString(entry) ||
			expActionVerbRe.MatchString(entry)
		if !hasCue {
			continue
		}
		looksLikeContact := (expContactEmailRe.MatchString(entry) || expLinkedInRe.MatchString(entry)) &&
			!expDateRe.MatchString(entry) && !expTitleRe.MatchString(entry)
		if looksLikeContact {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

func containsEducationContent(text string) bool {
	return matchesAny(text, expEducationKeywordRes)
}

// cutOffAtEducation 在教育内容出现的行之前截断
func cutOffAtEducation(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if matchesAny(line, expEducationKeywordRes) {
			if i == 0 {
				return ""
			}
			return strings.TrimSpace(strings.Join(lines[:i], "\n"))
		}
	}
	return text
}

// structureEntry 从条目文本中拆出公司、职位、时间和描述
// 首行承载头部信息，其余行作为描述
func structureEntry(raw string) types.ExperienceEntry {
	lines := strings.Split(raw, "\n")
	head := strings.TrimSpace(lines[0])

	entry := types.ExperienceEntry{}

	if m := expDateRe.FindString(head); m != "" {
		entry.Duration = strings.TrimSpace(m)
	}
	headWithoutDate := head
	if entry.Duration != "" {
		headWithoutDate = strings.TrimSpace(strings.Replace(head, entry.Duration, "", 1))
		headWithoutDate = strings.Trim(headWithoutDate, " \t,|-–—")
	}

	if m := expTitleRe.FindString(headWithoutDate); m != "" {
		entry.Role = strings.TrimSpace(m)
	}

	remainder := headWithoutDate
	if entry.Role != "" {
		remainder = strings.TrimSpace(strings.Replace(remainder, entry.Role, "", 1))
		remainder = strings.Trim(remainder, " \t,|-–—@")
	}
	if remainder != "" && expCompRe.MatchString(remainder) {
		entry.Company = remainder
	}

	if len(lines) > 1 {
		var desc []string
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			if line != "" {
				desc = append(desc, line)
			}
		}
		entry.Description = strings.Join(desc, "\n")
	}

	var parts []string
	for _, p := range []string{entry.Company, entry.Role, entry.Duration} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		parts = []string{head}
	}
	entry.Display = strings.Join(parts, " | ")

	return entry
}
