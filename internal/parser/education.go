package parser

import (
	"regexp"
	"strings"
)

// educationStartRes 教育章节标题模式，按优先级排列
var educationStartRes = []*regexp.Regexp{
	regexp.MustCompile(`(?im)EDUCATION\s*:?$`),
	regexp.MustCompile(`(?im)EDUCATION\s*:?`),
	regexp.MustCompile(`(?im)EDUCATION\b`),
	regexp.MustCompile(`(?im)ACADEMIC BACKGROUND\s*:?`),
	regexp.MustCompile(`(?im)QUALIFICATIONS?\s*:?`),
	regexp.MustCompile(`(?im)ACADEMIC\s*RECORD\b`),
	regexp.MustCompile(`(?im)Education\s*Details\b`),
	regexp.MustCompile(`(?im)Education\s*background\b`),
}

// educationDegreeRes 没有标题时用来定位教育内容的学历关键词
var educationDegreeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)B\.E\.?|B\.Tech\.?|M\.Tech\.?|Bachelor of Engineering|Bachelor of Technology`),
	regexp.MustCompile(`(?i)SSLC|SSC|CBSE|ICSE|Higher Secondary|Pre-University`),
	regexp.MustCompile(`(?i)CGPA|Cumulative|Grade|Percentage`),
}

// educationNextSectionRes 教育章节之后可能出现的标题
var educationNextSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^\s*(SKILLS|TECHNICAL SKILLS|PROJECTS|INTERNSHIP|INTERNSHIPS|EXPERIENCE|WORK EXPERIENCE|` +
		`ORGANIZATIONS|CERTIFICATION|CERTIFICATIONS|PUBLICATIONS|ACHIEVEMENTS|LANGUAGES|SUMMARY|` +
		`COURSES|COURSEWORK|AREA OF INTERESTS|PRESENTATIONS|TECH(NICAL)?\s*SKILLS?|DECLARATION|` +
		`PROFESSIONAL EXPERIENCE|EXTRACURRICULAR|LEADERSHIP|VOLUNTEER|AWARDS|WORKSHOPS?|` +
		`PERSONAL DETAILS|KEY SKILLS|CAREER OBJECTIVE|HARD SKILL|LANGUAGES KNOWN)\s*:?$`),
	regexp.MustCompile(`(?im)^(SKILLS|TECHNICAL SKILLS|PROJECTS|INTERNSHIP|INTERNSHIPS|EXPERIENCE|WORK EXPERIENCE|` +
		`ORGANIZATIONS|CERTIFICATION|CERTIFICATIONS|PUBLICATIONS|ACHIEVEMENTS|LANGUAGES|SUMMARY|` +
		`COURSES|COURSEWORK|AREA OF INTERESTS|PRESENTATIONS|TECH(NICAL)?\s*SKILLS?|DECLARATION|` +
		`PROFESSIONAL EXPERIENCE|EXTRACURRICULAR|LEADERSHIP|VOLUNTEER|AWARDS|WORKSHOPS?|` +
		`PERSONAL DETAILS|KEY SKILLS|CAREER OBJECTIVE|HARD SKILL|LANGUAGES KNOWN)\s*:?`),
	regexp.MustCompile(`(?im)^\s*COURSEWORK\s*/\s*SKILLS`),
	regexp.MustCompile(`(?im)MY CONTACT`),
}

// educationKeywords 校验教育条目的关键词
var educationKeywords = []string{
	"B.E", "B.Tech", "M.Tech", "Bachelor", "Master", "Ph.D", "Degree",
	"University", "Institute", "College", "School", "GPA", "CGPA",
	"Engineering", "Sciences", "Arts", "Commerce", "Diploma", "H.S.C", "S.S.C",
	"Secondary", "HSC", "SSLC", "Class 12", "Class 10", "High School",
	"ICSE", "CBSE", "State Board", "Percentage", "Sr. Secondary", "Grade",
	"Pre-University Course", "Cumulative", "Pass percentage",
}

var educationKeywordRes = buildKeywordRes(educationKeywords)

func buildKeywordRes(keywords []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		res = append(res, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(kw)+`\b`))
	}
	return res
}

var (
	visualBreakRes = []*regexp.Regexp{
		regexp.MustCompile(`\n\s*\n\s*\n`), // 连续空行
		regexp.MustCompile(`\n\s*-{3,}`),   // 横线分隔
		regexp.MustCompile(`\n\s*_{3,}`),   // 下划线分隔
	}
	eduTimelineRe = regexp.MustCompile(`(?i)(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\s*(-|–)\s*`)

	eduEntryMarkerRes = []*regexp.Regexp{
		regexp.MustCompile(`^\s*•`),
		regexp.MustCompile(`^\s*-`),
		regexp.MustCompile(`^\s*\*`),
		regexp.MustCompile(`^\s*\d+\.`),
		regexp.MustCompile(`^[A-Za-z\s]+ — `),
		regexp.MustCompile(`^[A-Za-z\s]+ - `),
	}
	eduDegreeLineRes = buildDegreeLineRes()
	yearRangeRe      = regexp.MustCompile(`(19|20)\d{2}\s*[-–—]\s*((19|20)\d{2}|present|current|ongoing)`)
	universityRe     = regexp.MustCompile(`(?i)(university|college|institute|school)`)
	percentageCgpaRe = regexp.MustCompile(`(?i)percentage|cgpa`)

	// structuredEduRe 识别"学位\n院校\n起止时间"的三行结构
	structuredEduGateRe = regexp.MustCompile(`(?is)(B\.E|B\.Tech|M\.Tech|Bachelor|Master|Diploma).*(19|20)\d{2}\s*-\s*(19|20)\d{2}`)
	structuredEduRe     = regexp.MustCompile(`(?m)([A-Za-z\. &]+)\n([A-Za-z\d ]+)\n((?:January|February|March|April|May|June|July|August|September|October|November|December)?\s*\d{4}\s*-\s*(?:January|February|March|April|May|June|July|August|September|October|November|December)?\s*\d{4})`)
	eduScoreRe          = regexp.MustCompile(`(?i)(CGPA|Percentage|Pass percentage)[^\d]*([\d\.]+)(?:/(\d+))?`)
	cgpaPresentRe       = regexp.MustCompile(`(?i)CGPA|Percentage`)
)

func buildDegreeLineRes() []*regexp.Regexp {
	keywords := []string{"Bachelor", "Master", "Ph.D", "B.E", "B.Tech", "M.Tech", "HSC", "SSLC", "Higher Secondary"}
	res := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		res = append(res, regexp.MustCompile(`(?i)^\s*`+regexp.QuoteMeta(kw)+`\b`))
	}
	return res
}

// EducationExtractor 教育经历抽取器
type EducationExtractor struct{}

// NewEducationExtractor 构造教育经历抽取器
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Extract 从简历文本中抽取教育条目
// 先定位章节，再逐级尝试更宽松的条目切分方式，最后对结果做关键词校验
func (e *EducationExtractor) Extract(text string) []string {
	sectionStart := e.findSectionStart(text)
	if sectionStart < 0 {
		return []string{}
	}

	section := e.cropSection(text[sectionStart:])
	if section == "" {
		return []string{}
	}

	entries := e.splitEntries(section)

	validated := e.validateEntries(entries)
	if len(validated) == 0 && section != "" {
		validated = e.reconstructFromKeywords(section)
	}

	if len(validated) > 0 {
		return validated
	}
	return entries
}

// findSectionStart 返回教育内容的起始偏移，找不到时返回-1
func (e *EducationExtractor) findSectionStart(text string) int {
	for _, re := range educationStartRes {
		if loc := re.FindStringIndex(text); loc != nil {
			return loc[1]
		}
	}

	// 没有明确标题时，退回到第一个学历关键词所在行的行首
	for _, re := range educationDegreeRes {
		if loc := re.FindStringIndex(text); loc != nil {
			lineStart := strings.LastIndex(text[:loc[0]], "\n")
			if lineStart == -1 {
				return 0
			}
			return lineStart + 1
		}
	}
	return -1
}

// cropSection 确定教育章节的结束位置
func (e *EducationExtractor) cropSection(rest string) string {
	end := len(rest)
	found := false
	for _, re := range educationNextSectionRes {
		if loc := re.FindStringIndex(rest); loc != nil && loc[0] < end {
			end = loc[0]
			found = true
		}
	}
	if found {
		return strings.TrimSpace(rest[:end])
	}

	// 没有后续标题时依次尝试：视觉分隔、时间线窗口、行数上限
	minBreak := len(rest)
	for _, re := range visualBreakRes {
		if loc := re.FindStringIndex(rest); loc != nil && loc[0] < minBreak {
			minBreak = loc[0]
		}
	}
	if minBreak < len(rest) {
		return strings.TrimSpace(rest[:minBreak])
	}

	if loc := eduTimelineRe.FindStringIndex(rest); loc != nil {
		end := strings.Index(rest[loc[0]:], "\n\n")
		if end == -1 {
			end = loc[0] + 250
			if end > len(rest) {
				end = len(rest)
			}
		} else {
			end += loc[0]
		}
		return strings.TrimSpace(rest[:end])
	}

	lines := strings.Split(rest, "\n")
	maxLines := 20
	if len(lines) < maxLines {
		maxLines = len(lines)
	}
	var kept []string
	blankCount := 0
	for i := 0; i < maxLines; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			blankCount++
			if blankCount >= 2 {
				break
			}
		} else {
			blankCount = 0
		}
		kept = append(kept, lines[i])
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// splitEntries 把章节正文切分为教育条目
func (e *EducationExtractor) splitEntries(section string) []string {
	if entries := e.structuredEntries(section); len(entries) > 0 {
		return entries
	}

	if entries := e.markerEntries(section); len(entries) > 0 {
		return entries
	}

	// 按关键词挑出含教育信息的行
	var entries []string
	for _, line := range strings.Split(section, "\n") {
		if matchesAny(line, educationKeywordRes) {
			entries = append(entries, strings.TrimSpace(line))
		}
	}
	if len(entries) > 0 {
		return entries
	}

	// 按空行分段
	for _, para := range splitBlankLines(section) {
		if matchesAny(para, educationKeywordRes) {
			entries = append(entries, strings.TrimSpace(strings.ReplaceAll(para, "\n", " ")))
		}
	}
	if len(entries) > 0 {
		return entries
	}

	return []string{strings.TrimSpace(strings.ReplaceAll(section, "\n", " "))}
}

// structuredEntries 识别"学位/院校/起止时间"的结构化排版
func (e *EducationExtractor) structuredEntries(section string) []string {
	if !structuredEduGateRe.MatchString(section) {
		return nil
	}

	matches := structuredEduRe.FindAllStringSubmatch(section, -1)
	if len(matches) == 0 {
		return nil
	}

	var entries []string
	for _, m := range matches {
		degree, institution, dateRange := strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
		entry := degree + " from " + institution + ", " + dateRange
		if cgpaPresentRe.MatchString(section) {
			if sm := eduScoreRe.FindStringSubmatch(section); sm != nil {
				entry += " with " + sm[1] + " of " + sm[2]
				if sm[3] != "" {
					entry += "/" + sm[3]
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// markerEntries 基于条目标记、学历关键词、年份区间和缩进变化切分
func (e *EducationExtractor) markerEntries(section string) []string {
	lines := strings.Split(section, "\n")
	var entries []string
	var current []string
	previousIndent := -1

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))

		newEntry := false
		switch {
		case matchesAny(line, eduEntryMarkerRes):
			newEntry = true
		case matchesAny(line, eduDegreeLineRes):
			newEntry = true
		case yearRangeRe.MatchString(line):
			newEntry = true
		case previousIndent >= 0 && indent <= previousIndent && i > 0 && containsAnyKeyword(line, educationKeywords):
			newEntry = true
		}

		if newEntry && len(current) > 0 {
			if entry := joinTrimmed(current); entry != "" {
				entries = append(entries, entry)
			}
			current = current[:0]
		}

		current = append(current, line)
		previousIndent = indent
	}

	if len(current) > 0 {
		if entry := joinTrimmed(current); entry != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

// validateEntries 保留含教育特征的条目
func (e *EducationExtractor) validateEntries(entries []string) []string {
	var validated []string
	for _, entry := range entries {
		if matchesAny(entry, educationKeywordRes) ||
			universityRe.MatchString(entry) ||
			yearRangeRe.MatchString(entry) ||
			percentageCgpaRe.MatchString(entry) {
			validated = append(validated, entry)
		}
	}
	return validated
}

// reconstructFromKeywords 校验失败时根据关键词行重组条目
func (e *EducationExtractor) reconstructFromKeywords(section string) []string {
	lines := NonEmptyLines(section)
	if len(lines) == 0 {
		return nil
	}

	var constructed []string
	var current []string
	for _, line := range lines {
		if containsAnyKeyword(line, educationKeywords) {
			if len(current) > 0 && containsAnyKeyword(strings.Join(current, " "), educationKeywords) {
				constructed = append(constructed, strings.Join(current, " "))
				current = nil
			}
			current = append(current, line)
		} else if len(current) > 0 {
			current = append(current, line)
		}
	}
	if len(current) > 0 {
		constructed = append(constructed, strings.Join(current, " "))
	}
	return constructed
}

func matchesAny(s string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func containsAnyKeyword(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func joinTrimmed(lines []string) string {
	trimmed := make([]string, 0, len(lines))
	for _, l := range lines {
		trimmed = append(trimmed, strings.TrimSpace(l))
	}
	return strings.TrimSpace(strings.Join(trimmed, " "))
}

var blankLineSplitRe = regexp.MustCompile(`\n\s*\n`)

func splitBlankLines(s string) []string {
	var out []string
	for _, part := range blankLineSplitRe.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
