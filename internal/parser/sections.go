package parser

import (
	"regexp"
	"strings"
)

// allSectionHeaders 常见简历章节标题，用于判定当前章节在哪里结束
var allSectionHeaders = []string{
	"Objective", "Career Objective", "Professional Objective", "Carrer Objectives",
	"Summary", "Professional Summary", "Summary of Qualifications",
	"Profile", "Personal Profile", "Professional Profile",
	"Education", "Academic Background", "Educational Qualifications", "Educational Qualification", "Degrees", "Academic Achievements",
	"Experience", "Work Experience", "Professional Experience", "Employment History", "Work History", "Career History",
	"Internships", "Co-op Experience", "Volunteer Experience",
	"Skills", "Technical Skills", "Professional Skills", "Key Skills", "Core Competencies", "Areas of Expertise", "Proficiencies",
	"Languages", "Programming Languages", "Software Skills", "Tools and Technologies",
	"Certifications", "Licenses", "Professional Certifications", "Technical Certifications", "Training and Certifications", "Professional Development",
	"Courses", "Workshops", "Seminars", "Conferences",
	"Projects", "Academic Projects", "Research Projects", "Personal Projects", "Portfolio", "Project", "Achievements",
	"Awards", "Honors", "Scholarships",
	"Publications", "Patents", "Presentations",
	"Activities", "Extracurricular Activities", "Leadership", "Memberships", "Professional Affiliations",
	"Volunteer Work", "Community Service",
	"Interests", "Hobbies", "Personal Interests",
	"References", "Testimonials", "Recommendations",
	"Contact Information", "Personal Details", "About Me",
	"Declaration", "Additional Information", "Miscellaneous",
	"Organizations", "Enthusiastic",
}

// terminatorRes 每个通用章节标题对应的行首匹配正则，构建一次复用
var terminatorRes = buildTerminatorRes()

func buildTerminatorRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(allSectionHeaders))
	for _, header := range allSectionHeaders {
		res = append(res, regexp.MustCompile(`(?im)^`+regexp.QuoteMeta(header)+`[:\s]`))
	}
	return res
}

// Segmenter 基于标题行的章节定位器
type Segmenter struct{}

// NewSegmenter 构造章节定位器
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// ExtractSection 按候选标题提取章节内容
// 标题必须出现在行首，后跟冒号、空白或行尾；章节在下一个已知标题处结束
// 返回章节正文和章节结束位置，未找到时结束位置为-1
func (s *Segmenter) ExtractSection(text string, possibleHeaders []string) (string, int) {
	var escaped []string
	for _, header := range possibleHeaders {
		escaped = append(escaped, regexp.QuoteMeta(header))
	}
	pattern := regexp.MustCompile(`(?im)^(?:` + strings.Join(escaped, "|") + `)(?:[:\s]|$)`)

	loc := pattern.FindStringIndex(text)
	if loc == nil {
		return "", -1
	}
	startPos, headerEnd := loc[0], loc[1]

	// 在标题之后查找下一个已知章节标题，取最靠前的一个作为结束
	endPos := len(text)
	rest := text[startPos+1:]
	for _, re := range terminatorRes {
		if m := re.FindStringIndex(rest); m != nil {
			candidate := startPos + 1 + m[0]
			if candidate < endPos {
				endPos = candidate
			}
		}
	}

	if headerEnd > endPos {
		headerEnd = endPos
	}
	return strings.TrimSpace(text[headerEnd:endPos]), endPos
}

// IsHeaderLine 判断一行是否恰好是给定标题之一（允许后跟冒号）
func IsHeaderLine(line string, headers []string) bool {
	line = strings.ToLower(strings.TrimSpace(line))
	for _, header := range headers {
		h := strings.ToLower(header)
		if line == h || strings.HasPrefix(line, h+":") {
			return true
		}
	}
	return false
}
