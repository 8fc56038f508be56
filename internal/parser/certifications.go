package parser

import (
	"regexp"
	"strings"
)

// certificationHeaders 证书章节的候选标题
var certificationHeaders = []string{
	"Certifications", "Certificate", "Certificates", "CERTIFICATES", "Courses", "CERTIFICATION COURSES",
	"Professional Certifications", "Licenses", "Certification", "Internships",
	"Training and Certifications", "Professional Development", "CERTIFICATIONS",
	"CERTIFICATION", "Certified In", "Certification and Achievements", "Internships Certifications",
}

// certIntroKeywords 判断首个片段是否为证书内容而非引言
var certIntroKeywords = []string{"certif", "train", "course", "program", "diploma"}

var (
	certBulletRe   = regexp.MustCompile(`(?m)^[\s]*[•\-\*][\s]+`)
	certNumberedRe = regexp.MustCompile(`(?m)^[\s]*\d+\.[\s]+`)
	certInlineRes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)certified in`),
		regexp.MustCompile(`(?i)certification in`),
		regexp.MustCompile(`(?i)certificate in`),
		regexp.MustCompile(`(?i)certified as`),
	}
	certContextEndRe = regexp.MustCompile(`(?:\n\s*\n|\.\s+[A-Z])`)
)

// CertificationsExtractor 证书抽取器
type CertificationsExtractor struct {
	segmenter *Segmenter
}

// NewCertificationsExtractor 构造证书抽取器
func NewCertificationsExtractor(segmenter *Segmenter) *CertificationsExtractor {
	return &CertificationsExtractor{segmenter: segmenter}
}

// Extract 抽取证书条目
// 先定位证书章节并按列表结构切分；没有章节时在全文检索证书关键词并截取上下文
func (e *CertificationsExtractor) Extract(text string) []string {
	section, _ := e.segmenter.ExtractSection(text, certificationHeaders)

	if section == "" {
		if entries := e.inlineMentions(text); len(entries) > 0 {
			return entries
		}
	}

	return parseCertificationEntries(section)
}

// inlineMentions 在全文中查找"certified in"等短语并截取前后文
func (e *CertificationsExtractor) inlineMentions(text string) []string {
	for _, re := range certInlineRes {
		matches := re.FindAllStringIndex(text, -1)
		if len(matches) == 0 {
			continue
		}
		var certInfo []string
		for _, loc := range matches {
			start := loc[0] - 50
			if start < 0 {
				start = 0
			}
			end := loc[1] + 100
			if end > len(text) {
				end = len(text)
			}
			context := text[start:end]
			if natural := certContextEndRe.FindStringIndex(context); natural != nil {
				context = context[:natural[1]]
			}
			certInfo = append(certInfo, strings.TrimSpace(context))
		}
		if len(certInfo) > 0 {
			return certInfo
		}
	}
	return nil
}

// parseCertificationEntries 将证书章节切分为条目
func parseCertificationEntries(section string) []string {
	if section == "" {
		return []string{}
	}

	if certBulletRe.MatchString(section) {
		return dropIntro(splitNonEmpty(certBulletRe, section))
	}
	if certNumberedRe.MatchString(section) {
		return dropIntro(splitNonEmpty(certNumberedRe, section))
	}

	entries := splitBlankLines(section)
	if entries == nil {
		return []string{}
	}
	return entries
}

func splitNonEmpty(re *regexp.Regexp, s string) []string {
	var out []string
	for _, part := range re.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// dropIntro 丢弃列表前的引言文字
func dropIntro(entries []string) []string {
	if len(entries) > 1 {
		first := strings.ToLower(entries[0])
		isCert := false
		for _, kw := range certIntroKeywords {
			if strings.Contains(first, kw) {
				isCert = true
				break
			}
		}
		if !isCert {
			entries = entries[1:]
		}
	}
	if entries == nil {
		return []string{}
	}
	return entries
}
