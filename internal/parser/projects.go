package parser

import (
	"regexp"
	"strings"
)

// projectHeaders 项目章节的候选标题
var projectHeaders = []string{
	"Projects",
	"PROJECTS",
	"Project",
	"Project Details",
	"Professional Projects",
	"Academic Projects",
	"Project Experience",
	"Personal Projects",
	"Key Projects",
}

// projectTerminators 标记项目章节结束的标题
var projectTerminators = []string{
	"Summary",
	"Objective",
	"Education",
	"Work Experience",
	"Professional Experience",
	"Skills",
	"Technical Skills",
	"Certifications",
	"Certificates",
	"Awards",
	"Publications",
	"References",
	"Experience",
	"Internships",
	"Achievements",
	"Hobbies",
	"Certification courses",
	"courses",
	"Presentations",
	"Declaration",
	"Extra curricular activities",
	"Education background",
	"Introduction",
	"Workshops",
	"Personal profile",
}

var projectBulletSplitRe = regexp.MustCompile(`(?m)^[•\-\*]\s+`)

// ProjectsExtractor 项目经历抽取器
type ProjectsExtractor struct{}

// NewProjectsExtractor 构造项目经历抽取器
func NewProjectsExtractor() *ProjectsExtractor {
	return &ProjectsExtractor{}
}

// Extract 抽取项目条目，保留标题下的完整描述
// 依次尝试空行切分和列表符切分，都不适用时整段返回
func (e *ProjectsExtractor) Extract(text string) []string {
	lines := strings.Split(text, "\n")

	startLine := -1
	for i, line := range lines {
		if IsHeaderLine(line, projectHeaders) {
			startLine = i
			break
		}
	}
	if startLine == -1 {
		return []string{}
	}

	endLine := len(lines)
	for j := startLine + 1; j < len(lines); j++ {
		if IsHeaderLine(lines[j], projectTerminators) {
			endLine = j
			break
		}
	}

	section := strings.TrimSpace(strings.Join(lines[startLine+1:endLine], "\n"))
	if section == "" {
		return []string{}
	}

	if entries := splitBlankLines(section); len(entries) > 1 {
		return entries
	}

	parts := projectBulletSplitRe.Split(section, -1)
	if len(parts) > 1 {
		var entries []string
		for _, part := range parts {
			part = strings.TrimSpace(part)
			if part != "" {
				entries = append(entries, part)
			}
		}
		if len(entries) > 0 {
			return entries
		}
	}

	return []string{section}
}
