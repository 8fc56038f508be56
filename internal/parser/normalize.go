package parser

import (
	"regexp"
	"strings"
)

var (
	excessBlankLinesRe = regexp.MustCompile(`\n{4,}`)
	allNewlineRunsRe   = regexp.MustCompile(`\n+`)
)

// NormalizeText 统一换行符并剔除BOM，最多保留两个连续空行
// 空行是章节边界检测的重要信号，这里不做激进的折叠
func NormalizeText(text string) string {
	text = strings.TrimPrefix(text, "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = excessBlankLinesRe.ReplaceAllString(text, "\n\n\n")
	return text
}

// CollapseNewlines 将所有连续换行折叠为单个换行并去除首尾空白
// 工作经历抽取在定位章节前使用这种更紧凑的形式
func CollapseNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = allNewlineRunsRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// NonEmptyLines 返回去除首尾空白后的非空行
func NonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
