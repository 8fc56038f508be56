package parser

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"resume-ats-go/internal/types"
)

// nameOmitWords 文件名中需要剔除的常见噪声词
var nameOmitWords = []string{
	"resume", "updated", "update", "profile", "cv", "latest", "final", "new", "pdf", "uploaded",
	"Developer", "Fresher", "Engineer", "Python", "Java",
}

var (
	nameOmitRes     = buildNameOmitRes()
	standaloneNumRe = regexp.MustCompile(`\b\d+\b`)
	nameSymbolRe    = regexp.MustCompile(`[-()]`)
	multiSpaceRe    = regexp.MustCompile(`\s+`)

	emailRe  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	wwwRe    = regexp.MustCompile(`www\.`)
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\d{10,}`),
	}
	// 候选国际号码：带+前缀的数字序列，交由号码库验证
	phoneCandidateRe = regexp.MustCompile(`\+\d[\d\s().\-/]{5,}\d`)
)

func buildNameOmitRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(nameOmitWords))
	for _, word := range nameOmitWords {
		res = append(res, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return res
}

// ContactExtractor 抽取姓名、邮箱、电话和所在地
type ContactExtractor struct {
	gazetteer *Gazetteer
	matcher   *PhoneMatcher
}

// NewContactExtractor 构造联系方式抽取器
func NewContactExtractor(g *Gazetteer) *ContactExtractor {
	return &ContactExtractor{
		gazetteer: g,
		matcher:   NewPhoneMatcher(),
	}
}

// Extract 从简历文本和文件名中抽取联系方式
// 姓名来自文件名，所在地取文本中第一个命中词典的城市
func (e *ContactExtractor) Extract(text, filename string) types.ContactDetails {
	result := types.ContactDetails{
		Name:     types.NotFound,
		Email:    types.NotFound,
		Phone:    types.NotFound,
		Location: types.NotFound,
	}

	if name := NameFromFilename(filename); name != "" {
		result.Name = name
	}

	text = strings.ReplaceAll(text, "\r", "\n")
	lines := NonEmptyLines(text)

	// 邮箱：先在紧贴文本的www.前补一个空格，避免个人主页黏连到邮箱上
	searchText := insertSpaceBeforeWWW(text)
	if email := emailRe.FindString(searchText); email != "" {
		result.Email = email
	}

	for _, re := range phoneRes {
		if phone := re.FindString(searchText); phone != "" {
			result.Phone = phone
			break
		}
	}
	if result.Phone == types.NotFound {
		if phone, ok := e.matcher.FirstValid(searchText); ok {
			result.Phone = phone
		}
	}

	// 逐行扫描，第一个命中的城市决定所在地
	for _, line := range lines {
		if loc, ok := e.gazetteer.LookupLine(line); ok {
			result.Location = loc
			break
		}
	}

	return result
}

// NameFromFilename 从文件名推导姓名
// 去掉扩展名和噪声词，其余部分按空格整理并转为首字母大写
func NameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	name := strings.ReplaceAll(base, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	for _, re := range nameOmitRes {
		name = re.ReplaceAllString(name, "")
	}

	name = standaloneNumRe.ReplaceAllString(name, "")
	name = nameSymbolRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(multiSpaceRe.ReplaceAllString(name, " "))
	return titleCase(name)
}

// insertSpaceBeforeWWW 在紧贴前文的www.前插入空格
func insertSpaceBeforeWWW(text string) string {
	var b strings.Builder
	last := 0
	for _, loc := range wwwRe.FindAllStringIndex(text, -1) {
		if loc[0] > 0 {
			prev := text[loc[0]-1]
			if prev != ' ' && prev != '\t' && prev != '\n' && prev != '\r' {
				b.WriteString(text[last:loc[0]])
				b.WriteByte(' ')
				last = loc[0]
			}
		}
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// PhoneMatcher 基于号码库的兜底电话匹配器
// 只接受能通过完整验证的国际格式号码
type PhoneMatcher struct{}

// NewPhoneMatcher 构造电话匹配器
func NewPhoneMatcher() *PhoneMatcher {
	return &PhoneMatcher{}
}

// FirstValid 返回文本中第一个通过验证的号码，格式化为国际格式
func (m *PhoneMatcher) FirstValid(text string) (string, bool) {
	for _, candidate := range phoneCandidateRe.FindAllString(text, -1) {
		num, err := phonenumbers.Parse(candidate, "")
		if err != nil {
			continue
		}
		if !phonenumbers.IsValidNumber(num) {
			continue
		}
		return phonenumbers.Format(num, phonenumbers.INTERNATIONAL), true
	}
	return "", false
}
