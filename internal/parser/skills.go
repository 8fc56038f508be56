package parser

import (
	"regexp"
	"sort"
	"strings"
)

// skillCategories 预定义技能类别及关键词
var skillCategories = map[string][]string{
	"Programming Languages": {
		"python", "java", "c++", "c#", "javascript", "typescript",
		"ruby", "php", "swift", "kotlin", "go", "rust", "scala",
	},
	"Web Technologies": {
		"html", "css", "react", "angular", "vue", "django",
		"flask", "nodejs", "express", "spring", ".net", "asp.net",
	},
	"Databases": {
		"mysql", "postgresql", "mongodb", "sqlite", "oracle",
		"sql", "nosql", "redis", "cassandra", "power bi", "excel", "tableau",
	},
	"Cloud Platforms": {
		"aws", "azure", "google cloud", "heroku", "digital ocean",
		"amazon web services", "cloud computing",
	},
	"DevOps & Tools": {
		"docker", "kubernetes", "jenkins", "git", "github", "ms office",
		"gitlab", "ansible", "terraform", "ci/cd",
	},
	"Machine Learning & AI": {
		"tensorflow", "pytorch", "scikit-learn", "keras", "numpy", "pandas", "matlab & simulink",
		"machine learning", "deep learning", "nlp", "computer vision",
	},
	"Frameworks": {
		"spring boot", "django", "flask", "react", "angular",
		"vue", "laravel", "symfony", "express",
	},
}

// skillsSectionHeaders 技能章节的候选标题
var skillsSectionHeaders = []string{"Skills", "Technical Skills", "Competencies", "Expertise"}

// skillKeyword 一个技能关键词及其匹配正则
type skillKeyword struct {
	keyword string
	re      *regexp.Regexp
}

// skillKeywords 去重后的全量技能关键词，构建时编译匹配正则
var skillKeywords = buildSkillKeywords()

func buildSkillKeywords() []skillKeyword {
	seen := make(map[string]bool)
	// 按类别名称排序保证关键词顺序稳定
	categories := make([]string, 0, len(skillCategories))
	for name := range skillCategories {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	var out []skillKeyword
	for _, name := range categories {
		for _, kw := range skillCategories[name] {
			kw = strings.ToLower(kw)
			if seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, skillKeyword{
				keyword: kw,
				re:      regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`),
			})
		}
	}
	return out
}

// SkillsExtractor 技能抽取器，严格匹配预定义关键词
type SkillsExtractor struct {
	segmenter *Segmenter
}

// NewSkillsExtractor 构造技能抽取器
func NewSkillsExtractor(segmenter *Segmenter) *SkillsExtractor {
	return &SkillsExtractor{segmenter: segmenter}
}

// Extract 抽取命中的技能关键词，结果按字典序排列
// 优先在技能章节内匹配，章节无命中时回退到全文
func (e *SkillsExtractor) Extract(text string) []string {
	section, _ := e.segmenter.ExtractSection(text, skillsSectionHeaders)

	if section != "" {
		if skills := matchSkills(strings.ToLower(section)); len(skills) > 0 {
			return skills
		}
	}

	return matchSkills(strings.ToLower(text))
}

func matchSkills(lower string) []string {
	var skills []string
	for _, sk := range skillKeywords {
		if sk.re.MatchString(lower) {
			skills = append(skills, sk.keyword)
		}
	}
	sort.Strings(skills)
	if skills == nil {
		return []string{}
	}
	return skills
}
