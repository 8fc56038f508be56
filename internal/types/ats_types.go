package types

// NotFound 缺失字段的哨兵值。缺失字段不是错误，管线对结构合法的文档总是成功返回。
const NotFound = "Not Found"

// ContactDetails 联系方式，每个字段要么是具体值要么是NotFound
type ContactDetails struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Phone    string `json:"Phone"`
	Location string `json:"Location"`
}

// ExperienceEntry 一段工作经历的结构化字段
// Display 是 company | role | duration 组合后的展示串，空字段省略
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
	Display     string `json:"display"`
}

// ParsedResume 单份简历的全部抽取结果，每次管线调用新建，用完即弃
type ParsedResume struct {
	ContactDetails ContactDetails    `json:"contact_details"`
	Education      []string          `json:"education"`
	Experience     []ExperienceEntry `json:"experience"`
	Skills         []string          `json:"skills"`
	Projects       []string          `json:"projects"`
	Certifications []string          `json:"certifications"`
}

// CategoryScore 单项类别得分与反馈
type CategoryScore struct {
	Score    int    `json:"score"`
	Max      int    `json:"max"`
	Feedback string `json:"feedback,omitempty"`
}

// ATSScore 综合评分结果，Score恒在[0,100]内
type ATSScore struct {
	Score          int                      `json:"score"`
	MaxScore       int                      `json:"max_score"`
	Percentage     string                   `json:"percentage"`
	DetailedScores map[string]CategoryScore `json:"detailed_scores,omitempty"`
	Rating         string                   `json:"rating"`
}

// ResumeResult 单份文档的完整处理结果（对外响应的单元）
type ResumeResult struct {
	Filename   string        `json:"filename"`
	ParsedData *ParsedResume `json:"parsed_data"`
	ATSScore   *ATSScore     `json:"ats_score"`
}
