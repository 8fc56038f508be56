package constants

import "time"

// 评分相关常量
const (
	// TotalMaxScore 综合评分满分
	TotalMaxScore = 100

	// ContactMaxScore 联系方式类别满分
	ContactMaxScore = 20
	// EducationMaxScore 教育类别满分
	EducationMaxScore = 25
	// ExperienceMaxScore 工作经历类别满分
	ExperienceMaxScore = 35
	// SkillsMaxScore 技能类别满分
	SkillsMaxScore = 20
)

// 评分策略名称
const (
	ScoringStrategyWeighted = "weighted"
	ScoringStrategySimple   = "simple"
)

// 上传相关常量
const (
	// FormFieldFile multipart表单中简历文件的字段名
	FormFieldFile = "file"
	// AllowedFileExt 允许上传的文件扩展名
	AllowedFileExt = ".pdf"
	// MaxUploadSizeBytes 单个上传文件大小上限
	MaxUploadSizeBytes = 20 * 1024 * 1024
)

// 对象存储
const (
	// OriginalsBucket 原始PDF存储桶
	OriginalsBucket = "resume-originals"
	// ResultsBucket 解析结果JSON存储桶
	ResultsBucket = "resume-results"
)

// 消息队列
const (
	// ScoredExchange 评分完成事件交换机
	ScoredExchange = "resume.events"
	// ScoredRoutingKey 评分完成事件路由键
	ScoredRoutingKey = "resume.scored"
)

// 处理流程默认值
const (
	// DefaultPDFExtractTimeout PDF文本提取超时
	DefaultPDFExtractTimeout = 30 * time.Second
	// DefaultProcessTimeout 单份简历全流程超时
	DefaultProcessTimeout = 60 * time.Second
)

// ParserVersion 写入投递记录的解析器版本号
const ParserVersion = "1.0.0"

// 提交状态
const (
	StatusReceived  = "RECEIVED"
	StatusDuplicate = "DUPLICATE"
	StatusScored    = "SCORED"
	StatusFailed    = "FAILED"
)
