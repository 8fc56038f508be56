package models

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// ResumeSubmission 简历投递记录，一次上传对应一行
type ResumeSubmission struct {
	SubmissionUUID      string         `gorm:"type:char(36);primaryKey" json:"submission_uuid"`
	SubmissionTimestamp time.Time      `gorm:"type:datetime(6);not null;index" json:"submission_timestamp"`
	SourceChannel       string         `gorm:"type:varchar(64)" json:"source_channel"`
	OriginalFilename    string         `gorm:"type:varchar(512);not null" json:"original_filename"`
	OriginalFilePathOSS string         `gorm:"type:varchar(1024)" json:"original_file_path_oss"`
	ResultPathOSS       string         `gorm:"type:varchar(1024)" json:"result_path_oss"`
	RawFileMD5          string         `gorm:"type:char(32);index:idx_raw_file_md5" json:"raw_file_md5"`
	ParsedDataJSON      datatypes.JSON `gorm:"type:json" json:"parsed_data_json"`
	ATSScoreJSON        datatypes.JSON `gorm:"type:json" json:"ats_score_json"`
	Score               int            `gorm:"type:int;default:0" json:"score"`
	Rating              string         `gorm:"type:varchar(32)" json:"rating"`
	ProcessingStatus    string         `gorm:"type:varchar(50);not null;default:'RECEIVED';index" json:"processing_status"`
	ParserVersion       string         `gorm:"type:varchar(50)" json:"parser_version"`
	ErrorMessage        string         `gorm:"type:text" json:"error_message,omitempty"`

	CreatedAt time.Time `gorm:"type:datetime(6);autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:datetime(6);autoUpdateTime" json:"updated_at"`
}

// TableName 指定表名
func (ResumeSubmission) TableName() string {
	return "resume_submissions"
}

// ToJSON 将任意可序列化对象转换为datatypes.JSON
func ToJSON(v interface{}) (datatypes.JSON, error) {
	if v == nil {
		return datatypes.JSON("null"), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("序列化为JSON失败: %w", err)
	}
	return datatypes.JSON(data), nil
}

// ToJSONString 将任意可序列化对象转换为JSON字符串，用于发件箱载荷
func ToJSONString(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("序列化为JSON字符串失败: %w", err)
	}
	return string(data), nil
}
