package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"resume-ats-go/internal/config"
	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/processor"
	"resume-ats-go/internal/storage"
	"resume-ats-go/internal/storage/models"
	"resume-ats-go/internal/types"
	"resume-ats-go/pkg/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ResumeHandler 简历处理器，协调解析评分流水线与各存储组件
type ResumeHandler struct {
	cfg      *config.Config
	storage  *storage.Storage
	pipeline *processor.Pipeline
	logger   zerolog.Logger
}

// NewResumeHandler 创建简历处理器。storage可以为nil，此时只做解析评分不做持久化。
func NewResumeHandler(cfg *config.Config, storageManager *storage.Storage, pipeline *processor.Pipeline) *ResumeHandler {
	return &ResumeHandler{
		cfg:      cfg,
		storage:  storageManager,
		pipeline: pipeline,
		logger:   log.With().Str("component", "resume_handler").Logger(),
	}
}

// ResumeScoredEvent 评分完成事件，经发件箱中继发布到消息代理
type ResumeScoredEvent struct {
	SubmissionUUID   string    `json:"submission_uuid"`
	OriginalFilename string    `json:"original_filename"`
	Score            int       `json:"score"`
	Rating           string    `json:"rating"`
	ScoredAt         time.Time `json:"scored_at"`
}

// ProcessUploadedFile 处理一份上传的简历文件：去重、解析评分、持久化、登记事件。
// 解析评分失败时返回错误，由调用方决定整批请求的成败。
func (h *ResumeHandler) ProcessUploadedFile(ctx context.Context, fileBytes []byte, filename string) (*types.ResumeResult, error) {
	fileMD5 := utils.CalculateMD5(fileBytes)

	// 先查去重缓存，重复文件直接返回已有结果
	if cached := h.lookupDuplicate(ctx, fileMD5, filename); cached != nil {
		return cached, nil
	}

	result, err := h.pipeline.ProcessPDF(ctx, fileBytes, filename)
	if err != nil {
		h.markFailed(ctx, fileMD5, filename, err)
		return nil, fmt.Errorf("处理简历 %s 失败: %w", filename, err)
	}

	h.persistResult(ctx, fileMD5, filename, fileBytes, result)
	return result, nil
}

// AnalyzeText 对纯文本做解析评分，不触发任何持久化
func (h *ResumeHandler) AnalyzeText(ctx context.Context, text, filename string) (*types.ResumeResult, error) {
	return h.pipeline.ParseText(ctx, text, filename)
}

// lookupDuplicate 检查文件MD5是否已处理过，命中时返回缓存的结果
func (h *ResumeHandler) lookupDuplicate(ctx context.Context, fileMD5, filename string) *types.ResumeResult {
	if h.storage == nil || h.storage.Redis == nil {
		return nil
	}

	exists, err := h.storage.Redis.CheckRawFileMD5Exists(ctx, fileMD5)
	if err != nil {
		h.logger.Warn().Err(err).Str("md5", fileMD5).Msg("查询文件MD5去重集合失败，按新文件处理")
		return nil
	}
	if !exists {
		return nil
	}

	submissionUUID, err := h.storage.Redis.GetSubmissionUUIDByMD5(ctx, fileMD5)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			h.logger.Warn().Err(err).Str("md5", fileMD5).Msg("查询MD5到UUID映射失败")
		}
		return nil
	}

	resultJSON, err := h.storage.Redis.GetCachedResumeResult(ctx, submissionUUID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			h.logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("读取缓存结果失败")
		}
		return nil
	}

	var result types.ResumeResult
	if err := json.Unmarshal(resultJSON, &result); err != nil {
		h.logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("反序列化缓存结果失败")
		return nil
	}

	h.logger.Info().
		Str("md5", fileMD5).
		Str("filename", filename).
		Str("submission_uuid", submissionUUID).
		Msg("检测到重复的文件，返回已有结果")
	return &result
}

// persistResult 将解析评分结果写入各存储组件。持久化失败只记录日志，
// 不影响同步返回给调用方的结果。
func (h *ResumeHandler) persistResult(ctx context.Context, fileMD5, filename string, fileBytes []byte, result *types.ResumeResult) {
	if h.storage == nil {
		return
	}

	submissionUUID := h.newSubmissionUUID()
	resultJSON, err := json.Marshal(result)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", filename).Msg("序列化解析结果失败，跳过持久化")
		return
	}

	var originalPath, resultPath string
	if h.storage.MinIO != nil {
		ext := filepath.Ext(filename)
		if ext == "" {
			ext = constants.AllowedFileExt
		}
		originalPath, err = h.storage.MinIO.UploadResumeFile(ctx, submissionUUID, ext, bytesReader(fileBytes), int64(len(fileBytes)))
		if err != nil {
			h.logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("上传原始简历到对象存储失败")
		}
		resultPath, err = h.storage.MinIO.UploadResultJSON(ctx, submissionUUID, resultJSON)
		if err != nil {
			h.logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("上传解析结果到对象存储失败")
		}
	}

	if h.storage.Redis != nil {
		if _, err := h.storage.Redis.AddRawFileMD5(ctx, fileMD5); err != nil {
			h.logger.Warn().Err(err).Str("md5", fileMD5).Msg("写入文件MD5去重集合失败")
		}
		if err := h.storage.Redis.SetMD5ToSubmissionUUID(ctx, fileMD5, submissionUUID); err != nil {
			h.logger.Warn().Err(err).Str("md5", fileMD5).Msg("写入MD5到UUID映射失败")
		}
		if err := h.storage.Redis.CacheResumeResult(ctx, submissionUUID, resultJSON, h.storage.Redis.GetMD5ExpireDuration()); err != nil {
			h.logger.Warn().Err(err).Str("submission_uuid", submissionUUID).Msg("缓存解析结果失败")
		}
	}

	if h.storage.MySQL != nil {
		h.saveSubmission(ctx, submissionUUID, fileMD5, filename, originalPath, resultPath, result)
	}
}

// saveSubmission 在同一事务中写入投递记录与评分完成事件
func (h *ResumeHandler) saveSubmission(ctx context.Context, submissionUUID, fileMD5, filename, originalPath, resultPath string, result *types.ResumeResult) {
	parsedJSON, err := models.ToJSON(result.ParsedData)
	if err != nil {
		h.logger.Warn().Err(err).Msg("序列化解析数据失败")
		parsedJSON = nil
	}
	scoreJSON, err := models.ToJSON(result.ATSScore)
	if err != nil {
		h.logger.Warn().Err(err).Msg("序列化评分数据失败")
		scoreJSON = nil
	}

	submission := &models.ResumeSubmission{
		SubmissionUUID:      submissionUUID,
		SubmissionTimestamp: time.Now(),
		SourceChannel:       "web_upload",
		OriginalFilename:    filename,
		OriginalFilePathOSS: originalPath,
		ResultPathOSS:       resultPath,
		RawFileMD5:          fileMD5,
		ParsedDataJSON:      parsedJSON,
		ATSScoreJSON:        scoreJSON,
		Score:               result.ATSScore.Score,
		Rating:              result.ATSScore.Rating,
		ProcessingStatus:    constants.StatusScored,
		ParserVersion:       constants.ParserVersion,
	}

	event := ResumeScoredEvent{
		SubmissionUUID:   submissionUUID,
		OriginalFilename: filename,
		Score:            result.ATSScore.Score,
		Rating:           result.ATSScore.Rating,
		ScoredAt:         time.Now(),
	}
	payload, err := models.ToJSONString(event)
	if err != nil {
		h.logger.Warn().Err(err).Msg("序列化评分事件失败")
	}

	var outboxMsg *models.OutboxMessage
	if payload != "" {
		outboxMsg = &models.OutboxMessage{
			AggregateID:      submissionUUID,
			EventType:        "resume.scored",
			Payload:          payload,
			TargetExchange:   h.eventsExchange(),
			TargetRoutingKey: h.scoredRoutingKey(),
		}
	}

	if err := h.storage.MySQL.CreateSubmissionWithOutbox(ctx, submission, outboxMsg); err != nil {
		h.logger.Error().Err(err).Str("submission_uuid", submissionUUID).Msg("写入投递记录失败")
	}
}

// markFailed 登记处理失败的投递记录
func (h *ResumeHandler) markFailed(ctx context.Context, fileMD5, filename string, procErr error) {
	if h.storage == nil || h.storage.MySQL == nil {
		return
	}
	submission := &models.ResumeSubmission{
		SubmissionUUID:      h.newSubmissionUUID(),
		SubmissionTimestamp: time.Now(),
		SourceChannel:       "web_upload",
		OriginalFilename:    filename,
		RawFileMD5:          fileMD5,
		ProcessingStatus:    constants.StatusFailed,
		ParserVersion:       constants.ParserVersion,
		ErrorMessage:        procErr.Error(),
	}
	if err := h.storage.MySQL.CreateSubmissionWithOutbox(ctx, submission, nil); err != nil {
		h.logger.Warn().Err(err).Str("filename", filename).Msg("写入失败记录出错")
	}
}

func bytesReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}

func (h *ResumeHandler) newSubmissionUUID() string {
	if u, err := uuid.NewV7(); err == nil {
		return u.String()
	}
	return uuid.NewString()
}

func (h *ResumeHandler) eventsExchange() string {
	if h.cfg != nil && h.cfg.RabbitMQ.EventsExchange != "" {
		return h.cfg.RabbitMQ.EventsExchange
	}
	return constants.ScoredExchange
}

func (h *ResumeHandler) scoredRoutingKey() string {
	if h.cfg != nil && h.cfg.RabbitMQ.ScoredRoutingKey != "" {
		return h.cfg.RabbitMQ.ScoredRoutingKey
	}
	return constants.ScoredRoutingKey
}
