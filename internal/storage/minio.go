package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-ats-go/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ObjectStorage 对象存储接口
type ObjectStorage interface {
	// UploadFile 上传文件到指定存储桶
	UploadFile(ctx context.Context, bucket, objectName string, reader io.Reader, fileSize int64, contentType string) (string, error)

	// DownloadFile 下载文件
	DownloadFile(ctx context.Context, bucket, objectName string) ([]byte, error)

	// GetPresignedURL 获取预签名URL
	GetPresignedURL(ctx context.Context, bucket, objectName string, expiry time.Duration) (string, error)

	// DeleteFile 删除文件
	DeleteFile(ctx context.Context, bucket, objectName string) error

	// 简历相关操作
	UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error)
	UploadResultJSON(ctx context.Context, submissionUUID string, resultJSON []byte) (string, error)
	GetResumeFile(ctx context.Context, objectName string) ([]byte, error)
	GetResultJSON(ctx context.Context, objectName string) ([]byte, error)
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client         *minio.Client
	cfg            *config.MinIOConfig
	originalBucket string
	resultsBucket  string
	logger         zerolog.Logger
}

// NewMinIO 创建MinIO客户端并确保存储桶和生命周期规则就绪
func NewMinIO(cfg *config.MinIOConfig) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	originalBucket := cfg.OriginalsBucket
	if originalBucket == "" {
		originalBucket = "resume-originals"
	}
	resultsBucket := cfg.ResultsBucket
	if resultsBucket == "" {
		resultsBucket = "resume-results"
	}

	m := &MinIO{
		client:         client,
		cfg:            cfg,
		originalBucket: originalBucket,
		resultsBucket:  resultsBucket,
		logger:         log.With().Str("component", "minio").Logger(),
	}

	if err := m.ensureBucketExists(originalBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保原始简历存储桶 %s 存在失败: %w", originalBucket, err)
	}
	if err := m.ensureBucketExists(resultsBucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保解析结果存储桶 %s 存在失败: %w", resultsBucket, err)
	}

	if cfg.OriginalFileExpireDays > 0 || cfg.ResultExpireDays > 0 {
		if err := m.setupLifecycleRules(context.Background()); err != nil {
			m.logger.Warn().Err(err).Msg("设置存储桶生命周期规则失败")
		}
	}

	m.logger.Info().Str("endpoint", cfg.Endpoint).
		Str("originals_bucket", originalBucket).
		Str("results_bucket", resultsBucket).
		Msg("MinIO客户端初始化完成")
	return m, nil
}

// ensureBucketExists 确保存储桶存在
func (m *MinIO) ensureBucketExists(bucketName, location string) error {
	exists, err := m.client.BucketExists(context.Background(), bucketName)
	if err != nil {
		return fmt.Errorf("检查存储桶 %s 是否存在时出错: %w", bucketName, err)
	}
	if !exists {
		if err := m.client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("创建存储桶 %s 失败: %w", bucketName, err)
		}
		m.logger.Info().Str("bucket", bucketName).Msg("存储桶创建成功")
	}
	return nil
}

// setupLifecycleRules 设置对象生命周期规则
func (m *MinIO) setupLifecycleRules(ctx context.Context) error {
	if m.cfg.OriginalFileExpireDays > 0 {
		if err := m.setupBucketLifecycle(ctx, m.originalBucket, "expire-originals", m.cfg.OriginalFileExpireDays); err != nil {
			return fmt.Errorf("为原始文件存储桶 %s 设置生命周期失败: %w", m.originalBucket, err)
		}
	}
	if m.cfg.ResultExpireDays > 0 {
		if err := m.setupBucketLifecycle(ctx, m.resultsBucket, "expire-results", m.cfg.ResultExpireDays); err != nil {
			return fmt.Errorf("为解析结果存储桶 %s 设置生命周期失败: %w", m.resultsBucket, err)
		}
	}
	return nil
}

// setupBucketLifecycle 为指定存储桶设置过期规则
func (m *MinIO) setupBucketLifecycle(ctx context.Context, bucketName, ruleID string, expiryDays int) error {
	lc := lifecycle.NewConfiguration()
	lc.Rules = []lifecycle.Rule{
		{
			ID:     ruleID,
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(expiryDays),
			},
		},
	}
	if err := m.client.SetBucketLifecycle(ctx, bucketName, lc); err != nil {
		return err
	}
	m.logger.Debug().Str("bucket", bucketName).Int("expiry_days", expiryDays).Msg("存储桶生命周期规则已设置")
	return nil
}

// UploadFile 上传文件到指定存储桶
func (m *MinIO) UploadFile(ctx context.Context, bucket, objectName string, reader io.Reader, fileSize int64, contentType string) (string, error) {
	if bucket == "" || objectName == "" {
		return "", fmt.Errorf("存储桶和对象名不能为空")
	}

	opts := minio.PutObjectOptions{ContentType: contentType}
	info, err := m.client.PutObject(ctx, bucket, objectName, reader, fileSize, opts)
	if err != nil {
		return "", fmt.Errorf("上传对象 %s/%s 失败: %w", bucket, objectName, err)
	}

	m.logger.Debug().Str("bucket", bucket).Str("object", objectName).Int64("size", info.Size).Msg("对象上传成功")
	return fmt.Sprintf("%s/%s", bucket, objectName), nil
}

// DownloadFile 从指定存储桶下载文件
func (m *MinIO) DownloadFile(ctx context.Context, bucket, objectName string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("获取对象 %s/%s 失败: %w", bucket, objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("读取对象 %s/%s 内容失败: %w", bucket, objectName, err)
	}
	return data, nil
}

// GetPresignedURL 生成预签名下载URL
func (m *MinIO) GetPresignedURL(ctx context.Context, bucket, objectName string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成预签名URL失败: %w", err)
	}
	return u.String(), nil
}

// DeleteFile 删除对象
func (m *MinIO) DeleteFile(ctx context.Context, bucket, objectName string) error {
	if err := m.client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("删除对象 %s/%s 失败: %w", bucket, objectName, err)
	}
	return nil
}

// UploadResumeFile 上传原始简历文件，返回OSS路径
func (m *MinIO) UploadResumeFile(ctx context.Context, submissionUUID, fileExt string, reader io.Reader, fileSize int64) (string, error) {
	if submissionUUID == "" {
		return "", fmt.Errorf("投递UUID不能为空")
	}
	if !strings.HasPrefix(fileExt, ".") {
		fileExt = "." + fileExt
	}
	objectName := fmt.Sprintf("originals/%s%s", submissionUUID, fileExt)
	return m.UploadFile(ctx, m.originalBucket, objectName, reader, fileSize, getContentType(fileExt))
}

// UploadResultJSON 上传解析评分结果JSON，返回OSS路径
func (m *MinIO) UploadResultJSON(ctx context.Context, submissionUUID string, resultJSON []byte) (string, error) {
	if submissionUUID == "" {
		return "", fmt.Errorf("投递UUID不能为空")
	}
	objectName := fmt.Sprintf("results/%s.json", submissionUUID)
	reader := bytes.NewReader(resultJSON)
	return m.UploadFile(ctx, m.resultsBucket, objectName, reader, int64(len(resultJSON)), "application/json")
}

// GetResumeFile 下载原始简历文件，objectName可带存储桶前缀
func (m *MinIO) GetResumeFile(ctx context.Context, objectName string) ([]byte, error) {
	bucket, key := m.splitBucketPath(objectName, m.originalBucket)
	return m.DownloadFile(ctx, bucket, key)
}

// GetResultJSON 下载解析结果JSON，objectName可带存储桶前缀
func (m *MinIO) GetResultJSON(ctx context.Context, objectName string) ([]byte, error) {
	bucket, key := m.splitBucketPath(objectName, m.resultsBucket)
	return m.DownloadFile(ctx, bucket, key)
}

// splitBucketPath 从 "bucket/key" 形式的路径中分离已知存储桶，否则使用默认桶
func (m *MinIO) splitBucketPath(objectName, defaultBucket string) (string, string) {
	if strings.Contains(objectName, "/") {
		parts := strings.SplitN(objectName, "/", 2)
		if len(parts) == 2 && (parts[0] == m.originalBucket || parts[0] == m.resultsBucket) {
			return parts[0], parts[1]
		}
	}
	return defaultBucket, objectName
}

// getContentType 根据文件扩展名推断Content-Type
func getContentType(fileExt string) string {
	if !strings.HasPrefix(fileExt, ".") {
		fileExt = "." + fileExt
	}
	switch strings.ToLower(fileExt) {
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
