package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-ats-go/internal/config"
	"resume-ats-go/internal/constants"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrNotFound 表示请求的键在Redis中不存在
var ErrNotFound = redis.Nil

// Redis 提供Redis客户端和简历去重、结果缓存相关操作
type Redis struct {
	Client *redis.Client
	cfg    *config.RedisConfig
	logger zerolog.Logger
}

// NewRedisAdapter 创建Redis适配器
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("Redis配置不能为空")
	}

	options := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,

		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond,

		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute,
	}

	client := redis.NewClient(options)

	// 注册OpenTelemetry追踪钩子
	if err := redisotel.InstrumentTracing(client); err != nil {
		log.Warn().Err(err).Msg("注册Redis追踪钩子失败")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("连接Redis失败 (%s): %w", cfg.Address, err)
	}

	log.Info().Str("address", cfg.Address).Int("db", cfg.DB).Msg("成功连接到Redis")
	return &Redis{
		Client: client,
		cfg:    cfg,
		logger: log.With().Str("component", "redis").Logger(),
	}, nil
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	return r.Client.Close()
}

// Ping 检查Redis连接是否可用
func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// GetMD5ExpireDuration 返回MD5去重记录的过期时长
func (r *Redis) GetMD5ExpireDuration() time.Duration {
	days := r.cfg.MD5RecordExpireDays
	if days <= 0 {
		days = 365
	}
	return time.Duration(days) * 24 * time.Hour
}

// AddRawFileMD5 将文件MD5加入去重集合，返回是否为新成员
func (r *Redis) AddRawFileMD5(ctx context.Context, md5Hex string) (bool, error) {
	if md5Hex == "" {
		return false, fmt.Errorf("MD5不能为空")
	}

	pipe := r.Client.TxPipeline()
	addCmd := pipe.SAdd(ctx, constants.KeyFileMD5Set, md5Hex)
	pipe.ExpireNX(ctx, constants.KeyFileMD5Set, r.GetMD5ExpireDuration())

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("写入MD5去重集合失败: %w", err)
	}
	return addCmd.Val() > 0, nil
}

// CheckRawFileMD5Exists 检查文件MD5是否已经提交过
func (r *Redis) CheckRawFileMD5Exists(ctx context.Context, md5Hex string) (bool, error) {
	if md5Hex == "" {
		return false, fmt.Errorf("MD5不能为空")
	}
	exists, err := r.Client.SIsMember(ctx, constants.KeyFileMD5Set, md5Hex).Result()
	if err != nil {
		return false, fmt.Errorf("查询MD5去重集合失败: %w", err)
	}
	return exists, nil
}

// SetMD5ToSubmissionUUID 记录MD5到投递UUID的映射，用于重复上传时返回原始结果
func (r *Redis) SetMD5ToSubmissionUUID(ctx context.Context, md5Hex, submissionUUID string) error {
	key := fmt.Sprintf(constants.KeyFileMD5ToSubmissionUUID, md5Hex)
	if err := r.Client.Set(ctx, key, submissionUUID, r.GetMD5ExpireDuration()).Err(); err != nil {
		return fmt.Errorf("写入MD5到UUID映射失败: %w", err)
	}
	return nil
}

// GetSubmissionUUIDByMD5 根据MD5查找已有投递UUID
func (r *Redis) GetSubmissionUUIDByMD5(ctx context.Context, md5Hex string) (string, error) {
	key := fmt.Sprintf(constants.KeyFileMD5ToSubmissionUUID, md5Hex)
	uuid, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("查询MD5到UUID映射失败: %w", err)
	}
	return uuid, nil
}

// CacheResumeResult 缓存解析评分结果JSON
func (r *Redis) CacheResumeResult(ctx context.Context, submissionUUID string, resultJSON []byte, expiration time.Duration) error {
	key := fmt.Sprintf(constants.KeyResumeResult, submissionUUID)
	if err := r.Client.Set(ctx, key, resultJSON, expiration).Err(); err != nil {
		return fmt.Errorf("缓存解析结果失败: %w", err)
	}
	return nil
}

// GetCachedResumeResult 读取缓存的解析评分结果JSON
func (r *Redis) GetCachedResumeResult(ctx context.Context, submissionUUID string) ([]byte, error) {
	key := fmt.Sprintf(constants.KeyResumeResult, submissionUUID)
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("读取缓存的解析结果失败: %w", err)
	}
	return data, nil
}
