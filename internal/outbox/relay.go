// Package outbox 实现事务性发件箱模式的消息中继
package outbox

import (
	"context"
	"time"

	"resume-ats-go/internal/config"
	"resume-ats-go/internal/storage"
	"resume-ats-go/internal/storage/models"
	"resume-ats-go/internal/tracing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultPollingInterval = 5 * time.Second
	defaultBatchSize       = 10
	defaultMaxRetryCount   = 5
	defaultCleanupAfter    = 7 * 24 * time.Hour
)

// MessageRelay 轮询发件箱表并将待发送消息发布到消息代理
type MessageRelay struct {
	db              *gorm.DB
	publisher       *storage.RabbitMQ
	logger          zerolog.Logger
	pollingInterval time.Duration
	batchSize       int
	maxRetryCount   int
	cleanupAfter    time.Duration
	done            chan struct{}
	tracer          trace.Tracer
}

// NewMessageRelay 创建消息中继，cfg为nil时使用默认参数
func NewMessageRelay(db *gorm.DB, publisher *storage.RabbitMQ, cfg *config.OutboxConfig) *MessageRelay {
	r := &MessageRelay{
		db:              db,
		publisher:       publisher,
		logger:          log.With().Str("component", "outbox-relay").Logger(),
		pollingInterval: defaultPollingInterval,
		batchSize:       defaultBatchSize,
		maxRetryCount:   defaultMaxRetryCount,
		cleanupAfter:    defaultCleanupAfter,
		done:            make(chan struct{}),
		tracer:          otel.Tracer("outbox-relay"),
	}

	if cfg != nil {
		if d, err := time.ParseDuration(cfg.PollInterval); err == nil && d > 0 {
			r.pollingInterval = d
		}
		if cfg.BatchSize > 0 {
			r.batchSize = cfg.BatchSize
		}
		if cfg.MaxRetries > 0 {
			r.maxRetryCount = cfg.MaxRetries
		}
		if cfg.CleanupAfterDays > 0 {
			r.cleanupAfter = time.Duration(cfg.CleanupAfterDays) * 24 * time.Hour
		}
	}
	return r
}

// Start 启动后台轮询
func (r *MessageRelay) Start() {
	r.logger.Info().Dur("poll_interval", r.pollingInterval).Int("batch_size", r.batchSize).Msg("消息中继启动")
	ticker := time.NewTicker(r.pollingInterval)
	cleanupTicker := time.NewTicker(time.Hour)

	go func() {
		for {
			select {
			case <-r.done:
				ticker.Stop()
				cleanupTicker.Stop()
				r.logger.Info().Msg("消息中继已停止")
				return
			case <-ticker.C:
				if err := r.processPendingMessages(context.Background()); err != nil {
					r.logger.Error().Err(err).Msg("处理待发送消息失败")
				}
			case <-cleanupTicker.C:
				if err := r.cleanupSentMessages(context.Background()); err != nil {
					r.logger.Warn().Err(err).Msg("清理已发送消息失败")
				}
			}
		}
	}()
}

// Stop 优雅停止消息中继
func (r *MessageRelay) Stop() {
	close(r.done)
}

// processPendingMessages 取出并发布一批待发送消息。
// FOR UPDATE SKIP LOCKED 保证多实例水平扩展时不会重复处理同一批消息。
func (r *MessageRelay) processPendingMessages(ctx context.Context) error {
	var messages []models.OutboxMessage

	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("status = ?", models.OutboxStatusPending).
		Order("created_at asc").
		Limit(r.batchSize).
		Find(&messages).Error
	if err != nil {
		return err
	}

	// 空轮询不创建追踪Span
	if len(messages) == 0 {
		return tx.Commit().Error
	}

	ctx, span := r.tracer.Start(ctx, "outbox.ProcessBatch",
		trace.WithAttributes(
			attribute.Int("messaging.batch.message_count", len(messages)),
		),
	)
	defer span.End()

	r.logger.Debug().Int("count", len(messages)).Msg("取到待发送消息")

	for _, msg := range messages {
		err := r.publisher.PublishMessage(ctx, msg.TargetExchange, msg.TargetRoutingKey, []byte(msg.Payload), "application/json")
		if err != nil {
			tracing.RecordErrorWithInfo(span, err, tracing.ErrorTypeRabbitMQ,
				attribute.String("messaging.destination.name", msg.TargetExchange),
				attribute.String("messaging.rabbitmq.routing_key", msg.TargetRoutingKey),
			)
			r.logger.Warn().Err(err).
				Uint64("message_id", msg.ID).
				Str("aggregate_id", msg.AggregateID).
				Int("retry_count", msg.RetryCount+1).
				Msg("发布消息失败")
			msg.RetryCount++
			msg.ErrorMessage = err.Error()
			if msg.RetryCount >= r.maxRetryCount {
				msg.Status = models.OutboxStatusFailed
			}
		} else {
			msg.Status = models.OutboxStatusSent
			now := time.Now()
			msg.ProcessedAt = &now
			msg.ErrorMessage = ""
		}

		// 更新失败会回滚整个事务，消息将在下次轮询时被重新拾取
		if err := tx.Save(&msg).Error; err != nil {
			return err
		}
	}

	return tx.Commit().Error
}

// cleanupSentMessages 删除保留期之外的已发送消息
func (r *MessageRelay) cleanupSentMessages(ctx context.Context) error {
	cutoff := time.Now().Add(-r.cleanupAfter)
	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at IS NOT NULL AND processed_at < ?", models.OutboxStatusSent, cutoff).
		Delete(&models.OutboxMessage{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		r.logger.Info().Int64("deleted", result.RowsAffected).Msg("清理过期的已发送消息")
	}
	return nil
}
