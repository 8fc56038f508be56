package models

import "time"

// OutboxMessage 事务性发件箱消息，保证数据库写入与消息发布的最终一致性
type OutboxMessage struct {
	ID               uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	AggregateID      string     `gorm:"type:char(36);not null;index" json:"aggregate_id"`
	EventType        string     `gorm:"type:varchar(100);not null" json:"event_type"`
	Payload          string     `gorm:"type:json;not null" json:"payload"`
	TargetExchange   string     `gorm:"type:varchar(128);not null" json:"target_exchange"`
	TargetRoutingKey string     `gorm:"type:varchar(128);not null" json:"target_routing_key"`
	Status           string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_outbox_status_created_at" json:"status"`
	RetryCount       int        `gorm:"type:int;not null;default:0" json:"retry_count"`
	CreatedAt        time.Time  `gorm:"type:datetime(6);autoCreateTime;index:idx_outbox_status_created_at" json:"created_at"`
	ProcessedAt      *time.Time `gorm:"type:datetime(6)" json:"processed_at,omitempty"`
	ErrorMessage     string     `gorm:"type:text" json:"error_message,omitempty"`
}

// TableName 指定表名
func (OutboxMessage) TableName() string {
	return "outbox_messages"
}

// 发件箱消息状态
const (
	OutboxStatusPending = "PENDING"
	OutboxStatusSent    = "SENT"
	OutboxStatusFailed  = "FAILED"
)
