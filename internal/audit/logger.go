package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// GormSink stores events in the audit_logs table.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Write(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:    ev.UserID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: ev.At,
	}

	return s.db.WithContext(ctx).Create(&row).Error
}

// LogSink writes events to a slog.Logger.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Write(ctx context.Context, ev Event) error {
	s.log.InfoContext(ctx, "audit",
		"action", ev.Action,
		"entity", ev.Entity,
		"entity_id", ev.EntityID,
		"user_id", ev.UserID,
	)
	return nil
}

type JSONPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// PublisherSink forwards events to a message broker using the action as
// routing key.
type PublisherSink struct {
	pub JSONPublisher
}

func NewPublisherSink(pub JSONPublisher) *PublisherSink {
	return &PublisherSink{pub: pub}
}

func (s *PublisherSink) Write(ctx context.Context, ev Event) error {
	return s.pub.PublishJSON(ctx, ev.Entity+"."+ev.Action, ev)
}
