package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/plantnet/marketplace/internal/events"
	"github.com/plantnet/marketplace/internal/observability"
)

// AuditService records domain events as structured log lines and metrics.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger.Named("audit"),
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes the audit trail to every domain event.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.SubscribeAll(a.record)
}

func (a *AuditService) record(_ context.Context, event events.Event) error {
	a.metrics.RecordEvent(string(event.Type))
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("subject", event.Subject),
		zap.String("actor", event.Actor),
		zap.Time("at", event.Timestamp),
	}
	if event.Payload != nil {
		fields = append(fields, zap.Any("payload", event.Payload))
	}
	a.logger.Info("domain event", fields...)
	return nil
}
