package service

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plantnet/marketplace/internal/events"
	"github.com/plantnet/marketplace/internal/observability"
)

func TestAuditService_RecordsEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(nil)

	NewAuditService(dispatcher, zap.New(core), metrics).RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.New(events.EventOrderCancelled, "o1", "a@x.com", nil)))

	entries := logs.FilterMessage("domain event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "order_cancelled", entries[0].ContextMap()["type"])
	assert.Equal(t, "a@x.com", entries[0].ContextMap()["actor"])

	count, err := testutil.GatherAndCount(metrics.Registry(), "plantnet_domain_events_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
