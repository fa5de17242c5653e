package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayHandler struct{ mock.Mock }

func (m *MockRelayHandler) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd.BatchSize())
	return args.Int(0), args.Error(1)
}

type MockPurgeHandler struct{ mock.Mock }

func (m *MockPurgeHandler) Handle(ctx context.Context, _ commands.PurgeExpiredTokensCommand) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	relayed := prometheus.NewCounter(prometheus.CounterOpts{Name: "relayed_total"})

	handler := new(MockRelayHandler)
	handler.On("Handle", ctx, 25).Return(3, nil).Once()
	handler.On("Handle", ctx, 25).Return(0, errors.New("broker unavailable")).Once()

	job := jobs.NewOutboxRelayJob(handler, 25, relayed, discardLogger())

	assert.Equal(t, 3, job.RunOnce(ctx))
	assert.Equal(t, 0, job.RunOnce(ctx))
	assert.InDelta(t, 3, testutil.ToFloat64(relayed), 0)
	handler.AssertExpectations(t)
}

func TestOutboxRelayJob_StartRejectsInvalidBatchSize(t *testing.T) {
	job := jobs.NewOutboxRelayJob(new(MockRelayHandler), 0, nil, discardLogger())

	require.Error(t, job.Start())
}

func TestTokenCleanupJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	handler := new(MockPurgeHandler)
	handler.On("Handle", ctx).Return(int64(2), nil).Once()

	job := jobs.NewTokenCleanupJob(handler, discardLogger())

	assert.Equal(t, int64(2), job.RunOnce(ctx))
	handler.AssertExpectations(t)
}

func TestJobManager_StartAndStop(t *testing.T) {
	relay := new(MockRelayHandler)
	relay.On("Handle", mock.Anything, 10).Return(0, nil).Maybe()

	manager := jobs.NewJobManager(
		jobs.NewOutboxRelayJob(relay, 10, nil, discardLogger()),
		jobs.NewTokenCleanupJob(new(MockPurgeHandler), discardLogger()),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_WithoutRelay(t *testing.T) {
	manager := jobs.NewJobManager(nil, jobs.NewTokenCleanupJob(new(MockPurgeHandler), discardLogger()))

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	manager := jobs.NewJobManager(
		jobs.NewOutboxRelayJob(new(MockRelayHandler), -1, nil, discardLogger()),
		jobs.NewTokenCleanupJob(new(MockPurgeHandler), discardLogger()),
	)

	require.Error(t, manager.StartAll())
}
