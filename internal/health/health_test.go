package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type fakeStore struct {
	fail  atomic.Bool
	calls atomic.Int32
}

func (f *fakeStore) PingContext(context.Context) error {
	f.calls.Add(1)
	if f.fail.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func statusOf(t *testing.T, srv *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := srv.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestCheck_FlipsStatus(t *testing.T) {
	store := &fakeStore{}
	srv := health.NewServer()
	c := NewChecker(store, srv, time.Second, nil)

	require.NoError(t, c.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, srv, ServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, srv, ""))

	store.fail.Store(true)
	assert.Error(t, c.Check(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, srv, ServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, statusOf(t, srv, ""))
}

func TestRun_PollsUntilCancelled(t *testing.T) {
	store := &fakeStore{}
	srv := health.NewServer()
	c := NewChecker(store, srv, 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, statusOf(t, srv, ServiceName))
}
