package background

import (
	"context"
	"errors"
	"testing"

	"github.com/LavaJover/cognit-service/internal/delivery/grpcapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) PingContext(ctx context.Context) error {
	return p.err
}

func TestProbeDatabase(t *testing.T) {
	hs := grpcapi.NewHealthServer()
	pinger := &stubPinger{}
	bt := NewBackgroundTasks(pinger, hs, zap.NewNop())

	bt.ProbeDatabase(context.Background())
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: grpcapi.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	pinger.err = errors.New("connection refused")
	bt.ProbeDatabase(context.Background())
	resp, err = hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}
