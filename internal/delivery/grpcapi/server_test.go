package grpcapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestHealthServer_StartsNotServing(t *testing.T) {
	hs := NewHealthServer()

	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}

func TestRecoveryInterceptor_ConvertsPanic(t *testing.T) {
	interceptor := RecoveryInterceptor(zap.NewNop())
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Boom"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})

	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	interceptor := LoggingInterceptor(zap.NewNop())
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Echo"}

	resp, err := interceptor(context.Background(), "ping", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return req, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ping", resp)
}
