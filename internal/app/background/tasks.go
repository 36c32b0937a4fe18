package background

import (
	"context"
	"time"

	"github.com/LavaJover/cognit-service/internal/delivery/grpcapi"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const databaseProbeInterval = 10 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

// BackgroundTasks keeps the gRPC health status in step with the database.
type BackgroundTasks struct {
	DB           Pinger
	HealthServer *health.Server
	log          *zap.Logger
	interval     time.Duration
}

func NewBackgroundTasks(db Pinger, healthServer *health.Server, log *zap.Logger) *BackgroundTasks {
	return &BackgroundTasks{
		DB:           db,
		HealthServer: healthServer,
		log:          log,
		interval:     databaseProbeInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startDatabaseProbe(ctx)
}

func (bt *BackgroundTasks) startDatabaseProbe(ctx context.Context) {
	ticker := time.NewTicker(bt.interval)
	defer ticker.Stop()

	bt.ProbeDatabase(ctx)
	for {
		select {
		case <-ctx.Done():
			bt.HealthServer.Shutdown()
			return
		case <-ticker.C:
			bt.ProbeDatabase(ctx)
		}
	}
}

// ProbeDatabase pings the database once and publishes the result.
func (bt *BackgroundTasks) ProbeDatabase(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := bt.DB.PingContext(probeCtx); err != nil {
		bt.log.Warn("database probe failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	bt.HealthServer.SetServingStatus("", status)
	bt.HealthServer.SetServingStatus(grpcapi.ServiceName, status)
}
