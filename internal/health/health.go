package health

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"portfolioservice/internal/logging"
)

const (
	watchInterval = 15 * time.Second
	pingTimeout   = 3 * time.Second
)

type PingFunc func(ctx context.Context) error

// WatchStore keeps the serving status of service in sync with the store's
// reachability until ctx is cancelled.
func WatchStore(ctx context.Context, hs *health.Server, service string, ping PingFunc) {
	watch(ctx, hs, service, ping, watchInterval)
}

func watch(ctx context.Context, hs *health.Server, service string, ping PingFunc, interval time.Duration) {
	check(ctx, hs, service, ping)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check(ctx, hs, service, ping)
		}
	}
}

func check(ctx context.Context, hs *health.Server, service string, ping PingFunc) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := ping(pingCtx); err != nil {
		logging.FromContext(ctx).Warn(ctx, "store health check failed", zap.String("service", service), zap.Error(err))
		hs.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		return
	}
	hs.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
}
