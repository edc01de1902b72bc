package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthProbeTimeout   = time.Second
	healthInitialBackoff = 100 * time.Millisecond
	healthMaxBackoff     = time.Second
)

// Health reports one serving status for the server and a fixed set of services.
type Health struct {
	server   *health.Server
	services []string
}

// RegisterHealth installs a health service on server with the overall status
// and every named service already SERVING.
func RegisterHealth(server *gogrpc.Server, services ...string) *Health {
	h := &Health{server: health.NewServer(), services: append([]string{""}, services...)}
	grpc_health_v1.RegisterHealthServer(server, h.server)
	h.Set(grpc_health_v1.HealthCheckResponse_SERVING)
	return h
}

// Set applies status to the overall status and to every registered service.
func (h *Health) Set(status grpc_health_v1.HealthCheckResponse_ServingStatus) {
	for _, service := range h.services {
		h.server.SetServingStatus(service, status)
	}
}

// Shutdown flips every service to NOT_SERVING and ignores later updates.
func (h *Health) Shutdown() {
	h.server.Shutdown()
}

// WaitForHealth polls service until it reports SERVING or ctx ends. logf, when
// set, receives one line per failed probe.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return errors.New("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	req := &grpc_health_v1.HealthCheckRequest{Service: service}
	timer := time.NewTimer(0)
	defer timer.Stop()
	for backoff := healthInitialBackoff; ; backoff = min(backoff*2, healthMaxBackoff) {
		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-timer.C:
		}

		reason := probeHealth(ctx, client, req)
		if reason == "" {
			return nil
		}
		if logf != nil {
			logf("waiting for gRPC health: %s", reason)
		}
		timer.Reset(backoff)
	}
}

// probeHealth returns why the probe is not yet serving, or "" when it is.
func probeHealth(ctx context.Context, client grpc_health_v1.HealthClient, req *grpc_health_v1.HealthCheckRequest) string {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()
	resp, err := client.Check(ctx, req)
	switch {
	case err != nil:
		return err.Error()
	case resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING:
		return "status " + resp.GetStatus().String()
	default:
		return ""
	}
}
