// Package server wires the subway runtime: storage, the gRPC API, and the
// REST API, and runs them until the context ends.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"strings"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	"github.com/louisbranch/subway/internal/platform/config"
	platformgrpc "github.com/louisbranch/subway/internal/platform/grpc"
	"github.com/louisbranch/subway/internal/platform/timeouts"
	grpcapi "github.com/louisbranch/subway/internal/services/subway/api/grpc/subway"
	"github.com/louisbranch/subway/internal/services/subway/api/httpapi"
	"github.com/louisbranch/subway/internal/services/subway/service"
	subwaysqlite "github.com/louisbranch/subway/internal/services/subway/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type serverEnv struct {
	DBPath string `env:"SUBWAY_DB_PATH"`
}

func loadServerEnv() (serverEnv, error) {
	var cfg serverEnv
	if err := config.ParseEnv(&cfg); err != nil {
		return serverEnv{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "subway.db")
	}
	return cfg, nil
}

// Server hosts the subway gRPC and REST APIs over one store.
type Server struct {
	grpcListener net.Listener
	httpListener net.Listener
	grpcServer   *grpc.Server
	httpServer   *http.Server
	health       *platformgrpc.Health
	store        *subwaysqlite.Store
}

// New creates a server listening on the given gRPC and HTTP ports.
func New(ctx context.Context, port, httpPort int) (*Server, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port), fmt.Sprintf(":%d", httpPort))
}

// NewWithAddr creates a server for the given listen addresses.
func NewWithAddr(ctx context.Context, grpcAddr, httpAddr string) (*Server, error) {
	env, err := loadServerEnv()
	if err != nil {
		return nil, err
	}
	grpcListener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", grpcAddr, err)
	}
	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		_ = grpcListener.Close()
		return nil, fmt.Errorf("listen on %s: %w", httpAddr, err)
	}

	store, err := subwaysqlite.Open(ctx, env.DBPath)
	if err != nil {
		_ = grpcListener.Close()
		_ = httpListener.Close()
		return nil, fmt.Errorf("open subway sqlite store: %w", err)
	}

	subway := service.New(store)
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	subwayv1.RegisterSubwayServiceServer(grpcServer, grpcapi.NewService(subway))
	healthServer := platformgrpc.RegisterHealth(grpcServer, subwayv1.SubwayService_ServiceDesc.ServiceName)

	httpServer := &http.Server{
		Handler:           httpapi.NewHandler(subway),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		grpcListener: grpcListener,
		httpListener: httpListener,
		grpcServer:   grpcServer,
		httpServer:   httpServer,
		health:       healthServer,
		store:        store,
	}, nil
}

// Addr returns the gRPC listener address.
func (s *Server) Addr() string {
	if s == nil || s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

// HTTPAddr returns the REST listener address.
func (s *Server) HTTPAddr() string {
	if s == nil || s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// Run creates and serves a subway server until context cancellation.
func Run(ctx context.Context, port, httpPort int) error {
	server, err := New(ctx, port, httpPort)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs both APIs until ctx ends or either server fails.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("subway gRPC listening at %v", s.grpcListener.Addr())
	log.Printf("subway HTTP listening at %v", s.httpListener.Addr())

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := s.grpcServer.Serve(s.grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		if err := s.httpServer.Serve(s.httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		return s.shutdown()
	})
	return group.Wait()
}

func (s *Server) shutdown() error {
	if s.health != nil {
		s.health.Shutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	var err error
	if shutdownErr := s.httpServer.Shutdown(shutdownCtx); shutdownErr != nil && !errors.Is(shutdownErr, http.ErrServerClosed) {
		err = fmt.Errorf("shutdown HTTP: %w", shutdownErr)
	}
	s.grpcServer.GracefulStop()
	return err
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.grpcListener != nil {
		_ = s.grpcListener.Close()
	}
	if s.httpListener != nil {
		_ = s.httpListener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close subway store: %v", err)
		}
	}
}
