package transport

import (
	"context"
	"log/slog"
	"net"
	"paxosbot/internal/configuration"
	"paxosbot/internal/metrics"
	"paxosbot/internal/transport/gen/replicapb"
	"paxosbot/internal/transport/handler"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/reflection"
)

type Service struct {
	network              string
	timeout              time.Duration
	maxConcurrentStreams uint32
	handler              *handler.ReplicaHandler
	Server               *grpc.Server
}

func NewService(
	cfg *configuration.TransportProperties,
	engine handler.Engine,
	history handler.HistoryReader,
	topology handler.Topology,
) *Service {
	network := cfg.Network
	if network == "" {
		network = "tcp"
	}
	return &Service{
		network:              network,
		timeout:              cfg.RequestTimeout(),
		maxConcurrentStreams: cfg.MaxConcurrentStreams,
		handler:              handler.NewReplicaHandler(engine, history, topology),
	}
}

// Start binds endpoint ("host:port") and serves in the background.
func (s *Service) Start(endpoint string) (net.Listener, error) {
	lis, err := net.Listen(s.network, endpoint)
	if err != nil {
		return nil, err
	}

	s.Serve(lis)
	return lis, nil
}

// Serve registers the replica service on a new gRPC server and serves lis
// in the background.
func (s *Service) Serve(lis net.Listener) {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			metrics.UnaryServerInterceptor(),
			timeoutInterceptor(s.timeout),
		),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	if s.maxConcurrentStreams > 0 {
		opts = append(opts, grpc.MaxConcurrentStreams(s.maxConcurrentStreams))
	}

	s.Server = grpc.NewServer(opts...)
	replicapb.RegisterReplicaServiceServer(s.Server, s.handler)
	reflection.Register(s.Server)
	slog.Info("transport listening", "addr", lis.Addr().String(), "timeout", s.timeout)

	go func() {
		if err := s.Server.Serve(lis); err != nil {
			slog.Error("failed to serve listener", "error", err)
		}
	}()
}

func (s *Service) Stop() {
	if s.Server != nil {
		s.Server.Stop()
	}
}

func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
