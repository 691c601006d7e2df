package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"toposcope/internal/configuration/properties"
	"toposcope/internal/discovery"
	"toposcope/internal/metrics"
	"toposcope/internal/transport/endpoint"
	discoverypb "toposcope/internal/transport/gen/discovery"
)

type Service struct {
	network              string
	address              string
	port                 string
	timeout              uint64
	maxConcurrentStreams uint32
	registry             *discovery.Registry
	Server               *grpc.Server
}

func NewService(transportConfig *properties.TransportConfigProperties, registry *discovery.Registry) *Service {
	return &Service{
		network:              transportConfig.Network,
		address:              transportConfig.Address,
		port:                 transportConfig.Port,
		timeout:              transportConfig.Timeout,
		maxConcurrentStreams: transportConfig.MaxConcurrentStreams,
		registry:             registry,
	}
}

func (ts *Service) StartServer() (net.Listener, error) {
	lis, err := net.Listen(ts.network, net.JoinHostPort(ts.address, ts.port))
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(ts.timeout) * time.Second
	if ts.timeout == 0 {
		slog.Warn("Timeout can't be less than 1 second. Setting transport timeout to 1 second.")
		timeout = 1 * time.Second
	} else {
		slog.Info(fmt.Sprintf("Setting transport timeout to %d seconds", ts.timeout))
	}

	var opts []grpc.ServerOption
	if ts.maxConcurrentStreams > 0 {
		opts = append(opts, grpc.MaxConcurrentStreams(ts.maxConcurrentStreams))
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(
		timeoutInterceptor(timeout),
		metrics.UnaryServerInterceptor(),
	))

	ts.Server = grpc.NewServer(opts...)
	discoverypb.RegisterDiscoveryServer(ts.Server, &endpoint.GRPCServer{Registry: ts.registry})
	reflection.Register(ts.Server)

	slog.Info("transport listening at " + lis.Addr().String())
	go func() {
		if err := ts.Server.Serve(lis); err != nil {
			slog.Error("failed to serve", "Error", err.Error())
		}
	}()

	return lis, nil
}

func (ts *Service) Stop() {
	if ts.Server != nil {
		ts.Server.GracefulStop()
	}
}

func timeoutInterceptor(d time.Duration) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {

		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()

		return handler(ctx, req)
	}
}
