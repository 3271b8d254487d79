package grpcserver

import (
	"context"
	"net"

	"google.golang.org/grpc"

	hstreamv1 "github.com/hstreamdb/hdelivery/api/hstream/v1"
	"github.com/hstreamdb/hdelivery/internal/runtime"
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

// Server owns the gRPC server instance and runtime.
type Server struct {
	rt   *runtime.Runtime
	grpc *grpc.Server
	lis  net.Listener
}

// New constructs a gRPC server and registers the HStream API service.
func New(rt *runtime.Runtime, logger logpkg.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = logpkg.Discard()
	}
	s := &Server{rt: rt, grpc: grpc.NewServer(opts...)}
	hstreamv1.RegisterHStreamApiServer(s.grpc, &hstreamSvc{
		rt:     rt,
		logger: logger.With(logpkg.Component("grpc")),
	})
	return s
}

// Register attaches the service to an externally-owned gRPC server, used
// by tests running over bufconn.
func Register(gs *grpc.Server, rt *runtime.Runtime, logger logpkg.Logger) {
	if logger == nil {
		logger = logpkg.Discard()
	}
	hstreamv1.RegisterHStreamApiServer(gs, &hstreamSvc{
		rt:     rt,
		logger: logger.With(logpkg.Component("grpc")),
	})
}

// ListenAndServe binds to addr and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.grpc.Serve(l) }()
	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Close stops the server and closes the listener.
func (s *Server) Close() {
	if s.grpc != nil {
		s.grpc.GracefulStop()
	}
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// hstreamSvc implements the HStream API over the runtime.
type hstreamSvc struct {
	hstreamv1.UnimplementedHStreamApiServer
	rt     *runtime.Runtime
	logger logpkg.Logger
}
