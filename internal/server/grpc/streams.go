package grpcserver

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	hstreamv1 "github.com/hstreamdb/hdelivery/api/hstream/v1"
	"github.com/hstreamdb/hdelivery/internal/logstore"
	logpkg "github.com/hstreamdb/hdelivery/pkg/log"
)

func validStreamName(name string) bool {
	return name != "" && !strings.ContainsRune(name, '/')
}

// CreateStream materializes an empty log for the stream.
func (s *hstreamSvc) CreateStream(ctx context.Context, req *hstreamv1.Stream) (*hstreamv1.Stream, error) {
	name := req.GetStreamName()
	if !validStreamName(name) {
		return nil, status.Error(codes.InvalidArgument, "invalid stream name")
	}
	exists, err := logstore.LogExists(s.rt.DB(), name)
	if err != nil {
		return nil, statusFromError(err)
	}
	if exists {
		return nil, status.Error(codes.AlreadyExists, "stream already exists")
	}
	if _, err := s.rt.Logs().Create(ctx, name); err != nil {
		return nil, statusFromError(err)
	}
	s.logger.Info("stream.created", logpkg.Str("stream", name))
	return &hstreamv1.Stream{StreamName: name}, nil
}

// DeleteStream drops the stream's log, checkpoints included.
func (s *hstreamSvc) DeleteStream(ctx context.Context, req *hstreamv1.DeleteStreamRequest) (*emptypb.Empty, error) {
	name := req.GetStreamName()
	exists, err := logstore.LogExists(s.rt.DB(), name)
	if err != nil {
		return nil, statusFromError(err)
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "stream not found")
	}
	if err := logstore.DeleteLog(ctx, s.rt.DB(), name); err != nil {
		return nil, statusFromError(err)
	}
	s.rt.Logs().Forget(name)
	s.logger.Info("stream.deleted", logpkg.Str("stream", name))
	return &emptypb.Empty{}, nil
}

// ListStreams enumerates existing streams.
func (s *hstreamSvc) ListStreams(ctx context.Context, req *hstreamv1.ListStreamsRequest) (*hstreamv1.ListStreamsResponse, error) {
	names, err := logstore.ListLogs(s.rt.DB())
	if err != nil {
		return nil, statusFromError(err)
	}
	out := &hstreamv1.ListStreamsResponse{Streams: make([]*hstreamv1.Stream, 0, len(names))}
	for _, name := range names {
		out.Streams = append(out.Streams, &hstreamv1.Stream{StreamName: name})
	}
	return out, nil
}

// Append writes the request's records as one batch under a single LSN and
// returns the assigned record ids.
func (s *hstreamSvc) Append(ctx context.Context, req *hstreamv1.AppendRequest) (*hstreamv1.AppendResponse, error) {
	name := req.GetStreamName()
	if len(req.GetRecords()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty append")
	}
	exists, err := logstore.LogExists(s.rt.DB(), name)
	if err != nil {
		return nil, statusFromError(err)
	}
	if !exists {
		return nil, status.Error(codes.NotFound, "stream not found")
	}
	log, err := s.rt.Logs().Open(name)
	if err != nil {
		return nil, statusFromError(err)
	}
	lsn, err := log.Append(ctx, req.GetRecords())
	if err != nil {
		return nil, statusFromError(err)
	}
	out := &hstreamv1.AppendResponse{StreamName: name}
	out.RecordIds = make([]*hstreamv1.RecordId, len(req.GetRecords()))
	for i := range req.GetRecords() {
		out.RecordIds[i] = &hstreamv1.RecordId{BatchId: lsn, BatchIndex: uint32(i)}
	}
	return out, nil
}
