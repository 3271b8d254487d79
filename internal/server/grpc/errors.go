package grpcserver

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hstreamdb/hdelivery/internal/subscription"
)

// statusFromError maps engine error kinds onto gRPC status codes at the
// transport boundary.
func statusFromError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, subscription.ErrSubscriptionNotFound):
		return status.Error(codes.NotFound, subscription.ErrSubscriptionNotFound.Error())
	case errors.Is(err, subscription.ErrStreamNotFound):
		return status.Error(codes.NotFound, subscription.ErrStreamNotFound.Error())
	case errors.Is(err, subscription.ErrSubscriptionExists):
		return status.Error(codes.AlreadyExists, subscription.ErrSubscriptionExists.Error())
	case errors.Is(err, subscription.ErrConsumerExists):
		return status.Error(codes.AlreadyExists, subscription.ErrConsumerExists.Error())
	case errors.Is(err, subscription.ErrSubscriptionRemoved):
		return status.Error(codes.Internal, "Subscription has been removed")
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// sessionStatus maps errors observed inside a fetch session. A session
// that outlives its subscription always terminates with the removal
// message, whether the runtime was reaped or only invalidated.
func sessionStatus(err error) error {
	if errors.Is(err, subscription.ErrSubscriptionNotFound) || errors.Is(err, subscription.ErrSubscriptionRemoved) {
		return status.Error(codes.Internal, "Subscription has been removed")
	}
	return statusFromError(err)
}
