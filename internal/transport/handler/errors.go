package handler

import (
	"context"
	"errors"
	"paxosbot/internal/paxos"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ErrMissingRecord = errors.New("request carries no record")

func toGRPCError(err error) error {
	switch {
	case errors.Is(err, ErrMissingRecord), errors.Is(err, paxos.ErrInvalidRecord):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Errorf(codes.Internal, "internal error: %v", err)
	}
}
