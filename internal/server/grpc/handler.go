package grpc

import (
	"context"
	"errors"

	"github.com/dkravtsov/authwatch/internal/common"
	pb "github.com/dkravtsov/authwatch/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {

	acc, err := s.auth.SignUp(ctx, req.Username, req.Password)

	if err != nil {
		if errors.Is(err, common.ErrDuplicateIdentity) {
			return nil, status.Error(codes.AlreadyExists, "already exists")
		}
		s.logger.Error(ctx, "sign up failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.SignUpResponse{AccountId: acc.ID}, nil

}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {

	session, err := s.auth.SignIn(ctx, req.Username, req.Password)

	if err != nil {
		// One message for unknown identity and wrong password.
		if errors.Is(err, common.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		s.logger.Error(ctx, "sign in failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SignInResponse{Token: session.Token}, nil

}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {

	err := s.auth.SignOut(ctx, req.Token)

	if err != nil {
		if errors.Is(err, common.ErrNoSuchSession) {
			return nil, status.Error(codes.NotFound, "no such session")
		}
		s.logger.Error(ctx, "sign out failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.SignOutResponse{}, nil

}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}
