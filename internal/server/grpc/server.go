// Package grpc exposes the authentication service over gRPC.
package grpc

import (
	"context"
	"net"
	"sync"

	"github.com/dkravtsov/authwatch/internal/logging"
	pb "github.com/dkravtsov/authwatch/internal/proto"
	"github.com/dkravtsov/authwatch/internal/server/accounts"
	"github.com/dkravtsov/authwatch/internal/server/sessions"
	"google.golang.org/grpc"
)

// authSvc is the slice of the auth service the transport layer needs.
type authSvc interface {
	SignUp(ctx context.Context, identity, credential string) (*accounts.Account, error)
	SignIn(ctx context.Context, identity, credential string) (*sessions.Session, error)
	SignOut(ctx context.Context, token string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authSvc
	logger  logging.Logger

	mu        sync.Mutex
	boundAddr string
}

func NewGRPCServer(a string, l logging.Logger, auth authSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    auth,
	}, nil
}

// Addr returns the address the server is actually bound to. Useful when the
// configured address is ":0". Empty until Run has started listening.
func (s *GRPCServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.boundAddr
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.boundAddr = listen.Addr().String()
	s.mu.Unlock()

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor))

	// registers service
	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.boundAddr)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
