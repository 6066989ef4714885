// Package client wraps the gRPC connection to the authentication service
// for use as a synthetic probing client.
package client

import (
	"context"
	"fmt"

	"github.com/dkravtsov/authwatch/internal/common"
	pb "github.com/dkravtsov/authwatch/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type AuthClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

func NewAuthClient(endpointURL string) (*AuthClient, error) {
	c := &AuthClient{endpointURL: endpointURL}

	conn, err := grpc.NewClient(c.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewAuthClient(conn)

	return c, nil
}

func (c *AuthClient) SignUp(ctx context.Context, username, password string) (string, error) {

	resp, err := c.client.SignUp(ctx, &pb.SignUpRequest{Username: username, Password: password})
	if err != nil {
		return "", mapError(err)
	}

	return resp.AccountId, nil
}

func (c *AuthClient) SignIn(ctx context.Context, username, password string) (string, error) {

	resp, err := c.client.SignIn(ctx, &pb.SignInRequest{Username: username, Password: password})
	if err != nil {
		return "", mapError(err)
	}

	return resp.Token, nil
}

func (c *AuthClient) SignOut(ctx context.Context, token string) error {

	_, err := c.client.SignOut(ctx, &pb.SignOutRequest{Token: token})
	if err != nil {
		return mapError(err)
	}

	return nil
}

func (c *AuthClient) Ping(ctx context.Context) error {

	resp, err := c.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}

	if resp.Status != "OK" {
		return common.ErrUnreachable
	}

	return nil
}

func (c *AuthClient) Close() error {
	return c.conn.Close()
}

// mapError translates gRPC status codes into the shared error taxonomy.
// Connection-level faults (refused, no route) surface as ErrUnreachable,
// deadline overruns as ErrTimeout; application rejections keep their own
// identities so the prober can report the exact reason.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unavailable:
		return common.ErrUnreachable
	case codes.DeadlineExceeded:
		return common.ErrTimeout
	case codes.AlreadyExists:
		return common.ErrDuplicateIdentity
	case codes.Unauthenticated:
		return common.ErrInvalidCredentials
	case codes.NotFound:
		return common.ErrNoSuchSession
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
