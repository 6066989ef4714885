package grpc

import (
	"context"
	"testing"
	"time"

	pb "github.com/dkravtsov/authwatch/internal/proto"
	"github.com/dkravtsov/authwatch/internal/server/accounts"
	"github.com/dkravtsov/authwatch/internal/server/services"
	"github.com/dkravtsov/authwatch/internal/server/sessions"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// startTestServer runs a full server (real stores, real listener) and
// returns a connected client.
func startTestServer(t *testing.T) pb.AuthClient {
	t.Helper()

	auth := services.NewAuthService(accounts.NewMemoryStore(), sessions.NewMemoryRegistry())
	srv, err := NewGRPCServer("127.0.0.1:0", nopLogger{}, auth)
	if err != nil {
		t.Fatalf("NewGRPCServer error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		_ = srv.Run(ctx)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for srv.Addr() == "" {
		if time.Now().After(deadline) {
			t.Fatal("server did not start listening")
		}
		time.Sleep(10 * time.Millisecond)
	}

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc.NewClient error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewAuthClient(conn)
}

func TestEndToEnd_SignUpSignInSignOut(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	up, err := client.SignUp(ctx, &pb.SignUpRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	if up.GetAccountId() == "" {
		t.Fatal("empty account id")
	}

	in, err := client.SignIn(ctx, &pb.SignInRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("SignIn error: %v", err)
	}
	token := in.GetToken()
	if token == "" {
		t.Fatal("empty session token")
	}

	if _, err := client.SignOut(ctx, &pb.SignOutRequest{Token: token}); err != nil {
		t.Fatalf("SignOut error: %v", err)
	}

	_, err = client.SignOut(ctx, &pb.SignOutRequest{Token: token})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("second SignOut: want NotFound, got %v (err=%v)", status.Code(err), err)
	}
}

func TestEndToEnd_DuplicateSignUp(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	if _, err := client.SignUp(ctx, &pb.SignUpRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}
	_, err := client.SignUp(ctx, &pb.SignUpRequest{Username: "alice", Password: "pw2"})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("want AlreadyExists, got %v", status.Code(err))
	}
}

func TestEndToEnd_InvalidCredentialsShapeIsUniform(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	if _, err := client.SignUp(ctx, &pb.SignUpRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	_, errWrongPassword := client.SignIn(ctx, &pb.SignInRequest{Username: "alice", Password: "wrongpw"})
	_, errUnknownUser := client.SignIn(ctx, &pb.SignInRequest{Username: "nobody", Password: "x"})

	stWrong := status.Convert(errWrongPassword)
	stUnknown := status.Convert(errUnknownUser)

	if stWrong.Code() != codes.Unauthenticated || stUnknown.Code() != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated for both, got %v / %v", stWrong.Code(), stUnknown.Code())
	}
	// Identical error shape regardless of whether the identity exists.
	if stWrong.Message() != stUnknown.Message() {
		t.Fatalf("messages differ: %q vs %q", stWrong.Message(), stUnknown.Message())
	}
}

func TestEndToEnd_ConcurrentSessions(t *testing.T) {
	client := startTestServer(t)
	ctx := context.Background()

	if _, err := client.SignUp(ctx, &pb.SignUpRequest{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("SignUp error: %v", err)
	}

	first, err := client.SignIn(ctx, &pb.SignInRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("first SignIn error: %v", err)
	}
	second, err := client.SignIn(ctx, &pb.SignInRequest{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("second SignIn error: %v", err)
	}
	if first.GetToken() == second.GetToken() {
		t.Fatal("expected independent tokens for concurrent sessions")
	}

	if _, err := client.SignOut(ctx, &pb.SignOutRequest{Token: first.GetToken()}); err != nil {
		t.Fatalf("SignOut of first session: %v", err)
	}
	if _, err := client.SignOut(ctx, &pb.SignOutRequest{Token: second.GetToken()}); err != nil {
		t.Fatalf("SignOut of second session: %v", err)
	}
}
