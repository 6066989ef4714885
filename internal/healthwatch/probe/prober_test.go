package probe

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dkravtsov/authwatch/internal/common"
	"github.com/dkravtsov/authwatch/internal/logging"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeClient struct {
	pingErr    error
	signUpErr  error
	signInErr  error
	signOutErr error

	signInToken string
	signOutGot  string

	delay time.Duration
}

func (f *fakeClient) wait(ctx context.Context) error {
	if f.delay == 0 {
		return nil
	}
	select {
	case <-time.After(f.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeClient) Ping(ctx context.Context) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	return f.pingErr
}

func (f *fakeClient) SignUp(ctx context.Context, username, password string) (string, error) {
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	return "acc-1", f.signUpErr
}

func (f *fakeClient) SignIn(ctx context.Context, username, password string) (string, error) {
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	if f.signInErr != nil {
		return "", f.signInErr
	}
	return f.signInToken, nil
}

func (f *fakeClient) SignOut(ctx context.Context, token string) error {
	if err := f.wait(ctx); err != nil {
		return err
	}
	f.signOutGot = token
	return f.signOutErr
}

type memRecorder struct {
	mu      sync.Mutex
	results []Result
}

func (r *memRecorder) Record(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *memRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

func newProber(c rpcClient, r Recorder) *Prober {
	return NewProber(c, r, nopLogger{}, 10*time.Millisecond, 100*time.Millisecond)
}

// ---- tests ----

func TestProbeOnce_AllSucceed(t *testing.T) {
	c := &fakeClient{signInToken: "T"}
	p := newProber(c, &memRecorder{})

	results := p.ProbeOnce(context.Background())

	if len(results) != 4 {
		t.Fatalf("want 4 results, got %d", len(results))
	}
	wantOps := []string{"Ping", "SignUp", "SignIn", "SignOut"}
	for i, r := range results {
		if r.Operation != wantOps[i] {
			t.Fatalf("result %d: want op %s, got %s", i, wantOps[i], r.Operation)
		}
		if r.Outcome != OutcomeSuccess {
			t.Fatalf("result %d (%s): want success, got %s (%s)", i, r.Operation, r.Outcome, r.Reason)
		}
		if r.Timestamp.IsZero() {
			t.Fatalf("result %d: zero timestamp", i)
		}
	}
	if c.signOutGot != "T" {
		t.Fatalf("SignOut called with %q, want issued token", c.signOutGot)
	}
}

func TestProbeOnce_SkipsDependentCallsOnSignUpFailure(t *testing.T) {
	c := &fakeClient{signUpErr: errors.New("boom")}
	p := newProber(c, &memRecorder{})

	results := p.ProbeOnce(context.Background())

	if len(results) != 2 {
		t.Fatalf("want 2 results (Ping, SignUp), got %d", len(results))
	}
	if results[1].Outcome != OutcomeFailure {
		t.Fatalf("want failure, got %s", results[1].Outcome)
	}
	if results[1].Reason == "" {
		t.Fatal("failure reason must be recorded")
	}
}

func TestProbeOnce_ClassifiesUnreachable(t *testing.T) {
	c := &fakeClient{pingErr: common.ErrUnreachable, signUpErr: common.ErrUnreachable}
	p := newProber(c, &memRecorder{})

	results := p.ProbeOnce(context.Background())

	for _, r := range results {
		if r.Outcome != OutcomeUnreachable {
			t.Fatalf("%s: want unreachable, got %s", r.Operation, r.Outcome)
		}
	}
}

func TestProbeOnce_ClassifiesTimeout(t *testing.T) {
	// The fake sleeps past the per-probe timeout, so every call hits its
	// deadline and is classified as a timeout, not left pending.
	c := &fakeClient{delay: time.Second}
	p := NewProber(c, &memRecorder{}, nopLogger{}, 10*time.Millisecond, 20*time.Millisecond)

	start := time.Now()
	results := p.ProbeOnce(context.Background())
	elapsed := time.Since(start)

	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Outcome != OutcomeTimeout {
			t.Fatalf("%s: want timeout, got %s (%s)", r.Operation, r.Outcome, r.Reason)
		}
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("probe cycle not bounded by timeout: took %s", elapsed)
	}
}

func TestRun_ContinuesAfterFailures(t *testing.T) {
	c := &fakeClient{pingErr: common.ErrUnreachable, signUpErr: common.ErrUnreachable}
	rec := &memRecorder{}
	p := NewProber(c, rec, nopLogger{}, 10*time.Millisecond, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	// More than one cycle recorded means the loop survived the failures.
	deadline := time.Now().Add(2 * time.Second)
	for rec.count() < 4 {
		if time.Now().After(deadline) {
			t.Fatalf("loop did not keep probing, recorded %d", rec.count())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("prober did not stop after context cancel")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Outcome
	}{
		{"nil", nil, OutcomeSuccess},
		{"timeout sentinel", common.ErrTimeout, OutcomeTimeout},
		{"deadline exceeded", context.DeadlineExceeded, OutcomeTimeout},
		{"unreachable", common.ErrUnreachable, OutcomeUnreachable},
		{"application error", common.ErrInvalidCredentials, OutcomeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := classify(tt.err)
			if got != tt.want {
				t.Fatalf("want %s, got %s", tt.want, got)
			}
			if tt.err != nil && reason == "" {
				t.Fatal("non-success outcomes must carry a reason")
			}
		})
	}
}
