package probe

import (
	"context"
	"errors"
	"time"

	"github.com/dkravtsov/authwatch/internal/common"
	"github.com/dkravtsov/authwatch/internal/logging"
	"github.com/google/uuid"
)

// rpcClient is the slice of the auth client the prober needs.
type rpcClient interface {
	SignUp(ctx context.Context, username, password string) (string, error)
	SignIn(ctx context.Context, username, password string) (string, error)
	SignOut(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}

// Recorder accumulates probe results. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(Result)
}

// Prober runs the probing loop. Each cycle exercises the full account
// round-trip against the live service: Ping, then SignUp of a throwaway
// identity, SignIn with it, and SignOut of the issued token. Every call is
// bounded by its own timeout, independent of the cycle interval.
type Prober struct {
	client   rpcClient
	recorder Recorder
	logger   logging.Logger
	interval time.Duration
	timeout  time.Duration
}

func NewProber(c rpcClient, r Recorder, l logging.Logger, interval, timeout time.Duration) *Prober {
	return &Prober{
		client:   c,
		recorder: r,
		logger:   l.With("module", "prober"),
		interval: interval,
		timeout:  timeout,
	}
}

// ProbeOnce performs one full probe cycle and returns the results in call
// order. Failures are data, not faults: dependent calls are skipped when
// their input is missing (no token without a successful SignIn), but the
// cycle itself always completes.
func (p *Prober) ProbeOnce(ctx context.Context) []Result {

	results := make([]Result, 0, 4)

	results = append(results, p.call(ctx, "Ping", func(ctx context.Context) error {
		return p.client.Ping(ctx)
	}))

	// Throwaway identity, unique per cycle. Accounts accumulate only for
	// the server process lifetime.
	username := "probe-" + uuid.NewString()
	password := uuid.NewString()

	signUp := p.call(ctx, "SignUp", func(ctx context.Context) error {
		_, err := p.client.SignUp(ctx, username, password)
		return err
	})
	results = append(results, signUp)

	if signUp.Outcome != OutcomeSuccess {
		return results
	}

	var token string
	signIn := p.call(ctx, "SignIn", func(ctx context.Context) error {
		t, err := p.client.SignIn(ctx, username, password)
		token = t
		return err
	})
	results = append(results, signIn)

	if signIn.Outcome != OutcomeSuccess {
		return results
	}

	results = append(results, p.call(ctx, "SignOut", func(ctx context.Context) error {
		return p.client.SignOut(ctx, token)
	}))

	return results
}

// call runs one RPC under the per-probe timeout and classifies the result.
func (p *Prober) call(ctx context.Context, operation string, fn func(ctx context.Context) error) Result {

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	latency := time.Since(start)

	outcome, reason := classify(err)

	return Result{
		Timestamp: start,
		Operation: operation,
		Outcome:   outcome,
		Reason:    reason,
		Latency:   latency,
	}
}

func classify(err error) (Outcome, string) {
	switch {
	case err == nil:
		return OutcomeSuccess, ""
	case errors.Is(err, common.ErrTimeout) || errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout, common.ErrTimeout.Error()
	case errors.Is(err, common.ErrUnreachable):
		return OutcomeUnreachable, common.ErrUnreachable.Error()
	default:
		return OutcomeFailure, err.Error()
	}
}

// Run executes probe cycles on the configured interval until ctx is
// canceled. A failed cycle never stops the loop; the in-flight cycle is
// bounded by the per-probe timeouts, so shutdown is prompt.
func (p *Prober) Run(ctx context.Context) {

	p.logger.Info(ctx, "Starting prober", "interval", p.interval.String(), "timeout", p.timeout.String())

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		for _, result := range p.ProbeOnce(ctx) {
			p.recorder.Record(result)
		}

		select {
		case <-ctx.Done():
			p.logger.Info(ctx, "Stopping prober...")
			return
		case <-ticker.C:
		}
	}
}
