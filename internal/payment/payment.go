// Package payment simulates a gateway as a per-method three-stage machine:
// input -> authorize -> confirmed. Each transition waits out an artificial
// network delay and then succeeds; no decline, timeout or retry path is
// modeled. Cash on delivery never constructs a Simulator at all.
package payment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trendycorner/storefront-golang/internal/models"
)

// Stage is one step of the simulated payment flow.
type Stage string

const (
	StageInput     Stage = "input"
	StageAuthorize Stage = "authorize"
	StageConfirmed Stage = "confirmed"
)

// Default delays, approximating the gateway round trips of the original
// flow: ~1s to log in, ~1.5s to process the payment.
const (
	DefaultLoginDelay   = time.Second
	DefaultConfirmDelay = 1500 * time.Millisecond
)

var (
	// ErrWrongStage is returned when an action does not apply to the
	// machine's current stage.
	ErrWrongStage = errors.New("payment: action not valid in current stage")

	// ErrInFlight rejects re-entrant submission while a delay is pending,
	// the server-side equivalent of the disabled submit button.
	ErrInFlight = errors.New("payment: a request is already being processed")

	// ErrNoSimulator marks methods that bypass the stage machine.
	ErrNoSimulator = errors.New("payment: method does not use the payment simulator")
)

// Simulator is the stage machine for one selected method and one authorized
// amount. A new method selection gets a fresh Simulator.
type Simulator struct {
	mu       sync.Mutex
	method   models.PaymentMethod
	stage    Stage
	inFlight bool

	loginDelay   time.Duration
	confirmDelay time.Duration

	amount float64
	txnID  string
}

// NewSimulator builds a machine in the input stage for a gateway method.
// Cash on delivery returns ErrNoSimulator. Non-positive delays select the
// defaults; tests pass small ones.
func NewSimulator(method models.PaymentMethod, amount float64, loginDelay, confirmDelay time.Duration) (*Simulator, error) {
	if !models.IsValidPaymentMethod(method) {
		return nil, errors.New("payment: unknown payment method")
	}
	if method == models.MethodCashOnDelivery {
		return nil, ErrNoSimulator
	}
	if loginDelay <= 0 {
		loginDelay = DefaultLoginDelay
	}
	if confirmDelay <= 0 {
		confirmDelay = DefaultConfirmDelay
	}
	return &Simulator{
		method:       method,
		stage:        StageInput,
		loginDelay:   loginDelay,
		confirmDelay: confirmDelay,
		amount:       amount,
	}, nil
}

// SubmitLogin moves input -> authorize after the login delay. Credentials
// are validated (as typed, required records) at the HTTP boundary and then
// accepted unconditionally here. The transition never happens synchronously.
func (s *Simulator) SubmitLogin(ctx context.Context) error {
	if err := s.begin(StageInput); err != nil {
		return err
	}
	if err := s.sleep(ctx, s.loginDelay); err != nil {
		s.finish(func() {})
		return err
	}
	s.finish(func() { s.stage = StageAuthorize })
	return nil
}

// Confirm moves authorize -> confirmed after the processing delay and
// generates the synthetic transaction id.
func (s *Simulator) Confirm(ctx context.Context) (string, error) {
	if err := s.begin(StageAuthorize); err != nil {
		return "", err
	}
	if err := s.sleep(ctx, s.confirmDelay); err != nil {
		s.finish(func() {})
		return "", err
	}
	txn := newTransactionID()
	s.finish(func() {
		s.stage = StageConfirmed
		s.txnID = txn
	})
	return txn, nil
}

// Method returns the simulated gateway.
func (s *Simulator) Method() models.PaymentMethod {
	return s.method
}

// Stage returns the current stage.
func (s *Simulator) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Amount is the total this machine was created to authorize.
func (s *Simulator) Amount() float64 {
	return s.amount
}

// TransactionID is the synthetic id generated on confirmation, empty before.
func (s *Simulator) TransactionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txnID
}

// begin checks the stage and takes the in-flight guard.
func (s *Simulator) begin(want Stage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrInFlight
	}
	if s.stage != want {
		return ErrWrongStage
	}
	s.inFlight = true
	return nil
}

// finish releases the guard and applies the transition.
func (s *Simulator) finish(apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	apply()
}

func (s *Simulator) sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// newTransactionID produces a random alphanumeric id like TXN-4F1A09C2B37D.
func newTransactionID() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TXN-" + hex[:12]
}
