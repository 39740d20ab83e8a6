// Package service simulates the banking backend. Every operation validates
// its input, waits a configurable latency, applies the product rules and
// returns a Result. The service never touches application state: callers
// commit successful results to the store.
package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/config"
	"github.com/Dan9191/saveeasy/internal/metrics"
	"github.com/Dan9191/saveeasy/internal/rates"
)

// Result is the outcome of a simulated call. Rule rejections are results
// with Success false, never Go errors.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func ok[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func fail[T any](message, reason string) Result[T] {
	return Result[T]{Message: message, Error: reason}
}

func invalidAmount[T any]() Result[T] {
	return fail[T]("Invalid amount", "Amount must be greater than 0")
}

func cancelled[T any](err error) Result[T] {
	return fail[T]("Request cancelled", err.Error())
}

// Random is the source of every probabilistic decision
type Random interface {
	Float64() float64
	Intn(n int) int
}

// Sleeper waits out simulated latency
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// BalanceReader reports the user's live savings balance
type BalanceReader interface {
	TotalSavings() float64
}

// Quoter prices currencies in naira
type Quoter interface {
	NairaPerUSD() float64
	CryptoPrice(symbol string) (float64, error)
}

// Service handles the simulated banking operations
type Service struct {
	rules   config.Rules
	rnd     Random
	sleeper Sleeper
	balance BalanceReader
	quotes  Quoter
	now     func() time.Time
	log     *logrus.Logger
}

// Option customizes a Service
type Option func(*Service)

// WithRandom sets the random source
func WithRandom(r Random) Option { return func(s *Service) { s.rnd = r } }

// WithSleeper sets the latency implementation
func WithSleeper(sl Sleeper) Option { return func(s *Service) { s.sleeper = sl } }

// WithBalance wires the live balance used by withdrawals and voice replies
func WithBalance(b BalanceReader) Option { return func(s *Service) { s.balance = b } }

// WithQuoter sets the rate table used for crypto trades
func WithQuoter(q Quoter) Option { return func(s *Service) { s.quotes = q } }

// WithClock sets the time source
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// NewService initializes a new service
func NewService(rules config.Rules, log *logrus.Logger, opts ...Option) *Service {
	s := &Service{
		rules:   rules,
		rnd:     NewLockedRandom(time.Now().UnixNano()),
		sleeper: TimerSleeper{},
		quotes:  rates.Default(),
		now:     time.Now,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the rule tables the service enforces
func (s *Service) Rules() config.Rules {
	return s.rules
}

// wait sleeps for d scaled by the latency factor. Jitter adds a uniform
// share of d.Jitter on top of the base.
func (s *Service) wait(ctx context.Context, d config.Delay) error {
	total := float64(d.Base)
	if d.Jitter > 0 {
		total += s.rnd.Float64() * float64(d.Jitter)
	}
	total *= s.rules.LatencyScale
	return s.sleeper.Sleep(ctx, time.Duration(total))
}

// availableBalance prefers the live store balance
func (s *Service) availableBalance() float64 {
	if s.balance != nil {
		return s.balance.TotalSavings()
	}
	return s.rules.SimulatedBalance
}

func (s *Service) pick(options []string) string {
	return options[s.rnd.Intn(len(options))]
}

// observe logs and records metrics for a finished operation
func observe[T any](s *Service, op string, start time.Time, r Result[T]) Result[T] {
	metrics.RecordOperation(op, r.Success, time.Since(start))
	if r.Success {
		s.log.Infof("%s succeeded: %s", op, r.Message)
	} else {
		s.log.Warnf("%s failed: %s (%s)", op, r.Message, r.Error)
	}
	return r
}

// TimerSleeper waits on a real timer and returns early when ctx is done
type TimerSleeper struct{}

func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// LockedRandom is a math/rand source safe for concurrent use
type LockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRandom seeds a new concurrent random source
func NewLockedRandom(seed int64) *LockedRandom {
	return &LockedRandom{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRandom) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (l *LockedRandom) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
