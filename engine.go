package chainkit

import (
	"context"
	"errors"
	"time"

	"github.com/AlexZinkM/chainkit/bitcoin"
	"github.com/AlexZinkM/chainkit/ethereum"
	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"
	"github.com/AlexZinkM/chainkit/solana"
	"github.com/AlexZinkM/chainkit/tron"

	"github.com/sirupsen/logrus"
)

// DefaultWorkerLimit bounds concurrent CPU-bound jobs when no limit is configured
const DefaultWorkerLimit = 8

// Engine dispatches operations to chain strategies. It is safe for concurrent use.
type Engine struct {
	log        *logrus.Entry
	strategies map[model.Chain]Keys
	order      []model.Chain
	submitters map[model.Chain]Submitter
	workers    chan struct{}
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkerLimit bounds how many CPU-bound jobs run at once. Values below 1 are ignored.
func WithWorkerLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = make(chan struct{}, n)
		}
	}
}

// WithLogger replaces the process logger
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithSubmitter registers the collaborator that broadcasts signed transactions of its chain
func WithSubmitter(s Submitter) Option {
	return func(e *Engine) {
		e.submitters[s.Chain()] = s
	}
}

// WithStrategy registers a strategy, replacing any existing one for the same chain
func WithStrategy(k Keys) Option {
	return func(e *Engine) {
		e.register(k)
	}
}

// New creates an Engine with the solana, ethereum, bitcoin and tron strategies, in that order
func New(opts ...Option) *Engine {
	e := &Engine{
		log:        logging.Component("engine"),
		strategies: make(map[model.Chain]Keys),
		submitters: make(map[model.Chain]Submitter),
		workers:    make(chan struct{}, DefaultWorkerLimit),
	}
	for _, opt := range opts {
		opt(e)
	}

	defaults := []Keys{
		solana.New(e.log.WithField("chain", model.ChainSolana)),
		ethereum.New(e.log.WithField("chain", model.ChainEthereum)),
		bitcoin.New(e.log.WithField("chain", model.ChainBitcoin)),
		tron.New(e.log.WithField("chain", model.ChainTron)),
	}
	for _, k := range defaults {
		if _, ok := e.strategies[k.Chain()]; !ok {
			e.register(k)
		}
	}
	e.sortOrder()
	return e
}

func (e *Engine) register(k Keys) {
	if _, ok := e.strategies[k.Chain()]; !ok {
		e.order = append(e.order, k.Chain())
	}
	e.strategies[k.Chain()] = k
}

// sortOrder puts the built-in chains first, in registry order
func (e *Engine) sortOrder() {
	builtin := []model.Chain{model.ChainSolana, model.ChainEthereum, model.ChainBitcoin, model.ChainTron}
	order := make([]model.Chain, 0, len(e.order))
	seen := make(map[model.Chain]bool, len(e.order))
	for _, c := range builtin {
		if _, ok := e.strategies[c]; ok {
			order = append(order, c)
			seen[c] = true
		}
	}
	for _, c := range e.order {
		if !seen[c] {
			order = append(order, c)
		}
	}
	e.order = order
}

// Chains lists the registered chains in registry order
func (e *Engine) Chains() []model.Chain {
	return append([]model.Chain(nil), e.order...)
}

// Strategy returns the strategy registered for chain
func (e *Engine) Strategy(chain model.Chain) (Keys, error) {
	k, ok := e.strategies[chain]
	if !ok {
		return nil, model.Errorf(model.KindUnsupportedChain, "chain %q is not registered", chain)
	}
	return k, nil
}

// capability returns chain's strategy as T, or UnsupportedOperation
func capability[T any](e *Engine, chain model.Chain, op string) (T, error) {
	var zero T
	k, err := e.Strategy(chain)
	if err != nil {
		return zero, err
	}
	c, ok := k.(T)
	if !ok {
		return zero, model.Errorf(model.KindUnsupportedOperation, "%s is not supported on %s", op, chain)
	}
	return c, nil
}

type outcome[T any] struct {
	value T
	err   error
}

// offload runs fn on a worker slot. If ctx is done before fn returns, its result is dropped
// and the call fails with Cancelled.
func offload[T any](ctx context.Context, e *Engine, op string, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, cancelled(op, err)
	}

	select {
	case e.workers <- struct{}{}:
	case <-ctx.Done():
		return zero, cancelled(op, ctx.Err())
	}

	start := time.Now()
	done := make(chan outcome[T], 1)
	go func() {
		defer func() { <-e.workers }()
		v, err := fn()
		done <- outcome[T]{v, err}
	}()

	select {
	case out := <-done:
		e.trace(op, start, out.err)
		return out.value, out.err
	case <-ctx.Done():
		e.log.WithField("op", op).Debug("operation cancelled")
		return zero, cancelled(op, ctx.Err())
	}
}

func cancelled(op string, err error) error {
	return model.WrapError(model.KindCancelled, op+" was cancelled", err)
}

func (e *Engine) trace(op string, start time.Time, err error) {
	entry := e.log.WithFields(logrus.Fields{"op": op, "duration": time.Since(start)})
	if err == nil {
		entry.Debug("operation finished")
		return
	}
	var classified *model.Error
	if errors.As(err, &classified) {
		entry.WithField("kind", classified.Kind).Debug("operation failed")
		return
	}
	entry.WithError(err).Warn("operation failed")
}
