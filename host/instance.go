package host

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bitfsorg/ecopayout-go/address"
	"github.com/bitfsorg/ecopayout-go/contract"
	"github.com/bitfsorg/ecopayout-go/store"
)

// Instance runs invocations against one contract record. Invocations are
// serialised; each one either commits its state and returns its response or
// fails without touching the store.
type Instance struct {
	mu      sync.Mutex
	store   store.Store
	api     address.API
	log     zerolog.Logger
	metrics *Metrics
}

// Option configures an Instance.
type Option func(*Instance)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(i *Instance) { i.log = l }
}

// WithMetrics sets the metrics collectors. The default records nothing.
func WithMetrics(m *Metrics) Option {
	return func(i *Instance) { i.metrics = m }
}

// New creates an Instance over st, converting addresses with api.
func New(st store.Store, api address.API, opts ...Option) *Instance {
	i := &Instance{
		store: st,
		api:   api,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Init creates the contract record. The signer becomes the owner.
func (i *Instance) Init(env Env, msg *InitMsg) (Response, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	resp, err := i.init(env, msg)
	i.finish("init", env, err)
	return resp, err
}

func (i *Instance) init(env Env, msg *InitMsg) (Response, error) {
	if msg == nil {
		return Response{}, fmt.Errorf("%w: nil init message", ErrInvalidMsg)
	}
	switch _, err := i.store.Load(); {
	case err == nil:
		return Response{}, ErrAlreadyInitialized
	case !errors.Is(err, store.ErrNotFound):
		return Response{}, fmt.Errorf("host: load state: %w", err)
	}

	cmsg, err := msg.Canonical(i.api)
	if err != nil {
		return Response{}, err
	}
	state, err := contract.Init(cmsg, env.Signer, env.Height)
	if err != nil {
		return Response{}, err
	}
	if err := i.store.Save(&state); err != nil {
		return Response{}, fmt.Errorf("%w: %w", contract.ErrStorage, err)
	}

	i.metrics.committed(nil, &state)
	return Response{Messages: []CosmosMsg{}, Log: []LogAttribute{}}, nil
}

// Execute runs one command against the stored record.
func (i *Instance) Execute(env Env, msg *HandleMsg) (Response, error) {
	if msg == nil {
		err := fmt.Errorf("%w: nil handle message", ErrInvalidMsg)
		i.finish("execute", env, err)
		return Response{}, err
	}
	cmd, err := msg.Command(i.api)
	if err != nil {
		i.finish("execute", env, err)
		return Response{}, err
	}
	return i.Dispatch(env, cmd)
}

// Dispatch runs an already decoded command.
func (i *Instance) Dispatch(env Env, cmd contract.Command) (Response, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	name := "execute"
	if cmd != nil {
		name = cmd.Name()
	}
	resp, err := i.dispatch(env, cmd)
	i.finish(name, env, err)
	return resp, err
}

func (i *Instance) dispatch(env Env, cmd contract.Command) (Response, error) {
	before, err := i.store.Load()
	if errors.Is(err, store.ErrNotFound) {
		return Response{}, fmt.Errorf("%w: %w", contract.ErrNotFound, err)
	}
	if err != nil {
		return Response{}, fmt.Errorf("host: load state: %w", err)
	}

	info := contract.Info{Signer: env.Signer, Contract: env.Contract}
	after, effects, err := contract.Handle(*before, info, cmd)
	if err != nil {
		return Response{}, err
	}

	// Render before saving so that a rendering failure cannot follow a commit.
	resp, err := buildResponse(i.api, effects)
	if err != nil {
		return Response{}, err
	}
	if err := i.store.Save(&after); err != nil {
		return Response{}, fmt.Errorf("%w: %w", contract.ErrStorage, err)
	}

	i.metrics.committed(before, &after)
	return resp, nil
}

// Query decodes and answers a read-only request. Every request fails.
func (i *Instance) Query(msg *QueryMsg) ([]byte, error) {
	if msg == nil {
		err := fmt.Errorf("%w: nil query message", ErrInvalidMsg)
		i.finish("query", Env{}, err)
		return nil, err
	}
	q, err := msg.Query(i.api)
	if err != nil {
		i.finish("query", Env{}, err)
		return nil, err
	}
	data, err := contract.Query(q)
	i.finish("query", Env{}, err)
	return data, err
}

func (i *Instance) finish(operation string, env Env, err error) {
	i.metrics.observe(operation, err)

	outcome := outcome(err)
	switch outcome {
	case OutcomeOK:
		i.log.Info().Str("operation", operation).Stringer("signer", env.Signer).Int64("height", env.Height).Msg("invocation committed")
	case OutcomeStorageError, OutcomeError:
		i.log.Error().Err(err).Str("operation", operation).Stringer("signer", env.Signer).Str("outcome", outcome).Msg("invocation failed")
	default:
		i.log.Warn().Err(err).Str("operation", operation).Stringer("signer", env.Signer).Str("outcome", outcome).Msg("invocation rejected")
	}
}
