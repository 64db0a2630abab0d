package random

import (
	"context"
	"io"
	"math/big"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/vmcore/errors"
	"github.com/kbukum/vmcore/logger"
	"github.com/kbukum/vmcore/object"
	"github.com/kbukum/vmcore/observability"
)

const (
	methodUint32  = "uint32"
	methodFloat64 = "float64"
	methodBits    = "bits"
)

// Engine is a seedable pseudo-random generator safe for concurrent use.
type Engine struct {
	mu  sync.Mutex
	gen generator

	id      uuid.UUID
	ctx     context.Context
	log     *logger.Logger
	metrics *observability.Metrics
	entropy io.Reader
	maxBits int
}

func newEngine(opts []Option) *Engine {
	e := &Engine{
		id:      uuid.New(),
		ctx:     context.Background(),
		log:     logger.WithComponent("random"),
		maxBits: MaxBits,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithFields(logger.Fields(logger.FieldEngineID, e.id.String()))
	return e
}

// New creates a GeneralPurpose engine seeded from the host entropy source.
// A failed entropy read is fatal for the engine and is returned as an
// ENTROPY_UNAVAILABLE error.
func New(opts ...Option) (*Engine, error) {
	e := newEngine(opts)
	if err := e.Seed(nil); err != nil {
		return nil, err
	}
	return e, nil
}

// NewSeeded creates a Deterministic engine seeded with |seed|.
// A nil seed is treated as zero.
func NewSeeded(seed *big.Int, opts ...Option) *Engine {
	e := newEngine(opts)
	e.seedDeterministic(seed)
	return e
}

// ID identifies the engine in logs.
func (e *Engine) ID() string { return e.id.String() }

// Algorithm returns the active algorithm.
func (e *Engine) Algorithm() Algorithm {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gen.algorithm
}

// Seed reseeds the engine, replacing its whole state.
//
// A nil seed selects GeneralPurpose with fresh host entropy. Any integer
// selects Deterministic, keyed from the 32-bit words of its absolute value;
// zero is keyed as a single zero word.
func (e *Engine) Seed(seed *big.Int) error {
	if seed != nil {
		e.seedDeterministic(seed)
		return nil
	}

	key, err := readEntropyKey(e.ctx, e.entropy, e.metrics)
	if err != nil {
		e.log.Error("entropy read failed", logger.ErrorFields("seed", err))
		return err
	}
	src, err := newChachaSource(key)
	if err != nil {
		return errors.Internal(err)
	}
	e.replace(generalGenerator(src), 0)
	return nil
}

// SeedInt64 reseeds the engine deterministically with |seed|.
func (e *Engine) SeedInt64(seed int64) {
	e.seedDeterministic(big.NewInt(seed))
}

func (e *Engine) seedDeterministic(seed *big.Int) {
	key := object.Uint32Words(seed)
	e.replace(deterministicGenerator(newMT19937(key)), max(len(key), 1))
}

func (e *Engine) replace(g generator, seedWords int) {
	e.mu.Lock()
	e.gen = g
	e.mu.Unlock()

	e.metrics.RecordReseed(e.ctx, g.algorithm.String())
	e.log.Debug("engine reseeded", logger.Fields(
		logger.FieldAlgorithm, g.algorithm.String(),
		logger.FieldSeedWords, seedWords,
	))
}

// Uint32 returns one raw 32-bit word from the active algorithm.
func (e *Engine) Uint32() uint32 {
	e.mu.Lock()
	w := e.gen.Uint32()
	alg := e.gen.algorithm
	e.mu.Unlock()

	e.metrics.RecordDraw(e.ctx, alg.String(), methodUint32, 1)
	return w
}

// Float64 returns a float in [0, 1) with 53 bits of precision built from two
// consecutive words: the top 27 bits of the first and the top 26 of the second.
func (e *Engine) Float64() float64 {
	e.mu.Lock()
	a := e.gen.Uint32() >> 5
	b := e.gen.Uint32() >> 6
	alg := e.gen.algorithm
	e.mu.Unlock()

	e.metrics.RecordDraw(e.ctx, alg.String(), methodFloat64, 2)
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Bits returns a non-negative integer made of k random bits.
//
// k <= 32 consumes one word and keeps its top k bits. Larger k consumes
// ceil(k/32) words; the first word is the least significant and the last
// keeps only its top k mod 32 bits (all 32 when k is a multiple of 32).
// k must be in [0, max] where max is MaxBits or the WithMaxBits bound.
func (e *Engine) Bits(k int) (*big.Int, error) {
	if k < 0 || k > e.maxBits {
		return nil, errors.InvalidArgument("k", "bit count out of range").
			WithDetails(map[string]any{"k": k, "max": e.maxBits})
	}

	if k <= 32 {
		e.mu.Lock()
		w := e.gen.Uint32() >> (32 - k)
		alg := e.gen.algorithm
		e.mu.Unlock()

		e.metrics.RecordDraw(e.ctx, alg.String(), methodBits, 1)
		return new(big.Int).SetUint64(uint64(w)), nil
	}

	words := make([]uint32, (k+31)/32)
	e.mu.Lock()
	remaining := k
	for i := range words {
		w := e.gen.Uint32()
		if remaining < 32 {
			w >>= 32 - remaining
		}
		words[i] = w
		remaining -= 32
	}
	alg := e.gen.algorithm
	e.mu.Unlock()

	e.metrics.RecordDraw(e.ctx, alg.String(), methodBits, len(words))
	return object.IntFromUint32Words(words), nil
}
