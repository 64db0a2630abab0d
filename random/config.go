package random

import (
	"github.com/kbukum/vmcore/config"
	"github.com/kbukum/vmcore/errors"
)

// NewFromConfig builds an engine from configuration. cfg is expected to have
// passed config.Config.Validate; opts are applied after the configured bound.
func NewFromConfig(cfg config.RandomConfig, opts ...Option) (*Engine, error) {
	seed, err := cfg.ParsedSeed()
	if err != nil {
		return nil, errors.InvalidArgument("random.seed", err.Error())
	}
	opts = append([]Option{WithMaxBits(cfg.MaxBits)}, opts...)

	switch cfg.Algorithm {
	case config.AlgorithmGeneral:
		return New(opts...)
	case config.AlgorithmDeterministic:
		if seed == nil {
			return nil, errors.InvalidArgument("random.seed", "deterministic engine needs a seed")
		}
		return NewSeeded(seed, opts...), nil
	case config.AlgorithmAuto, "":
		if seed != nil {
			return NewSeeded(seed, opts...), nil
		}
		return New(opts...)
	default:
		return nil, errors.InvalidArgument("random.algorithm", "unknown algorithm "+cfg.Algorithm)
	}
}
