package random

import (
	"github.com/kbukum/vmcore/errors"
)

// StateSize is the number of key words in a Deterministic state.
const StateSize = mtN

// State is a snapshot of a Deterministic engine.
type State struct {
	Key   [StateSize]uint32
	Index int
}

// State returns a snapshot of the Deterministic generator. A GeneralPurpose
// engine has no reproducible state and fails with INVALID_STATE.
func (e *Engine) State() (State, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.gen.algorithm != Deterministic {
		return State{}, errors.InvalidState("general-purpose engine state cannot be captured")
	}
	return State{Key: e.gen.mt.mt, Index: e.gen.mt.mti}, nil
}

// SetState restores a snapshot taken with State, switching the engine to
// Deterministic. Index must be within [0, StateSize].
func (e *Engine) SetState(s State) error {
	if s.Index < 0 || s.Index > StateSize {
		return errors.InvalidArgument("index", "state index out of range").WithDetail("index", s.Index)
	}
	mt := &mt19937{mt: s.Key, mti: s.Index}
	e.replace(deterministicGenerator(mt), 0)
	return nil
}
