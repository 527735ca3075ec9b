// Package errchain implements an error-chaining and classification core:
// an immutable value that represents either a successful outcome or a
// classified failure optionally linked to the earlier failure it wraps.
// Chains propagate by value until ErrIfKO converts a failure into a Go
// error at a single boundary; every other operation is total.
package errchain

import (
	"errors"
	"fmt"
)

// Basic error check functions from standard library
var (
	Is = errors.Is
	As = errors.As
)

// Chain is an immutable success-or-failure value. A failure may link to the
// earlier failure it was raised while handling, forming a finite, acyclic
// cause chain from newest to oldest. Chaining never mutates a published
// value; it returns a fresh composite.
type Chain struct {
	code    Code
	message string
	cause   *Chain
	handle  Handle
}

// ok is the shared success value. It is immutable, so sharing is safe.
var ok = &Chain{code: OK}

// Code returns the failure code, or OK for a success value.
func (c *Chain) Code() Code {
	if c == nil {
		return OK
	}
	return c.code
}

// Message returns the level's message, which may be empty.
func (c *Chain) Message() string {
	if c == nil {
		return ""
	}
	return c.message
}

// Cause returns the earlier failure this value was chained onto, or nil.
func (c *Chain) Cause() *Chain {
	if c == nil {
		return nil
	}
	return c.cause
}

// Handle returns the engine handle owned by this level, or NoHandle.
func (c *Chain) Handle() Handle {
	if c == nil {
		return NoHandle
	}
	return c.handle
}

// IsOK reports whether the value represents success.
func (c *Chain) IsOK() bool {
	return c == nil || c.code == OK
}

// IsKO reports whether the value represents a failure.
func (c *Chain) IsKO() bool {
	return !c.IsOK()
}

// Depth returns the number of failure levels in the chain.
func (c *Chain) Depth() int {
	n := 0
	for cur := c; cur != nil && cur.code != OK; cur = cur.cause {
		n++
	}
	return n
}

// factory implements the Factory interface
type factory struct {
	eng Engine
}

// NewFactory creates a Factory bound to the given engine. A nil engine
// selects the in-process default.
func NewFactory(eng Engine) Factory {
	if eng == nil {
		eng = DefaultEngine()
	}
	return &factory{eng: eng}
}

func (f *factory) OK() *Chain {
	return ok
}

func (f *factory) New(code Code, msg string) *Chain {
	if code == OK {
		return ok
	}
	return &Chain{code: code, message: msg}
}

func (f *factory) Newf(code Code, format string, args ...any) *Chain {
	return f.New(code, fmt.Sprintf(format, args...))
}

func (f *factory) From(err error) *Chain {
	if err == nil {
		return ok
	}

	var cerr *ChainError
	if errors.As(err, &cerr) {
		return cerr.Chain()
	}

	return &Chain{code: CodeGeneric, message: err.Error()}
}

func (f *factory) Adopt(code Code, msg string, h Handle) *Chain {
	if code == OK {
		// A success value owns nothing; free the handle immediately.
		f.eng.Release(h)
		return ok
	}
	return &Chain{code: code, message: msg, handle: h}
}

// Chain attaches cause at the tail of latest's existing cause chain
// (append-to-tail policy). An OK latest leaves cause authoritative, so
// chaining two OK values yields OK; an OK cause is never linked. The
// returned value is a fresh spine and owns every handle along it: callers
// must treat it as the sole authoritative chain and must not release the
// inputs separately.
func (f *factory) Chain(cause, latest *Chain) *Chain {
	if latest.IsOK() {
		if cause.IsOK() {
			return ok
		}
		return cause
	}
	if cause.IsOK() {
		return latest
	}

	return graft(latest, cause)
}

// graft copies c's spine and hangs tail below its oldest level.
func graft(c, tail *Chain) *Chain {
	cp := *c
	if c.cause == nil {
		cp.cause = tail
	} else {
		cp.cause = graft(c.cause, tail)
	}
	return &cp
}

func (f *factory) Classify(c *Chain) Class {
	return f.eng.Classify(c.Code())
}

// Release frees every engine handle owned by the chain. Engines guarantee
// idempotent release, so discarding a superseded chain after grafting
// cannot double-free the handles now owned by the composite.
func (f *factory) Release(c *Chain) {
	for cur := c; cur != nil; cur = cur.cause {
		if cur.handle != NoHandle {
			f.eng.Release(cur.handle)
		}
	}
}

// std is the package-level factory over the default engine.
var std = NewFactory(nil)

// Default returns the package-level Factory.
func Default() Factory {
	return std
}

// New creates a failure value using the default factory.
func New(code Code, msg string) *Chain {
	return std.New(code, msg)
}

// Newf creates a failure value with a formatted message using the default factory.
func Newf(code Code, format string, args ...any) *Chain {
	return std.Newf(code, format, args...)
}

// From adopts a plain Go error using the default factory.
func From(err error) *Chain {
	return std.From(err)
}

// Link chains latest onto cause using the default factory.
func Link(cause, latest *Chain) *Chain {
	return std.Chain(cause, latest)
}

// Render formats a chain using the default factory.
func Render(c *Chain) string {
	return std.Render(c)
}

// ErrIfKO converts a KO chain to an error using the default factory.
func ErrIfKO(c *Chain) error {
	return std.ErrIfKO(c)
}

// Wrap builds a failure chain from a source error and a classifying code and
// returns it as a Go error. The source error remains reachable via Unwrap.
func Wrap(code Code, msg string, err error) error {
	if err == nil {
		return nil
	}

	c := std.Chain(std.From(err), std.New(code, msg))

	return &ChainError{msg: std.Render(c), chain: c, source: err}
}
