package errchain

// Code identifies the kind of a failure. The core does not interpret codes
// beyond equality with OK; callers define their own.
type Code string

// Class is the two-valued classification of a chain.
type Class int

const (
	ClassOK Class = iota
	ClassKO
)

// String implements the Stringer interface
func (c Class) String() string {
	if c == ClassOK {
		return "ok"
	}
	return "ko"
}

// Handle references an externally owned resource attached to a chain level.
// The zero Handle means no resource. Handles are issued and released by an
// Engine; chain values never touch the resource directly.
type Handle uint64

// NoHandle is the zero Handle.
const NoHandle Handle = 0

// Engine abstracts the rendering, classification and release primitives the
// core delegates to. Implementations must be total: Render and Classify never
// fail, Release tolerates handles that were already released.
type Engine interface {
	// Render formats a single chain level.
	Render(code Code, message string) string

	// Classify reports whether a code denotes success or failure.
	Classify(code Code) Class

	// Release frees the resource behind a handle. Releasing NoHandle or an
	// already-released handle is a no-op.
	Release(h Handle)
}

// Factory defines the operations of the error-chaining core. All methods are
// total except ErrIfKO, which is the single boundary converting a KO chain
// into a Go error.
type Factory interface {
	// OK returns the shared success value.
	OK() *Chain

	// New creates a failure value with the given code and message.
	New(code Code, msg string) *Chain

	// Newf creates a failure value with a formatted message.
	Newf(code Code, format string, args ...any) *Chain

	// From adopts a plain Go error as a failure value.
	From(err error) *Chain

	// Adopt creates a failure value owning an engine handle.
	Adopt(code Code, msg string, h Handle) *Chain

	// Chain attaches cause at the tail of latest's cause chain and returns
	// the new authoritative chain. Neither input is mutated.
	Chain(cause, latest *Chain) *Chain

	// Classify reports the class of a chain via the engine.
	Classify(c *Chain) Class

	// Render formats the full chain, newest cause first.
	Render(c *Chain) string

	// RenderLimit formats at most depth levels, noting elided causes.
	RenderLimit(c *Chain, depth int) string

	// ErrIfKO returns nil for an OK chain and a *ChainError otherwise.
	ErrIfKO(c *Chain) error

	// Release frees every engine handle owned by the chain.
	Release(c *Chain)
}
