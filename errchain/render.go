package errchain

import (
	"fmt"
	"strings"
)

// AllCauses renders the chain without a depth limit.
const AllCauses = int(^uint(0) >> 1)

const causeSeparator = "; caused by: "

func (f *factory) Render(c *Chain) string {
	return f.RenderLimit(c, AllCauses)
}

// RenderLimit formats at most depth levels, newest first. Elided causes are
// counted explicitly rather than dropped.
func (f *factory) RenderLimit(c *Chain, depth int) string {
	if c.IsOK() {
		return f.eng.Render(OK, "")
	}
	if depth < 1 {
		depth = 1
	}

	var b strings.Builder
	n := 0
	for cur := c; cur != nil; cur = cur.cause {
		if n == depth {
			fmt.Fprintf(&b, " (+%d more)", c.Depth()-depth)
			break
		}
		if n > 0 {
			b.WriteString(causeSeparator)
		}
		b.WriteString(f.eng.Render(cur.code, cur.message))
		n++
	}

	return b.String()
}

// ChainError is the application-level error a KO chain is promoted to. Its
// message is the rendered chain; the original chain stays attached for
// structured inspection by outer handlers.
type ChainError struct {
	msg    string
	chain  *Chain
	source error
}

func (e *ChainError) Error() string {
	return e.msg
}

// Chain returns the failure chain carried by the error.
func (e *ChainError) Chain() *Chain {
	return e.chain
}

// Code returns the newest failure code in the chain.
func (e *ChainError) Code() Code {
	return e.chain.Code()
}

// Unwrap returns the source error the chain was built from, if any.
func (e *ChainError) Unwrap() error {
	return e.source
}

// ErrIfKO is the only operation that converts a chain into a propagating
// failure: nil for OK values, exactly one *ChainError for KO values, whose
// description equals Render(c).
func (f *factory) ErrIfKO(c *Chain) error {
	if f.Classify(c) == ClassOK {
		return nil
	}

	return &ChainError{msg: f.Render(c), chain: c}
}
