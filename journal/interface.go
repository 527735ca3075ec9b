package journal

import (
	"context"
	"time"

	"codeberg.org/verist/errkit/errchain"
)

// Report is one raised failure as persisted for later inspection.
type Report struct {
	Timestamp time.Time
	Code      errchain.Code
	Message   string
	Rendered  string
	Depth     int
}

// Repository stores failure reports.
type Repository interface {
	Store(ctx context.Context, report *Report) error
	Recent(ctx context.Context, limit int) ([]Report, error)
	Close() error
}

// FromChain builds a report from a KO chain. Returns nil for OK values,
// which have nothing to journal.
func FromChain(f errchain.Factory, c *errchain.Chain) *Report {
	if f.Classify(c) == errchain.ClassOK {
		return nil
	}

	return &Report{
		Timestamp: time.Now(),
		Code:      c.Code(),
		Message:   c.Message(),
		Rendered:  f.Render(c),
		Depth:     c.Depth(),
	}
}
