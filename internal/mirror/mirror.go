// Package mirror provides best-effort replication of submissions into an
// external spreadsheet. A mirror write never fails the caller: every error is
// contained, logged, and reported only as a boolean outcome.
package mirror

import (
	"context"

	"github.com/betalabs/feedback-intake/internal/model"
)

// Mirror replicates persisted submissions to an external sink
type Mirror interface {
	// Available reports whether the mirror is configured and usable.
	// Resolved once at construction; no network I/O happens here.
	Available() bool

	// Append replicates one submission. Returns true only on a confirmed
	// append; any failure is logged internally and returns false.
	Append(ctx context.Context, sub *model.Submission) bool
}

// Disabled is a Mirror that never syncs. Used when no credentials resolve.
type Disabled struct{}

// Ensure Disabled implements Mirror
var _ Mirror = (*Disabled)(nil)

// NewDisabled creates a mirror that reports unavailable and never syncs
func NewDisabled() *Disabled {
	return &Disabled{}
}

// Available always returns false
func (d *Disabled) Available() bool {
	return false
}

// Append always returns false without performing any I/O
func (d *Disabled) Append(_ context.Context, _ *model.Submission) bool {
	return false
}
