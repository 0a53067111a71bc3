package entity

import "time"

// PreviewState is the lifecycle state of the preview controller.
type PreviewState string

const (
	PreviewIdle        PreviewState = "idle"
	PreviewShowPending PreviewState = "show_pending"
	PreviewVisible     PreviewState = "visible"
	PreviewHidePending PreviewState = "hide_pending"
)

// DismissReason records why a preview (or a pending preview) went away.
type DismissReason string

const (
	DismissGraceExpired     DismissReason = "grace_expired"
	DismissEscape           DismissReason = "escape"
	DismissModifierReleased DismissReason = "modifier_released"
	DismissSuperseded       DismissReason = "superseded"
	DismissTeardown         DismissReason = "teardown"
	DismissPointerLeft      DismissReason = "pointer_left"
)

// PreviewOutcome is the final load status of an embedded preview.
type PreviewOutcome string

const (
	OutcomePending PreviewOutcome = "pending"
	OutcomeLoaded  PreviewOutcome = "loaded"
	OutcomeFailed  PreviewOutcome = "failed"
)

// PreviewRecord is a journal entry describing one shown preview.
type PreviewRecord struct {
	ID       string
	URL      string
	ShownAt  time.Time
	ClosedAt *time.Time
	Outcome  PreviewOutcome
	Reason   DismissReason
}

// Duration returns how long the preview stayed open, or zero while open.
func (r *PreviewRecord) Duration() time.Duration {
	if r.ClosedAt == nil {
		return 0
	}
	return r.ClosedAt.Sub(r.ShownAt)
}
