package owgr

import (
	"golfr-rankings/internal/rankings"
)

// FailureReason says why a fetch was not accepted.
type FailureReason string

const (
	ReasonNone             FailureReason = ""
	ReasonRequest          FailureReason = "request"
	ReasonStatus           FailureReason = "status"
	ReasonParse            FailureReason = "parse"
	ReasonInsufficientRows FailureReason = "insufficient_rows"
)

// Result is the outcome of one fetch. Names is only set when the fetch was
// accepted.
type Result struct {
	Names rankings.List
	// Extracted is the amount of names found, capped at rankings.MaxNames.
	Extracted int
	Reason    FailureReason
	Err       error
}

func (r Result) Accepted() bool {
	return r.Reason == ReasonNone
}

func failed(reason FailureReason, err error) Result {
	return Result{Reason: reason, Err: err}
}
