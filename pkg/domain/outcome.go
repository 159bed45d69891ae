package domain

import "net/http"

// ItemOutcome is the result of storing a single normalized item
type ItemOutcome int

// item outcomes
const (
	ItemSuccess ItemOutcome = iota
	ItemConflict
	ItemFailure
)

// FeedOutcome is the rollup status of one feed refresh
type FeedOutcome int

// feed outcomes
const (
	FeedSuccess FeedOutcome = iota
	FeedPartialContent
	FeedConflict
	FeedFailure
)

// String returns a human readable outcome name
func (o FeedOutcome) String() string {
	switch o {
	case FeedSuccess:
		return "success"
	case FeedPartialContent:
		return "partial"
	case FeedConflict:
		return "conflict"
	case FeedFailure:
		return "failure"
	}
	return "unknown"
}

// HTTPStatus maps the outcome to the status code reported by the trigger surface
func (o FeedOutcome) HTTPStatus() int {
	switch o {
	case FeedSuccess:
		return http.StatusOK
	case FeedPartialContent:
		return http.StatusPartialContent
	case FeedConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Rollup derives the feed-level outcome from the per-item outcomes of the
// processed items. All failed -> Failure, some failed -> PartialContent,
// all conflicted -> Conflict, anything else -> Success. An empty set rolls
// up as Failure: every comparison holds vacuously and the failure branch
// wins first.
func Rollup(outcomes []ItemOutcome) FeedOutcome {
	allFailed, anyFailed, allConflicted := true, false, true
	for _, o := range outcomes {
		if o == ItemFailure {
			anyFailed = true
		} else {
			allFailed = false
		}
		if o != ItemConflict {
			allConflicted = false
		}
	}
	switch {
	case allFailed:
		return FeedFailure
	case anyFailed:
		return FeedPartialContent
	case allConflicted:
		return FeedConflict
	}
	return FeedSuccess
}
