// Package dashboard holds the headless controllers behind the admin and
// instructor dashboards. Each view keeps its own fetched list and UI state;
// filtering is done by pure functions over an immutable snapshot of that
// list, so the filter logic tests without any transport.
package dashboard

import "context"

// Notifier surfaces non-blocking notifications to whatever front end hosts
// the view. Mutation and fetch failures go through Error and are never fatal.
type Notifier interface {
	Success(message string)
	Error(message string)
	Info(message string)
}

// Confirmer is the two-step confirmation protocol for destructive actions:
// the view requests confirmation and proceeds only on acceptance. A declined
// confirmation aborts silently and is not an error.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}
