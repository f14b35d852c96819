// Package notify delivers operator alerts for fill risk and lifecycle
// events.
package notify

import "context"

// Notifier sends an alert message to an operator channel. Messages may
// contain HTML formatting; implementations that cannot render it should
// strip or ignore the tags.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
