// Package notifica delivers a title/body notification to the host
// operating system's native notification facility.
//
// Exactly one backend is compiled in per target: the freedesktop
// notification bus on Linux, Notification Center on macOS, and the
// WinRT toast API on Windows. Any other target fails every call with
// ErrUnsupported. Selection happens at build time; there is no runtime
// probing and no fallback between backends.
//
// A successful return means the underlying OS call was issued without
// a reported error, not that the notification was rendered or seen.
package notifica

import (
	"time"

	"github.com/notifica/notifica/internal/backend"
)

// DefaultAppName identifies the sender when the caller does not
// override it with WithAppName.
const DefaultAppName = "notifica"

// Urgency levels per the freedesktop notification specification.
// Non-Linux backends approximate them (e.g. toast duration) or ignore
// them.
type Urgency = backend.Urgency

const (
	UrgencyLow      = backend.UrgencyLow
	UrgencyNormal   = backend.UrgencyNormal
	UrgencyCritical = backend.UrgencyCritical
)

// ErrUnsupported is returned by every call on a target with no
// compiled-in backend. Test with errors.Is.
var ErrUnsupported = backend.ErrUnsupported

// Option adjusts a single notification before it is handed to the
// backend.
type Option func(*backend.Notification)

// WithAppName sets the application name reported to the backend.
func WithAppName(name string) Option {
	return func(n *backend.Notification) {
		n.AppName = name
	}
}

// WithIcon sets an icon name or image path. Interpretation is the
// backend's; the macOS backend ignores it.
func WithIcon(icon string) Option {
	return func(n *backend.Notification) {
		n.Icon = icon
	}
}

// WithTimeout sets how long the notification stays visible. Zero keeps
// the backend's own default. Backends without a display timeout ignore
// it.
func WithTimeout(d time.Duration) Option {
	return func(n *backend.Notification) {
		n.Timeout = d
	}
}

// WithUrgency sets the notification urgency.
func WithUrgency(u Urgency) Option {
	return func(n *backend.Notification) {
		n.Urgency = u
	}
}

// deliver is swapped out in tests to observe the payload handed to the
// backend.
var deliver = backend.Send

// Notify sends a desktop notification with the given title and body.
// Both strings may be empty and may contain arbitrary Unicode; they
// reach the native facility unmodified. The call blocks until the OS
// has accepted or rejected the submission and performs no retry.
func Notify(title, body string) error {
	return Send(title, body)
}

// Send is Notify with per-call overrides.
func Send(title, body string, opts ...Option) error {
	n := backend.Notification{
		AppName: DefaultAppName,
		Title:   title,
		Body:    body,
		Urgency: backend.UrgencyNormal,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return deliver(n)
}

// Backend returns the name of the backend compiled into this binary.
func Backend() string {
	return backend.Name()
}
