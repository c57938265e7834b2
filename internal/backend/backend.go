// Package backend contains the per-target notification backends. Build
// tags select exactly one Send implementation per GOOS, so only the
// active target's code path (and its dependencies) is compiled in.
package backend

import (
	"errors"
	"time"
)

// ErrUnsupported is returned by Send on targets with no notification
// backend.
var ErrUnsupported = errors.New("desktop notifications are not supported on this platform")

// Urgency levels matching the freedesktop notification specification.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// String returns the string representation of the urgency.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyNormal:
		return "normal"
	case UrgencyCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Notification is the payload handed to the active backend. Title and
// Body are forwarded byte-for-byte; the other fields are hints that
// backends map onto their native call or ignore.
type Notification struct {
	AppName string
	Title   string
	Body    string
	Icon    string        // icon name or image path, backend-defined
	Timeout time.Duration // 0 = backend default
	Urgency Urgency
}
