//go:build !linux && !darwin && !windows

package backend

// Send fails deterministically on targets with no notification backend.
func Send(Notification) error { return ErrUnsupported }

// Name returns the name of this backend.
func Name() string { return "unsupported" }
