//go:build windows

package backend

import (
	"fmt"

	"github.com/go-toast/toast"
)

// Send delivers the notification through the WinRT toast API. Critical
// urgency maps to the long toast duration; there is no closer analog.
func Send(n Notification) error {
	t := toast.Notification{
		AppID:   n.AppName,
		Title:   n.Title,
		Message: n.Body,
		Icon:    n.Icon,
	}
	if n.Urgency == UrgencyCritical {
		t.Duration = toast.Long
	}

	if err := t.Push(); err != nil {
		return fmt.Errorf("pushing toast notification: %w", err)
	}
	return nil
}

// Name returns the name of this backend.
func Name() string { return "toast" }
