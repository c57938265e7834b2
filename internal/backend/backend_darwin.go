//go:build darwin

package backend

import (
	"fmt"
	"os/exec"
)

// Send delivers the notification through Notification Center by running
// an AppleScript "display notification" via osascript. Icon, timeout and
// urgency have no counterpart in that primitive and are ignored.
func Send(n Notification) error {
	osa, err := exec.LookPath("osascript")
	if err != nil {
		return fmt.Errorf("locating osascript: %w", err)
	}

	cmd := exec.Command(osa, "-e", notificationScript(n))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("running osascript: %w: %s", err, out)
	}
	return nil
}

// notificationScript builds the AppleScript source. %q keeps quotes and
// backslashes escaped in a form AppleScript string literals accept, and
// passes printable Unicode through untouched.
func notificationScript(n Notification) string {
	return fmt.Sprintf("display notification %q with title %q", n.Body, n.Title)
}

// Name returns the name of this backend.
func Name() string { return "notification-center" }
