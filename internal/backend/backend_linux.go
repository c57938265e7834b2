//go:build linux

package backend

import (
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	// notifyInterface is the freedesktop notification interface name,
	// also used as the destination bus name.
	notifyInterface = "org.freedesktop.Notifications"
	// notifyPath is the notification object path.
	notifyPath = "/org/freedesktop/Notifications"
)

// Send delivers the notification with the org.freedesktop.Notifications
// Notify method over the session bus. A private connection is opened and
// closed per call; dbus.SessionBus would hand back a shared connection
// that must not be closed.
func Send(n Notification) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connecting to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(notifyInterface, dbus.ObjectPath(notifyPath))
	call := obj.Call(notifyInterface+".Notify", 0,
		n.AppName,                // app_name
		uint32(0),                // replaces_id (0 = new notification)
		n.Icon,                   // app_icon
		n.Title,                  // summary
		n.Body,                   // body
		[]string{},               // actions
		notifyHints(n),           // hints
		expireTimeout(n.Timeout), // expire_timeout
	)
	if call.Err != nil {
		return fmt.Errorf("calling %s.Notify: %w", notifyInterface, call.Err)
	}
	return nil
}

// notifyHints builds the hints map for the Notify call. Urgency is a
// byte per the freedesktop spec.
func notifyHints(n Notification) map[string]dbus.Variant {
	return map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(n.Urgency)),
	}
}

// expireTimeout maps a display duration onto the Notify expire_timeout
// argument: milliseconds, or -1 for the server default.
func expireTimeout(d time.Duration) int32 {
	if d <= 0 {
		return -1
	}
	return int32(d / time.Millisecond)
}

// Name returns the name of this backend.
func Name() string { return "freedesktop" }
