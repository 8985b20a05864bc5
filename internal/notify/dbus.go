//go:build linux

package notify

import (
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	obj dbus.BusObject

	mu   sync.Mutex
	last map[string]uint32 // category -> id of the last notification shown
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return &stubNotifier{}, nil //nolint:nilerr // graceful fallback when D-Bus unavailable
	}
	return newDBusNotifier(conn.Object(dbusNotifyDest, dbusNotifyPath)), nil
}

func newDBusNotifier(obj dbus.BusObject) *dbusNotifier {
	return &dbusNotifier{obj: obj, last: make(map[string]uint32)}
}

// hints builds the freedesktop hint map for n. Low urgency notifications are
// transient so they do not pile up in the notification history.
func hints(n Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant("radiowaves"),
	}
	if n.Category != "" {
		h["category"] = dbus.MakeVariant(n.Category)
	}
	if n.Urgency == UrgencyLow {
		h["transient"] = dbus.MakeVariant(true)
	}
	return h
}

// replaces returns the id n should replace: its own ReplacesID, or the last
// notification shown in its category.
func (n *dbusNotifier) replaces(notif Notification) uint32 {
	if notif.ReplacesID != 0 || notif.Category == "" {
		return notif.ReplacesID
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last[notif.Category]
}

func (n *dbusNotifier) remember(category string, id uint32) {
	if category == "" {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last[category] = id
}

func (n *dbusNotifier) forget(id uint32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for c, last := range n.last {
		if last == id {
			delete(n.last, c)
		}
	}
}

// Notify sends a notification via D-Bus.
func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		appName,
		n.replaces(notif),
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints(notif),
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	n.remember(notif.Category, id)
	return id, nil
}

// Close closes a notification by ID.
func (n *dbusNotifier) Close(id uint32) error {
	n.forget(id)
	return n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}
