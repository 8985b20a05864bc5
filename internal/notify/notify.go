// Package notify provides desktop notifications via D-Bus.
package notify

// Urgency represents notification priority levels as defined by freedesktop notifications.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const appName = "Radio Waves"

// CategoryStreamError marks stream failures. Consecutive notifications of a
// category replace each other instead of stacking.
const CategoryStreamError = "network.error"

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Category   string  // freedesktop category hint (optional)
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// Disabled returns a notifier that sends nothing.
func Disabled() Notifier {
	return &stubNotifier{}
}

// StartFailure describes a playback start failure for station.
func StartFailure(station, message string) Notification {
	return Notification{
		Title:    station,
		Body:     message,
		Icon:     "dialog-error",
		Timeout:  5000,
		Urgency:  UrgencyNormal,
		Category: CategoryStreamError,
	}
}

// stubNotifier is used when notifications are disabled or unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}
