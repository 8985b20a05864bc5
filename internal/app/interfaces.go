package app

import (
	"github.com/llehouerou/radiowaves/internal/radio"
)

// Radio is the part of the orchestrator driven by the UI.
type Radio interface {
	Toggle()
	AdjustVolume(delta float64)
	Like()
	Snapshot() radio.Snapshot
	Subscribe() *radio.Subscription
}

// Verify Orchestrator implements Radio at compile time.
var _ Radio = (*radio.Orchestrator)(nil)
