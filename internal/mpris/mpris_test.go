//go:build linux

package mpris

import (
	"testing"

	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/radiowaves/internal/radio"
)

func TestPlayerAdapter(t *testing.T) {
	r := &fakeRadio{snap: radio.Snapshot{State: radio.Playing, Volume: 0.4}}
	p := &playerAdapter{radio: r, station: Station{Name: "Radio Waves", URL: "https://myradio24.org/61673"}}

	status, _ := p.PlaybackStatus()
	if status != types.PlaybackStatusPlaying {
		t.Errorf("status = %v, want Playing", status)
	}
	if v, _ := p.Volume(); v != 0.4 {
		t.Errorf("volume = %v, want 0.4", v)
	}
	_ = p.SetVolume(0.9)
	if r.volume != 0.9 {
		t.Errorf("SetVolume forwarded %v, want 0.9", r.volume)
	}

	meta, _ := p.Metadata()
	if meta.Title != "Radio Waves" || meta.Url != "https://myradio24.org/61673" {
		t.Errorf("metadata = %+v", meta)
	}

	_ = p.PlayPause()
	if r.toggles != 1 {
		t.Errorf("toggles = %d, want 1", r.toggles)
	}
	_ = p.Play()
	_ = p.Pause()
	_ = p.Stop()
	if r.plays != 1 || r.pauses != 2 {
		t.Errorf("plays = %d, pauses = %d, want 1 and 2", r.plays, r.pauses)
	}

	r.snap.State = radio.Stopped
	status, _ = p.PlaybackStatus()
	if status != types.PlaybackStatusStopped {
		t.Errorf("status = %v, want Stopped", status)
	}
}
