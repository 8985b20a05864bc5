//go:build linux

package mpris

import (
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/radiowaves/internal/radio"
)

// Adapter connects the radio to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(r Radio, station Station) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("radiowaves", &rootAdapter{}, &playerAdapter{radio: r, station: station}),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Radio Waves", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/ogg"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	radio   Radio
	station Station
}

func (p *playerAdapter) Next() error {
	return nil // Not supported
}

func (p *playerAdapter) Previous() error {
	return nil // Not supported
}

func (p *playerAdapter) Pause() error {
	p.radio.Pause()
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.radio.Toggle()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.radio.Pause()
	return nil
}

func (p *playerAdapter) Play() error {
	p.radio.Play()
	return nil
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if p.radio.Snapshot().State == radio.Playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	return types.Metadata{
		TrackId: dbus.ObjectPath(trackID),
		Title:   p.station.Name,
		Artist:  []string{p.station.Name},
		Url:     p.station.URL,
	}, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.radio.Snapshot().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.radio.SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return 0, nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}
