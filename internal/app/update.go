package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/radiowaves/internal/errmsg"
	"github.com/llehouerou/radiowaves/internal/keymap"
	"github.com/llehouerou/radiowaves/internal/notify"
	"github.com/llehouerou/radiowaves/internal/radio"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.viewport != nil {
			m.viewport.Set(msg.Width, msg.Height)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case RadioChangedMsg:
		m.refresh()
		return m, m.WatchRadioChanges()

	case RadioErrorMsg:
		m = m.showError(msg.Err)
		return m, tea.Batch(ToastTimeoutCmd(m.toastVersion), m.WatchRadioErrors())

	case RadioClosedMsg:
		return m, tea.Quit

	case FrameTickMsg:
		m.now = time.Time(msg)
		m.refresh()
		return m, FrameTickCmd()

	case ToastTimeoutMsg:
		if msg.Version == m.toastVersion {
			m.toast = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Resolve(msg) {
	case keymap.ActionPlayPause:
		m.radio.Toggle()
	case keymap.ActionVolumeUp:
		m.radio.AdjustVolume(keymap.VolumeStep)
	case keymap.ActionVolumeDown:
		m.radio.AdjustVolume(-keymap.VolumeStep)
	case keymap.ActionLike:
		m.radio.Like()
	case keymap.ActionQuit:
		return m, tea.Quit
	}
	return m, nil
}

// refresh reads the latest snapshot and persists volume changes.
func (m *Model) refresh() {
	prev := m.snap.Volume
	m.snap = m.radio.Snapshot()
	if m.snap.Volume != prev && m.stateMgr != nil {
		m.stateMgr.SaveVolume(m.snap.Volume)
	}
}

// showError puts a radio error in the toast line and sends a desktop
// notification for start failures.
func (m Model) showError(err error) Model {
	cause := err
	var serr *radio.StartError
	if errors.As(err, &serr) {
		cause = serr.Err
	}
	m.toast = errmsg.Format(errmsg.OpPlaybackStart, cause)
	m.toastVersion++

	if errors.Is(err, radio.ErrPlaybackStart) {
		if _, nerr := m.notifier.Notify(notify.StartFailure(m.station, m.toast)); nerr != nil {
			m.logger.Warn(errmsg.Format(errmsg.OpNotify, nerr))
		}
	}
	return m
}
