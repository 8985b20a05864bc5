package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameTickCmd returns a command that sends FrameTickMsg after one frame.
func FrameTickCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return FrameTickMsg(t)
	})
}

// ToastTimeoutCmd returns a command that sends ToastTimeoutMsg once the toast expired.
func ToastTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastTimeoutMsg{Version: version}
	})
}

// WatchRadioChanges returns a command that waits for the next snapshot signal.
func (m Model) WatchRadioChanges() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-m.sub.Changed:
			return RadioChangedMsg{}
		case <-m.sub.Done:
			return RadioClosedMsg{}
		}
	}
}

// WatchRadioErrors returns a command that waits for the next radio error.
func (m Model) WatchRadioErrors() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case err := <-m.sub.Errors:
			return RadioErrorMsg{Err: err}
		case <-m.sub.Done:
			return RadioClosedMsg{}
		}
	}
}
