package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/radiowaves/internal/effects"
	"github.com/llehouerou/radiowaves/internal/keymap"
	"github.com/llehouerou/radiowaves/internal/notify"
	"github.com/llehouerou/radiowaves/internal/radio"
	"github.com/llehouerou/radiowaves/internal/state"
	"github.com/llehouerou/radiowaves/internal/ui/playerbar"
)

// Options are the collaborators and display settings of the model.
type Options struct {
	Station  string
	Stats    playerbar.Stats
	TTL      effects.TTL
	State    state.Interface // nil disables volume persistence
	Notifier notify.Notifier // nil disables notifications
	Viewport *Viewport       // updated on resize, may be nil
	Logger   *log.Logger
}

// Model is the bubbletea model of the player.
type Model struct {
	radio    Radio
	sub      *radio.Subscription
	keys     *keymap.Resolver
	help     help.Model
	helpKeys keymap.Help

	stateMgr state.Interface
	notifier notify.Notifier
	viewport *Viewport
	logger   *log.Logger

	station string
	stats   playerbar.Stats
	ttl     effects.TTL

	Width, Height int
	snap          radio.Snapshot
	now           time.Time

	toast        string
	toastVersion int
}

// New creates the model and subscribes to the radio.
func New(r Radio, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	notifier := opts.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}
	ttl := opts.TTL
	if ttl == (effects.TTL{}) {
		ttl = effects.DefaultTTL()
	}

	return Model{
		radio:    r,
		sub:      r.Subscribe(),
		keys:     keymap.NewResolver(keymap.All),
		help:     help.New(),
		helpKeys: keymap.NewHelp(keymap.All),
		stateMgr: opts.State,
		notifier: notifier,
		viewport: opts.Viewport,
		logger:   logger,
		station:  opts.Station,
		stats:    opts.Stats,
		ttl:      ttl,
		snap:     r.Snapshot(),
	}
}

// Init starts the radio watchers and the animation ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.WatchRadioChanges(),
		m.WatchRadioErrors(),
		FrameTickCmd(),
	)
}

// Snapshot returns the last radio snapshot seen by the model.
func (m Model) Snapshot() radio.Snapshot {
	return m.snap
}

// Toast returns the message currently shown in the toast line.
func (m Model) Toast() string {
	return m.toast
}
