package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/radiowaves/internal/analysis"
	"github.com/llehouerou/radiowaves/internal/app"
	"github.com/llehouerou/radiowaves/internal/config"
	"github.com/llehouerou/radiowaves/internal/errmsg"
	"github.com/llehouerou/radiowaves/internal/icons"
	"github.com/llehouerou/radiowaves/internal/loop"
	"github.com/llehouerou/radiowaves/internal/mpris"
	"github.com/llehouerou/radiowaves/internal/notify"
	"github.com/llehouerou/radiowaves/internal/player"
	"github.com/llehouerou/radiowaves/internal/radio"
	"github.com/llehouerou/radiowaves/internal/state"
	"github.com/llehouerou/radiowaves/internal/stderr"
	"github.com/llehouerou/radiowaves/internal/ui/playerbar"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpConfigLoad, err)
	}
	icons.Init(cfg.Icons)

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer closeLog()

	// Capture C library stderr before the audio device is opened.
	if err := stderr.Start(logger); err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer stderr.Stop()

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpInitialize, err)
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("saving state", "err", err)
		}
	}()

	volume := cfg.Volume
	if v, ok, err := stateMgr.GetVolume(); err != nil {
		logger.Warn(errmsg.Format(errmsg.OpVolumeLoad, err))
	} else if ok {
		volume = v
	}

	source, sampler := newAudio(cfg, logger)

	l := loop.New()
	go l.Run()
	defer l.Close()

	viewport := &app.Viewport{}
	r := radio.New(l, source, sampler, viewport,
		radio.WithLogger(logger.WithPrefix("radio")),
		radio.WithStartTimeout(cfg.Audio.StartTimeout),
		radio.WithTTL(cfg.TTL()),
		radio.WithCryBand(float64(cfg.Effects.CryBand)),
		radio.WithHints(cfg.Hints()),
	)
	defer r.Close()
	r.SetVolume(volume)

	station := mpris.Station{Name: cfg.Station, URL: cfg.StreamURL}
	if media, err := mpris.New(r, station); err != nil {
		logger.Warn(errmsg.Format(errmsg.OpMPRISStart, err))
	} else {
		defer media.Close()
	}

	notifier := notify.Disabled()
	if cfg.Notifications {
		if n, err := notify.New(); err != nil {
			logger.Warn(errmsg.Format(errmsg.OpNotify, err))
		} else {
			notifier = n
		}
	}

	model := app.New(r, app.Options{
		Station: cfg.Station,
		Stats: playerbar.Stats{
			Listeners: cfg.Stats.Listeners,
			Likes:     cfg.Stats.Likes,
			Dislikes:  cfg.Stats.Dislikes,
		},
		TTL:      cfg.TTL(),
		State:    stateMgr,
		Notifier: notifier,
		Viewport: viewport,
		Logger:   logger.WithPrefix("ui"),
	})

	logger.Info("starting", "station", cfg.Station, "url", cfg.StreamURL, "demo", cfg.Demo)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

// newAudio returns the stream and its band sampler, or the silent source and
// synthetic sampler in demo mode.
func newAudio(cfg *config.Config, logger *log.Logger) (radio.Source, radio.Sampler) {
	if cfg.Demo {
		return player.NewSilent(), analysis.NewSynth(cfg.Analysis.Cadence, uint64(time.Now().UnixNano()))
	}
	src := player.New(cfg.StreamURL, player.WithLogger(logger.WithPrefix("player")))
	sampler := analysis.NewSampler(
		analysis.WithCadence(cfg.Analysis.Cadence),
		analysis.WithFFTSize(cfg.Analysis.FFTSize),
		analysis.WithLogger(logger.WithPrefix("analysis")),
	)
	return src, sampler
}

// openLogger writes logs to the configured file; the TUI owns the terminal.
func openLogger(cfg *config.Config) (*log.Logger, func(), error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
	})
	log.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}
