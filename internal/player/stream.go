package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// ErrStatus is returned when the server answers with a non-2xx status.
var ErrStatus = errors.New("unexpected stream status")

// ErrUnsupported is returned when the stream codec cannot be decoded.
var ErrUnsupported = errors.New("unsupported stream format")

// Speaker state is process-wide.
var (
	speakerMu          sync.Mutex
	speakerRate        beep.SampleRate
	speakerInitialized bool
)

type codec int

const (
	codecUnknown codec = iota
	codecMP3
	codecVorbis
)

// Play connects to the stream and starts output. Cancelling ctx aborts the
// attempt; once Play returned nil the connection outlives ctx until Pause.
func (s *Stream) Play(ctx context.Context) error {
	s.Pause()

	s.mu.Lock()
	hints := s.hints
	gen := s.gen
	s.mu.Unlock()

	req, err := s.newRequest(hints)
	if err != nil {
		return err
	}

	connCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(ctx, cancel)
	abort := func(err error) error {
		stop()
		cancel()
		return err
	}

	resp, err := s.client.Do(req.WithContext(connCtx))
	if err != nil {
		return abort(fmt.Errorf("connect: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return abort(fmt.Errorf("%w: %s", ErrStatus, resp.Status))
	}

	size, prefill := hints.buffering()
	br := bufio.NewReaderSize(resp.Body, size)
	if prefill > 0 {
		if _, err := br.Peek(prefill); err != nil && !errors.Is(err, io.EOF) {
			resp.Body.Close()
			return abort(fmt.Errorf("prebuffer: %w", err))
		}
	}
	body := readCloser{Reader: br, Closer: resp.Body}

	var dec beep.StreamCloser
	var format beep.Format
	switch detectCodec(resp.Header.Get("Content-Type"), req.URL.Path) {
	case codecMP3:
		dec, format, err = decodeMP3(body)
	case codecVorbis:
		dec, format, err = decodeVorbis(body)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupported, resp.Header.Get("Content-Type"))
	}
	if err != nil {
		resp.Body.Close()
		return abort(err)
	}

	rate, err := initSpeaker(format.SampleRate)
	if err != nil {
		dec.Close()
		return abort(fmt.Errorf("audio output: %w", err))
	}

	var out beep.Streamer = dec
	if format.SampleRate != rate {
		out = beep.Resample(4, format.SampleRate, rate, dec)
	}
	ctrl := &beep.Ctrl{Streamer: out}
	tap := NewTap(ctrl, tapSize, int(rate))

	s.mu.Lock()
	if !stop() || s.gen != gen {
		s.mu.Unlock()
		cancel()
		dec.Close()
		if err := ctx.Err(); err != nil {
			return err
		}
		return context.Canceled
	}
	vol := &effects.Volume{
		Streamer: tap,
		Base:     2,
		Volume:   levelToVolume(s.volumeLevel),
		Silent:   s.volumeLevel <= 0,
	}
	s.cancel = cancel
	s.ctrl = ctrl
	s.decoder = dec
	s.tap = tap
	s.volume = vol
	s.state = Playing
	s.mu.Unlock()

	s.logger.Info("stream connected",
		"url", req.URL.Redacted(),
		"rate", int(format.SampleRate),
		"channels", format.NumChannels)

	speaker.Play(beep.Seq(vol, beep.Callback(func() { s.ended(gen, tap) })))
	return nil
}

// Pause stops output and closes the connection.
func (s *Stream) Pause() {
	s.mu.Lock()
	s.gen++
	cancel, ctrl, dec := s.cancel, s.ctrl, s.decoder
	wasPlaying := s.state == Playing
	s.cancel, s.ctrl, s.decoder, s.tap, s.volume = nil, nil, nil, nil, nil
	s.state = Stopped
	s.mu.Unlock()

	if !wasPlaying {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
	speaker.Clear()
	if cancel != nil {
		cancel()
	}
	if dec != nil {
		dec.Close()
	}
}

// ended runs on the speaker goroutine when the server closes the stream.
func (s *Stream) ended(gen uint64, tap *Tap) {
	s.mu.Lock()
	current := s.gen == gen
	s.mu.Unlock()
	if !current {
		return
	}
	if err := tap.Err(); err != nil {
		s.logger.Warn("stream ended", "err", err)
		return
	}
	s.logger.Warn("stream ended by server")
}

// newRequest builds the stream request. Userinfo in the configured URL is
// only sent as basic auth with the use-credentials hint.
func (s *Stream) newRequest(h Hints) (*http.Request, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return nil, fmt.Errorf("parse stream url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported stream scheme %q", u.Scheme)
	}
	user := u.User
	u.User = nil

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "audio/mpeg, audio/ogg;q=0.9, */*;q=0.5")
	if h.CrossOrigin == CrossOriginUseCredentials && user != nil {
		pw, _ := user.Password()
		req.SetBasicAuth(user.Username(), pw)
	}
	return req, nil
}

// detectCodec picks a decoder from the content type, falling back to the
// URL extension.
func detectCodec(contentType, urlPath string) codec {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch mt {
		case "audio/mpeg", "audio/mp3", "audio/mpeg3", "audio/x-mpeg":
			return codecMP3
		case "audio/ogg", "application/ogg", "audio/vorbis", "audio/x-vorbis+ogg":
			return codecVorbis
		}
	}
	switch strings.ToLower(path.Ext(urlPath)) {
	case ".mp3":
		return codecMP3
	case ".ogg", ".oga":
		return codecVorbis
	}
	// Icecast mounts without an extension are MP3 in practice.
	if contentType == "" || strings.HasPrefix(contentType, "application/octet-stream") {
		return codecMP3
	}
	return codecUnknown
}

// initSpeaker initializes the speaker on first use and returns its rate.
func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, err
	}
	speakerRate = rate
	speakerInitialized = true
	return rate, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
