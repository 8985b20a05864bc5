package player

import (
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/oggvorbis"
)

// vorbisDecoder streams a live Ogg Vorbis body.
type vorbisDecoder struct {
	r        *oggvorbis.Reader
	closer   io.Closer
	channels int
	buf      []float32
	err      error
}

func decodeVorbis(rc io.ReadCloser) (beep.StreamCloser, beep.Format, error) {
	r, err := oggvorbis.NewReader(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}
	channels := r.Channels()
	if channels < 1 || r.SampleRate() <= 0 {
		return nil, beep.Format{}, errors.New("vorbis: invalid stream header")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(r.SampleRate()),
		NumChannels: min(channels, 2),
		Precision:   2,
	}
	return &vorbisDecoder{
		r:        r,
		closer:   rc,
		channels: channels,
	}, format, nil
}

func (d *vorbisDecoder) Stream(samples [][2]float64) (int, bool) {
	if d.err != nil {
		return 0, false
	}

	need := len(samples) * d.channels
	if len(d.buf) < need {
		d.buf = make([]float32, need)
	}

	read, err := d.r.Read(d.buf[:need])
	if err != nil && !errors.Is(err, io.EOF) {
		d.err = err
	}

	n := read / d.channels
	for i := range n {
		frame := d.buf[i*d.channels:]
		left := float64(frame[0])
		right := left
		if d.channels > 1 {
			right = float64(frame[1])
		}
		samples[i][0], samples[i][1] = left, right
	}
	return n, n > 0
}

func (d *vorbisDecoder) Err() error {
	return d.err
}

func (d *vorbisDecoder) Close() error {
	return d.closer.Close()
}
