package player

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// mp3Decoder streams a live MP3 body through llehouerou/go-mp3.
type mp3Decoder struct {
	decoder *mp3.Decoder
	closer  io.Closer
	err     error
	readBuf []byte
}

func decodeMP3(rc io.ReadCloser) (beep.StreamCloser, beep.Format, error) {
	decoder, err := mp3.NewDecoder(rc)
	if err != nil {
		return nil, beep.Format{}, err
	}

	sampleRate := decoder.SampleRate()
	if sampleRate == 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 2, // go-mp3 always outputs stereo
		Precision:   2,
	}
	return &mp3Decoder{
		decoder: decoder,
		closer:  rc,
		readBuf: make([]byte, 8192),
	}, format, nil
}

func (d *mp3Decoder) Stream(samples [][2]float64) (int, bool) {
	if d.err != nil {
		return 0, false
	}

	// 4 bytes per frame (stereo 16-bit)
	need := len(samples) * 4
	if len(d.readBuf) < need {
		d.readBuf = make([]byte, need)
	}

	read, err := io.ReadFull(d.decoder, d.readBuf[:need])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		d.err = err
		return 0, false
	}

	n := read / 4
	if n == 0 {
		return 0, false
	}
	for i := range n {
		off := i * 4
		left := int16(binary.LittleEndian.Uint16(d.readBuf[off:]))    //nolint:gosec // audio samples
		right := int16(binary.LittleEndian.Uint16(d.readBuf[off+2:])) //nolint:gosec // audio samples
		samples[i][0] = float64(left) / 32768.0
		samples[i][1] = float64(right) / 32768.0
	}
	return n, true
}

func (d *mp3Decoder) Err() error {
	return d.err
}

func (d *mp3Decoder) Close() error {
	return d.closer.Close()
}
