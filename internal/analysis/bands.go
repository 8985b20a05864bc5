// Package analysis turns captured audio samples into band-level readings.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/llehouerou/radiowaves/internal/mood"
)

// Decibel range mapped onto [0,1], the defaults of a browser analyser node.
const (
	minDecibels = -100.0
	maxDecibels = -30.0
)

// Band edges in Hz.
const (
	bassLow    = 20.0
	bassHigh   = 250.0
	midHigh    = 4000.0
	trebleHigh = 16000.0
)

// Bands computes the band sample of a mono frame captured at sampleRate.
func Bands(frame []float64, sampleRate int) mood.BandSample {
	levels := spectrum(frame)
	if len(levels) < 2 || sampleRate <= 0 {
		return mood.BandSample{}
	}

	binHz := float64(sampleRate) / float64(len(frame))
	return mood.BandSample{
		Bass:    bandMean(levels, binHz, bassLow, bassHigh),
		Mid:     bandMean(levels, binHz, bassHigh, midHigh),
		Treble:  bandMean(levels, binHz, midHigh, trebleHigh),
		Overall: mean(levels[1:]),
	}
}

// spectrum returns the level in [0,1] of each bin below Nyquist.
func spectrum(frame []float64) []float64 {
	n := len(frame)
	if n < 4 {
		return nil
	}

	windowed := make([]float64, n)
	var gain float64
	for i, v := range frame {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		windowed[i] = v * w
		gain += w
	}

	bins := fft.FFTReal(windowed)
	levels := make([]float64, n/2)
	for k := 1; k < n/2; k++ {
		levels[k] = level(cmplx.Abs(bins[k]) * 2 / gain)
	}
	return levels
}

func level(magnitude float64) float64 {
	if magnitude <= 0 {
		return 0
	}
	db := 20 * math.Log10(magnitude)
	return clamp01((db - minDecibels) / (maxDecibels - minDecibels))
}

func bandMean(levels []float64, binHz, low, high float64) float64 {
	var sum float64
	count := 0
	for k := 1; k < len(levels); k++ {
		f := float64(k) * binHz
		if f < low || f >= high {
			continue
		}
		sum += levels[k]
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

func mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
