package main

import (
	"fmt"

	"github.com/dh1tw/gosamplerate"
)

const (
	resampleMaxRatio  = 1.0 * 16
	resampleMinRatio  = 1.0 / 16
	resampleConverter = gosamplerate.SRC_SINC_MEDIUM_QUALITY
)

// resampleMono converts a mono buffer from one sample rate to another.
func resampleMono(in []float32, fromRate, toRate int) ([]float32, error) {
	if fromRate <= 0 || toRate <= 0 {
		return nil, fmt.Errorf("invalid resample rates %d -> %d", fromRate, toRate)
	}
	if fromRate == toRate || len(in) == 0 {
		return in, nil
	}
	ratio := float64(toRate) / float64(fromRate)
	if ratio < resampleMinRatio || ratio > resampleMaxRatio {
		return nil, fmt.Errorf("resample ratio %g out of range [%g,%g]", ratio, resampleMinRatio, resampleMaxRatio)
	}
	out, err := gosamplerate.Simple(in, ratio, 1, resampleConverter)
	if err != nil {
		return nil, fmt.Errorf("resample %d -> %d: %w", fromRate, toRate, err)
	}
	return out, nil
}
