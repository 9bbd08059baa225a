package util

import (
	"math"

	"github.com/fogleman/ease"
)

// Clamp01 limits v to the unit interval.
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// GenerateLut samples curve at length evenly spaced points over [0, 1].
func GenerateLut(length int, curve func(float64) float64) []float64 {
	if curve == nil {
		curve = ease.Linear
	}
	if length < 2 {
		return []float64{curve(1)}
	}

	lut := make([]float64, length)
	for i := 0; i < length; i++ {
		lut[i] = curve(float64(i) / float64(length-1))
	}
	return lut
}

// SampleLut reads the entry closest to position t in [0, 1].
func SampleLut(lut []float64, t float64) float64 {
	if len(lut) == 0 {
		return t
	}
	i := int(math.Round(Clamp01(t) * float64(len(lut)-1)))
	return lut[i]
}
