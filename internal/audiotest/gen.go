// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates PCM test material for the encoder
// packages.
package audiotest

import "math"

// Silence returns count zero samples.
func Silence(count int) []int16 {
	return make([]int16, count)
}

// Sine returns count samples of a sine wave at freq Hz sampled at
// sampleRate, scaled to amp (0..1 of full scale).
func Sine(sampleRate int, freq float64, amp float64, count int) []int16 {
	out := make([]int16, count)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = int16(amp * 32767.0 * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// SineF32 is Sine with float32 output normalized to [-1, 1].
func SineF32(sampleRate int, freq float64, amp float64, count int) []float32 {
	out := make([]float32, count)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(amp * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// Interleave merges equal-length left and right channels into one
// L R L R ... sequence. Panics on length mismatch; test misuse.
func Interleave(left, right []int16) []int16 {
	if len(left) != len(right) {
		panic("audiotest: channel length mismatch")
	}
	out := make([]int16, 0, len(left)*2)
	for i := range left {
		out = append(out, left[i], right[i])
	}
	return out
}
