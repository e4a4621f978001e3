// SPDX-License-Identifier: EPL-2.0

package mp3enc

import (
	"github.com/ik5/mp3enc/internal/engine"
	"github.com/ik5/mp3enc/utils"
)

// Sample is the set of PCM sample representations the encoder accepts.
// int16 samples pass through to the engine unchanged; float32 samples
// in [-1, 1] are converted by clamp-and-scale at the call boundary,
// since the engine consumes 16-bit PCM only. Sample kinds are never
// mixed within one encode call.
type Sample interface {
	int16 | float32
}

// Input is one chunk of PCM audio in a shape Encoder.Encode can
// consume. The concrete variants are MonoPcm, DualPcm and
// InterleavedPcm; each dispatches to the matching engine entry point.
type Input interface {
	// Frames returns the number of per-channel samples represented.
	Frames() int
	// Channels returns 1 for mono input, 2 otherwise.
	Channels() int

	encode(h *engine.Handle, out []byte) int
}

// toInt16 normalizes a sample slice to the engine's 16-bit form.
func toInt16[T Sample](samples []T) []int16 {
	switch s := any(samples).(type) {
	case []int16:
		return s
	case []float32:
		out := make([]int16, len(s))
		for i, v := range s {
			out[i] = utils.Float32ToInt16(v)
		}
		return out
	}
	return nil
}

// MonoPcm is single-channel PCM. The frame count equals the slice
// length.
type MonoPcm[T Sample] struct {
	samples []T
}

// NewMonoPcm wraps a single ordered sample sequence.
func NewMonoPcm[T Sample](samples []T) MonoPcm[T] {
	return MonoPcm[T]{samples: samples}
}

func (p MonoPcm[T]) Frames() int   { return len(p.samples) }
func (p MonoPcm[T]) Channels() int { return 1 }

func (p MonoPcm[T]) encode(h *engine.Handle, out []byte) int {
	return h.EncodeBuffer(toInt16(p.samples), nil, out)
}

// DualPcm is two-channel PCM held as separate left and right
// sequences of equal length.
type DualPcm[T Sample] struct {
	left  []T
	right []T
}

// NewDualPcm wraps separate left and right channels. The lengths must
// match; otherwise an *InputShapeError is returned before any engine
// call.
func NewDualPcm[T Sample](left, right []T) (DualPcm[T], error) {
	if len(left) != len(right) {
		return DualPcm[T]{}, &InputShapeError{
			Reason: "left and right channel lengths differ",
		}
	}
	return DualPcm[T]{left: left, right: right}, nil
}

func (p DualPcm[T]) Frames() int   { return len(p.left) }
func (p DualPcm[T]) Channels() int { return 2 }

func (p DualPcm[T]) encode(h *engine.Handle, out []byte) int {
	return h.EncodeBuffer(toInt16(p.left), toInt16(p.right), out)
}

// InterleavedPcm is two-channel PCM held as one sequence of
// alternating left/right samples. The frame count is half the slice
// length.
type InterleavedPcm[T Sample] struct {
	samples []T
}

// NewInterleavedPcm wraps an interleaved two-channel sequence. The
// total length must be even; otherwise an *InputShapeError is returned
// before any engine call.
func NewInterleavedPcm[T Sample](samples []T) (InterleavedPcm[T], error) {
	if len(samples)%2 != 0 {
		return InterleavedPcm[T]{}, &InputShapeError{
			Reason: "interleaved length not divisible by channel count",
		}
	}
	return InterleavedPcm[T]{samples: samples}, nil
}

func (p InterleavedPcm[T]) Frames() int   { return len(p.samples) / 2 }
func (p InterleavedPcm[T]) Channels() int { return 2 }

func (p InterleavedPcm[T]) encode(h *engine.Handle, out []byte) int {
	return h.EncodeBufferInterleaved(toInt16(p.samples), out)
}
