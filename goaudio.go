// SPDX-License-Identifier: EPL-2.0

package mp3enc

import (
	"github.com/go-audio/audio"

	"github.com/ik5/mp3enc/utils"
)

// FromIntBuffer adapts a go-audio integer PCM buffer into an Input.
// Mono buffers become MonoPcm, two-channel buffers InterleavedPcm;
// anything else is an *InputShapeError. Sample values are clamped to
// the int16 range, so buffers decoded from material deeper than 16
// bits saturate rather than wrap.
func FromIntBuffer(buf *audio.IntBuffer) (Input, error) {
	if buf == nil || buf.Format == nil {
		return nil, &InputShapeError{Reason: "nil buffer"}
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.IntToInt16(v)
	}

	switch buf.Format.NumChannels {
	case 1:
		return NewMonoPcm(samples), nil
	case 2:
		return NewInterleavedPcm(samples)
	}
	return nil, &InputShapeError{Reason: "more than two channels"}
}

// FromFloatBuffer adapts a go-audio float PCM buffer (normalized to
// [-1, 1]) into an Input, converting to 16-bit by clamp and scale.
func FromFloatBuffer(buf *audio.FloatBuffer) (Input, error) {
	if buf == nil || buf.Format == nil {
		return nil, &InputShapeError{Reason: "nil buffer"}
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = utils.Float64ToInt16(v)
	}

	switch buf.Format.NumChannels {
	case 1:
		return NewMonoPcm(samples), nil
	case 2:
		return NewInterleavedPcm(samples)
	}
	return nil, &InputShapeError{Reason: "more than two channels"}
}
