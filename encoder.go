// SPDX-License-Identifier: EPL-2.0

package mp3enc

import (
	"github.com/ik5/mp3enc/internal/engine"
)

// Encoder is a live, fully initialized MP3 encoder. It is obtained
// solely from Builder.Build and holds exclusive ownership of the
// engine handle until Close.
//
// Lifecycle: zero or more Encode calls, then exactly one Flush, then
// Close. Encode after Flush, and a second Flush, fail deterministically
// with ErrUseAfterFlush; any call after Close fails with
// ErrEncoderClosed. Close releases the engine handle exactly once and
// may be called repeatedly.
//
// An Encoder is not safe for concurrent use. Callers sharing one
// across goroutines must serialize Encode, Flush and Close themselves.
type Encoder struct {
	h        *engine.Handle
	channels int
	flushed  bool
	closed   bool
}

// SampleRate returns the configured input sample rate in Hz.
func (e *Encoder) SampleRate() uint32 {
	return uint32(e.h.InSampleRate())
}

// NumChannels returns the configured input channel count.
func (e *Encoder) NumChannels() uint8 {
	return uint8(e.channels)
}

// Encode consumes one chunk of PCM and writes encoded bytes into out.
//
// The input's channel count must match the configuration, and out must
// hold at least MaxRequiredBufferSize(in.Frames()) bytes; the capacity
// is checked before the engine runs, so an undersized buffer fails
// with ErrBufferTooSmall instead of truncating.
//
// On success the return value is the number of valid leading bytes
// written, possibly zero while the engine accumulates a whole frame.
// Bytes past the returned count are unspecified and must not be read
// as encoded data. Buffers are only borrowed for the duration of the
// call.
func (e *Encoder) Encode(in Input, out []byte) (int, error) {
	if e.closed {
		return 0, ErrEncoderClosed
	}
	if e.flushed {
		return 0, ErrUseAfterFlush
	}
	if in.Channels() != e.channels {
		return 0, &ChannelMismatchError{Input: in.Channels(), Configured: e.channels}
	}
	if len(out) < MaxRequiredBufferSize(in.Frames()) {
		return 0, ErrBufferTooSmall
	}

	n := in.encode(e.h, out)
	if n < 0 {
		return 0, encodeError(n)
	}
	return n, nil
}

// Flush finalizes the stream, emitting the remaining buffered audio
// and, for FlushGap with a configured ID3 tag, the metadata trailer.
// out must hold at least FlushBufferSize bytes.
//
// Exactly one Flush is valid per Encoder. After it, both Encode and a
// second Flush fail with ErrUseAfterFlush; an engine failure during
// the flush also finalizes the Encoder.
func (e *Encoder) Flush(mode FlushMode, out []byte) (int, error) {
	if e.closed {
		return 0, ErrEncoderClosed
	}
	if e.flushed {
		return 0, ErrUseAfterFlush
	}
	if len(out) < FlushBufferSize {
		return 0, ErrBufferTooSmall
	}

	var n int
	switch mode {
	case FlushNoGap:
		n = e.h.EncodeFlushNoGap(out)
	case FlushGap:
		n = e.h.EncodeFlush(out)
	default:
		return 0, ErrInvalidValue
	}

	e.flushed = true
	if n < 0 {
		return 0, encodeError(n)
	}
	return n, nil
}

// Close releases the engine handle. Safe to call more than once; only
// the first call releases anything.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	e.h.Close()
	return nil
}
