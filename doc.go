// SPDX-License-Identifier: EPL-2.0

// Package mp3enc provides a safe, ergonomic interface over a C-style
// PCM to MP3 encoder engine.
//
// The package manages encoder configuration, output buffer accounting,
// mono / dual-channel / interleaved PCM ingestion and the end-of-stream
// flush protocol, so callers never touch the engine's stateful handle
// directly.
//
// # Quick Start
//
//	builder, err := mp3enc.NewBuilder()
//	if err != nil {
//	    // handle error
//	}
//	builder.SetNumChannels(2)
//	builder.SetSampleRate(44100)
//	builder.SetBitrate(mp3enc.Kbps192)
//	builder.SetQuality(mp3enc.QualityBest)
//
//	encoder, err := builder.Build()
//	if err != nil {
//	    // handle error
//	}
//	defer encoder.Close()
//
//	input, _ := mp3enc.NewInterleavedPcm(samples) // []int16, L R L R ...
//	out := make([]byte, mp3enc.MaxRequiredBufferSize(input.Frames()))
//	n, err := encoder.Encode(input, out)
//	// out[:n] is MP3 data
//
//	tail := make([]byte, mp3enc.FlushBufferSize)
//	n, err = encoder.Flush(mp3enc.FlushNoGap, tail)
//	// tail[:n] completes the stream
//
// # Two-Phase Construction
//
// Configuration and encoding are separate types connected by one
// consuming transition. A Builder is a mutable parameter bag whose
// setters are each validated independently by the engine; Build runs
// the cross-field validation and engine initialization and produces an
// immutable live Encoder, after which the Builder is spent. An encoder
// can therefore never be used before successful initialization, and a
// live encoder can never be reconfigured.
//
// SetQuality, SetVBRQuality and SetWriteVBRTag are validated and
// recorded like every other knob, but the wrapped engine has no
// quality/speed trade-off and emits plain CBR frames, so they do not
// change its output.
//
// # Input Layouts
//
// Three PCM shapes are accepted, unified behind the Input interface:
//
//   - MonoPcm: one ordered sample sequence
//   - DualPcm: separate left and right sequences of equal length
//   - InterleavedPcm: one sequence of alternating L/R samples
//
// Each shape carries either int16 or float32 samples; float32 input is
// converted to 16-bit PCM by clamp and scale before it reaches the
// engine. Shape violations (mismatched dual lengths, odd interleaved
// length) are rejected at construction, before any engine call.
//
// # Buffer Contract
//
// Callers own the output memory. Size encode buffers with
// MaxRequiredBufferSize and flush buffers with FlushBufferSize; both
// bounds are worst cases that never understate. Encode and Flush check
// the capacity up front and fail with ErrBufferTooSmall rather than
// trusting the caller, so an undersized buffer can never corrupt or
// truncate output. On success only the returned count of leading bytes
// is valid MP3 data.
//
// # Finishing a Stream
//
// Exactly one Flush ends a stream: FlushGap pads the final frame and
// appends the ID3v1 trailer when a tag was set, FlushNoGap emits no
// trailing metadata so streams can be concatenated gaplessly. After the
// flush, the Encoder only accepts Close.
//
// # Errors
//
// All failures are returned, never logged and never retried
// internally. Sentinels (ErrBufferTooSmall, ErrUseAfterFlush, ...) are
// matchable with errors.Is; typed wrappers (SetterError, BuildError,
// EncodeError, InputShapeError, ChannelMismatchError) carry detail and
// unwrap to the sentinels.
//
// # Concurrency
//
// Builders and Encoders are synchronous, single-threaded objects; they
// hold no locks and must not be shared between goroutines without
// external serialization. The package never retains caller buffers
// past a call's return.
package mp3enc
