// SPDX-License-Identifier: EPL-2.0

package mp3enc

import (
	"errors"
	"fmt"

	"github.com/ik5/mp3enc/internal/engine"
)

// Sentinel errors returned, directly or wrapped, by the package. Match
// against them with errors.Is.
var (
	// ErrHandleAllocation indicates the engine parameter object could
	// not be allocated. The only failure mode of NewBuilder.
	ErrHandleAllocation = errors.New("mp3enc: engine handle allocation failed")

	// ErrBuilderConsumed indicates use of a Builder after Build or Close.
	ErrBuilderConsumed = errors.New("mp3enc: builder already consumed")

	// ErrInvalidValue indicates a configuration value outside the range
	// the engine accepts.
	ErrInvalidValue = errors.New("mp3enc: invalid value")

	// ErrUnsupported indicates a configuration value the engine
	// recognizes but cannot serve (e.g. VBR modes, dual channel).
	ErrUnsupported = errors.New("mp3enc: unsupported value")

	// ErrBadBitrate indicates a bitrate incompatible with the rest of
	// the configuration.
	ErrBadBitrate = errors.New("mp3enc: bad bitrate")

	// ErrBadSampleRate indicates a sample rate outside the MPEG table.
	ErrBadSampleRate = errors.New("mp3enc: bad sample rate")

	// ErrNoMem indicates an engine allocation failure.
	ErrNoMem = errors.New("mp3enc: engine allocation failure")

	// ErrInternal indicates an unexpected engine failure. Fatal to the
	// Encoder instance; no partial output is valid.
	ErrInternal = errors.New("mp3enc: internal engine error")

	// ErrNotInitialized indicates an encode call on an engine that was
	// never brought up. Cannot happen for Encoders obtained from Build.
	ErrNotInitialized = errors.New("mp3enc: encoder not initialized")

	// ErrPsychoAcoustic indicates a psychoacoustic failure inside the
	// engine.
	ErrPsychoAcoustic = errors.New("mp3enc: psycho acoustic problems")

	// ErrBufferTooSmall indicates the output region is smaller than the
	// worst case bound for the call. Size encode buffers with
	// MaxRequiredBufferSize and flush buffers with FlushBufferSize.
	ErrBufferTooSmall = errors.New("mp3enc: output buffer too small")

	// ErrUseAfterFlush indicates Encode or a second Flush on an Encoder
	// whose stream was already finalized.
	ErrUseAfterFlush = errors.New("mp3enc: encoder already flushed")

	// ErrEncoderClosed indicates use of an Encoder after Close.
	ErrEncoderClosed = errors.New("mp3enc: encoder closed")
)

// SetterError reports a configuration value rejected by the engine.
// The Builder stays usable; retry with a different value.
type SetterError struct {
	// Param is the rejected parameter name.
	Param string
	// Err is ErrInvalidValue or ErrUnsupported.
	Err error
}

func (e *SetterError) Error() string {
	return fmt.Sprintf("mp3enc: set %s: %v", e.Param, e.Err)
}

func (e *SetterError) Unwrap() error { return e.Err }

// BuildError reports a failed Build. The Builder and its half
// configured engine object are discarded; start over with a fresh
// Builder.
type BuildError struct {
	// Code is the raw engine result code.
	Code int
	// Err classifies the failure.
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("mp3enc: build: %v (code=%d)", e.Err, e.Code)
}

func (e *BuildError) Unwrap() error { return e.Err }

// EncodeError reports an engine failure during Encode or Flush. Fatal
// to the Encoder instance.
type EncodeError struct {
	// Code is the raw engine result code.
	Code int
	// Err classifies the failure.
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("mp3enc: encode: %v (code=%d)", e.Err, e.Code)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// InputShapeError reports PCM input whose layout is inconsistent:
// dual-channel slices of different lengths, or an interleaved slice
// whose length does not divide by the channel count. Detected before
// any engine call.
type InputShapeError struct {
	Reason string
}

func (e *InputShapeError) Error() string {
	return "mp3enc: input shape: " + e.Reason
}

// ChannelMismatchError reports input whose channel count disagrees
// with the Encoder configuration.
type ChannelMismatchError struct {
	Input      int
	Configured int
}

func (e *ChannelMismatchError) Error() string {
	return fmt.Sprintf("mp3enc: input has %d channels, encoder configured for %d",
		e.Input, e.Configured)
}

// setterError builds the rejection for one parameter. Call sites pick
// ErrInvalidValue for out-of-range values and ErrUnsupported for
// values the engine recognizes but cannot serve.
func setterError(param string, err error) error {
	return &SetterError{Param: param, Err: err}
}

// buildError translates a negative InitParams code.
func buildError(code int) error {
	err := ErrInternal
	switch code {
	case engine.CodeBadBitrate:
		err = ErrBadBitrate
	case engine.CodeBadSampleFreq:
		err = ErrBadSampleRate
	case engine.CodeNoMem:
		err = ErrNoMem
	case engine.CodeGeneric:
		err = ErrInvalidValue
	}
	return &BuildError{Code: code, Err: err}
}

// encodeError translates a negative encode/flush code.
func encodeError(code int) error {
	err := ErrInternal
	switch code {
	case engine.CodeBufferTooSmall:
		err = ErrBufferTooSmall
	case engine.CodeEncNoMem:
		err = ErrNoMem
	case engine.CodeNotInitialized:
		err = ErrNotInitialized
	case engine.CodePsychoAcoustic:
		err = ErrPsychoAcoustic
	}
	return &EncodeError{Code: code, Err: err}
}
