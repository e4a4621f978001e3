// SPDX-License-Identifier: EPL-2.0

package mp3enc

import (
	"github.com/ik5/mp3enc/internal/engine"
)

// Builder is the mutable configuration stage of an encoder. It owns a
// not yet initialized engine handle: create one with NewBuilder, apply
// setters in any order (each validated independently, last write
// wins), then call Build exactly once to obtain the live Encoder.
//
// A Builder that will not be built must be released with Close. After
// Build or Close every method fails with ErrBuilderConsumed.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	h        *engine.Handle
	channels int
	consumed bool
}

// NewBuilder allocates a fresh engine parameter object with the engine
// defaults: 44.1kHz stereo, 128kbps CBR, joint stereo, quality 5.
// The returned error is ErrHandleAllocation when the engine cannot
// allocate the object; this is the only failure mode.
func NewBuilder() (*Builder, error) {
	h := engine.New()
	if h == nil {
		return nil, ErrHandleAllocation
	}
	return &Builder{h: h, channels: h.NumChannels()}, nil
}

// usable rejects calls on a consumed Builder.
func (b *Builder) usable() error {
	if b.consumed || b.h == nil {
		return ErrBuilderConsumed
	}
	return nil
}

// SetNumChannels sets the input channel count, 1 (mono) or 2 (stereo).
func (b *Builder) SetNumChannels(n uint8) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetNumChannels(int(n)); code < 0 {
		return setterError("num_channels", ErrInvalidValue)
	}
	b.channels = int(n)
	return nil
}

// SetSampleRate sets the input sample rate in Hz. The engine accepts
// the MPEG rate table: 8000, 11025, 12000, 16000, 22050, 24000, 32000,
// 44100 and 48000.
func (b *Builder) SetSampleRate(hz uint32) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetInSampleRate(int(hz)); code < 0 {
		return setterError("sample_rate", ErrInvalidValue)
	}
	return nil
}

// SetBitrate sets the CBR bitrate. Compatibility with the sample rate
// is checked by Build.
func (b *Builder) SetBitrate(brate Bitrate) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetBitrate(int(brate)); code < 0 {
		return setterError("brate", ErrInvalidValue)
	}
	return nil
}

// SetMode sets the MPEG channel mode. ModeDualChannel is rejected with
// ErrUnsupported.
func (b *Builder) SetMode(mode Mode) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetMode(int(mode)); code < 0 {
		if mode == ModeDualChannel {
			return setterError("mode", ErrUnsupported)
		}
		return setterError("mode", ErrInvalidValue)
	}
	return nil
}

// SetQuality sets the encode quality, QualityBest through
// QualityWorst.
func (b *Builder) SetQuality(q Quality) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetQuality(int(q)); code < 0 {
		return setterError("quality", ErrInvalidValue)
	}
	return nil
}

// SetVBRQuality sets the VBR quality knob.
func (b *Builder) SetVBRQuality(q Quality) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetVBRQuality(int(q)); code < 0 {
		return setterError("vbr_quality", ErrInvalidValue)
	}
	return nil
}

// SetVBRMode sets the bitrate strategy. The engine is CBR only, so
// every mode other than VBROff fails with ErrUnsupported.
func (b *Builder) SetVBRMode(mode VBRMode) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetVBR(int(mode)); code < 0 {
		if mode == VBROff || mode < VBROff || mode > VBRMTRH {
			return setterError("vbr_mode", ErrInvalidValue)
		}
		return setterError("vbr_mode", ErrUnsupported)
	}
	return nil
}

// SetWriteVBRTag records whether a VBR info header is requested.
func (b *Builder) SetWriteVBRTag(v bool) error {
	if err := b.usable(); err != nil {
		return err
	}
	if code := b.h.SetWriteVBRTag(v); code < 0 {
		return setterError("write_vbr_tag", ErrInvalidValue)
	}
	return nil
}

// SetID3Tag stores stream metadata to be emitted by a gap flush. Each
// field is independently length capped by the engine; an oversized
// field rejects the whole tag and stores nothing.
func (b *Builder) SetID3Tag(tag ID3Tag) error {
	if err := b.usable(); err != nil {
		return err
	}
	code := b.h.SetID3Tag(tag.Title, tag.Artist, tag.Album, tag.Year, tag.Comment)
	if code < 0 {
		return setterError("id3_tag", ErrInvalidValue)
	}
	return nil
}

// Build performs the engine's cross-field validation and
// initialization, consuming the Builder. On success the returned
// Encoder holds sole ownership of the live engine handle. On failure
// the engine object is released, a *BuildError is returned and the
// Builder cannot be reused; start over with a fresh one.
func (b *Builder) Build() (*Encoder, error) {
	if err := b.usable(); err != nil {
		return nil, err
	}

	h := b.h
	b.h = nil
	b.consumed = true

	if code := h.InitParams(); code < 0 {
		h.Close()
		return nil, buildError(code)
	}
	return &Encoder{h: h, channels: b.channels}, nil
}

// Close releases the engine handle of a Builder that was never built.
// Idempotent; calling it after Build is a no-op.
func (b *Builder) Close() error {
	if b.consumed || b.h == nil {
		return nil
	}
	b.h.Close()
	b.h = nil
	b.consumed = true
	return nil
}
