// SPDX-License-Identifier: EPL-2.0

package mp3enc

import "github.com/ik5/mp3enc/internal/engine"

// Bitrate enumerates the CBR bitrates accepted by SetBitrate, in kbps.
type Bitrate int

const (
	Kbps8   Bitrate = 8
	Kbps16  Bitrate = 16
	Kbps24  Bitrate = 24
	Kbps32  Bitrate = 32
	Kbps40  Bitrate = 40
	Kbps48  Bitrate = 48
	Kbps64  Bitrate = 64
	Kbps80  Bitrate = 80
	Kbps96  Bitrate = 96
	Kbps112 Bitrate = 112
	Kbps128 Bitrate = 128
	Kbps160 Bitrate = 160
	Kbps192 Bitrate = 192
	Kbps224 Bitrate = 224
	Kbps256 Bitrate = 256
	Kbps320 Bitrate = 320
)

// Quality is the encode quality knob, ordered from best (0) to
// worst (9).
type Quality int

const (
	QualityBest        Quality = 0
	QualitySecondBest  Quality = 1
	QualityNearBest    Quality = 2
	QualityVeryNice    Quality = 3
	QualityNice        Quality = 4
	QualityGood        Quality = 5
	QualityDecent      Quality = 6
	QualityOk          Quality = 7
	QualitySecondWorst Quality = 8
	QualityWorst       Quality = 9
)

// Mode is the MPEG channel mode.
type Mode int

const (
	ModeStereo      Mode = Mode(engine.ModeStereo)
	ModeJointStereo Mode = Mode(engine.ModeJointStereo)
	// ModeDualChannel is part of the MPEG value set but not supported
	// by the engine; SetMode rejects it with ErrUnsupported.
	ModeDualChannel Mode = Mode(engine.ModeDualChannel)
	ModeMono        Mode = Mode(engine.ModeMono)
	// ModeNotSet lets the engine pick a mode from the channel count.
	ModeNotSet Mode = Mode(engine.ModeNotSet)
)

// VBRMode enumerates the variable bitrate strategies of the native
// value set. The wrapped engine is CBR only, so every mode other than
// VBROff is rejected by SetVBRMode with ErrUnsupported.
type VBRMode int

const (
	VBROff  VBRMode = VBRMode(engine.VBROff)
	VBRMT   VBRMode = VBRMode(engine.VBRMT)
	VBRRH   VBRMode = VBRMode(engine.VBRRH)
	VBRABR  VBRMode = VBRMode(engine.VBRABR)
	VBRMTRH VBRMode = VBRMode(engine.VBRMTRH)
)

// ID3Tag holds textual stream metadata, emitted as an ID3v1 trailer by
// a gap flush. Fields are raw bytes passed through to the engine; each
// is independently capped at its ID3v1 slot width (30 bytes for title,
// artist, album and comment, 4 for year).
type ID3Tag struct {
	Title   []byte
	Artist  []byte
	Album   []byte
	Year    []byte
	Comment []byte
}

// FlushMode selects how Flush finalizes the stream.
type FlushMode int

const (
	// FlushGap pads the last frame with silence and appends the ID3v1
	// trailer when a tag was configured.
	FlushGap FlushMode = iota
	// FlushNoGap pads the last frame but writes no trailing metadata,
	// so consecutive streams concatenate without gap markers.
	FlushNoGap
)
