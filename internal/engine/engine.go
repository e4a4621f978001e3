// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"bytes"

	mp3 "github.com/braheezy/shine-mp3/pkg/mp3"
)

// Result codes for allocation, configuration and initialization calls.
// Zero means success; the negative values follow the native encoder ABI.
const (
	CodeOK            = 0
	CodeGeneric       = -1
	CodeNoMem         = -10
	CodeBadBitrate    = -11
	CodeBadSampleFreq = -12
	CodeInternal      = -13
)

// Result codes for the encode and flush entry points. A non-negative
// value is the number of bytes written to the output region.
const (
	CodeBufferTooSmall = -1
	CodeEncNoMem       = -2
	CodeNotInitialized = -3
	CodePsychoAcoustic = -4
	CodeEncFailed      = -5
)

// Channel mode values accepted by SetMode.
const (
	ModeStereo      = 0
	ModeJointStereo = 1
	ModeDualChannel = 2
	ModeMono        = 3
	ModeNotSet      = 4
)

// VBR mode values accepted by SetVBR.
const (
	VBROff  = 0
	VBRMT   = 1
	VBRRH   = 2
	VBRABR  = 3
	VBRMTRH = 4
)

// ID3v1 field byte caps enforced by SetID3Tag.
const (
	MaxTagTitle   = 30
	MaxTagArtist  = 30
	MaxTagAlbum   = 30
	MaxTagYear    = 4
	MaxTagComment = 30

	id3v1Size = 128
)

// Samples per channel in one MP3 frame.
const (
	frameSamplesMPEG1 = 1152
	frameSamplesMPEG2 = 576
)

const (
	mpegNone = iota
	mpeg1
	mpeg2
	mpeg25
)

type id3v1 struct {
	title   []byte
	artist  []byte
	album   []byte
	year    []byte
	comment []byte
}

// Handle is one engine instance. It is allocated unconfigured by New,
// mutated through the Set* calls, finalized once by InitParams and
// released by Close. A Handle must not be shared between goroutines.
type Handle struct {
	sampleRate  int
	channels    int
	bitrate     int
	quality     int
	vbrQuality  int
	mode        int
	vbr         int
	writeVBRTag bool
	tag         *id3v1

	enc          *mp3.Encoder
	pending      []int16 // interleaved stereo samples not yet forming a whole frame
	scratch      bytes.Buffer
	frameSamples int

	initialized bool
	closed      bool
}

// New allocates a Handle with the engine defaults: 44.1kHz stereo,
// 128kbps CBR, joint stereo, quality 5.
func New() *Handle {
	return &Handle{
		sampleRate: 44100,
		channels:   2,
		bitrate:    128,
		quality:    5,
		vbrQuality: 5,
		mode:       ModeJointStereo,
		vbr:        VBROff,
	}
}

// sampleRateVersion maps an input sample rate to its MPEG version, or
// mpegNone when the rate is outside the supported table.
func sampleRateVersion(rate int) int {
	switch rate {
	case 32000, 44100, 48000:
		return mpeg1
	case 16000, 22050, 24000:
		return mpeg2
	case 8000, 11025, 12000:
		return mpeg25
	}
	return mpegNone
}

// validBitrate reports whether kbps is a member of the CBR table.
func validBitrate(kbps int) bool {
	switch kbps {
	case 8, 16, 24, 32, 40, 48, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320:
		return true
	}
	return false
}

// bitrateLegal reports whether kbps may be combined with the sample
// rate. MPEG-1 streams start at 32kbps, MPEG-2 and MPEG-2.5 streams
// top out at 160kbps. On top of the version limits the frame density
// is capped: a Layer III frame carries 125*kbps/rate bytes per sample
// in every MPEG version, and anything past 1.25 bytes per sample would
// outrun output regions sized by the documented worst case.
func bitrateLegal(version, rate, kbps int) bool {
	if !validBitrate(kbps) {
		return false
	}
	if kbps*100 > rate {
		return false
	}
	switch version {
	case mpeg1:
		return kbps >= 32
	case mpeg2, mpeg25:
		return kbps <= 160
	}
	return false
}

// mutable reports whether configuration calls are still accepted.
func (h *Handle) mutable() bool {
	return !h.closed && !h.initialized
}

// live reports whether encode entry points are usable.
func (h *Handle) live() bool {
	return h.initialized && !h.closed
}

// SetInSampleRate sets the input PCM sample rate in Hz.
func (h *Handle) SetInSampleRate(rate int) int {
	if !h.mutable() {
		return CodeGeneric
	}
	if sampleRateVersion(rate) == mpegNone {
		return CodeBadSampleFreq
	}
	h.sampleRate = rate
	return CodeOK
}

// SetNumChannels sets the input channel count, 1 or 2.
func (h *Handle) SetNumChannels(n int) int {
	if !h.mutable() {
		return CodeGeneric
	}
	if n != 1 && n != 2 {
		return CodeGeneric
	}
	h.channels = n
	return CodeOK
}

// SetBitrate sets the CBR bitrate in kbps. Compatibility with the
// sample rate is checked later by InitParams.
func (h *Handle) SetBitrate(kbps int) int {
	if !h.mutable() {
		return CodeGeneric
	}
	if !validBitrate(kbps) {
		return CodeBadBitrate
	}
	h.bitrate = kbps
	return CodeOK
}

// SetMode sets the MPEG channel mode. Dual channel is not supported.
func (h *Handle) SetMode(mode int) int {
	if !h.mutable() {
		return CodeGeneric
	}
	switch mode {
	case ModeStereo, ModeJointStereo, ModeMono, ModeNotSet:
		h.mode = mode
		return CodeOK
	}
	return CodeGeneric
}

// SetQuality sets the encode quality knob, 0 (best) to 9 (worst). The
// shine backend has no quality/speed trade-off, so the value is
// recorded for API parity only.
func (h *Handle) SetQuality(q int) int {
	if !h.mutable() {
		return CodeGeneric
	}
	if q < 0 || q > 9 {
		return CodeGeneric
	}
	h.quality = q
	return CodeOK
}

// SetVBRQuality sets the VBR quality knob, 0 (best) to 9 (worst).
func (h *Handle) SetVBRQuality(q int) int {
	if !h.mutable() {
		return CodeGeneric
	}
	if q < 0 || q > 9 {
		return CodeGeneric
	}
	h.vbrQuality = q
	return CodeOK
}

// SetVBR sets the VBR mode. This engine is CBR only, so every mode
// other than VBROff is rejected.
func (h *Handle) SetVBR(mode int) int {
	if !h.mutable() {
		return CodeGeneric
	}
	if mode != VBROff {
		return CodeGeneric
	}
	h.vbr = mode
	return CodeOK
}

// SetWriteVBRTag records whether a VBR info header was requested. The
// engine emits plain CBR frames and never writes one; recorded for API
// parity.
func (h *Handle) SetWriteVBRTag(v bool) int {
	if !h.mutable() {
		return CodeGeneric
	}
	h.writeVBRTag = v
	return CodeOK
}

// SetID3Tag stores ID3v1 metadata to be appended by EncodeFlush. Each
// field is capped at its ID3v1 slot width.
func (h *Handle) SetID3Tag(title, artist, album, year, comment []byte) int {
	if !h.mutable() {
		return CodeGeneric
	}
	if len(title) > MaxTagTitle || len(artist) > MaxTagArtist ||
		len(album) > MaxTagAlbum || len(year) > MaxTagYear ||
		len(comment) > MaxTagComment {
		return CodeGeneric
	}
	h.tag = &id3v1{
		title:   bytes.Clone(title),
		artist:  bytes.Clone(artist),
		album:   bytes.Clone(album),
		year:    bytes.Clone(year),
		comment: bytes.Clone(comment),
	}
	return CodeOK
}

// InitParams performs cross-field validation and brings the Handle
// into its live state. After a successful InitParams the Set* calls
// are rejected.
//
// The backend is always driven as a stereo encoder: shine advances
// mono input by the stereo stride, so single-channel PCM is encoded as
// dual mono instead.
func (h *Handle) InitParams() int {
	if !h.mutable() {
		return CodeGeneric
	}
	if h.channels != 1 && h.channels != 2 {
		return CodeGeneric
	}
	version := sampleRateVersion(h.sampleRate)
	if version == mpegNone {
		return CodeBadSampleFreq
	}
	if !bitrateLegal(version, h.sampleRate, h.bitrate) {
		return CodeBadBitrate
	}

	if version == mpeg1 {
		h.frameSamples = frameSamplesMPEG1
	} else {
		h.frameSamples = frameSamplesMPEG2
	}

	h.enc = mp3.NewEncoder(h.sampleRate, 2)
	h.enc.Mpeg.Bitrate = int64(h.bitrate)
	h.initialized = true
	return CodeOK
}

// InSampleRate returns the configured input sample rate.
func (h *Handle) InSampleRate() int { return h.sampleRate }

// NumChannels returns the configured input channel count.
func (h *Handle) NumChannels() int { return h.channels }

// Bitrate returns the configured CBR bitrate in kbps.
func (h *Handle) Bitrate() int { return h.bitrate }

// FrameSamples returns the per-channel sample count of one MP3 frame
// for the configured sample rate. Valid after InitParams.
func (h *Handle) FrameSamples() int { return h.frameSamples }

// frameBytes returns the byte size of one encoded frame at the
// configured rate and bitrate, including the padding slot.
func (h *Handle) frameBytes() int {
	return h.frameSamples/8*h.bitrate*1000/h.sampleRate + 1
}

// outCapacity reports whether out can hold the whole frames that would
// drain after extra interleaved samples join the pending buffer.
func (h *Handle) outCapacity(extra int, out []byte) bool {
	pass := h.frameSamples * 2
	frames := (len(h.pending) + extra) / pass
	return frames*h.frameBytes() <= len(out)
}

// EncodeBuffer consumes separate-channel PCM. A nil right slice selects
// the mono path, matching the native ABI where the right pointer is
// null for single-channel input. When both slices are present, the
// shorter length wins.
//
// A call rejected with CodeBufferTooSmall leaves the pending buffer
// untouched; it may be retried with the same samples and a larger
// output region.
func (h *Handle) EncodeBuffer(left, right []int16, out []byte) int {
	if !h.live() {
		return CodeNotInitialized
	}
	n := len(left)
	if right != nil && len(right) < n {
		n = len(right)
	}
	if !h.outCapacity(2*n, out) {
		return CodeBufferTooSmall
	}
	for i := 0; i < n; i++ {
		l := left[i]
		r := l
		if right != nil {
			r = right[i]
		}
		h.pending = append(h.pending, l, r)
	}
	return h.drain(out, false)
}

// EncodeBufferInterleaved consumes two-channel PCM laid out as
// alternating left/right samples.
func (h *Handle) EncodeBufferInterleaved(samples []int16, out []byte) int {
	if !h.live() {
		return CodeNotInitialized
	}
	if len(samples)%2 != 0 {
		return CodeGeneric
	}
	if !h.outCapacity(len(samples), out) {
		return CodeBufferTooSmall
	}
	h.pending = append(h.pending, samples...)
	return h.drain(out, false)
}

// drain encodes every whole frame sitting in the pending buffer into
// out. With final set, the tail is zero padded up to a frame boundary
// first so nothing stays buffered.
func (h *Handle) drain(out []byte, final bool) int {
	pass := h.frameSamples * 2
	n := (len(h.pending) / pass) * pass
	if final && len(h.pending) > n {
		for len(h.pending)%pass != 0 {
			h.pending = append(h.pending, 0)
		}
		n = len(h.pending)
	}

	h.scratch.Reset()
	if n > 0 {
		if err := h.enc.Write(&h.scratch, h.pending[:n]); err != nil {
			return CodeEncFailed
		}
	}
	if h.scratch.Len() > len(out) {
		// Capacity is checked before frames are submitted, so an
		// overrun here means the stream state is unrecoverable; the
		// buffered tail is dropped rather than re-encoded.
		h.pending = h.pending[:0]
		return CodeBufferTooSmall
	}
	copy(out, h.scratch.Bytes())
	h.pending = h.pending[:copy(h.pending, h.pending[n:])]
	return h.scratch.Len()
}

// EncodeFlush emits the remaining buffered audio, zero padded to a
// whole frame, followed by the ID3v1 trailer when a tag was stored.
func (h *Handle) EncodeFlush(out []byte) int {
	if !h.live() {
		return CodeNotInitialized
	}
	if len(h.pending) > 0 && h.frameBytes() > len(out) {
		return CodeBufferTooSmall
	}
	n := h.drain(out, true)
	if n < 0 {
		return n
	}
	if h.tag != nil {
		if n+id3v1Size > len(out) {
			return CodeBufferTooSmall
		}
		writeID3v1(out[n:n+id3v1Size], h.tag)
		n += id3v1Size
	}
	return n
}

// EncodeFlushNoGap emits the remaining buffered audio without any
// trailing metadata, so consecutive streams concatenate gaplessly.
func (h *Handle) EncodeFlushNoGap(out []byte) int {
	if !h.live() {
		return CodeNotInitialized
	}
	if len(h.pending) > 0 && h.frameBytes() > len(out) {
		return CodeBufferTooSmall
	}
	return h.drain(out, true)
}

// Close releases the Handle. It is idempotent; once closed the Handle
// never becomes usable again.
func (h *Handle) Close() int {
	h.closed = true
	h.initialized = false
	h.enc = nil
	h.pending = nil
	h.scratch.Reset()
	return CodeOK
}

// writeID3v1 renders the 128 byte ID3v1 trailer into dst. Unused field
// bytes are zero, the genre byte is 0xFF (none).
func writeID3v1(dst []byte, tag *id3v1) {
	for i := range dst {
		dst[i] = 0
	}
	copy(dst[0:3], "TAG")
	copy(dst[3:33], tag.title)
	copy(dst[33:63], tag.artist)
	copy(dst[63:93], tag.album)
	copy(dst[93:97], tag.year)
	copy(dst[97:127], tag.comment)
	dst[127] = 0xFF
}
