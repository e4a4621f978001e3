// SPDX-License-Identifier: EPL-2.0

package mp3enc_test

import (
	"bytes"
	"io"
	"testing"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/mp3enc"
	"github.com/ik5/mp3enc/internal/audiotest"
)

// encodeStream encodes the interleaved chunks through one Encoder and
// returns the concatenated elementary stream.
func encodeStream(t *testing.T, rate uint32, brate mp3enc.Bitrate, chunks [][]int16) []byte {
	t.Helper()

	b, err := mp3enc.NewBuilder()
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	if err := b.SetNumChannels(2); err != nil {
		t.Fatalf("SetNumChannels() error = %v", err)
	}
	if err := b.SetSampleRate(rate); err != nil {
		t.Fatalf("SetSampleRate() error = %v", err)
	}
	if err := b.SetBitrate(brate); err != nil {
		t.Fatalf("SetBitrate() error = %v", err)
	}

	enc, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	defer enc.Close()

	var stream bytes.Buffer
	for _, chunk := range chunks {
		in, err := mp3enc.NewInterleavedPcm(chunk)
		if err != nil {
			t.Fatalf("NewInterleavedPcm() error = %v", err)
		}
		out := make([]byte, mp3enc.MaxRequiredBufferSize(in.Frames()))
		n, err := enc.Encode(in, out)
		if err != nil {
			t.Fatalf("Encode() error = %v", err)
		}
		stream.Write(out[:n])
	}

	tail := make([]byte, mp3enc.FlushBufferSize)
	n, err := enc.Flush(mp3enc.FlushNoGap, tail)
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	stream.Write(tail[:n])

	return stream.Bytes()
}

func TestRoundTrip_DurationPreserved(t *testing.T) {
	t.Parallel()

	const (
		rate        = 44100
		chunkFrames = 1152
		chunkCount  = 2
	)

	// Two chunks of silence, then flush: the decoded duration must
	// match the input frame count within one MP3 frame of padding.
	chunks := make([][]int16, chunkCount)
	for i := range chunks {
		chunks[i] = audiotest.Silence(chunkFrames * 2)
	}

	stream := encodeStream(t, rate, mp3enc.Kbps128, chunks)
	if len(stream) == 0 {
		t.Fatal("empty stream")
	}

	dec, err := gomp3.NewDecoder(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("go-mp3 rejected the stream: %v", err)
	}
	if dec.SampleRate() != rate {
		t.Errorf("decoded sample rate = %d, want %d", dec.SampleRate(), rate)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}

	// go-mp3 emits 16-bit stereo, 4 bytes per frame.
	decodedFrames := len(pcm) / 4
	inputFrames := chunkFrames * chunkCount
	diff := decodedFrames - inputFrames
	if diff < 0 {
		diff = -diff
	}
	if diff > 1152 {
		t.Errorf("decoded %d frames for %d input frames, off by %d (> one MP3 frame)",
			decodedFrames, inputFrames, diff)
	}
}

func TestRoundTrip_SineSurvivesEncoding(t *testing.T) {
	t.Parallel()

	const rate = 44100

	left := audiotest.Sine(rate, 440, 0.8, 4608)
	right := audiotest.Sine(rate, 440, 0.8, 4608)
	chunks := [][]int16{audiotest.Interleave(left, right)}

	stream := encodeStream(t, rate, mp3enc.Kbps192, chunks)

	dec, err := gomp3.NewDecoder(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("go-mp3 rejected the stream: %v", err)
	}
	pcm, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}

	// A full-scale tone must not decode to silence.
	var peak int16
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int16(uint16(pcm[i]) | uint16(pcm[i+1])<<8)
		if v > peak {
			peak = v
		}
	}
	if peak < 1000 {
		t.Errorf("decoded peak = %d, want audible signal", peak)
	}
}

func TestRoundTrip_UnalignedChunks(t *testing.T) {
	t.Parallel()

	// Chunk sizes that never line up with the MP3 frame grid; the
	// engine's pending buffer has to stitch them together without
	// inserting padding mid-stream.
	chunks := [][]int16{
		audiotest.Silence(100 * 2),
		audiotest.Silence(1000 * 2),
		audiotest.Silence(3333 * 2),
		audiotest.Silence(7 * 2),
	}

	stream := encodeStream(t, 44100, mp3enc.Kbps128, chunks)

	dec, err := gomp3.NewDecoder(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("go-mp3 rejected the stream: %v", err)
	}
	pcm, err := io.ReadAll(dec)
	if err != nil {
		t.Fatalf("decode error = %v", err)
	}

	inputFrames := 100 + 1000 + 3333 + 7
	decodedFrames := len(pcm) / 4
	if decodedFrames < inputFrames {
		t.Errorf("decoded %d frames, want at least the %d input frames",
			decodedFrames, inputFrames)
	}
	if decodedFrames > inputFrames+1152 {
		t.Errorf("decoded %d frames, more than one frame of padding over %d",
			decodedFrames, inputFrames)
	}
}

func TestRoundTrip_MPEG2FrameHeaders(t *testing.T) {
	t.Parallel()

	const rate = 22050

	chunks := [][]int16{audiotest.Interleave(
		audiotest.Sine(rate, 330, 0.6, 2304),
		audiotest.Sine(rate, 330, 0.6, 2304),
	)}

	stream := encodeStream(t, rate, mp3enc.Kbps64, chunks)
	if len(stream) < 4 {
		t.Fatalf("stream length = %d, want at least one frame", len(stream))
	}

	// Walk the elementary stream frame by frame: every frame must
	// start on a sync word and declare MPEG-2 Layer III at 22050Hz.
	frames := 0
	off := 0
	for off < len(stream) {
		if off+4 > len(stream) {
			t.Fatalf("truncated header at offset %d", off)
		}
		h := stream[off : off+4]
		if h[0] != 0xFF || h[1]&0xE0 != 0xE0 {
			t.Fatalf("frame %d at offset %d: no sync word (% x)", frames, off, h)
		}
		if version := h[1] >> 3 & 0x3; version != 0x2 {
			t.Fatalf("frame %d: version bits = %b, want MPEG-2 (10)", frames, version)
		}
		if layer := h[1] >> 1 & 0x3; layer != 0x1 {
			t.Fatalf("frame %d: layer bits = %b, want Layer III (01)", frames, layer)
		}
		if srIdx := h[2] >> 2 & 0x3; srIdx != 0 {
			t.Fatalf("frame %d: sample rate index = %d, want 0 (22050Hz)", frames, srIdx)
		}

		brIdx := int(h[2] >> 4)
		if brIdx == 0 || brIdx == 15 {
			t.Fatalf("frame %d: invalid bitrate index %d", frames, brIdx)
		}
		// MPEG-2 Layer III bitrate table, kbps.
		brTable := [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0}
		padding := int(h[2] >> 1 & 0x1)
		frameLen := 72*brTable[brIdx]*1000/rate + padding
		if frameLen <= 4 {
			t.Fatalf("frame %d: computed length %d", frames, frameLen)
		}
		off += frameLen
		frames++
	}

	if off != len(stream) {
		t.Errorf("stream ends mid-frame: walked to %d of %d bytes", off, len(stream))
	}

	// 2304 input frames at 576 samples per MP3 frame.
	if frames != 4 {
		t.Errorf("stream holds %d frames, want 4", frames)
	}
}
