// SPDX-License-Identifier: EPL-2.0

package mp3enc

import "testing"

func TestMaxRequiredBufferSize_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		frames int
		want   int
	}{
		{name: "zero frames", frames: 0, want: 7200},
		{name: "one frame", frames: 1, want: 7202},
		{name: "three frames", frames: 3, want: 7204},
		{name: "exact quarter", frames: 4, want: 7205},
		{name: "one mp3 frame", frames: 1152, want: 1152 + 288 + 7200},
		{name: "one second stereo", frames: 44100, want: 44100 + 11025 + 7200},
		{name: "uneven", frames: 44101, want: 44101 + 11026 + 7200},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MaxRequiredBufferSize(tt.frames)
			if got != tt.want {
				t.Errorf("MaxRequiredBufferSize(%d) = %d, want %d", tt.frames, got, tt.want)
			}
		})
	}
}

func TestMaxRequiredBufferSize_Monotonic(t *testing.T) {
	t.Parallel()

	prev := MaxRequiredBufferSize(0)
	if prev <= 0 {
		t.Fatalf("MaxRequiredBufferSize(0) = %d, want > 0", prev)
	}

	for frames := 1; frames <= 100_000; frames++ {
		got := MaxRequiredBufferSize(frames)
		if got < prev {
			t.Fatalf("MaxRequiredBufferSize(%d) = %d < MaxRequiredBufferSize(%d) = %d",
				frames, got, frames-1, prev)
		}
		if got <= 0 {
			t.Fatalf("MaxRequiredBufferSize(%d) = %d, want > 0", frames, got)
		}
		prev = got
	}
}

func TestFlushBufferSize_CoversID3Trailer(t *testing.T) {
	t.Parallel()

	// One padded frame at the highest bitrate plus the 128 byte ID3v1
	// trailer must fit the fixed flush bound.
	const maxFrameBytes = 1441 // 144 * 320000 / 32000, plus padding slot
	if FlushBufferSize < maxFrameBytes+128 {
		t.Errorf("FlushBufferSize = %d, cannot hold a worst case final frame plus trailer",
			FlushBufferSize)
	}
}

func BenchmarkMaxRequiredBufferSize(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = MaxRequiredBufferSize(44100)
	}
}
