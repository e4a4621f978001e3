// SPDX-License-Identifier: EPL-2.0

package mp3enc

// FlushBufferSize is the worst case output size of a single Flush call
// in either mode: the final zero padded frame plus trailing metadata
// always fit inside it. It does not depend on how much audio was
// encoded before the flush.
const FlushBufferSize = 7200

// MaxRequiredBufferSize returns the output capacity that is always
// sufficient for encoding frameCount per-channel samples in one Encode
// call, regardless of channel count, bitrate or signal content.
//
// The bound is the engine's documented worst case: the sample count
// plus a 25% expansion reserve plus a 7200 byte frame and metadata
// reserve. It never understates; a buffer of exactly this size can be
// handed to Encode without risking truncation.
func MaxRequiredBufferSize(frameCount int) int {
	extra := frameCount / 4
	if frameCount%4 > 0 {
		extra++
	}
	return frameCount + extra + 7200
}
