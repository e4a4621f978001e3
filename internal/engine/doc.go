// SPDX-License-Identifier: EPL-2.0

// Package engine hosts the native-style MP3 encoding engine behind the
// public mp3enc API.
//
// The surface deliberately mirrors a C encoder ABI: a stateful Handle is
// allocated with New, configured through Set* calls, finalized with
// InitParams and driven with EncodeBuffer / EncodeBufferInterleaved /
// EncodeFlush / EncodeFlushNoGap until Close. Every call reports an
// integer result code; zero or a positive byte count means success,
// negative values are the code constants defined in this package.
//
// The actual signal processing is delegated to the pure Go shine encoder
// (github.com/braheezy/shine-mp3). This package adds what shine leaves
// out: parameter validation against the MPEG tables, frame-granular
// input accumulation so partial chunks never produce padded frames
// mid-stream, the two flush modes, and ID3v1 trailer emission.
//
// A Handle is not safe for concurrent use.
package engine
