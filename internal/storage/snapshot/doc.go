// Package snapshot reads the browser's session recovery snapshot.
//
// Firefox keeps its live session in a mozLz4 container:
//
//   [magic:8 "mozLz40\0"]
//   [size:4 little-endian decompressed length]
//   [block: raw LZ4 block, no frame header]
//
// The decompressed block is UTF-8 JSON shaped like
//
//   {"windows": [{"tabs": [{"entries": [{"url": ...}, ...]}, ...]}, ...]}
//
// Decoding yields one URL list per window, each URL being the last
// history entry of its tab. Any failure is reported as
// domain.ErrSnapshotDecode and no partial result is returned.
package snapshot
