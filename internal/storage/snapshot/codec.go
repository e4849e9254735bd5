package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// Magic bytes identify mozLz4 containers.
var magicBytes = []byte("mozLz40\x00")

const (
	sizeFieldLen = 4
	headerLen    = 8 + sizeFieldLen

	// maxDecompressedSize bounds the allocation driven by the size field.
	maxDecompressedSize = 1 << 30
)

var (
	ErrTruncated     = errors.New("snapshot: truncated container")
	ErrInvalidMagic  = errors.New("snapshot: invalid magic bytes")
	ErrSizeTooLarge  = errors.New("snapshot: declared size too large")
	ErrSizeMismatch  = errors.New("snapshot: decompressed size mismatch")
	ErrInvalidUTF8   = errors.New("snapshot: payload is not valid UTF-8")
	ErrInvalidJSON   = errors.New("snapshot: payload is not valid JSON")
	ErrUnexpectedDoc = errors.New("snapshot: unexpected document shape")
)

// Decompress strips the container header and inflates the LZ4 block.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	if !bytes.Equal(data[:len(magicBytes)], magicBytes) {
		return nil, ErrInvalidMagic
	}

	size := binary.LittleEndian.Uint32(data[len(magicBytes):headerLen])
	if size > maxDecompressedSize {
		return nil, fmt.Errorf("%w: %d", ErrSizeTooLarge, size)
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[headerLen:], out)
	if err != nil {
		return nil, fmt.Errorf("snapshot: lz4 block: %w", err)
	}
	if n != int(size) {
		return nil, fmt.Errorf("%w: got %d, header says %d", ErrSizeMismatch, n, size)
	}
	return out, nil
}

// Encode wraps payload in a mozLz4 container.
func Encode(payload []byte) ([]byte, error) {
	block := make([]byte, lz4.CompressBlockBound(len(payload)))
	var c lz4.Compressor
	n, err := c.CompressBlock(payload, block)
	if err != nil {
		return nil, fmt.Errorf("snapshot: lz4 compress: %w", err)
	}

	out := make([]byte, headerLen, headerLen+n)
	copy(out, magicBytes)
	binary.LittleEndian.PutUint32(out[len(magicBytes):headerLen], uint32(len(payload)))
	return append(out, block[:n]...), nil
}
