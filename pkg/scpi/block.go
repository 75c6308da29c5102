package scpi

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Block format limits.
const (
	// MaxLengthDigits is the maximum number of digits in the length field,
	// fixed by the single-digit count in the block header.
	MaxLengthDigits = 9
)

// Block errors.
var (
	// ErrMalformedBlock indicates the block header does not follow the
	// #<n><len> format.
	ErrMalformedBlock = errors.New("malformed binary block")

	// ErrBlockTruncated indicates fewer payload bytes were available than
	// the header declared.
	ErrBlockTruncated = errors.New("binary block truncated")
)

// EncodeBlock encodes payload as a definite-length binary block.
func EncodeBlock(payload []byte) []byte {
	lenStr := strconv.Itoa(len(payload))
	out := make([]byte, 0, 2+len(lenStr)+len(payload))
	out = append(out, '#', byte('0'+len(lenStr)))
	out = append(out, lenStr...)
	out = append(out, payload...)
	return out
}

// DecodeBlock decodes a definite-length binary block held fully in memory
// and returns its payload. Bytes following the payload (instrument line
// terminators) are ignored.
func DecodeBlock(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 header bytes, have %d", ErrMalformedBlock, len(data))
	}
	if data[0] != '#' {
		return nil, fmt.Errorf("%w: expected '#', got %q", ErrMalformedBlock, data[0])
	}

	digits := int(data[1] - '0')
	if digits < 1 || digits > MaxLengthDigits {
		return nil, fmt.Errorf("%w: invalid digit count %q", ErrMalformedBlock, data[1])
	}
	if len(data) < 2+digits {
		return nil, fmt.Errorf("%w: header declares %d length digits, only %d bytes follow", ErrMalformedBlock, digits, len(data)-2)
	}

	length := 0
	for _, c := range data[2 : 2+digits] {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: non-digit %q in length field", ErrMalformedBlock, c)
		}
		length = length*10 + int(c-'0')
	}

	payload := data[2+digits:]
	if len(payload) < length {
		return nil, fmt.Errorf("%w: declared %d bytes, got %d", ErrBlockTruncated, length, len(payload))
	}
	return payload[:length], nil
}

// ReadBlock reads one definite-length binary block from r and returns its
// payload. Line terminators left on the stream by a previous response are
// skipped. It consumes exactly the header and payload; any terminator that
// follows is left unread.
func ReadBlock(r io.Reader) ([]byte, error) {
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedBlock, err)
		}
		if b[0] != '\n' && b[0] != '\r' {
			break
		}
	}
	if b[0] != '#' {
		return nil, fmt.Errorf("%w: expected '#', got %q", ErrMalformedBlock, b[0])
	}

	if _, err := io.ReadFull(r, b[:]); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformedBlock, err)
	}
	digits := int(b[0] - '0')
	if digits < 1 || digits > MaxLengthDigits {
		return nil, fmt.Errorf("%w: invalid digit count %q", ErrMalformedBlock, b[0])
	}

	lenBuf := make([]byte, digits)
	if _, err := io.ReadFull(r, lenBuf); err != nil {
		return nil, fmt.Errorf("%w: reading length field: %v", ErrMalformedBlock, err)
	}

	length := 0
	for _, c := range lenBuf {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: non-digit %q in length field", ErrMalformedBlock, c)
		}
		length = length*10 + int(c-'0')
	}

	payload := make([]byte, length)
	if n, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("%w: declared %d bytes, got %d", ErrBlockTruncated, length, n)
	}
	return payload, nil
}
