// Package scpi implements the SCPI wire encodings shared by all instrument
// operations: the IEEE 488.2 definite-length binary block and the ASCII
// response formats used by numeric and boolean queries.
//
// # Binary Block Format
//
//	#  <n>  <len>      <payload>
//	│   │     │            │
//	│   │     │            └─ exactly len bytes of binary data
//	│   │     └─ n ASCII decimal digits giving the payload length
//	│   └─ single ASCII digit 1-9, number of digits in len
//	└─ literal '#'
//
// Decoding is strict: a missing '#', a non-digit where a digit is expected,
// a zero digit count, or fewer payload bytes than declared all fail with a
// malformed-block error. Payloads are never truncated or padded.
package scpi
