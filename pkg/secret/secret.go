/*
Package secret manages byte buffers that hold sensitive material such as
passwords and credential-bearing message fragments.

A Buffer owns its bytes and guarantees overwrite-then-release: Wipe zeroes
every byte of the backing array before the slice is dropped, so the material
does not linger in memory waiting for garbage collection. Wipe is idempotent,
which makes it safe to both defer it as a guard and call it eagerly on the
happy path.
*/
package secret

// Buffer owns a slice of sensitive bytes.
//
// The zero value is an empty, already-wiped buffer. Buffer is not safe for
// concurrent use; each construction call is expected to own its buffers
// exclusively (see the concurrency notes on package wstrust).
type Buffer struct {
	b []byte
}

// FromBytes wraps b in a Buffer, taking ownership. The caller must not
// retain or reuse b afterwards; Wipe will zero it in place.
func FromBytes(b []byte) *Buffer {
	return &Buffer{b: b}
}

// FromString copies s into a new Buffer. Go strings are immutable and cannot
// be wiped, so callers that can obtain the secret as bytes should prefer
// FromBytes.
func FromString(s string) *Buffer {
	return &Buffer{b: []byte(s)}
}

// Bytes exposes the underlying bytes without copying. The returned slice is
// invalidated by Wipe.
func (s *Buffer) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.b
}

// Len reports the number of bytes held.
func (s *Buffer) Len() int {
	if s == nil {
		return 0
	}
	return len(s.b)
}

// Wipe overwrites every byte of the backing array with zeros and releases
// the slice. Safe to call multiple times and on a nil receiver.
func (s *Buffer) Wipe() {
	if s == nil {
		return
	}
	Wipe(s.b)
	s.b = nil
}

// Wipe zeroes b in place. It is the low-level primitive for scratch slices
// that are not wrapped in a Buffer.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
