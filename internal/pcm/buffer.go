// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"fmt"
	"io"
)

// Buffer is an in-memory io.ReadWriteSeeker. The go-audio decoders need to
// seek their input and the wav encoder seeks back to patch the header, so a
// Buffer stands in for plain readers and writers.
type Buffer struct {
	data   []byte
	offset int64
}

// NewBuffer returns a Buffer positioned at the start of data.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// AsReadSeeker returns r itself when it can seek, otherwise a Buffer
// holding everything r yields.
func AsReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return NewBuffer(data), nil
}

// Bytes returns the whole content regardless of the current offset.
func (b *Buffer) Bytes() []byte { return b.data }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.offset >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.offset:])
	b.offset += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	end := b.offset + int64(len(p))
	if end > int64(len(b.data)) {
		if end > int64(cap(b.data)) {
			grown := make([]byte, end, max(end, 2*int64(cap(b.data))))
			copy(grown, b.data)
			b.data = grown
		} else {
			b.data = b.data[:end]
		}
	}
	copy(b.data[b.offset:end], p)
	b.offset = end
	return len(p), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = b.offset + offset
	case io.SeekEnd:
		next = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if next < 0 {
		return 0, errors.New("negative position")
	}

	b.offset = next
	return next, nil
}
