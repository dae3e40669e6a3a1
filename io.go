// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"fmt"
	"io"
)

// 10 MB should be plenty for a single field value.
const maxBufSize = 10 * 1024 * 1024

// sourceReader is a wrapper around a ReadSeeker that reads fixed size records
// at absolute offsets.
// Note that this is not thread safe.
type sourceReader struct {
	r   io.ReadSeeker
	buf []byte
}

func newSourceReader(r io.ReadSeeker) *sourceReader {
	return &sourceReader{r: r}
}

func (e *sourceReader) allocateBuf(length int) {
	if length > cap(e.buf) {
		e.buf = make([]byte, length)
	}
}

func (e *sourceReader) seek(pos int64) error {
	if e.r == nil {
		return fmt.Errorf("%w: seek to offset %d", ErrMissingSource, pos)
	}
	if _, err := e.r.Seek(pos, io.SeekStart); err != nil {
		return newIOError(err, "seek to offset %d", pos)
	}
	return nil
}

// readBytesVolatile reads n bytes at the current position into a buffer
// which is not guaranteed to be valid after the next read.
func (e *sourceReader) readBytesVolatile(n int) ([]byte, error) {
	e.allocateBuf(n)
	if _, err := io.ReadFull(e.r, e.buf[:n]); err != nil {
		return nil, newIOError(err, "read %d bytes", n)
	}
	return e.buf[:n], nil
}

// readAt reads n bytes starting at pos into a new slice.
func (e *sourceReader) readAt(pos int64, n int) ([]byte, error) {
	if err := e.seek(pos); err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(e.r, b); err != nil {
		return nil, newIOError(err, "read %d bytes at offset %d", n, pos)
	}
	return b, nil
}
