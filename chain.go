// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"fmt"
	"io"
)

// Offset in the header of the offset to the first directory.
const rootOffsetPos = 4

// ParseChain reads the root directory offset from the header in src and
// loads the directories linked by their next pointers.
func ParseChain(src io.ReadSeeker, order Endianness) ([]*Directory, error) {
	r := newSourceReader(src)
	root, err := readRootOffset(r, order)
	if err != nil {
		return nil, err
	}
	return parseChain(r, root, order, 0)
}

func readRootOffset(r *sourceReader, order Endianness) (uint32, error) {
	b, err := r.readAt(rootOffsetPos, 4)
	if err != nil {
		return 0, fmt.Errorf("root directory offset: %w", err)
	}
	return order.Uint32(b)
}

func parseChain(r *sourceReader, offset uint32, order Endianness, limit int) ([]*Directory, error) {
	var chain []*Directory
	visited := make(map[uint32]bool)
	for offset != 0 {
		if visited[offset] {
			return nil, fmt.Errorf("%w: directory at offset %d after %d directories", ErrCyclicChain, offset, len(chain))
		}
		visited[offset] = true

		d, err := loadDirectory(r, offset, order, limit)
		if err != nil {
			return nil, err
		}
		chain = append(chain, d)
		offset = d.next
	}
	return chain, nil
}

// ChildDirectories loads the directories whose offsets are the values of the
// field tag in parent, e.g. TagSubIFDs or TagExifIFD.
// It returns no directories and no error if parent has no such field.
func ChildDirectories(parent *Directory, tag uint16, src io.ReadSeeker) ([]*Directory, error) {
	return childDirectories(parent, tag, src, newSourceReader(src), maxBufSize, 0)
}

func childDirectories(parent *Directory, tag uint16, src io.ReadSeeker, r *sourceReader, limitValueSize uint32, limitNumEntries int) ([]*Directory, error) {
	f, found := parent.GetByID(tag)
	if !found {
		return nil, nil
	}
	values, err := f.values(src, limitValueSize)
	if err != nil {
		return nil, err
	}
	offsets, err := toUint32s(values)
	if err != nil {
		return nil, fmt.Errorf("tag %d: %w", tag, err)
	}

	children := make([]*Directory, 0, len(offsets))
	for _, offset := range offsets {
		d, err := loadDirectory(r, offset, parent.order, limitNumEntries)
		if err != nil {
			return nil, err
		}
		children = append(children, d)
	}
	return children, nil
}

// toUint32s converts unsigned integer values to uint32.
func toUint32s(values []any) ([]uint32, error) {
	result := make([]uint32, len(values))
	for i, v := range values {
		switch vv := v.(type) {
		case uint8:
			result[i] = uint32(vv)
		case uint16:
			result[i] = uint32(vv)
		case uint32:
			result[i] = vv
		default:
			return nil, newMalformedErrorf("value %d: expected unsigned integer, got %T", i, v)
		}
	}
	return result, nil
}
