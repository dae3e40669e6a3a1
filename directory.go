// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"fmt"
	"io"
)

// Directory is a decoded Image File Directory (IFD).
// A Directory is read-only once loaded.
type Directory struct {
	offset uint32
	next   uint32
	order  Endianness

	// In the order found in the file.
	fields []Field
	index  map[uint16]int
}

// LoadDirectory decodes the directory starting at offset in src.
//
// The layout is a 2 byte entry count, the entries of FieldSize bytes each and
// a 4 byte offset to the next directory (0 if none).
func LoadDirectory(src io.ReadSeeker, offset uint32, order Endianness) (*Directory, error) {
	return loadDirectory(newSourceReader(src), offset, order, 0)
}

// loadDirectory loads the directory at offset. If limit > 0, directories with
// more than limit entries are rejected.
func loadDirectory(r *sourceReader, offset uint32, order Endianness, limit int) (*Directory, error) {
	if err := r.seek(int64(offset)); err != nil {
		return nil, err
	}
	b, err := r.readBytesVolatile(2)
	if err != nil {
		return nil, fmt.Errorf("directory at offset %d: %w", offset, err)
	}
	numEntries, err := order.Uint16(b)
	if err != nil {
		return nil, err
	}
	if limit > 0 && int(numEntries) > limit {
		return nil, newMalformedErrorf("directory at offset %d has %d entries, limit is %d", offset, numEntries, limit)
	}

	// Entries and the next pointer in one read.
	b, err = r.readBytesVolatile(int(numEntries)*FieldSize + 4)
	if err != nil {
		return nil, fmt.Errorf("directory at offset %d: %w", offset, err)
	}

	d := &Directory{
		offset: offset,
		order:  order,
		fields: make([]Field, 0, numEntries),
		index:  make(map[uint16]int, numEntries),
	}

	for i := 0; i < int(numEntries); i++ {
		f, err := DecodeField(b[i*FieldSize:(i+1)*FieldSize], order)
		if err != nil {
			return nil, fmt.Errorf("directory at offset %d entry %d: %w", offset, i, err)
		}
		if _, found := d.index[f.Tag]; found {
			return nil, fmt.Errorf("%w: tag %d in directory at offset %d", ErrDuplicateTag, f.Tag, offset)
		}
		d.index[f.Tag] = len(d.fields)
		d.fields = append(d.fields, f)
	}

	if d.next, err = order.Uint32(b[len(b)-4:]); err != nil {
		return nil, err
	}

	return d, nil
}

// Offset returns the offset the directory was loaded from.
func (d *Directory) Offset() uint32 {
	return d.offset
}

// Next returns the offset of the next directory in the chain, 0 if none.
func (d *Directory) Next() uint32 {
	return d.next
}

func (d *Directory) Order() Endianness {
	return d.order
}

// Len returns the number of fields.
func (d *Directory) Len() int {
	return len(d.fields)
}

// Fields returns the fields in file order.
func (d *Directory) Fields() []Field {
	fields := make([]Field, len(d.fields))
	copy(fields, d.fields)
	return fields
}

// GetByID returns the field with the given tag ID.
func (d *Directory) GetByID(tag uint16) (Field, bool) {
	i, found := d.index[tag]
	if !found {
		return Field{}, false
	}
	return d.fields[i], true
}

// GetByName returns the field with the given tag name, e.g. "ImageWidth".
// Names not in the tag table are never found.
func (d *Directory) GetByName(name string) (Field, bool) {
	tag, found := TagID(name)
	if !found {
		return Field{}, false
	}
	return d.GetByID(tag)
}

// SubIFDOffsets returns the SubIFDs field, if present.
func (d *Directory) SubIFDOffsets() (Field, bool) {
	return d.GetByID(TagSubIFDs)
}

// ExifIFDOffsets returns the ExifIFD field, if present.
func (d *Directory) ExifIFDOffsets() (Field, bool) {
	return d.GetByID(TagExifIFD)
}

func (d *Directory) String() string {
	return fmt.Sprintf("Directory(offset=%d, next=%d, %s, %d fields)", d.offset, d.next, d.order, len(d.fields))
}
