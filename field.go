// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"fmt"
	"io"
	"strings"
)

// FieldSize is the size in bytes of a directory entry.
const FieldSize = 12

// Field is a decoded directory entry.
//
// A field is represented in 12 bytes:
//   - 2 bytes for the tag ID
//   - 2 bytes for the data type
//   - 4 bytes for the number of values of the specified type
//   - 4 bytes for the value itself, if it fits, otherwise for an offset to
//     the location in the file where the values may be found;
//     this could be the offsets of other directories.
type Field struct {
	Tag   uint16
	Type  FieldType
	Count uint32

	slot  [4]byte
	order Endianness
}

// DecodeField decodes the 12 bytes in b into a Field.
func DecodeField(b []byte, order Endianness) (Field, error) {
	if len(b) != FieldSize {
		return Field{}, newMalformedErrorf("directory entry needs %d bytes, got %d", FieldSize, len(b))
	}
	tag, err := order.Uint16(b[0:2])
	if err != nil {
		return Field{}, err
	}
	code, err := order.Uint16(b[2:4])
	if err != nil {
		return Field{}, err
	}
	_, typ, err := TypeInfo(code)
	if err != nil {
		return Field{}, fmt.Errorf("tag %d: %w", tag, err)
	}
	count, err := order.Uint32(b[4:8])
	if err != nil {
		return Field{}, err
	}

	f := Field{
		Tag:   tag,
		Type:  typ,
		Count: count,
		order: order,
	}
	copy(f.slot[:], b[8:12])

	return f, nil
}

// Name returns the tag name, or UnknownTag_0x... if the tag is not known.
func (f Field) Name() string {
	if name, found := TagName(f.Tag); found {
		return name
	}
	return fmt.Sprintf("%s0x%04x", UnknownPrefix, f.Tag)
}

// Order returns the byte order the field was decoded with.
func (f Field) Order() Endianness {
	return f.order
}

// Width returns the size in bytes of one value.
func (f Field) Width() uint32 {
	return f.Type.Width()
}

// Size returns the size in bytes of all values.
func (f Field) Size() uint64 {
	return uint64(f.Width()) * uint64(f.Count)
}

// NeedsSource reports whether the values are stored at Offset in the source
// rather than in the entry itself.
func (f Field) NeedsSource() bool {
	return f.Size() > 4
}

// Slot returns the raw value or offset bytes of the entry.
func (f Field) Slot() [4]byte {
	return f.slot
}

// Offset returns the value slot interpreted as an offset.
func (f Field) Offset() uint32 {
	// The byte order was validated in DecodeField.
	v, _ := f.order.Uint32(f.slot[:])
	return v
}

// Values decodes the Count values of f.
// If the values are stored at an offset, src must be set; values are
// re-read from src on every call.
// See FieldType for the Go types of the returned values.
func (f Field) Values(src io.ReadSeeker) ([]any, error) {
	return f.values(src, maxBufSize)
}

func (f Field) values(src io.ReadSeeker, limit uint32) ([]any, error) {
	if !f.NeedsSource() {
		return f.decodeValues(f.slot[:f.Size()])
	}
	if src == nil {
		return nil, fmt.Errorf("%w: tag %d has %d bytes of values at offset %d", ErrMissingSource, f.Tag, f.Size(), f.Offset())
	}
	if f.Size() > uint64(limit) {
		return nil, newMalformedErrorf("tag %d: value size %d exceeds limit %d", f.Tag, f.Size(), limit)
	}
	b, err := newSourceReader(src).readAt(int64(f.Offset()), int(f.Size()))
	if err != nil {
		return nil, fmt.Errorf("tag %d: %w", f.Tag, err)
	}
	return f.decodeValues(b)
}

func (f Field) decodeValues(b []byte) ([]any, error) {
	w := int(f.Width())
	values := make([]any, 0, f.Count)
	for i := 0; i < int(f.Count); i++ {
		v, err := f.Type.decode(b[i*w:(i+1)*w], f.order)
		if err != nil {
			return nil, fmt.Errorf("tag %d value %d: %w", f.Tag, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Text returns the values of an ASCII field as one string,
// with the trailing NUL terminators removed.
func (f Field) Text(src io.ReadSeeker) (string, error) {
	if f.Type != TypeASCII {
		return "", newMalformedErrorf("tag %d: type %s is not ASCII", f.Tag, f.Type)
	}
	values, err := f.Values(src)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(v.(string))
	}
	return strings.TrimRight(sb.String(), "\x00"), nil
}

// String renders the field without reading from any source:
// the offset is printed in place of values that are not inline.
func (f Field) String() string {
	var val string
	if f.NeedsSource() {
		val = fmt.Sprintf("offset=%d", f.Offset())
	} else if values, err := f.Values(nil); err != nil {
		val = fmt.Sprintf("error=%q", err)
	} else {
		val = FormatValues(f.Type, values)
	}
	return fmt.Sprintf("Field(%d %s, %s, %d, %d, %s)", f.Tag, f.Name(), f.Type, f.Width(), f.Count, val)
}
