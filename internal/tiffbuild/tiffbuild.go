// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package tiffbuild writes small synthetic TIFF files for tests.
package tiffbuild

import (
	"bytes"
	"encoding/binary"
)

// ByteOrder is implemented by binary.LittleEndian and binary.BigEndian.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Entry is a raw 12 byte directory entry.
type Entry struct {
	Tag   uint16
	Type  uint16
	Count uint32
	Value [4]byte
}

// Builder appends data and directories to a TIFF file.
// Values that do not fit in an entry are written when the entry is created,
// so create entries before the directory holding them.
type Builder struct {
	order ByteOrder
	buf   []byte
}

// New returns a Builder with an 8 byte header and a root offset of 0.
func New(order ByteOrder, magic uint16) *Builder {
	b := &Builder{order: order}
	if order == binary.LittleEndian {
		b.buf = append(b.buf, 'I', 'I')
	} else {
		b.buf = append(b.buf, 'M', 'M')
	}
	b.buf = order.AppendUint16(b.buf, magic)
	b.buf = order.AppendUint32(b.buf, 0)
	return b
}

// Len returns the current size, which is the offset of the next write.
func (b *Builder) Len() uint32 {
	return uint32(len(b.buf))
}

// Bytes returns the file.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Reader returns a reader over the file.
func (b *Builder) Reader() *bytes.Reader {
	return bytes.NewReader(b.buf)
}

// SetRoot sets the offset of the first directory.
func (b *Builder) SetRoot(offset uint32) *Builder {
	b.order.PutUint32(b.buf[4:8], offset)
	return b
}

// SetNext sets the next pointer of the directory at offset.
func (b *Builder) SetNext(offset, next uint32) *Builder {
	n := uint32(b.order.Uint16(b.buf[offset:]))
	pos := offset + 2 + n*12
	b.order.PutUint32(b.buf[pos:pos+4], next)
	return b
}

// Data appends p and returns its offset.
func (b *Builder) Data(p []byte) uint32 {
	offset := b.Len()
	b.buf = append(b.buf, p...)
	return offset
}

// Entry creates an entry holding payload, written inline if it fits in
// 4 bytes and appended to the file otherwise.
func (b *Builder) Entry(tag, typ uint16, count uint32, payload []byte) Entry {
	e := Entry{Tag: tag, Type: typ, Count: count}
	if len(payload) <= 4 {
		copy(e.Value[:], payload)
	} else {
		b.order.PutUint32(e.Value[:], b.Data(payload))
	}
	return e
}

// Byte creates a BYTE entry.
func (b *Builder) Byte(tag uint16, v ...uint8) Entry {
	return b.Entry(tag, 1, uint32(len(v)), v)
}

// Undefined creates an UNDEFINED entry.
func (b *Builder) Undefined(tag uint16, v []byte) Entry {
	return b.Entry(tag, 7, uint32(len(v)), v)
}

// ASCII creates a NUL terminated ASCII entry.
func (b *Builder) ASCII(tag uint16, s string) Entry {
	p := append([]byte(s), 0)
	return b.Entry(tag, 2, uint32(len(p)), p)
}

// Short creates a SHORT entry.
func (b *Builder) Short(tag uint16, v ...uint16) Entry {
	var p []byte
	for _, vv := range v {
		p = b.order.AppendUint16(p, vv)
	}
	return b.Entry(tag, 3, uint32(len(v)), p)
}

// SShort creates a SSHORT entry.
func (b *Builder) SShort(tag uint16, v ...int16) Entry {
	var p []byte
	for _, vv := range v {
		p = b.order.AppendUint16(p, uint16(vv))
	}
	return b.Entry(tag, 8, uint32(len(v)), p)
}

// Long creates a LONG entry.
func (b *Builder) Long(tag uint16, v ...uint32) Entry {
	var p []byte
	for _, vv := range v {
		p = b.order.AppendUint32(p, vv)
	}
	return b.Entry(tag, 4, uint32(len(v)), p)
}

// SLong creates a SLONG entry.
func (b *Builder) SLong(tag uint16, v ...int32) Entry {
	var p []byte
	for _, vv := range v {
		p = b.order.AppendUint32(p, uint32(vv))
	}
	return b.Entry(tag, 9, uint32(len(v)), p)
}

// Rational creates a RATIONAL entry from numerator, denominator pairs.
func (b *Builder) Rational(tag uint16, numDen ...uint32) Entry {
	var p []byte
	for _, vv := range numDen {
		p = b.order.AppendUint32(p, vv)
	}
	return b.Entry(tag, 5, uint32(len(numDen)/2), p)
}

// SRational creates a SRATIONAL entry from numerator, denominator pairs.
func (b *Builder) SRational(tag uint16, numDen ...int32) Entry {
	var p []byte
	for _, vv := range numDen {
		p = b.order.AppendUint32(p, uint32(vv))
	}
	return b.Entry(tag, 10, uint32(len(numDen)/2), p)
}

// EncodeEntry returns the 12 bytes of e.
func (b *Builder) EncodeEntry(e Entry) []byte {
	p := make([]byte, 0, 12)
	p = b.order.AppendUint16(p, e.Tag)
	p = b.order.AppendUint16(p, e.Type)
	p = b.order.AppendUint32(p, e.Count)
	return append(p, e.Value[:]...)
}

// IFD appends a directory with the given entries and next pointer
// and returns its offset.
func (b *Builder) IFD(next uint32, entries ...Entry) uint32 {
	offset := b.Len()
	b.buf = b.order.AppendUint16(b.buf, uint16(len(entries)))
	for _, e := range entries {
		b.buf = append(b.buf, b.EncodeEntry(e)...)
	}
	b.buf = b.order.AppendUint32(b.buf, next)
	return offset
}
