// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

const (
	byteOrderBigEndian    = 0x4d4d // "MM"
	byteOrderLittleEndian = 0x4949 // "II"
)

// Endianness is the byte order of a TIFF file.
// It is read once from the file header and passed to every decode call;
// the zero value is not a valid byte order.
type Endianness uint8

const (
	// LittleEndian is the Intel byte order ("II").
	LittleEndian Endianness = iota + 1
	// BigEndian is the Motorola byte order ("MM").
	BigEndian
)

func (o Endianness) String() string {
	switch o {
	case LittleEndian:
		return "LittleEndian"
	case BigEndian:
		return "BigEndian"
	default:
		return "Endianness(" + strconv.Itoa(int(o)) + ")"
	}
}

// EndiannessFromMagic returns the byte order given the first two bytes of a file.
func EndiannessFromMagic(b []byte) (Endianness, error) {
	if len(b) < 2 {
		return 0, newMalformedErrorf("byte order needs 2 bytes, got %d", len(b))
	}
	// The two bytes are the same character, so any byte order will do.
	switch binary.BigEndian.Uint16(b[:2]) {
	case byteOrderLittleEndian:
		return LittleEndian, nil
	case byteOrderBigEndian:
		return BigEndian, nil
	default:
		return 0, fmt.Errorf("%w: byte order 0x%02x%02x", ErrUnrecognizedFormat, b[0], b[1])
	}
}

func (o Endianness) byteOrder() (binary.ByteOrder, error) {
	switch o {
	case LittleEndian:
		return binary.LittleEndian, nil
	case BigEndian:
		return binary.BigEndian, nil
	default:
		return nil, newMalformedErrorf("invalid byte order %s", o)
	}
}

func (o Endianness) prepare(b []byte, width int, what string) (binary.ByteOrder, error) {
	if len(b) != width {
		return nil, newMalformedErrorf("%s needs %d bytes, got %d", what, width, len(b))
	}
	return o.byteOrder()
}

func (o Endianness) Uint8(b []byte) (uint8, error) {
	if _, err := o.prepare(b, 1, "uint8"); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (o Endianness) Int8(b []byte) (int8, error) {
	if _, err := o.prepare(b, 1, "int8"); err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (o Endianness) Uint16(b []byte) (uint16, error) {
	bo, err := o.prepare(b, 2, "uint16")
	if err != nil {
		return 0, err
	}
	return bo.Uint16(b), nil
}

func (o Endianness) Int16(b []byte) (int16, error) {
	v, err := o.Uint16(b)
	return int16(v), err
}

func (o Endianness) Uint32(b []byte) (uint32, error) {
	bo, err := o.prepare(b, 4, "uint32")
	if err != nil {
		return 0, err
	}
	return bo.Uint32(b), nil
}

func (o Endianness) Int32(b []byte) (int32, error) {
	v, err := o.Uint32(b)
	return int32(v), err
}

// Rational decodes two consecutive uint32 values, the numerator first.
func (o Endianness) Rational(b []byte) (Rat[uint32], error) {
	bo, err := o.prepare(b, 8, "rational")
	if err != nil {
		return nil, err
	}
	return NewRat(bo.Uint32(b[:4]), bo.Uint32(b[4:])), nil
}

// SRational decodes two consecutive int32 values, the numerator first.
func (o Endianness) SRational(b []byte) (Rat[int32], error) {
	bo, err := o.prepare(b, 8, "srational")
	if err != nil {
		return nil, err
	}
	return NewRat(int32(bo.Uint32(b[:4])), int32(bo.Uint32(b[4:]))), nil
}

// Float32 decodes an IEEE 754 single precision value.
func (o Endianness) Float32(b []byte) (float32, error) {
	v, err := o.Uint32(b)
	return math.Float32frombits(v), err
}

// Float64 decodes an IEEE 754 double precision value.
func (o Endianness) Float64(b []byte) (float64, error) {
	bo, err := o.prepare(b, 8, "float64")
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bo.Uint64(b)), nil
}
