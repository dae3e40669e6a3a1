// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"fmt"
)

//go:generate stringer -type=FieldType -trimprefix=Type

// FieldType is one of the twelve TIFF field types.
type FieldType uint16

const (
	TypeByte      FieldType = 1
	TypeASCII     FieldType = 2
	TypeShort     FieldType = 3
	TypeLong      FieldType = 4
	TypeRational  FieldType = 5
	TypeSByte     FieldType = 6
	TypeUndefined FieldType = 7
	TypeSShort    FieldType = 8
	TypeSLong     FieldType = 9
	TypeSRational FieldType = 10
	TypeFloat     FieldType = 11
	TypeDouble    FieldType = 12
)

// Width returns the size in bytes of one value of type t,
// or 0 if t is not a known type.
func (t FieldType) Width() uint32 {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	default:
		return 0
	}
}

// IsKnown reports whether t is one of the twelve TIFF field types.
func (t FieldType) IsKnown() bool {
	return t >= TypeByte && t <= TypeDouble
}

// TypeInfo returns the width and type for the given type code.
func TypeInfo(code uint16) (uint32, FieldType, error) {
	t := FieldType(code)
	if !t.IsKnown() {
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownFieldType, code)
	}
	return t.Width(), t, nil
}

// decode decodes one value of type t. The Go type of the value is
//
//	TypeByte, TypeUndefined: uint8
//	TypeASCII:               string (one character)
//	TypeShort:               uint16
//	TypeLong:                uint32
//	TypeRational:            Rat[uint32]
//	TypeSByte:               int8
//	TypeSShort:              int16
//	TypeSLong:               int32
//	TypeSRational:           Rat[int32]
//	TypeFloat:               float32
//	TypeDouble:              float64
func (t FieldType) decode(b []byte, order Endianness) (any, error) {
	switch t {
	case TypeByte, TypeUndefined:
		return order.Uint8(b)
	case TypeASCII:
		return decodeASCII(b)
	case TypeShort:
		return order.Uint16(b)
	case TypeLong:
		return order.Uint32(b)
	case TypeRational:
		return order.Rational(b)
	case TypeSByte:
		return order.Int8(b)
	case TypeSShort:
		return order.Int16(b)
	case TypeSLong:
		return order.Int32(b)
	case TypeSRational:
		return order.SRational(b)
	case TypeFloat:
		return order.Float32(b)
	case TypeDouble:
		return order.Float64(b)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFieldType, uint16(t))
	}
}

func decodeASCII(b []byte) (any, error) {
	for _, c := range b {
		if c > 0x7f {
			return nil, newMalformedErrorf("invalid ASCII byte 0x%02x", c)
		}
	}
	return string(b), nil
}
