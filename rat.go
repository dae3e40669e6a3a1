// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
)

// Rat is a rational number as stored in a RATIONAL or SRATIONAL field.
// It is never reduced, and a zero denominator is kept as is.
type Rat[T int32 | uint32] interface {
	Num() T
	Den() T

	// Float64 returns num/den. A zero denominator gives +Inf, -Inf or NaN.
	Float64() float64

	// IsZeroDen reports whether the denominator is zero.
	IsZeroDen() bool

	// String returns the string representation of the rational number.
	// If the denominator is 1, the string will be the numerator only.
	String() string
}

var (
	_ encoding.TextUnmarshaler = (*rat[int32])(nil)
	_ encoding.TextMarshaler   = rat[int32]{}
)

// rat is a lightweight version of math/big.Rat.
type rat[T int32 | uint32] struct {
	num T
	den T
}

// NewRat returns a new Rat with the given numerator and denominator.
func NewRat[T int32 | uint32](num, den T) Rat[T] {
	return rat[T]{num: num, den: den}
}

// Num returns the numerator of the rational number.
func (r rat[T]) Num() T {
	return r.num
}

// Den returns the denominator of the rational number.
func (r rat[T]) Den() T {
	return r.den
}

func (r rat[T]) IsZeroDen() bool {
	return r.den == 0
}

func (r rat[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

func (r rat[T]) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (r *rat[T]) UnmarshalText(text []byte) error {
	s := string(text)
	if !strings.Contains(s, "/") {
		num, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
		}
		r.num = T(num)
		r.den = 1
		return nil
	}
	if _, err := fmt.Sscanf(s, "%d/%d", &r.num, &r.den); err != nil {
		return fmt.Errorf("failed to parse %q as a rational number: %w", s, err)
	}
	return nil
}

func (r rat[T]) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}
