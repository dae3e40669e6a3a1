// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// Byte runs longer than this are summarized rather than listed.
const maxListedBytes = 16

// FormatValues renders values of type t, as returned by Field.Values, for display.
//
// ASCII values are joined and quoted. UNDEFINED values are shown as
// Latin-1 text if printable, as a byte count if long, or as numbers.
// Other values are listed in brackets.
func FormatValues(t FieldType, values []any) string {
	switch t {
	case TypeASCII:
		var sb strings.Builder
		for _, v := range values {
			sb.WriteString(toString(v))
		}
		return strconv.Quote(strings.TrimRight(sb.String(), "\x00"))
	case TypeUndefined:
		b := make([]byte, 0, len(values))
		for _, v := range values {
			if c, ok := v.(uint8); ok {
				b = append(b, c)
			}
		}
		if s, ok := printableLatin1(trimBytesNulls(b)); ok {
			return strconv.Quote(s)
		}
		if len(b) > maxListedBytes {
			return fmt.Sprintf("(Binary data %d bytes)", len(b))
		}
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i, v := range values {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(toString(v))
	}
	sb.WriteString("]")
	return sb.String()
}

func printableLatin1(b []byte) (string, bool) {
	if len(b) == 0 {
		return "", false
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	s := string(decoded)
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return "", false
		}
	}
	return s, true
}

func toString(v any) string {
	switch vv := v.(type) {
	case string:
		return vv
	case fmt.Stringer:
		return vv.String()
	default:
		return fmt.Sprintf("%v", vv)
	}
}

func trimBytesNulls(b []byte) []byte {
	var lo, hi int
	for lo = 0; lo < len(b) && b[lo] == 0; lo++ {
	}
	for hi = len(b) - 1; hi >= 0 && b[hi] == 0; hi-- {
	}
	if lo > hi {
		return nil
	}
	return b[lo : hi+1]
}
