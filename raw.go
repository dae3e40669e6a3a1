// Copyright 2026 Toni Melisma
// SPDX-License-Identifier: MIT

package tiffep

// RawStripOffsets finds the strip offsets of the first full resolution image,
// that is the first directory with a NewSubfileType of 0 and a StripOffsets
// field. Each root directory is searched before its SubIFDs and Exif IFDs.
// It returns a nil directory if none is found.
func RawStripOffsets(c *Container) ([]uint32, *Directory, error) {
	for _, d := range c.chain {
		offsets, found, err := c.stripOffsets(d)
		if err != nil {
			return nil, nil, err
		}
		if found {
			return offsets, d, nil
		}

		for _, tag := range []uint16{TagSubIFDs, TagExifIFD} {
			children, err := c.ChildDirectories(d, tag)
			if err != nil {
				return nil, nil, err
			}
			for _, child := range children {
				offsets, found, err := c.stripOffsets(child)
				if err != nil {
					return nil, nil, err
				}
				if found {
					return offsets, child, nil
				}
			}
		}
	}
	return nil, nil, nil
}

func (c *Container) stripOffsets(d *Directory) ([]uint32, bool, error) {
	subfileType, found := d.GetByID(tagNewSubfileType)
	if !found {
		return nil, false, nil
	}
	stripOffsets, found := d.GetByID(tagStripOffsets)
	if !found {
		return nil, false, nil
	}

	values, err := c.Values(subfileType)
	if err != nil {
		return nil, false, err
	}
	types, err := toUint32s(values)
	if err != nil {
		return nil, false, err
	}
	if len(types) == 0 || types[0] != 0 {
		return nil, false, nil
	}

	values, err = c.Values(stripOffsets)
	if err != nil {
		return nil, false, err
	}
	offsets, err := toUint32s(values)
	if err != nil {
		return nil, false, err
	}
	return offsets, true, nil
}

// StripsPerImage returns the number of strips needed to hold imageLength rows
// with rowsPerStrip rows in each strip.
func StripsPerImage(imageLength, rowsPerStrip uint32) uint32 {
	if rowsPerStrip == 0 {
		return 0
	}
	return uint32((uint64(imageLength) + uint64(rowsPerStrip) - 1) / uint64(rowsPerStrip))
}
