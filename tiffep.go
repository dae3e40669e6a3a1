// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package tiffep decodes the Image File Directories (IFDs) of TIFF files and
// TIFF/EP based camera raw formats (CR2, NEF, ARW, DNG, ORF, RW2 ...).
package tiffep

import (
	"fmt"
	"io"
	"slices"

	arc "github.com/hashicorp/golang-lru/arc/v2"
)

// UnknownPrefix is used as prefix for unknown tags.
const UnknownPrefix = "UnknownTag_"

// The TIFF magic number following the byte order mark.
const meaningOfLife = 42

// Options contains the options for Open.
type Options struct {
	// The Reader (typically a *os.File) to read the directories from.
	// All reads seek to absolute offsets, so a Container must not
	// share R with other readers running concurrently.
	R io.ReadSeeker

	// Warnf will be called for each warning.
	Warnf func(string, ...any)

	// LimitValueSize is the maximum size in bytes of the values of a field
	// read through the Container.
	// Default value is 10 MB.
	LimitValueSize uint32

	// LimitNumEntries is the maximum number of entries in a directory.
	// Default value is 5000.
	LimitNumEntries int

	// CacheSize is the number of fields whose offset-resolved values are
	// memoized by Container.Values.
	// If set to 0, values are read from R on every call.
	CacheSize int

	// If set, Walk skips child directories that fail to decode and returns
	// the collected errors when done, instead of stopping at the first.
	SkipInvalid bool
}

// Container is an opened TIFF file with its root directory chain decoded.
type Container struct {
	opts       Options
	r          *sourceReader
	order      Endianness
	header     [8]byte
	rootOffset uint32
	chain      []*Directory

	cache *arc.ARCCache[valuesKey, []any]
}

type valuesKey struct {
	order  Endianness
	typ    FieldType
	count  uint32
	offset uint32
}

// Open reads the header of opts.R and decodes the root directory chain.
func Open(opts Options) (*Container, error) {
	if opts.R == nil {
		return nil, fmt.Errorf("%w: no reader provided", ErrMissingSource)
	}

	const defaultLimitNumEntries = 5000

	if opts.LimitValueSize == 0 {
		opts.LimitValueSize = maxBufSize
	}
	if opts.LimitNumEntries == 0 {
		opts.LimitNumEntries = defaultLimitNumEntries
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}

	c := &Container{
		opts: opts,
		r:    newSourceReader(opts.R),
	}

	if opts.CacheSize > 0 {
		cache, err := arc.NewARC[valuesKey, []any](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create value cache: %w", err)
		}
		c.cache = cache
	}

	header, err := c.r.readAt(0, len(c.header))
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	copy(c.header[:], header)

	if c.order, err = EndiannessFromMagic(header[:2]); err != nil {
		return nil, err
	}

	if magic := c.Magic(); magic != meaningOfLife {
		name := c.Format()
		if name == "" {
			name = "unknown format"
		}
		opts.Warnf("non-standard magic number 0x%04x (%s)", magic, name)
	}

	if c.rootOffset, err = c.order.Uint32(header[rootOffsetPos:]); err != nil {
		return nil, err
	}

	if c.chain, err = parseChain(c.r, c.rootOffset, c.order, opts.LimitNumEntries); err != nil {
		return nil, err
	}

	return c, nil
}

// Order returns the byte order of the file.
func (c *Container) Order() Endianness {
	return c.order
}

// Magic returns the 16 bit value following the byte order mark,
// 42 for standard TIFF.
func (c *Container) Magic() uint16 {
	v, _ := c.order.Uint16(c.header[2:4])
	return v
}

// Format returns the name of the file format given by the first four bytes,
// e.g. "TIFF (Little-Endian)", or an empty string if not known.
func (c *Container) Format() string {
	return FormatName(c.header[:4])
}

// RootOffset returns the offset of the first directory.
func (c *Container) RootOffset() uint32 {
	return c.rootOffset
}

// Chain returns the root directories, IFD0 first.
func (c *Container) Chain() []*Directory {
	return slices.Clone(c.chain)
}

// ChildDirectories loads the directories pointed to by the field tag in d.
// See the package level ChildDirectories.
func (c *Container) ChildDirectories(d *Directory, tag uint16) ([]*Directory, error) {
	return childDirectories(d, tag, c.opts.R, c.r, c.opts.LimitValueSize, c.opts.LimitNumEntries)
}

// SubIFDs loads the SubIFDs of d.
func (c *Container) SubIFDs(d *Directory) ([]*Directory, error) {
	return c.ChildDirectories(d, TagSubIFDs)
}

// ExifIFDs loads the Exif IFDs of d.
func (c *Container) ExifIFDs(d *Directory) ([]*Directory, error) {
	return c.ChildDirectories(d, TagExifIFD)
}

// Values returns the values of f, reading from the Container's source if needed.
// If Options.CacheSize is set, values stored at an offset are read once.
func (c *Container) Values(f Field) ([]any, error) {
	if c.cache == nil || !f.NeedsSource() {
		return f.values(c.opts.R, c.opts.LimitValueSize)
	}

	key := valuesKey{order: f.order, typ: f.Type, count: f.Count, offset: f.Offset()}
	if values, found := c.cache.Get(key); found {
		return slices.Clone(values), nil
	}
	values, err := f.values(c.opts.R, c.opts.LimitValueSize)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, values)
	return slices.Clone(values), nil
}

var formatNames = map[[4]byte]string{
	{'M', 'M', 0x00, 0x2a}: "TIFF (Big-Endian)",
	{'M', 'M', 0x00, 0x2b}: "BigTIFF (Big-Endian)",
	{'M', 'M', 0x00, 0x55}: "Panasonic RAW/RW2 (Big-Endian)",
	{'M', 'M', 0x43, 0x52}: "DNG Camera Profile (Big-Endian)",
	{'M', 'M', 0x4f, 0x52}: "Olympus ORF (Big-Endian)",
	{'M', 'M', 0x53, 0x52}: "Olympus ORF alternate (Big-Endian)",

	{'I', 'I', 0x2a, 0x00}: "TIFF (Little-Endian)",
	{'I', 'I', 0x2b, 0x00}: "BigTIFF (Little-Endian)",
	{'I', 'I', 0x55, 0x00}: "Panasonic RAW/RW2 (Little-Endian)",
	{'I', 'I', 0xbc, 0x01}: "JPEG XR (Little-Endian)",
	{'I', 'I', 0x4e, 0x31}: "NIFF (Little-Endian)",
	{'I', 'I', 0x52, 0x43}: "DNG Camera Profile (Little-Endian)",
	{'I', 'I', 0x52, 0x4f}: "Olympus ORF (Little-Endian)",
	{'I', 'I', 0x52, 0x53}: "Olympus ORF alternate (Little-Endian)",
}

// FormatName returns the name of the TIFF based format identified by the
// first four bytes of a file, or an empty string if not known.
func FormatName(b []byte) string {
	if len(b) < 4 {
		return ""
	}
	return formatNames[[4]byte(b[:4])]
}
