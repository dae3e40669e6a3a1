// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

package tiffep

import (
	"errors"
	"fmt"
	"path"

	"github.com/hashicorp/go-multierror"
)

// WalkFunc is called for each directory visited by Walk.
// The namespace is the path to the directory, e.g. "IFD0/ExifIFD".
// Return ErrStopWalking to stop the walk without an error.
type WalkFunc func(namespace string, d *Directory) error

// Child directory pointers followed by Walk, in visiting order.
var childPointers = []struct {
	tag  uint16
	name string
}{
	{TagSubIFDs, "SubIFD"},
	{TagExifIFD, "ExifIFD"},
	{TagGPSInfoIFD, "GPSInfoIFD"},
	{TagInteroperabilityIFD, "InteroperabilityIFD"},
}

// Walk calls fn for each root directory and, depth first, for each of its
// SubIFD, Exif, GPS and Interoperability child directories.
// A directory offset is never visited twice.
func (c *Container) Walk(fn WalkFunc) error {
	w := &walker{
		c:       c,
		fn:      fn,
		visited: make(map[uint32]bool),
	}
	for _, d := range c.chain {
		w.visited[d.offset] = true
	}

	for i, d := range c.chain {
		if err := w.walk(fmt.Sprintf("IFD%d", i), d); err != nil {
			if errors.Is(err, ErrStopWalking) {
				return nil
			}
			return err
		}
	}

	return w.errs.ErrorOrNil()
}

type walker struct {
	c       *Container
	fn      WalkFunc
	visited map[uint32]bool
	errs    *multierror.Error
}

func (w *walker) walk(namespace string, d *Directory) error {
	if err := w.fn(namespace, d); err != nil {
		return err
	}

	for _, p := range childPointers {
		children, err := w.c.ChildDirectories(d, p.tag)
		if err != nil {
			err = fmt.Errorf("%s: %w", path.Join(namespace, p.name), err)
			if !w.c.opts.SkipInvalid {
				return err
			}
			w.c.opts.Warnf("skipping %v", err)
			w.errs = multierror.Append(w.errs, err)
			continue
		}

		for i, child := range children {
			name := p.name
			if p.tag == TagSubIFDs || len(children) > 1 {
				name = fmt.Sprintf("%s%d", p.name, i)
			}
			childNamespace := path.Join(namespace, name)
			if w.visited[child.offset] {
				w.c.opts.Warnf("%s: directory at offset %d already visited", childNamespace, child.offset)
				continue
			}
			w.visited[child.offset] = true
			if err := w.walk(childNamespace, child); err != nil {
				return err
			}
		}
	}

	return nil
}
