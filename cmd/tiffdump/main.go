// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command tiffdump prints the directories of a TIFF or TIFF/EP based raw file.
//
//	tiffdump [-v] [-cache N] [-skip-invalid] FILE
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/bep/tiffep"
	"golang.org/x/exp/mmap"
)

type config struct {
	verbose     bool
	cacheSize   int
	skipInvalid bool
	warnf       func(string, ...any)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tiffdump: ")

	var cfg config
	flag.BoolVar(&cfg.verbose, "v", false, "resolve and print values stored at offsets")
	flag.IntVar(&cfg.cacheSize, "cache", 128, "number of field values to cache, 0 to disable")
	flag.BoolVar(&cfg.skipInvalid, "skip-invalid", false, "skip child directories that fail to decode")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: tiffdump [-v] [-cache N] [-skip-invalid] FILE\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.warnf = log.Printf

	if err := run(flag.Arg(0), cfg); err != nil {
		log.Fatal(err)
	}
}

func run(filename string, cfg config) error {
	f, err := mmap.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return dump(os.Stdout, io.NewSectionReader(f, 0, int64(f.Len())), cfg)
}

func dump(w io.Writer, r io.ReadSeeker, cfg config) error {
	c, err := tiffep.Open(tiffep.Options{
		R:           r,
		Warnf:       cfg.warnf,
		CacheSize:   cfg.cacheSize,
		SkipInvalid: cfg.skipInvalid,
	})
	if err != nil {
		return err
	}

	format := c.Format()
	if format == "" {
		format = fmt.Sprintf("unknown (magic 0x%04x)", c.Magic())
	}
	fmt.Fprintf(w, "Format: %s\n", format)
	fmt.Fprintf(w, "Byte order: %s\n", c.Order())
	fmt.Fprintf(w, "Root offset: %d\n", c.RootOffset())

	walkErr := c.Walk(func(namespace string, d *tiffep.Directory) error {
		fmt.Fprintf(w, "\n%s %s\n", namespace, d)
		for _, f := range d.Fields() {
			if cfg.verbose && f.NeedsSource() {
				values, err := c.Values(f)
				if err != nil {
					fmt.Fprintf(w, "  %s error=%q\n", f, err)
					continue
				}
				fmt.Fprintf(w, "  %s = %s\n", f, tiffep.FormatValues(f.Type, values))
				continue
			}
			fmt.Fprintf(w, "  %s\n", f)
		}
		return nil
	})

	if err := dumpRaw(w, c); err != nil {
		return err
	}

	return walkErr
}

func dumpRaw(w io.Writer, c *tiffep.Container) error {
	offsets, d, err := tiffep.RawStripOffsets(c)
	if err != nil {
		return err
	}
	if d == nil {
		fmt.Fprintf(w, "\nRaw image: none\n")
		return nil
	}

	fmt.Fprintf(w, "\nRaw image: directory at offset %d\n", d.Offset())

	if f, found := d.GetByName("Compression"); found {
		if values, err := c.Values(f); err == nil && len(values) > 0 {
			if code, ok := values[0].(uint16); ok {
				name, found := tiffep.CompressionName(code)
				if !found {
					name = "unknown"
				}
				fmt.Fprintf(w, "  Compression: %d (%s)\n", code, name)
			}
		}
	}

	length, lengthFound := firstUint32(c, d, "ImageLength")
	rows, rowsFound := firstUint32(c, d, "RowsPerStrip")
	if lengthFound && rowsFound {
		fmt.Fprintf(w, "  Strips per image: %d\n", tiffep.StripsPerImage(length, rows))
	}

	strs := make([]string, len(offsets))
	for i, o := range offsets {
		strs[i] = fmt.Sprint(o)
	}
	fmt.Fprintf(w, "  Strip offsets: %s\n", strings.Join(strs, " "))
	return nil
}

func firstUint32(c *tiffep.Container, d *tiffep.Directory, name string) (uint32, bool) {
	f, found := d.GetByName(name)
	if !found {
		return 0, false
	}
	values, err := c.Values(f)
	if err != nil || len(values) == 0 {
		return 0, false
	}
	switch v := values[0].(type) {
	case uint16:
		return uint32(v), true
	case uint32:
		return v, true
	}
	return 0, false
}
