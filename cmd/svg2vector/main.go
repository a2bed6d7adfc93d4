// Copyright (c) 2026, The svg2vector Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svg2vector converts SVG files to Android vector drawable
// XML. It takes a single .svg file or a directory of them; output
// files are written next to the input (or under -out) with the
// extension replaced by .xml.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vdtool/svg2vector/svg"
	"github.com/vdtool/svg2vector/vd"
)

func main() {
	out := flag.String("out", "", "output directory (default: next to each input)")
	verbose := flag.Bool("v", false, "log per-file conversion details")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input.svg|directory\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	inputs, err := collectInputs(flag.Arg(0))
	if err != nil {
		slog.Error("cannot read input", "path", flag.Arg(0), "err", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		slog.Error("no .svg files found", "path", flag.Arg(0))
		os.Exit(1)
	}

	failed := 0
	for _, in := range inputs {
		if err := convertFile(in, outputPath(in, *out)); err != nil {
			slog.Error("conversion failed", "file", in, "err", err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// collectInputs expands a file or directory argument into the list of
// .svg files to convert. Directories are not searched recursively.
func collectInputs(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			continue
		}
		files = append(files, filepath.Join(path, e.Name()))
	}
	return files, nil
}

func outputPath(in, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ".xml"
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(in), base)
}

func convertFile(in, out string) error {
	sv := svg.NewSVG()
	if err := sv.OpenXML(in); err != nil {
		return err
	}
	err := sv.Process()
	if d := sv.Diagnostics(); d != "" {
		// non-structural issues; the conversion still proceeds
		slog.Warn("conversion diagnostics", "file", in, "issues", "\n"+d)
	}
	if err != nil {
		return err
	}
	if err := vd.WriteFile(out, sv); err != nil {
		return err
	}
	slog.Info("converted", "in", in, "out", out)
	return nil
}
