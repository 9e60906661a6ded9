// seehuhn.de/go/cubism - turn derivatives into polygon fragments
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command cubism renders the derivative of a function as a picture made of
// polygon fragments.
//
// Usage:
//
//	cubism [options] output.png|output.pdf
//
// Settings are taken from the defaults, then from the JSON file given by
// -config, and finally from the remaining command line flags.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/cubism"
	"seehuhn.de/go/cubism/ggscene"
	"seehuhn.de/go/cubism/palette"
	"seehuhn.de/go/cubism/pdfscene"
	"seehuhn.de/go/cubism/raster"
)

func main() {
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "cubism: %v\n", err)
		os.Exit(1)
	}
}

// options holds the settings which are not part of the scene configuration.
type options struct {
	configFile string
	width      int
	height     int
	backend    string
	verbose    bool
}

func run(args []string, stderr io.Writer) error {
	cfg := cubism.DefaultConfig()
	opt := &options{}

	fs := flag.NewFlagSet("cubism", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: cubism [options] output.png|output.pdf\n")
		fs.PrintDefaults()
	}

	fs.TextVar(&cfg.Function, "function", cfg.Function, "function to plot: sine, abs, step, polynomial or spiky")
	fs.IntVar(&cfg.Count, "count", cfg.Count, fmt.Sprintf("number of fragments, %d to %d", cubism.MinCount, cubism.MaxCount))
	fs.TextVar(&cfg.Shape, "shape", cfg.Shape, "fragment shapes: triangles, quads or mixed")
	fs.StringVar(&cfg.Palette, "palette", cfg.Palette, "colour scale: "+strings.Join(palette.Names(), ", "))
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "slope above which fragments are enlarged")
	fs.Float64Var(&cfg.Boost, "boost", cfg.Boost, "enlargement factor for steep fragments")
	fs.Float64Var(&cfg.Jitter, "jitter", cfg.Jitter, "random vertex stretching, in [0, 1)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for -jitter")
	fs.StringVar(&opt.configFile, "config", "", "read settings from this JSON `file`")
	fs.IntVar(&opt.width, "width", 1200, "output width in pixels or PDF points")
	fs.IntVar(&opt.height, "height", 1000, "output height in pixels or PDF points")
	fs.StringVar(&opt.backend, "backend", "raster", "PNG renderer: raster or gg")
	fs.BoolVar(&opt.verbose, "v", false, "log progress to stderr")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if opt.configFile != "" {
		if err := loadConfig(&cfg, opt.configFile); err != nil {
			return err
		}
		// command line flags take precedence over the file
		if err := fs.Parse(args); err != nil {
			return err
		}
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected exactly one output file")
	}
	outName := fs.Arg(0)

	if opt.verbose {
		cubism.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer cubism.SetLogger(nil)
	}

	format := strings.ToLower(filepath.Ext(outName))
	if format != ".png" && format != ".pdf" {
		return fmt.Errorf("%s: unsupported output format, use .png or .pdf", outName)
	}
	if opt.backend != "raster" && opt.backend != "gg" {
		return fmt.Errorf("unknown backend %q", opt.backend)
	}
	if opt.width <= 0 || opt.height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", opt.width, opt.height)
	}

	sc, err := cubism.Render(cfg)
	if err != nil {
		return err
	}

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	if format == ".pdf" {
		err = pdfscene.Write(out, sc, float64(opt.width), float64(opt.height))
	} else {
		err = writePNG(out, sc, opt)
	}
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	cubism.Logger().Debug("output written", "file", outName, "backend", opt.backend)
	return nil
}

// loadConfig overlays the settings in the JSON file onto cfg.
func loadConfig(cfg *cubism.Config, fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	return nil
}

func writePNG(w io.Writer, sc *cubism.Scene, opt *options) error {
	var img image.Image
	switch opt.backend {
	case "gg":
		var err error
		img, err = ggscene.Render(sc, opt.width, opt.height)
		if err != nil {
			return err
		}
	default:
		img = raster.Draw(sc, opt.width, opt.height)
	}
	return png.Encode(w, img)
}
