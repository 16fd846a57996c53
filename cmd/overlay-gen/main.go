// seehuhn.de/go/overlay - printable keypad overlays for calculators
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

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/term"

	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/content"
	"seehuhn.de/go/overlay/document"
	"seehuhn.de/go/overlay/font"
	"seehuhn.de/go/overlay/internal/buildinfo"
	"seehuhn.de/go/overlay/internal/profile"
	"seehuhn.de/go/overlay/preview"
)

const toolName = "overlay-gen"

var (
	cutFlag   = flag.Bool("cut", false, "draw the key outlines, for the cutting plotter")
	printFlag = flag.Bool("print", false, "draw registration marks and legends, for the printer")
	allFlag   = flag.Bool("all", false, "draw registration marks, legends and key outlines")

	hpFlag = flag.Bool("hp", false, "HP Voyager series calculators (default)")
	smFlag = flag.Bool("sm", false, "SwissMicros DM1xL series calculators")

	outArg      = flag.String("o", "", "write the PDF to `file` (\"-\" for standard output)")
	legendsArg  = flag.String("legends", "math", "legend `set` for the first six keys")
	measureFlag = flag.Bool("measure", false, "center legends using Helvetica glyph widths")
	compress    = flag.Bool("z", false, "compress the page content stream")
	metadata    = flag.Bool("xmp", false, "include an XMP metadata stream")
	pngArg      = flag.String("png", "", "also write a preview image to `file`")
	dpiArg      = flag.Float64("dpi", 150, "resolution of the preview image")
	verbose     = flag.Bool("v", false, "report the page layout")

	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "%s - generate keypad overlays for calculators\n", toolName)
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %s (-cut | -print | -all) [options]\n\n", toolName)
		fmt.Fprintf(out, "Options:\n")
		flag.PrintDefaults()
		sets := maps.Keys(overlay.LegendSets)
		slices.Sort(sets)
		fmt.Fprintf(out, "\nLegend sets: %s\n", strings.Join(sets, ", "))
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  %s -print\n", toolName)
		fmt.Fprintf(out, "  %s -sm -cut -o cut.pdf -png cut.png\n", toolName)
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	mode, err := overlay.SelectMode(*cutFlag, *printFlag, *allFlag)
	if err != nil {
		return err
	}
	model, err := overlay.SelectModel(*hpFlag, *smFlag)
	if err != nil {
		return err
	}
	legends, ok := overlay.LegendSets[*legendsArg]
	if !ok {
		return fmt.Errorf("unknown legend set %q", *legendsArg)
	}

	page := overlay.NewPage(overlay.Letter, &overlay.CameoNoMat, model, mode)
	page.Legends = legends
	if *measureFlag {
		metrics, err := font.Helvetica()
		if err != nil {
			return err
		}
		page.Measurer = metrics
	}
	if *verbose {
		page.Logger = log.New(os.Stderr, toolName+": ", 0)
	}

	stream, err := page.Content()
	if err != nil {
		return err
	}

	mediaBox := &document.Rectangle{
		URx: page.Size.Width * overlay.PtPerInch,
		URy: page.Size.Height * overlay.PtPerInch,
	}
	buf := &bytes.Buffer{}
	err = document.WriteSinglePage(buf, &document.SinglePage{
		MediaBox: mediaBox,
		Content:  stream,
		Fonts:    map[document.Name]document.Font{overlay.DefaultFontName: document.Helvetica},
		Compress: *compress,
		Info: &document.Info{
			Title:        fmt.Sprintf("%s keypad overlay (%s)", model.Description, mode),
			Creator:      buildinfo.Short(toolName),
			Producer:     "seehuhn.de/go/overlay",
			CreationDate: time.Now(),
		},
		Metadata: *metadata,
	})
	if err != nil {
		return err
	}

	outName := *outArg
	if outName == "" {
		outName = overlay.OutputName(model, mode)
	}
	err = writeOutput(outName, buf.Bytes())
	if err != nil {
		return err
	}

	if *pngArg != "" {
		err = writePreview(*pngArg, stream, mediaBox, *dpiArg)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(fname string, data []byte) error {
	if fname != "-" {
		return os.WriteFile(fname, data, 0o644)
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PDF data to a terminal")
	}
	_, err := os.Stdout.Write(data)
	return err
}

func writePreview(fname, stream string, mediaBox *document.Rectangle, dpi float64) error {
	img, err := preview.Render(stream, content.Dimensions{Width: mediaBox.Dx(), Height: mediaBox.Dy()}, dpi)
	if err != nil {
		return err
	}

	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = preview.WritePNG(out, img)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
