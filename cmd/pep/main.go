// Command pep encodes ordinary images to the .pep container format and
// decodes .pep files back to PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/ENDESGA/pep"
)

func main() {
	var in, out string
	var decode bool
	flag.StringVar(&in, "i", "", "Input file path")
	flag.StringVar(&out, "o", "", "Output file path")
	flag.BoolVar(&decode, "d", false, "Decode a .pep file to PNG instead of encoding")
	flag.Parse()

	if in == "" || out == "" {
		fmt.Fprintln(os.Stderr, "pep: -i and -o are required")
		os.Exit(1)
	}

	var err error
	if decode {
		err = decodeToPNG(in, out)
	} else {
		err = encodeFromImage(in, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pep: %s\n", err)
		os.Exit(1)
	}
}

func encodeFromImage(in, out string) error {
	file, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("cant open input %s: %w", in, err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("cant decode input %s: %w", in, err)
	}

	pixels, w, h := pep.ImageFromStdlib(src)
	img := pep.Compress(pixels, w, h, pep.FormatRGBA, pep.ChannelBits8)
	return pep.Save(img, out)
}

func decodeToPNG(in, out string) error {
	img, err := pep.Load(in)
	if err != nil {
		return fmt.Errorf("cant load input %s: %w", in, err)
	}

	pixels := img.Decompress(pep.FormatRGBA, false, false)
	stdImg := pep.ToStdlib(pixels, int(img.Width), int(img.Height))

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("cant open output %s: %w", out, err)
	}
	defer file.Close()

	if err := png.Encode(file, stdImg); err != nil {
		return fmt.Errorf("cant encode output %s: %w", out, err)
	}
	return nil
}
