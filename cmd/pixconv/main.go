// Command pixconv converts images to raw sample buffers.
//
// Usage:
//
//	pixconv -list
//	pixconv -in photo.png -format "RGBA float" -out photo.raw
//	pixconv -in photo.jpg -width 256 -format "cairo-RGB24" -sum
//
// The input is decoded (PNG, JPEG, GIF, BMP, TIFF or WebP), optionally
// resized, normalized to R'G'B'A u8 and converted with the registered
// conversion to the requested format, chaining through RGBA float when no
// direct conversion exists.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/pixconv"
)

// config holds the command-line settings of one conversion run.
type config struct {
	input  string
	format string
	output string
	width  int // 0 keeps the aspect ratio, or the source width
	height int
	sum    bool
}

func main() {
	var cfg config
	list := flag.Bool("list", false, "list registered conversions and exit")
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.StringVar(&cfg.input, "in", "", "input image file")
	flag.StringVar(&cfg.format, "format", "RGBA float", "output sample format")
	flag.StringVar(&cfg.output, "out", "", "output raw file (default stdout)")
	flag.IntVar(&cfg.width, "width", 0, "resize to this width (0 keeps aspect ratio)")
	flag.IntVar(&cfg.height, "height", 0, "resize to this height (0 keeps aspect ratio)")
	flag.BoolVar(&cfg.sum, "sum", false, "log the xxhash64 digest of the output samples")
	flag.Parse()

	if *verbose {
		pixconv.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		listConversions(os.Stdout)
		return
	}
	if cfg.input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("pixconv: %v", err)
	}
}

func listConversions(w io.Writer) {
	for _, c := range pixconv.Default().Conversions() {
		fmt.Fprintf(w, "%-16s -> %-16s %s\n", c.Source(), c.Destination(), c.Cost())
	}
}

func run(cfg config) error {
	dstFormat, err := pixconv.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	img, err := decode(cfg.input)
	if err != nil {
		return err
	}
	if cfg.width > 0 || cfg.height > 0 {
		img = imaging.Resize(img, cfg.width, cfg.height, imaging.Lanczos)
	}
	buf, err := pixconv.FromImage(img)
	if err != nil {
		return err
	}

	out, err := convert(buf, dstFormat)
	if err != nil {
		return err
	}

	if err := write(cfg.output, out); err != nil {
		return err
	}
	log.Printf("%s: %dx%d %s, %d bytes\n", cfg.input, buf.Width, buf.Height, dstFormat, len(out))
	if cfg.sum {
		log.Printf("xxhash64 %s\n", digest(out))
	}
	return nil
}

// convert returns buf's samples in format f. A buffer already in f is
// returned as is.
func convert(buf *pixconv.Buffer, f pixconv.Format) ([]byte, error) {
	if buf.Format == f {
		return buf.Pix, nil
	}
	conv, err := resolve(pixconv.Default(), buf.Format, f)
	if err != nil {
		return nil, err
	}
	out := make([]byte, f.ImageBytes(buf.Width, buf.Height))
	if _, err := pixconv.ConvertParallel(context.Background(), conv, buf.Pix, out, buf.Samples()); err != nil {
		return nil, err
	}
	return out, nil
}

// digest returns the xxHash64 of data as 16 hex digits.
func digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// resolve finds a direct conversion or chains two through RGBA float.
func resolve(r *pixconv.Registry, src, dst pixconv.Format) (*pixconv.Conversion, error) {
	if src == dst {
		return nil, fmt.Errorf("input is already %s", dst)
	}
	direct, err := r.Lookup(src, dst)
	if err == nil {
		return direct, nil
	}
	if !errors.Is(err, pixconv.ErrNoConversion) {
		return nil, err
	}

	first, err := r.Lookup(src, pixconv.RGBAFloat)
	if err != nil {
		return nil, err
	}
	second, err := r.Lookup(pixconv.RGBAFloat, dst)
	if err != nil {
		return nil, err
	}
	return pixconv.Chain(first, second)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func write(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
