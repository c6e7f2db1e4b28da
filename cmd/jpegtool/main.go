// Command jpegtool is a small peripheral driver for the jpeg package: it
// decodes, encodes, or probes a file from the command line. It is not part
// of the core codec (§1 scopes the CLI out of the core's concerns); it
// exists only to exercise the library end to end.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/png"
	"os"

	"github.com/bjpeg/bjpeg/jpeg"
)

func main() {
	mode := flag.String("mode", "probe", "probe, decode, or encode")
	in := flag.String("in", "", "input file path")
	out := flag.String("out", "", "output file path")
	quality := flag.Int("quality", 85, "encode quality, 1..100")
	subsampling := flag.String("subsampling", "420", "444, 422, or 420")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "jpegtool: -in is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jpegtool: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "probe":
		info, err := jpeg.Probe(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jpegtool: probe failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%dx%d, %d components, chroma subsampled: %v\n",
			info.Width, info.Height, info.Components, info.ChromaSubsampled)

	case "decode":
		img, err := jpeg.Decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jpegtool: decode failed: %v\n", err)
			os.Exit(1)
		}
		if *out == "" {
			fmt.Fprintln(os.Stderr, "jpegtool: -out is required for decode")
			os.Exit(1)
		}
		if err := writePNG(*out, img); err != nil {
			fmt.Fprintf(os.Stderr, "jpegtool: %v\n", err)
			os.Exit(1)
		}

	case "encode":
		if *out == "" {
			fmt.Fprintln(os.Stderr, "jpegtool: -out is required for encode")
			os.Exit(1)
		}
		sub, err := parseSubsampling(*subsampling)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jpegtool: %v\n", err)
			os.Exit(1)
		}
		src, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "jpegtool: reading source image: %v\n", err)
			os.Exit(1)
		}
		encoded, err := jpeg.Encode(toJPEGImage(src), jpeg.EncodeOptions{
			Quality:           *quality,
			ColorSpace:        jpeg.ColorSpaceYCbCr,
			ChromaSubsampling: sub,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "jpegtool: encode failed: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, encoded, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "jpegtool: %v\n", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "jpegtool: unknown mode %q\n", *mode)
		os.Exit(1)
	}
}

func parseSubsampling(s string) (jpeg.ChromaSubsampling, error) {
	switch s {
	case "444":
		return jpeg.Subsampling444, nil
	case "422":
		return jpeg.Subsampling422, nil
	case "420":
		return jpeg.Subsampling420, nil
	default:
		return 0, fmt.Errorf("unknown -subsampling %q (want 444, 422, or 420)", s)
	}
}

// toJPEGImage converts any stdlib image.Image into the package's plain RGBA
// pixel buffer, the only source shape Encode accepts (§6).
func toJPEGImage(src image.Image) *jpeg.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	img := jpeg.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.SetRGBA(x, y, uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
		}
	}
	return img
}

func writePNG(path string, img *jpeg.Image) error {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := 4 * (y*img.Width + x)
			rgba.SetRGBA(x, y, color.RGBA{
				R: img.Pix[i],
				G: img.Pix[i+1],
				B: img.Pix[i+2],
				A: img.Pix[i+3],
			})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, rgba)
}
