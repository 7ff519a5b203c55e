// Command canvasdemo renders a scene through the raster canvas and writes
// it as a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/glyph"
	"github.com/gogpu/canvas/region"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		verbose = flag.Bool("v", false, "log canvas debug output")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	store := canvas.NewStore(0)
	c, err := canvas.New(canvas.RasterBackend, canvas.Config{
		Width:   *width,
		Height:  *height,
		Format:  canvas.FormatXRGB32,
		Options: []canvas.Option{canvas.WithResolver(store), canvas.WithWorkers(4)},
	})
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}
	defer c.Destroy()

	photo, err := canvas.ImageFromStd(gradient(128, 128), canvas.FormatXRGB32)
	if err != nil {
		log.Fatalf("Failed to import image: %v", err)
	}
	store.AddImage(1, checkerboard())

	drawBackground(c)
	drawImages(c, photo)
	drawText(c)
	scroll(c)

	if err := imgio.Save(*output, c.Pixels().ToRGBA(), imgio.PNGEncoder()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// gradient returns a smooth test picture.
func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 127 / (w + h)),
				A: 0xff,
			})
		}
	}
	return img
}

// checkerboard returns an 8x8 two-color tile.
func checkerboard() *canvas.Image {
	tile, _ := canvas.NewImage(8, 8, canvas.FormatXRGB32)
	for y := range 8 {
		for x := range 8 {
			v := uint32(0x303030)
			if (x/4+y/4)%2 == 0 {
				v = 0xc0c0c0
			}
			tile.SetPixel(x, y, v)
		}
	}
	return tile
}

func drawBackground(c canvas.Canvas) {
	w, h := c.Width(), c.Height()
	const bands = 16
	for i := range bands {
		shade := uint32(0x10 + i*6)
		r := image.Rect(0, h*i/bands, w, h*(i+1)/bands)
		c.FillSolidRects([]image.Rectangle{r}, shade<<16|shade<<8|0x60)
	}

	tile := checkerboard()
	c.FillTiledRects([]image.Rectangle{image.Rect(20, 20, 300, 180)}, tile, image.Pt(20, 20))
	c.FillSolidRectsROP([]image.Rectangle{image.Rect(40, 40, 280, 60)}, 0xffffff, canvas.ROPXor)
}

func drawImages(c canvas.Canvas, photo *canvas.Image) {
	c.BlitImage(region.Rect(image.Rect(320, 20, 448, 148)), photo, image.Pt(320, 20))

	c.ScaleImage(region.Rect(image.Rect(460, 20, 780, 276)), photo, canvas.ScaleParams{
		SrcRect: photo.Bounds(),
		DstRect: image.Rect(460, 20, 716, 276),
		Mode:    canvas.ScaleInterpolate,
	})

	c.BlitImageROP(region.Rect(image.Rect(20, 200, 148, 328)), photo, image.Pt(20, 200), canvas.ROPCopyInverted)
	c.BlendImage(region.Rect(image.Rect(0, 0, c.Width(), c.Height())), photo,
		image.Point{}, image.Rect(160, 200, 288, 328), 0x80)

	key := photo.Pixel(0, 0)
	c.ColorKeyImage(region.Rect(image.Rect(300, 200, 428, 328)), photo, image.Pt(300, 200), key)

	thumb, err := canvas.ImageFromStd(transform.Resize(photo, 48, 48, transform.Linear), canvas.FormatXRGB32)
	if err != nil {
		log.Printf("Skipping thumbnail: %v", err)
		return
	}
	c.PutImage(image.Rect(440, 300, 536, 396), thumb, nil)
}

func drawText(c canvas.Canvas) {
	fr, err := glyph.NewFontRenderer(nil, 28, 8)
	if err != nil {
		log.Printf("Skipping text: %v", err)
		return
	}
	defer fr.Close()

	str := fr.Render("canvas demo", image.Pt(30, 400))
	bbox := str.Bounds().Inset(-4)
	c.DrawText(bbox, canvas.Clip{}, &canvas.Text{
		Str:       str,
		BackArea:  bbox,
		ForeBrush: canvas.SolidBrush{Color: 0xffffff},
		BackBrush: canvas.PatternBrush{Pattern: canvas.ImageRef{ID: 1}},
		ForeMode:  canvas.ROPDOpPut,
	})
}

// scroll moves the lower part of the picture up by a few rows.
func scroll(c canvas.Canvas) {
	area := image.Rect(0, c.Height()-120, c.Width(), c.Height())
	c.CopyRegion(region.Rect(area.Add(image.Pt(0, -40))).IntersectRect(area), 0, -40)
}
