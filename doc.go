// Package canvas provides a software raster compositing backend for a
// remote-display client.
//
// # Overview
//
// A Canvas is a drawing surface backed by a packed pixel buffer. The
// operations it exposes are the ones a remote display protocol sends:
// solid, tiled and ROP fills, image blits with clipping, scaled blits,
// alpha blends, color-key blits, overlap-safe region copies, glyph-string
// text, and readback of raw pixel rows.
//
// # Quick Start
//
//	c, err := canvas.Create(800, 600, canvas.FormatXRGB32)
//	if err != nil {
//	    return err
//	}
//	defer c.Destroy()
//
//	c.FillSolidRects([]image.Rectangle{image.Rect(0, 0, 800, 600)}, 0x202020)
//	c.BlitImage(region.Rect(image.Rect(10, 10, 110, 110)), img, image.Pt(10, 10))
//
// # Surfaces and images
//
// Every surface owns (or wraps, see CreateForData) an Image. Anything that
// exposes its pixels through the Source interface can be drawn: raw
// images, other canvases, or the same canvas.
//
// Pattern brushes refer to images and surfaces by id. They are looked up
// through the Resolver configured with WithResolver; Store is a ready-made
// Resolver.
//
// # Clipping
//
// Clips are region.Region values. Operations never write outside their
// clip or outside the surface. Unscaled blits leave pixels the source does
// not cover unchanged. Scaled copies write 0 where the sample falls outside
// the source image, and scaled blends leave those pixels unchanged.
//
// # Backends
//
// The "raster" backend is registered at init. Further backends register
// through Register and are created by name with New.
//
// # Thread Safety
//
// A Canvas is not safe for concurrent use. Separate canvases may be used
// from separate goroutines. Store and the glyph caches are safe for
// concurrent use.
package canvas
