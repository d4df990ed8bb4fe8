// Package raster provides a software canvas backed by an RGBA pixel buffer.
// The scene is painted here every frame and then presented to the window in
// a single upload.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Framebuffer is a fixed-size RGBA pixel buffer implementing render.Canvas.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer allocates a width x height buffer, initially transparent black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Size returns the framebuffer dimensions.
func (f *Framebuffer) Size() (width, height int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear paints every pixel with clr.
func (f *Framebuffer) Clear(clr color.RGBA) {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

// FillRect paints the w x h block at (x, y), clipped to the buffer.
func (f *Framebuffer) FillRect(x, y, w, h int, clr color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Bounds())
	if r.Empty() {
		return
	}

	// Brushes are a few pixels wide; writing Pix directly keeps the per-step
	// cost of ray marching low.
	for py := r.Min.Y; py < r.Max.Y; py++ {
		i := f.img.PixOffset(r.Min.X, py)
		for px := r.Min.X; px < r.Max.X; px++ {
			f.img.Pix[i+0] = clr.R
			f.img.Pix[i+1] = clr.G
			f.img.Pix[i+2] = clr.B
			f.img.Pix[i+3] = clr.A
			i += 4
		}
	}
}

// At returns the color of one pixel.
func (f *Framebuffer) At(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// Pixels exposes the raw RGBA bytes for presenting.
func (f *Framebuffer) Pixels() []byte {
	return f.img.Pix
}

// Image returns the buffer as a standard image.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// ScaleTo draws the buffer into dst, resampling with nearest-neighbour so
// hard pixel edges survive. Used when the presentation surface is not the
// same size as the buffer.
func (f *Framebuffer) ScaleTo(dst draw.Image) {
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), f.img, f.img.Bounds(), draw.Src, nil)
}
