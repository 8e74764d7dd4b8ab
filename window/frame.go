// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"image"
	"sync"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// frame is the hand-off buffer between the drawing goroutine, which
// stores presented pixmaps, and the render thread, which copies the
// latest one into the GPU canvas.
type frame struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []byte // RGBA, 4 bytes per pixel
	seq    uint64 // bumped on every store
	closed bool
}

func newFrame(width, height int) *frame {
	return &frame{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*4),
	}
}

// store copies pm into the frame. Pixmaps of another size are scaled.
func (f *frame) store(pm *gg.Pixmap) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return ErrClosed
	}
	if pm.Width() == f.width && pm.Height() == f.height {
		copy(f.pix, pm.Data())
	} else {
		scale(f.pix, f.width, f.height, pm.Data(), pm.Width(), pm.Height())
	}
	f.seq++
	return nil
}

// copyTo writes the frame into dst (a width x height RGBA buffer) if it
// changed since seen. It returns the current sequence number and whether
// dst was written.
func (f *frame) copyTo(dst []byte, width, height int, seen uint64) (uint64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seq == seen {
		return f.seq, false
	}
	if width == f.width && height == f.height {
		copy(dst, f.pix)
	} else {
		scale(dst, width, height, f.pix, f.width, f.height)
	}
	return f.seq, true
}

func (f *frame) close() {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
}

func (f *frame) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// scale resamples src into dst with bilinear filtering.
func scale(dst []byte, dw, dh int, src []byte, sw, sh int) {
	d := rgbaView(dst, dw, dh)
	s := rgbaView(src, sw, sh)
	xdraw.ApproxBiLinear.Scale(d, d.Bounds(), s, s.Bounds(), xdraw.Src, nil)
}

// rgbaView wraps an RGBA byte slice without copying.
func rgbaView(pix []byte, width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
}
