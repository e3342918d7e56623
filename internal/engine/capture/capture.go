// Package capture converts framebuffer readbacks into image files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNG writes RGBA pixel data to a PNG file. pixels must hold
// width*height*4 bytes with the bottom row first, as returned by the
// framebuffer readback; the image is flipped to top-down during the copy.
func WritePNG(path string, pixels []byte, width, height int) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y // Flip Y
		copy(img.Pix[y*rowSize:(y+1)*rowSize], pixels[srcY*rowSize:(srcY+1)*rowSize])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// FrameWriter writes a numbered PNG sequence into one directory.
type FrameWriter struct {
	dir    string
	prefix string
	next   int
}

// NewFrameWriter creates a writer emitting <prefix>_0000.png style files
// under dir.
func NewFrameWriter(dir, prefix string) *FrameWriter {
	return &FrameWriter{dir: dir, prefix: prefix}
}

// Write stores the next frame and returns its path.
func (w *FrameWriter) Write(pixels []byte, width, height int) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("%s_%04d.png", w.prefix, w.next))
	if err := WritePNG(path, pixels, width, height); err != nil {
		return "", err
	}
	w.next++
	return path, nil
}
