package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/stlkit/internal/logger"
)

// screenshot reads back the framebuffer and writes it to a timestamped PNG
// in the working directory.
func (v *viewer) screenshot() {
	width, height := v.win.GetSize()

	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))

	name, err := writePNG(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// writePNG encodes RGBA pixel data as a PNG file. The rows are flipped
// vertically since OpenGL has its origin at the bottom-left.
func writePNG(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcY := height - 1 - y // Flip Y
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[srcY*rowSize:srcY*rowSize+rowSize])
	}

	filename := fmt.Sprintf("stlview_%s.png", time.Now().Format("2006-01-02_15-04-05"))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
