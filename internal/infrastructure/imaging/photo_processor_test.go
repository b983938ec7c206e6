package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"regexp"
	"strings"
	"testing"
)

func encodeTestJPEG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return &buf
}

func decodeDataURL(t *testing.T, dataURL string) image.Image {
	t.Helper()
	const prefix = "data:image/jpeg;base64,"
	if !strings.HasPrefix(dataURL, prefix) {
		t.Fatalf("unexpected data URL prefix: %.40s", dataURL)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, prefix))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return img
}

func TestProcessor_DownscalesPreservingAspect(t *testing.T) {
	p := NewProcessor()

	photo, err := p.ProcessInspectionPhoto("dano", encodeTestJPEG(t, 4000, 2000))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img := decodeDataURL(t, photo.DataURL)
	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 400 {
		t.Fatalf("expected 800x400, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessor_ExtremeAspectClampsToOnePixel(t *testing.T) {
	p := NewProcessor()

	photo, err := p.ProcessInspectionPhoto("carga", encodeTestJPEG(t, 1600, 1))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img := decodeDataURL(t, photo.DataURL)
	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 1 {
		t.Fatalf("expected 800x1, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessor_NeverUpscales(t *testing.T) {
	p := NewProcessor()

	photo, err := p.ProcessInspectionPhoto("detalle", encodeTestJPEG(t, 300, 200))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img := decodeDataURL(t, photo.DataURL)
	b := img.Bounds()
	if b.Dx() != 300 || b.Dy() != 200 {
		t.Fatalf("expected 300x200 untouched, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessor_LogoPreset(t *testing.T) {
	p := NewProcessor()

	photo, err := p.ProcessLogo("logo", encodeTestJPEG(t, 1000, 500))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	img := decodeDataURL(t, photo.DataURL)
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("expected 200x100, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestProcessor_RejectsNonImageInput(t *testing.T) {
	p := NewProcessor()

	_, err := p.ProcessInspectionPhoto("x", strings.NewReader("definitely not an image"))
	if !errors.Is(err, ErrNotAnImage) {
		t.Fatalf("expected ErrNotAnImage, got %v", err)
	}
}

func TestProcessor_GeneratedNamePattern(t *testing.T) {
	p := NewProcessor()

	photo, err := p.ProcessInspectionPhoto("dano", encodeTestJPEG(t, 10, 10))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	pattern := regexp.MustCompile(`^dano-\d{8}T\d{6}-[0-9a-f]{1,4}\.jpg$`)
	if !pattern.MatchString(photo.Name) {
		t.Fatalf("name %q does not match pattern", photo.Name)
	}
}
