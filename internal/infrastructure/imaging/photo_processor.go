// Package imaging downscales and re-encodes uploaded photos into the
// data-URL payloads the inspection form and settings logo carry.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"math"
	"math/rand"
	"time"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"tms_gruas/internal/domain/entities"
)

var ErrNotAnImage = errors.New("input is not a decodable image")

const (
	// Inspection photos fit an 800x600 box; logos a 200x200 box.
	InspectionMaxWidth  = 800
	InspectionMaxHeight = 600
	LogoMaxEdge         = 200

	jpegQuality = 80
)

type Processor struct{}

func NewProcessor() *Processor {
	return &Processor{}
}

// ProcessInspectionPhoto applies the inspection preset.
func (p *Processor) ProcessInspectionPhoto(prefix string, r io.Reader) (entities.PhotoData, error) {
	return p.Process(prefix, r, InspectionMaxWidth, InspectionMaxHeight)
}

// ProcessLogo applies the logo preset.
func (p *Processor) ProcessLogo(prefix string, r io.Reader) (entities.PhotoData, error) {
	return p.Process(prefix, r, LogoMaxEdge, LogoMaxEdge)
}

// Process decodes r, scales it down (never up) to fit maxW x maxH preserving
// aspect ratio, re-encodes as JPEG and returns the data-URL payload under a
// generated unique name.
func (p *Processor) Process(prefix string, r io.Reader, maxW, maxH int) (entities.PhotoData, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return entities.PhotoData{}, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return entities.PhotoData{}, fmt.Errorf("%w: empty image", ErrNotAnImage)
	}

	nw, nh := fit(w, h, maxW, maxH)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return entities.PhotoData{}, err
	}

	return entities.PhotoData{
		Name:    generateName(prefix),
		DataURL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// fit returns dimensions scaled to the bounding box, preserving aspect ratio
// and never upscaling. Dimensions are rounded and clamped to at least 1px.
func fit(w, h, maxW, maxH int) (int, int) {
	scale := math.Min(1, math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h)))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

func generateName(prefix string) string {
	ts := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("%s-%s-%04x.jpg", prefix, ts, rand.Intn(0x10000))
}
