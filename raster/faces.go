package raster

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"git.sr.ht/~whereswaldon/simchart/barchart"
)

// faceCache hands out font faces by style, falling back to basicfont when
// the Go fonts cannot be parsed.
type faceCache struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	hasBold bool
	faces   map[barchart.Font]font.Face
}

var sharedFaces = newFaceCache()

func newFaceCache() *faceCache {
	fc := &faceCache{faces: make(map[barchart.Font]font.Face)}
	var err error
	if fc.regular, err = opentype.Parse(goregular.TTF); err != nil {
		log.Printf("failed parsing regular font: %v", err)
	}
	if fc.bold, err = opentype.Parse(gobold.TTF); err != nil {
		log.Printf("failed parsing bold font: %v", err)
	}
	fc.hasBold = fc.bold != nil
	return fc
}

func (fc *faceCache) face(style barchart.Font) font.Face {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if f, ok := fc.faces[style]; ok {
		return f
	}
	src := fc.regular
	if style.Bold && fc.bold != nil {
		src = fc.bold
	}
	var face font.Face = basicfont.Face7x13
	if src != nil && style.Size > 0 {
		f, err := opentype.NewFace(src, &opentype.FaceOptions{
			Size:    float64(style.Size),
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			log.Printf("failed creating %vpx face: %v", style.Size, err)
		} else {
			face = f
		}
	}
	fc.faces[style] = face
	return face
}
