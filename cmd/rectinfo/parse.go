package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-rect/rect"
)

var errCornerCount = errors.New("expected 4 values")

// yamlRect is the document form of a rectangle.
type yamlRect struct {
	X []float32 `yaml:"x,flow"`
	Y []float32 `yaml:"y,flow"`
}

// parseRectArg parses "x0,x1,x2,x3:y0,y1,y2,y3".
func parseRectArg(s string) (rect.Rect, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return rect.Rect{}, fmt.Errorf("rect %q: missing ':' between x and y values", s)
	}

	var r rect.Rect
	if err := parseLanes(xs, &r.X); err != nil {
		return rect.Rect{}, fmt.Errorf("rect %q: x: %w", s, err)
	}
	if err := parseLanes(ys, &r.Y); err != nil {
		return rect.Rect{}, fmt.Errorf("rect %q: y: %w", s, err)
	}
	return r, nil
}

func parseLanes(s string, dst *[4]float32) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("%w, got %d", errCornerCount, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		dst[i] = float32(v)
	}
	return nil
}

// decodeRects reads a YAML sequence of {x: [...], y: [...]} mappings.
func decodeRects(r io.Reader) (rect.Rects, error) {
	var docs []yamlRect
	if err := yaml.NewDecoder(r).Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode rects: %w", err)
	}

	rs := make(rect.Rects, len(docs))
	for i, d := range docs {
		if len(d.X) != 4 || len(d.Y) != 4 {
			return nil, fmt.Errorf("rect %d: %w, got %d x and %d y", i, errCornerCount, len(d.X), len(d.Y))
		}
		copy(rs[i].X[:], d.X)
		copy(rs[i].Y[:], d.Y)
	}
	return rs, nil
}

func readRectsFile(path string) (rect.Rects, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rects file: %w", err)
	}
	defer f.Close()

	return decodeRects(f)
}

func encodeRects(w io.Writer, rs rect.Rects) error {
	docs := make([]yamlRect, len(rs))
	for i := range rs {
		docs[i] = yamlRect{
			X: append([]float32(nil), rs[i].X[:]...),
			Y: append([]float32(nil), rs[i].Y[:]...),
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("encode rects: %w", err)
	}
	return enc.Close()
}
