// Package xslt wraps the XSLT engine used to crosswalk MARC21-slim payloads
// into MODS. The engine is a black box behind the Transformer interface:
// document in, transformed document out.
package xslt

import (
	"fmt"
	"os"
	"sync"

	xsltengine "github.com/wamuir/go-xslt"
)

// Transformer applies a fixed, precompiled stylesheet to one document.
type Transformer interface {
	Transform(doc []byte) ([]byte, error)
}

// Stylesheet is a compiled stylesheet backed by libxslt. The underlying
// engine is not safe for concurrent transforms, so calls are serialized.
type Stylesheet struct {
	mu sync.Mutex
	xs *xsltengine.Stylesheet
}

// New compiles a stylesheet from its XSL text.
func New(xsl []byte) (*Stylesheet, error) {
	xs, err := xsltengine.NewStylesheet(xsl)
	if err != nil {
		return nil, fmt.Errorf("failed to compile stylesheet: %w", err)
	}
	return &Stylesheet{xs: xs}, nil
}

// Load compiles the stylesheet at the given path. The service calls this once
// at startup and reuses the result for every transform.
func Load(path string) (*Stylesheet, error) {
	xsl, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet %s: %w", path, err)
	}
	return New(xsl)
}

// Transform runs the stylesheet against doc. A rejected document surfaces as
// an error; there is no retry.
func (s *Stylesheet) Transform(doc []byte) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, err := s.xs.Transform(doc)
	if err != nil {
		return nil, fmt.Errorf("stylesheet transform failed: %w", err)
	}
	return out, nil
}

// Close releases the compiled stylesheet.
func (s *Stylesheet) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.xs.Close()
}
