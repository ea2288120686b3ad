// Package generator produces random ASCII strings from a secure byte source.
package generator

import (
	"crypto/rand"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/thirukguru/rstr/model"
	"github.com/thirukguru/rstr/shared/charset"
)

// maxPrealloc bounds the up-front buffer so huge lengths grow on demand.
const maxPrealloc = 4096

// NewService creates a generator reading from src. A nil src uses crypto/rand.
func NewService(src io.Reader) Service {
	if src == nil {
		src = rand.Reader
	}

	return &service{src: src, blockSize: BlockSize}
}

// Generate returns exactly cfg.Length characters. Each random byte is taken
// as a code point and kept only if it belongs to an enabled class, so output
// order is the order of accepted bytes in the stream.
func (s *service) Generate(cfg model.Config) (string, error) {
	if cfg.Length <= 0 {
		return "", nil
	}
	if !cfg.AnyClass() {
		return "", ErrNoClasses
	}

	accept := charset.AcceptTable(cfg)

	var out strings.Builder
	out.Grow(min(cfg.Length, maxPrealloc))

	buf := make([]byte, s.blockSize)
	remaining := cfg.Length

	for remaining > 0 {
		if _, err := io.ReadFull(s.src, buf); err != nil {
			return "", errors.Wrapf(ErrRandomSource, "read %d bytes: %v", len(buf), err)
		}

		for _, b := range buf {
			if !accept[b] {
				continue
			}
			out.WriteByte(b)
			remaining--
			if remaining == 0 {
				break
			}
		}
	}

	return out.String(), nil
}
