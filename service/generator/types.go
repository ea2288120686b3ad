package generator

import (
	"errors"
	"io"

	"github.com/thirukguru/rstr/model"
)

// BlockSize is the number of random bytes requested per read.
const BlockSize = 512

var (
	// ErrNoClasses is returned when the configuration enables no character class.
	ErrNoClasses = errors.New("no character class enabled")

	// ErrRandomSource is the cause of every failure to read random bytes.
	ErrRandomSource = errors.New("secure random source failed")
)

type service struct {
	src       io.Reader
	blockSize int
}

// Service is the interface for random string generation.
type Service interface {
	Generate(cfg model.Config) (string, error)
}
