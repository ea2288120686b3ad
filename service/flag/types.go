package flag

import (
	"errors"

	"github.com/thirukguru/rstr/model"
)

// ErrInvalidArguments is returned for any unrecognized token or argument
// combination. The whole invocation is rejected.
var ErrInvalidArguments = errors.New("invalid arguments or combination of arguments")

const (
	helpFlag    = "help"
	versionFlag = "version"
	digitFlag   = "digit"
	upperFlag   = "ucase"
	lowerFlag   = "lcase"
	specialFlag = "special"
)

type service struct{}

// Service is the interface for CLI argument parsing.
type Service interface {
	Parse(args []string) (model.Request, error)
	Usages() string
}
