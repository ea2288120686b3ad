package output

import (
	"io"

	"github.com/rs/zerolog"
)

// InvalidArgumentsMessage is shown when the arguments cannot be parsed.
const InvalidArgumentsMessage = `rstr: Invalid arguments or combination of arguments. Use "rstr -h" to view help.`

// service is the internal implementation
type service struct {
	stdout io.Writer
	stderr io.Writer
	color  bool
	blueBG bool
	logger zerolog.Logger
}

// Service defines the interface for output operations
type Service interface {
	PrintResult(s string) error
	ReportInvalidArguments()
	ReportFatal(err error)
}
