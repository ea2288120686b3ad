package flag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thirukguru/rstr/model"
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// newFlagSet builds the registry of recognized options. Order of definition
// is the order shown in help output.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rstr", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.BoolP(upperFlag, "u", false, "Include upper case ASCII characters.")
	fs.BoolP(lowerFlag, "l", false, "Include lower case ASCII characters.")
	fs.BoolP(digitFlag, "d", false, "Include ASCII digits.")
	fs.BoolP(specialFlag, "s", false, "Include special characters.")
	fs.BoolP(helpFlag, "h", false, "Show this help and exit.")
	fs.BoolP(versionFlag, "v", false, "Show version information and exit.")

	return fs
}

// Usages returns the rendered option summary.
func (s *service) Usages() string {
	return newFlagSet().FlagUsages()
}

// Parse turns the raw argument list (without the program name) into a
// request. Help and version are only honoured as the very first token.
func (s *service) Parse(args []string) (model.Request, error) {
	cfg := model.DefaultConfig()

	if len(args) == 0 {
		return model.Request{Action: model.ActionGenerate, Config: cfg}, nil
	}

	fs := newFlagSet()

	if f := lookup(fs, args[0]); f != nil {
		switch f.Name {
		case helpFlag:
			return model.Request{Action: model.ActionHelp}, nil
		case versionFlag:
			return model.Request{Action: model.ActionVersion}, nil
		}
	}

	if len(args) == 1 && isDigits(args[0]) {
		length, err := parseLength(args[0])
		if err != nil {
			return model.Request{}, err
		}
		cfg.Length = length
		return model.Request{Action: model.ActionGenerate, Config: cfg}, nil
	}

	for i, arg := range args {
		if i == 0 && isDigits(arg) {
			length, err := parseLength(arg)
			if err != nil {
				return model.Request{}, err
			}
			cfg.Length = length
			continue
		}

		f := lookup(fs, arg)
		if f == nil || f.Name == helpFlag || f.Name == versionFlag {
			return model.Request{}, fmt.Errorf("%w: unexpected %q", ErrInvalidArguments, arg)
		}
		if err := f.Value.Set("true"); err != nil {
			return model.Request{}, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
	}

	cfg.Digit = getBool(fs, digitFlag)
	cfg.Upper = getBool(fs, upperFlag)
	cfg.Lower = getBool(fs, lowerFlag)
	cfg.Special = getBool(fs, specialFlag)

	return model.Request{Action: model.ActionGenerate, Config: cfg}, nil
}

// lookup resolves an exact "--name" or "-x" token. Attached values,
// bundled shorthands and bare words resolve to nil.
func lookup(fs *pflag.FlagSet, arg string) *pflag.Flag {
	switch {
	case strings.HasPrefix(arg, "--"):
		return fs.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-' && arg[1] != '-':
		return fs.ShorthandLookup(arg[1:])
	default:
		return nil
	}
}

func getBool(fs *pflag.FlagSet, name string) bool {
	v, err := fs.GetBool(name)
	return err == nil && v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func parseLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: length %q out of range", ErrInvalidArguments, s)
	}

	return n, nil
}
