package model

// DefaultLength is the number of characters generated when no length is given.
const DefaultLength = 16

// Config is the resolved set of generation parameters.
type Config struct {
	Length  int
	Digit   bool
	Upper   bool
	Lower   bool
	Special bool
}

// DefaultConfig returns the configuration used when no class flag is given.
func DefaultConfig() Config {
	return Config{
		Length:  DefaultLength,
		Digit:   true,
		Upper:   true,
		Lower:   true,
		Special: true,
	}
}

// AnyClass reports whether at least one character class is enabled.
func (c Config) AnyClass() bool {
	return c.Digit || c.Upper || c.Lower || c.Special
}

// Action is what the invocation asked for.
type Action int

const (
	ActionGenerate Action = iota
	ActionHelp
	ActionVersion
)

func (a Action) String() string {
	switch a {
	case ActionGenerate:
		return "generate"
	case ActionHelp:
		return "help"
	case ActionVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Request is the result of a successful argument parse. Config is only
// meaningful for ActionGenerate.
type Request struct {
	Action Action
	Config Config
}
