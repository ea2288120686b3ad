package text

type service struct {
	help    string
	version string
}

// Service is the interface for the fixed help and version texts.
type Service interface {
	Help() string
	Version() string
}
