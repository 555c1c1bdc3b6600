// Package config loads configuration structures from defaults, .env files,
// environment variables and command line flags, and validates them.
package config

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/underbar-go/underbar/$GOPACKAGE IServiceConfiguration

// IServiceConfiguration defines a configuration structure which can be loaded.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}

// Validator is implemented by configuration sections able to validate themselves.
type Validator interface {
	Validate() error
}
