package configs

import _ "embed"

// DefaultProperties is the application.yml bundled with the binary.
//
//go:embed application.yml
var DefaultProperties []byte

// DefaultMessages is the messages.yml bundled with the binary.
//
//go:embed messages.yml
var DefaultMessages []byte
