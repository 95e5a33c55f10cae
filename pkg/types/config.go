package types

import "errors"

// Config holds the server configuration resolved from flags, config.yaml,
// and environment variables.
type Config struct {
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
	DBPath     string `json:"db_path" yaml:"db_path"`
	Env        string `json:"env" yaml:"env"`
}

// Recognized environment names. The environment selects the default
// database location when db_path is not set explicitly.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config validation errors.
var (
	ErrListenAddrEmpty = errors.New("listen_addr must not be empty")
	ErrEnvUnknown      = errors.New("unknown env")
)

// knownEnvs lists the environments that Validate accepts.
var knownEnvs = map[string]bool{
	EnvDevelopment: true,
	EnvProduction:  true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return ErrListenAddrEmpty
	}
	if !knownEnvs[c.Env] {
		return ErrEnvUnknown
	}
	return nil
}
