// Unit tests for Config validation.
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "valid development config",
			config: Config{ListenAddr: ":8080", DBPath: "todos.db", Env: EnvDevelopment},
		},
		{
			name:   "valid production config",
			config: Config{ListenAddr: ":80", DBPath: "/var/lib/todod/todos.db", Env: EnvProduction},
		},
		{
			name:    "empty listen address",
			config:  Config{Env: EnvDevelopment},
			wantErr: ErrListenAddrEmpty,
		},
		{
			name:    "unknown env",
			config:  Config{ListenAddr: ":8080", Env: "staging"},
			wantErr: ErrEnvUnknown,
		},
		{
			name:    "empty env",
			config:  Config{ListenAddr: ":8080"},
			wantErr: ErrEnvUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
