package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:8081", "-m", "127.0.0.1:9091", "-d", "db", "-s", "secret",
				"-t", "1", "-r", "3", "-k", "4", "-u", "user", "-p", "password", "-b", "bucket",
				"-g", "eu-west-1", "-e", "http://endpoint",
			},
			expected: &Config{
				EndpointAddrHTTP:             "127.0.0.1:8081",
				EndpointAddrGRPC:             "127.0.0.1:9091",
				DatabaseDSN:                  "db",
				SecretKey:                    "secret",
				AccessTokenValidityDuration:  1 * time.Minute,
				RefreshTokenValidityDuration: 3 * time.Minute,
				BcryptCost:                   4,
				S3RootUser:                   "user",
				S3RootPassword:               "password",
				S3Bucket:                     "bucket",
				S3Region:                     "eu-west-1",
				S3BaseEndpoint:               "http://endpoint",
			},
		},
		{
			name:     "unknown flags ignored",
			args:     []string{"-x", "1", "-c", "cfg.json", "-d", "db"},
			expected: &Config{DatabaseDSN: "db"},
		},
		{
			name:    "non numeric duration",
			args:    []string{"-t", "ten"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			err := parseFlags(config, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_DurationsUntouchedWhenAbsent(t *testing.T) {
	config := &Config{AccessTokenValidityDuration: 90 * time.Second}
	require.NoError(t, parseFlags(config, []string{"-s", "k"}))
	assert.Equal(t, 90*time.Second, config.AccessTokenValidityDuration)
}
