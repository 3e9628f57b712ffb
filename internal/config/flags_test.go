package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "0.0.0.0:80", want: NetAddress{Host: "0.0.0.0", Port: 80}},
		{name: "all interfaces", input: ":8080", want: NetAddress{Port: 8080}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-b", "sqlite",
		"-d", "/tmp/safes.db",
		"-r", "redis://localhost:6379",
		"-config", "/etc/safes.json",
		"-safe-secret", "s3cr3t",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "30m",
		"-request-timeout", "5s",
		"-shutdown-timeout", "2s",
	})
	require.NoError(t, err)

	assert.Equal(t, App{
		Secret:        "s3cr3t",
		TokenSignKey:  "sign",
		TokenIssuer:   "issuer",
		TokenDuration: 30 * time.Minute,
	}, cfg.App)
	assert.Equal(t, Storage{
		Backend: BackendSQLite,
		DB:      DB{DSN: "/tmp/safes.db"},
		Redis:   Redis{URL: "redis://localhost:6379"},
	}, cfg.Storage)
	assert.Equal(t, Server{
		HTTPAddress:     "127.0.0.1:9000",
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 2 * time.Second,
	}, cfg.Server)
	assert.Equal(t, "/etc/safes.json", cfg.JSONFilePath)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := parseFlags([]string{})
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-grpc-address", "localhost:9090"})
	assert.Error(t, err)
}
