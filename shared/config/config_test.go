package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	HTTP  HTTPConfig  `envPrefix:"HTTP_"`
	Mongo MongoConfig `envPrefix:"MONGO_"`
}

func TestParse_Defaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "3001")
	t.Setenv("MONGO_DATABASE", "tasks")

	cfg, err := Parse[testConfig]()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3001", cfg.HTTP.Address())
	assert.Equal(t, []string{"*"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, 5*time.Second, cfg.Mongo.OperationTimeout)
	assert.NoError(t, Validate(cfg.HTTP, cfg.Mongo))
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("MONGO_DATABASE", "auth")
	t.Setenv("MONGO_OPERATION_TIMEOUT", "250ms")

	cfg, err := Parse[testConfig]()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
	assert.Equal(t, 250*time.Millisecond, cfg.Mongo.OperationTimeout)
}

func TestParse_InvalidDuration(t *testing.T) {
	t.Setenv("MONGO_OPERATION_TIMEOUT", "soon")

	_, err := Parse[testConfig]()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := MongoConfig{URI: "mongodb://x", Database: "d", OperationTimeout: time.Second}

	tests := []struct {
		name    string
		http    HTTPConfig
		mongo   MongoConfig
		wantErr string
	}{
		{name: "missing port", http: HTTPConfig{}, mongo: valid, wantErr: "invalid HTTP port"},
		{name: "port out of range", http: HTTPConfig{Port: 70000}, mongo: valid, wantErr: "invalid HTTP port"},
		{name: "missing uri", http: HTTPConfig{Port: 1}, mongo: MongoConfig{Database: "d", OperationTimeout: time.Second}, wantErr: "missing MongoDB URI"},
		{name: "missing database", http: HTTPConfig{Port: 1}, mongo: MongoConfig{URI: "x", OperationTimeout: time.Second}, wantErr: "missing MongoDB database name"},
		{name: "zero timeout", http: HTTPConfig{Port: 1}, mongo: MongoConfig{URI: "x", Database: "d"}, wantErr: "operation timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.http, tt.mongo)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConsulConfig_Enabled(t *testing.T) {
	assert.False(t, ConsulConfig{}.Enabled())
	assert.True(t, ConsulConfig{Address: "consul:8500"}.Enabled())
}
