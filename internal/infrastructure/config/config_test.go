package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"RESALE_APP_NAME":                os.Getenv("RESALE_APP_NAME"),
		"RESALE_APP_ENV":                 os.Getenv("RESALE_APP_ENV"),
		"RESALE_APP_PORT":                os.Getenv("RESALE_APP_PORT"),
		"RESALE_DATABASE_HOST":           os.Getenv("RESALE_DATABASE_HOST"),
		"RESALE_DATABASE_PORT":           os.Getenv("RESALE_DATABASE_PORT"),
		"RESALE_DATABASE_USER":           os.Getenv("RESALE_DATABASE_USER"),
		"RESALE_DATABASE_PASSWORD":       os.Getenv("RESALE_DATABASE_PASSWORD"),
		"RESALE_DATABASE_DBNAME":         os.Getenv("RESALE_DATABASE_DBNAME"),
		"RESALE_DATABASE_SSLMODE":        os.Getenv("RESALE_DATABASE_SSLMODE"),
		"RESALE_DATABASE_MAX_OPEN_CONNS": os.Getenv("RESALE_DATABASE_MAX_OPEN_CONNS"),
		"RESALE_DATABASE_MAX_IDLE_CONNS": os.Getenv("RESALE_DATABASE_MAX_IDLE_CONNS"),
		"RESALE_AUTH_MODE":               os.Getenv("RESALE_AUTH_MODE"),
		"RESALE_AUTH_JWT_SECRET":         os.Getenv("RESALE_AUTH_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "resale-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "resale", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "jwt", cfg.Auth.Mode)
	})

	t.Run("loads values from environment variables with RESALE prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("RESALE_APP_NAME", "test-app")
		os.Setenv("RESALE_APP_PORT", "9000")
		os.Setenv("RESALE_DATABASE_HOST", "testdb.local")
		os.Setenv("RESALE_DATABASE_PORT", "5433")
		os.Setenv("RESALE_DATABASE_USER", "testuser")
		os.Setenv("RESALE_DATABASE_PASSWORD", "testpass")
		os.Setenv("RESALE_DATABASE_DBNAME", "testdb")
		os.Setenv("RESALE_DATABASE_SSLMODE", "require")
		os.Setenv("RESALE_AUTH_MODE", "dev_bypass")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, "dev_bypass", cfg.Auth.Mode)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("RESALE_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("RESALE_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("rejects unknown auth mode", func(t *testing.T) {
		clearEnv()
		os.Setenv("RESALE_AUTH_MODE", "basic")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth.mode")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"RESALE_APP_ENV":           os.Getenv("RESALE_APP_ENV"),
		"RESALE_AUTH_MODE":         os.Getenv("RESALE_AUTH_MODE"),
		"RESALE_AUTH_JWT_SECRET":   os.Getenv("RESALE_AUTH_JWT_SECRET"),
		"RESALE_DATABASE_PASSWORD": os.Getenv("RESALE_DATABASE_PASSWORD"),
		"RESALE_DATABASE_SSLMODE":  os.Getenv("RESALE_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	setValidProductionBase := func() {
		os.Setenv("RESALE_APP_ENV", "production")
		os.Setenv("RESALE_AUTH_JWT_SECRET", "this-is-a-very-secure-jwt-secret-key-32chars")
		os.Setenv("RESALE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("RESALE_DATABASE_SSLMODE", "require")
	}

	t.Run("requires jwt secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("RESALE_APP_ENV", "production")
		os.Setenv("RESALE_DATABASE_PASSWORD", "secure-password")
		os.Setenv("RESALE_DATABASE_SSLMODE", "require")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth.jwt_secret is required in production")
	})

	t.Run("requires jwt secret at least 32 characters in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("RESALE_AUTH_JWT_SECRET", "short-secret")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "auth.jwt_secret must be at least 32 characters")
	})

	t.Run("rejects dev_bypass in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("RESALE_AUTH_MODE", "dev_bypass")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dev_bypass")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()
		os.Setenv("RESALE_DATABASE_SSLMODE", "disable")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("passes validation with valid production config", func(t *testing.T) {
		clearEnv()
		setValidProductionBase()

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost")
		assert.Contains(t, dsn, "5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "user",
			Password: "pass@word#123",
			DBName:   "db",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "pass%40word%23123")
	})
}
