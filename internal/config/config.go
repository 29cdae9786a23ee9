package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             string
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	JWTSecret        string
	TokenTTL         time.Duration
	WriteWorkers     int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		JWTSecret:        "local-dev-secret",
		TokenTTL:         24 * time.Hour,
		WriteWorkers:     4,
	}

	envPort := os.Getenv("PORT")
	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envTokenTTL := os.Getenv("TOKEN_TTL_HOURS")
	envWriteWorkers := os.Getenv("WRITE_WORKERS")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envTokenTTL) != 0 {
		hours, err := strconv.Atoi(envTokenTTL)
		if err != nil {
			return nil, err
		}
		env.TokenTTL = time.Duration(hours) * time.Hour
	}

	if len(envWriteWorkers) != 0 {
		workers, err := strconv.Atoi(envWriteWorkers)
		if err != nil {
			return nil, err
		}
		env.WriteWorkers = workers
	}

	return &env, nil
}

// ConnectionString builds the Postgres DSN used by both the server and the
// migration runner.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
