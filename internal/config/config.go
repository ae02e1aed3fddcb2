package config

import (
	"os"
	"strconv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	OperatorWorkers int

	// TransactionAllowZero controls whether the executor accepts a
	// zero-amount transaction. The credit floor never applies to one either
	// way, since a zero delta cannot worsen the balance.
	TransactionAllowZero bool

	GeneratorRounds     int
	GeneratorTopUp      int64
	GeneratorBasketSize int
	GeneratorSeed       int64
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		OperatorWorkers: 4,

		TransactionAllowZero: true,

		GeneratorRounds:     50,
		GeneratorTopUp:      1000,
		GeneratorBasketSize: 5,
		GeneratorSeed:       0,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")

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

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = parsed
	}

	if v := os.Getenv("TRANSACTION_ALLOW_ZERO"); len(v) != 0 {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		env.TransactionAllowZero = parsed
	}

	if v := os.Getenv("GENERATOR_ROUNDS"); len(v) != 0 {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.GeneratorRounds = parsed
	}

	if v := os.Getenv("GENERATOR_TOP_UP"); len(v) != 0 {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		env.GeneratorTopUp = parsed
	}

	if v := os.Getenv("GENERATOR_BASKET_SIZE"); len(v) != 0 {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.GeneratorBasketSize = parsed
	}

	if v := os.Getenv("GENERATOR_SEED"); len(v) != 0 {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		env.GeneratorSeed = parsed
	}

	return &env, nil
}

// ConnectionString builds the Postgres DSN shared by the server and the
// migration script.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
