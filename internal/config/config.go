package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	Port            string
	OwnerAccount    string
	OperatorWorkers int

	// Optional collaborators; empty means local stub / no-op.
	ExchangeURL string
	AMQPURL     string

	// Keeper daemon settings.
	APIBaseURL     string
	KeeperAccount  string
	KeeperSchedule string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		Port:             "9446",
		OwnerAccount:     "owner",
		OperatorWorkers:  4,
		APIBaseURL:       "http://localhost:9446",
		KeeperAccount:    "keeper",
		KeeperSchedule:   "@every 1m",
	}

	if v := os.Getenv("POSTGRES_ADDRESS"); len(v) != 0 {
		env.PostgresAddress = v
	}

	if v := os.Getenv("POSTGRES_PORT"); len(v) != 0 {
		env.PostgresPort = v
	}

	if v := os.Getenv("POSTGRES_DB"); len(v) != 0 {
		env.PostgresDB = v
	}

	if v := os.Getenv("POSTGRES_USERNAME"); len(v) != 0 {
		env.PostgresUsername = v
	}

	if v := os.Getenv("POSTGRES_PASSWORD"); len(v) != 0 {
		env.PostgresPassword = v
	}

	if v := os.Getenv("PORT"); len(v) != 0 {
		env.Port = v
	}

	if v := os.Getenv("OWNER_ACCOUNT"); len(v) != 0 {
		env.OwnerAccount = v
	}

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		env.OperatorWorkers = workers
	}

	if v := os.Getenv("EXCHANGE_URL"); len(v) != 0 {
		env.ExchangeURL = v
	}

	if v := os.Getenv("AMQP_URL"); len(v) != 0 {
		env.AMQPURL = v
	}

	if v := os.Getenv("API_BASE_URL"); len(v) != 0 {
		env.APIBaseURL = v
	}

	if v := os.Getenv("KEEPER_ACCOUNT"); len(v) != 0 {
		env.KeeperAccount = v
	}

	if v := os.Getenv("KEEPER_SCHEDULE"); len(v) != 0 {
		env.KeeperSchedule = v
	}

	return &env, nil
}

// PostgresURL assembles the connection string used by both the server and
// the migration runner.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
