package configuration

import (
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sendikahq/sendika/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

func Use() *Configuration {
	return singleton()
}

func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existingFiles = append(existingFiles, file)
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

type DatabaseOptions struct {
	Name     string `env:"DB_NAME" envDefault:"sendika"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
}

func (d *DatabaseOptions) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Name, d.Password,
	)
}

// ImportOptions are the hard ceilings on the bulk member import. PreviewRows
// only truncates the validate preview; every row is still validated.
type ImportOptions struct {
	MaxFileSize int64 `env:"IMPORT_MAX_FILE_SIZE" envDefault:"5242880"`
	MaxRows     int   `env:"IMPORT_MAX_ROWS" envDefault:"2000"`
	PreviewRows int   `env:"IMPORT_PREVIEW_ROWS" envDefault:"200"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type Configuration struct {
	Database   DatabaseOptions
	Import     ImportOptions
	Prometheus PrometheusOptions

	Address          string   `env:"ADDRESS" envDefault:"localhost:8080"`
	Environment      string   `env:"GO_APP_ENV" envDefault:"development"`
	LogLevel         string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000"`
	RequestIDHeader  string   `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	ActingUserHeader string   `env:"ACTING_USER_HEADER" envDefault:"X-User-ID"`

	logger *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	if c.logger == nil {
		c.logger = c.newLogger()
	}
	return c.logger
}

func (c *Configuration) newLogger() *logrus.Logger {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}

	logger := logging.ConsoleLogger(level)
	if c.Environment == Production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

func (c *Configuration) load(envFiles []string) error {
	if _, err := LoadEnv(envFiles); err != nil {
		return err
	}
	return env.Parse(c)
}

func (c *Configuration) Unload() {
	c.logger = nil
}
