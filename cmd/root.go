package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/eatu-cf/odata-query-services/internal/appconfig"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	envFile    string
	host       string
	port       int
	appCfg     *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "odata-query-services",
	Short: "OData Query Services",
	Long:  `OData Query Services exposes REST endpoints that forward queries to remote OData services.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"path to the config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"optional file of environment variables used when rendering the config")
}

func setUp() {
	setLogging(logLevel)
}

// commonSetUp sets up logging and loads the config
func commonSetUp() {
	setUp()

	if err := loadEnvFile(envFile); err != nil {
		log.Fatal().Err(err).Str("file", envFile).Msg("failed to load env file")
	}

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("config", configPath).Msg("failed to load config")
	}
}

// loadEnvFile loads path into the environment if it exists. Variables already
// set take precedence.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
