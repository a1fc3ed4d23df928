package cmd

import (
	"log"
	"time"

	"github.com/spigell/candidate-scout/internal/matching"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "candidate-scout"
)

type Config struct {
	Analyzer     *AnalyzerConfig        `mapstructure:"analyzer"`
	Candidate    *CandidateConfig       `mapstructure:"candidate"`
	Requirements *matching.Requirements `mapstructure:"requirements"`
	AI           *AIConfig              `mapstructure:"ai"`
}

type AnalyzerConfig struct {
	BaseURL      string        `mapstructure:"base-url"`
	APIKeyFile   string        `mapstructure:"api-key-file"`
	UserAgent    string        `mapstructure:"user-agent"`
	RequestDelay time.Duration `mapstructure:"request-delay"`
}

// CandidateConfig holds default identifiers; flags take precedence.
type CandidateConfig struct {
	Github    string `mapstructure:"github"`
	Portfolio string `mapstructure:"portfolio"`
	Instagram string `mapstructure:"instagram"`
	Resume    string `mapstructure:"resume"`
}

type AIConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Provider string        `mapstructure:"provider"`
	Gemini   *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "candidate-scout is a simple cli for gathering candidate data from public sources and scoring it",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("analyzer.api-key-file", "ANALYZER_API_KEY_FILE"); err != nil {
		log.Fatalf("binding ANALYZER_API_KEY_FILE environment variable: %v", err)
	}

	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is candidate-scout.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the search and analyze commands. Without
	// them there is nothing to initialize.
	if searchCmd.CalledAs() == "" && analyzeCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
