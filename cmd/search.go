package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/candidate-scout/internal/analyzer"
	"github.com/spigell/candidate-scout/internal/candidate"
	"github.com/spigell/candidate-scout/internal/logger"
	"github.com/spigell/candidate-scout/internal/report"
	"github.com/spigell/candidate-scout/internal/resume"
	"github.com/spigell/candidate-scout/internal/secrets"
	"github.com/spigell/candidate-scout/internal/sourcing"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowRecord   = "Show the candidate record"
	PromptRecordToFile = "Dump the record to file"
	PromptExit         = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowRecord, PromptRecordToFile, PromptExit},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search public sources and aggregate a candidate record",
	Run: func(cmd *cobra.Command, _ []string) {
		search(cmd)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	registerCandidateFlags(searchCmd)
	searchCmd.Flags().BoolP("auto-approve", "y", false, "do not ask what to do with the aggregated record")
}

// registerCandidateFlags adds the candidate identifier flags. Flags override
// the candidate section of the config file.
func registerCandidateFlags(cmd *cobra.Command) {
	cmd.Flags().String("github", "", "github username to look up")
	cmd.Flags().StringP("portfolio", "p", "", "portfolio site url to scrape")
	cmd.Flags().String("instagram", "", "instagram handle to look up")
	cmd.Flags().StringP("resume", "r", "", "path to a resume file (pdf or docx)")
}

// search is the main command for the cli.
func search(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the candidate-scout", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	searcher, err := newSearcher(config, logger)
	if err != nil {
		logger.Fatal("building the searcher", zap.Error(err))
	}

	in, err := gatherInput(cmd, config, logger)
	if err != nil {
		logger.Fatal("collecting candidate identifiers", zap.Error(err))
	}

	record, _ := runSearch(ctx, searcher, in, logger)

	pretty, _ = json.MarshalIndent(record, "", "  ")
	logger.Info(fmt.Sprintf("aggregated candidate record: \n %s", pretty))

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, record, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, record *candidate.Record, logger *zap.Logger) error {
	switch action {
	case PromptShowRecord:
		pretty, _ := json.MarshalIndent(record, "", "  ")
		logger.Info(string(pretty))
		return nil
	case PromptRecordToFile:
		filename, err := report.New(record, nil, nil).DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump the record to file: %w", err)
		}
		logger.Info("dumping the record to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// runSearch runs one search and returns the handed-off record with the raw
// per-source findings. Source failures are already reported by the notifier,
// so only a search that never started is fatal here.
func runSearch(ctx context.Context, searcher *sourcing.Searcher, in sourcing.Input, logger *zap.Logger) (*candidate.Record, *sourcing.Findings) {
	var record *candidate.Record
	findings, err := searcher.Search(ctx, in, func(rec *candidate.Record) {
		record = rec
	})
	if err != nil {
		if errors.Is(err, sourcing.ErrNoInput) {
			logger.Fatal("nothing to search",
				zap.Error(err),
				zap.String("hint", "pass at least one of --github, --portfolio, --instagram or --resume"),
			)
		}
		logger.Fatal("search failed", zap.Error(err))
	}

	return record, findings
}

func newSearcher(config *Config, logger *zap.Logger) (*sourcing.Searcher, error) {
	analyzerConfig := config.Analyzer
	if analyzerConfig == nil {
		analyzerConfig = &AnalyzerConfig{}
	}

	apiKey, err := resolveAPIKey(analyzerConfig)
	if err != nil {
		return nil, err
	}

	client := analyzer.New(logger, analyzer.Config{
		BaseURL:   analyzerConfig.BaseURL,
		APIKey:    apiKey,
		UserAgent: analyzerConfig.UserAgent,
	})

	deps := sourcing.Deps{
		Analyzer: client,
		Logger:   logger,
	}

	notifier := &sourcing.LoggerNotifier{Logger: logger}

	return sourcing.NewSearcher(deps, notifier, sourcing.Config{
		RequestDelay: analyzerConfig.RequestDelay,
	}), nil
}

func resolveAPIKey(config *AnalyzerConfig) (string, error) {
	keyFile := strings.TrimSpace(config.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("analyzer.api-key-file"))
	}

	if keyFile == "" {
		return "", errors.New("analyzer api key file is not configured (set ANALYZER_API_KEY_FILE or the analyzer.api-key-file key)")
	}

	return secrets.Load(secrets.Source{
		Name: "analyzer api key",
		File: keyFile,
	})
}

// gatherInput builds the search input from the flags, falling back to the
// candidate section of the config file. The resume file is read up front so a
// bad path fails before any request.
func gatherInput(cmd *cobra.Command, config *Config, logger *zap.Logger) (sourcing.Input, error) {
	fallback := config.Candidate
	if fallback == nil {
		fallback = &CandidateConfig{}
	}

	in := sourcing.Input{}.
		WithGithubUsername(flagOrConfig(cmd, "github", fallback.Github)).
		WithPortfolioURL(flagOrConfig(cmd, "portfolio", fallback.Portfolio)).
		WithInstagramHandle(flagOrConfig(cmd, "instagram", fallback.Instagram))

	path := flagOrConfig(cmd, "resume", fallback.Resume)
	if path == "" {
		return in, nil
	}

	file, err := resume.Load(path)
	if err != nil {
		return in, fmt.Errorf("loading resume %s: %w", path, err)
	}

	logger.Info("resume file loaded", zap.String("filename", file.Name), zap.Int("size", len(file.Content)))

	return in.WithResume(file), nil
}

func flagOrConfig(cmd *cobra.Command, name, fallback string) string {
	if v := strings.TrimSpace(cmd.Flag(name).Value.String()); v != "" {
		return v
	}

	return strings.TrimSpace(fallback)
}
