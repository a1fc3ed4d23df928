package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spigell/candidate-scout/internal/ai"
	"github.com/spigell/candidate-scout/internal/ai/gemini"
	"github.com/spigell/candidate-scout/internal/candidate"
	"github.com/spigell/candidate-scout/internal/logger"
	"github.com/spigell/candidate-scout/internal/matching"
	"github.com/spigell/candidate-scout/internal/report"
	"github.com/spigell/candidate-scout/internal/resume"
	"github.com/spigell/candidate-scout/internal/secrets"
	"github.com/spigell/candidate-scout/internal/sourcing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Search candidate sources and score the result against the configured requirements",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	registerCandidateFlags(analyzeCmd)
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to this file instead of a temporary one")
}

func analyze(cmd *cobra.Command) {
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

	if config.Requirements == nil {
		logger.Fatal("a requirements section is required in the configuration file to score candidates")
	}

	searcher, err := newSearcher(config, logger)
	if err != nil {
		logger.Fatal("building the searcher", zap.Error(err))
	}

	in, err := gatherInput(cmd, config, logger)
	if err != nil {
		logger.Fatal("collecting candidate identifiers", zap.Error(err))
	}

	record, findings := runSearch(ctx, searcher, in, logger)

	profile := buildProfile(in, findings, logger)

	eval := matching.Evaluate(profile, *config.Requirements)

	record.Skills = profile.Skills
	record.MatchScore = eval.OverallScore

	logger.Info("candidate scored",
		zap.Float64("overall_score", eval.OverallScore),
		zap.Float64("skills_score", eval.Skills.Score),
		zap.Bool("qualified", eval.Qualified),
	)

	insights := adviseOnCandidate(ctx, config.AI, record, &eval, logger)

	rep := report.New(record, &eval, insights)

	output := cmd.Flag("output").Value.String()
	if output != "" {
		if err := rep.ToFile(output); err != nil {
			logger.Fatal("writing the report", zap.Error(err))
		}
		logger.Info("report written", zap.String("filename", output))
		return
	}

	filename, err := rep.DumpToTmpFile()
	if err != nil {
		logger.Fatal("writing the report", zap.Error(err))
	}

	logger.Info("report written", zap.String("filename", filename))
}

// buildProfile merges the raw source payloads into one scoring profile. The
// resume contributes twice: parsed fields from the analyzer and skills
// extracted from the local file text, since the two extractors disagree on
// occasion.
func buildProfile(in sourcing.Input, findings *sourcing.Findings, logger *zap.Logger) matching.Profile {
	profile := matching.Profile{
		Github: findings.Github,
	}

	skills := make([][]string, 0)

	if findings.Portfolio != nil {
		skills = append(skills, findings.Portfolio.Skills)
		profile.Projects = findings.Portfolio.Projects
		profile.Experience = append(profile.Experience, findings.Portfolio.Experience...)
		profile.Education = append(profile.Education, findings.Portfolio.Education...)
	}

	if findings.Resume != nil {
		skills = append(skills, findings.Resume.Skills)
		profile.Experience = append(profile.Experience, findings.Resume.Experience...)
		profile.Education = append(profile.Education, findings.Resume.Education...)
	}

	skills = append(skills, localResumeSkills(in, logger))

	profile.Skills = matching.MergeSkills(skills...)

	return profile
}

// localResumeSkills extracts skills from the resume file on this machine,
// without the analyzer. Extraction failures only cost us a skill list.
func localResumeSkills(in sourcing.Input, logger *zap.Logger) []string {
	if in.Resume == nil {
		return nil
	}

	text, err := in.Resume.Text()
	if err != nil {
		logger.Warn("skipping local resume text extraction", zap.Error(err))
		return nil
	}

	return resume.ExtractSkills(text)
}

func adviseOnCandidate(ctx context.Context, cfg *AIConfig, rec *candidate.Record, eval *matching.Evaluation, logger *zap.Logger) *ai.Insights {
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	advisor, err := newAIAdvisor(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping ai insights", zap.Error(err))
		return nil
	}

	insights, err := advisor.Advise(ctx, rec, eval)
	if err != nil {
		logger.Warn("skipping ai insights", zap.Error(err))
		return nil
	}

	return insights
}

func newAIAdvisor(ctx context.Context, cfg *AIConfig, base *zap.Logger) (ai.Advisor, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai insights are enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.WithCommonFields(base, "gemini", cfg.Gemini.Model).
		With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAdvisor(generator, genLogger, cfg.Gemini.MaxLogLength), nil
}
