package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-analyzer/internal/config"
	"github.com/jonathan/ats-analyzer/internal/observability"
	"github.com/jonathan/ats-analyzer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze multiple resumes against one job description",
	Long:  "Analyze up to 10 resume JSON files concurrently against a single job description. Each resume's failure is isolated: the batch reports per-resume results in input order.",
	RunE:  runBatch,
}

var (
	batchResumes     []string
	batchJob         string
	batchJobURL      string
	batchConfig      string
	batchAPIKey      string
	batchOut         string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringSliceVarP(&batchResumes, "resume", "r", nil, "Path to a resume JSON file (repeatable, required)")
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to job posting text or HTML file")
	batchCmd.Flags().StringVarP(&batchJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	batchCmd.Flags().StringVarP(&batchConfig, "config", "c", "", "Path to JSON config file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Write all results as JSON to this path")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum concurrent analyses (default 3)")

	_ = batchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(batchCmd)
}

// batchOutput is the JSON shape written by --out: one entry per input
// resume, in input order.
type batchOutput struct {
	Path   string                `json:"path"`
	Result *types.AnalysisResult `json:"result,omitempty"`
	Error  string                `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfigIfSet(batchConfig)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	flags := config.Config{Job: batchJob, JobURL: batchJobURL, MaxConcurrency: batchConcurrency}
	merged := flags.MergeWithDefaults(*cfg)

	apiKey, err := resolveAPIKey(batchAPIKey, cfg)
	if err != nil {
		return err
	}

	resumes := make([]*types.ResumeDocument, 0, len(batchResumes))
	for _, path := range batchResumes {
		resume, err := loadResume(path)
		if err != nil {
			return err
		}
		resumes = append(resumes, resume)
	}

	jobText, err := resolveJobText(ctx, merged.Job, merged.JobURL)
	if err != nil {
		return err
	}

	orchestrator, client, err := buildOrchestrator(ctx, cfg, apiKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	items, err := orchestrator.AnalyzeBatch(ctx, resumes, jobText, merged.MaxConcurrency)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintBatchSummary(items)

	if batchOut != "" {
		output := make([]batchOutput, len(items))
		for i, item := range items {
			output[i] = batchOutput{Path: batchResumes[i], Result: item.Result}
			if item.Err != nil {
				output[i].Error = item.Err.Error()
			}
		}
		if err := writeJSON(batchOut, output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Results written to %s\n", batchOut)
	}

	return nil
}
