package process

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"memomaker/internal/app"
	"memomaker/internal/app/model"
	"memomaker/internal/app/output"
	"memomaker/internal/app/pipeline"
	"memomaker/internal/app/prompt"
	"memomaker/internal/app/router"
)

var (
	method     string
	provider   string
	promptFile string
	outputDir  string
	lang       string
	promptDir  string
	noProgress bool
)

func init() {
	Cmd.Flags().StringVarP(&method, "method", "m", "auto",
		"How to send the file: auto, inline or upload. Auto picks inline below 20 MB")
	Cmd.Flags().StringVarP(&provider, "provider", "P", "",
		"Inference provider (gemini or openai, default gemini)")
	Cmd.Flags().StringVarP(&promptFile, "prompt-file", "p", "",
		"Prompt template file; overrides --lang")
	Cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".",
		"Directory for transcript.txt and memo.md")
	Cmd.Flags().StringVarP(&lang, "lang", "l", "en",
		"Prompt template language, resolved as <prompt-dir>/<lang>.md")
	Cmd.Flags().StringVar(&promptDir, "prompt-dir", "prompts",
		"Directory holding per-language prompt templates")
	Cmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"Disable the milestone progress bar")
}

// Cmd represents the process command
var Cmd = &cobra.Command{
	Use:   "process <audio-file>",
	Short: "Transcribe one audio file and generate a meeting memo",
	Long: `Transcribe one audio file and generate a meeting memo.

The file is validated locally first; invalid files never reach the network.
Files of 20 MB and above are pre-uploaded for a remote handle, smaller ones
are embedded inline, unless --method forces a choice. A single attempt is
made per run; on a remote failure the previous output files stay untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		requested, err := router.ParseMethod(method)
		if err != nil {
			return err
		}

		if provider != "" {
			os.Setenv("A2M_PROVIDER", provider)
		}

		templates, err := loadTemplates()
		if err != nil {
			return err
		}

		p := app.InitializePipeline()
		defer p.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		audioPath := args[0]
		tracker := buildTracker(audioPath, requested)

		rec, err := p.Run(ctx, pipeline.RunParams{
			AudioPath: audioPath,
			Method:    requested,
			Templates: templates,
			Artifacts: output.DefaultArtifacts(outputDir),
			OnMilestone: func(router.Milestone) {
				tracker.Step()
			},
		})
		if err != nil {
			tracker.Abandon()
			return err
		}
		tracker.Complete()

		printSummary(rec)
		return nil
	},
}

func loadTemplates() (*prompt.Templates, error) {
	if promptFile != "" {
		return prompt.LoadFromFile(promptFile)
	}
	return prompt.LoadForLanguage(promptDir, lang)
}

func buildTracker(audioPath string, requested router.Method) *pipeline.StepTracker {
	cfg := router.DefaultConfig()
	var size int64
	if info, err := os.Stat(audioPath); err == nil {
		size = info.Size()
	}

	enabled := !noProgress && pipeline.IsTTY(os.Stderr)
	return pipeline.NewStepTracker(
		pipeline.ProgressConfig{Enabled: enabled},
		pipeline.StepsFor(requested, size, cfg),
		"Processing",
	)
}

func printSummary(rec *model.RunRecord) {
	fmt.Printf("Processing completed for '%s'\n", rec.FileName)
	fmt.Printf("  Method:        %s\n", rec.Method)
	fmt.Printf("  Provider:      %s\n", rec.Provider)
	fmt.Printf("  Input tokens:  %d\n", rec.InputTokens)
	fmt.Printf("  Output tokens: %d\n", rec.OutputTokens)
	fmt.Printf("  Total tokens:  %d\n", rec.TotalTokens)
	fmt.Printf("  Elapsed:       %dms\n", rec.ElapsedMs)
}
