package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

var (
	parseAPIKey  string
	parseVerbose bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <resume-file>",
	Short: "Parse a resume file and print the structured result as JSON",
	Long: `Extract text from a resume file (PDF, Word, HTML or plain text), parse it
into structured fields and print the result to stdout. Without an API key the
regex fallback extracts contact details and a keyword-matched skill list.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "print a formatted summary instead of raw JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := ingestion.ExtractText(args[0])
	if err != nil {
		return err
	}

	apiKey := parseAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	ctx := context.Background()
	var resume *types.ParsedResume
	if apiKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()

		resume, err = parsing.ParseResume(ctx, client, text)
		if err != nil {
			log.Printf("LLM parsing failed, using fallback: %v", err)
			resume = nil
		}
	}
	if resume == nil {
		resume = parsing.Fallback(text)
	}

	if parseVerbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintParsedResume(resume)
		return nil
	}

	out, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
