package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suar-net/summaries/pkg/client"
)

var baseURL string

var rootCmd = &cobra.Command{
	Use:   "summarize [text...]",
	Short: "Summarize text with the summaries API",
	Long: `summarize - send text to the summaries API and print the result

The text is taken from the arguments, or from stdin when no arguments are given.`,
	RunE: runSummarize,
}

func init() {
	defaultURL := os.Getenv("SUMMARIES_BASE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}
	rootCmd.Flags().StringVar(&baseURL, "base-url", defaultURL, "Base URL of the summaries API")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	result, err := client.New(baseURL).CreateSummary(cmd.Context(), client.SummaryRequest{Text: text})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Summary:    %s\n", result.Summary)
	fmt.Fprintf(out, "Timestamp:  %s\n", result.Timestamp)
	fmt.Fprintf(out, "Word count: %d\n", result.WordCount)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
