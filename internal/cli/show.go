package cli

import (
	"fmt"
	"os"

	"github.com/howell-aikit/promptpack/internal/clip"
	"github.com/howell-aikit/promptpack/internal/history"
	"github.com/howell-aikit/promptpack/internal/markdown"
	"github.com/spf13/cobra"
)

var (
	showMarkdown bool
	showCopy     bool
)

var showCmd = &cobra.Command{
	Use:   "show [record-id]",
	Short: "Show a saved prompt build",
	Long:  `Show a prompt build from history. Without an ID, shows the latest build.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showMarkdown, "markdown", "m", false, "render the prompt as markdown")
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the prompt to the clipboard")
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(cfg.HistoryDir)
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	var rec *history.Record
	if len(args) > 0 {
		rec, err = store.Load(args[0])
	} else {
		rec, err = store.Latest()
		if err == nil && rec == nil {
			return fmt.Errorf("no builds in history; run a build first")
		}
	}
	if err != nil {
		return fmt.Errorf("failed to load record: %w", err)
	}

	// Metadata goes to stderr so the prompt on stdout stays pipeable
	fmt.Fprintf(os.Stderr, "Record: %s\n", rec.ID)
	fmt.Fprintf(os.Stderr, "Created: %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(os.Stderr, "Root: %s\n", rec.Root)
	if rec.Question != "" {
		fmt.Fprintf(os.Stderr, "Question: %s\n", rec.Question)
	}
	fmt.Fprintf(os.Stderr, "Files: %d\n", rec.FileCount)
	fmt.Fprintf(os.Stderr, "Tokens: ~%d\n\n", rec.Tokens)

	if showCopy {
		if err := clip.Copy(rec.Prompt); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "Copied to clipboard")
		}
	}

	if showMarkdown {
		renderer := markdown.NewRenderer(cfg.MarkdownStyle, 100)
		fmt.Print(renderer.Render(rec.Prompt))
	} else {
		fmt.Println(rec.Prompt)
	}

	return nil
}
