package cli

import (
	"fmt"

	"github.com/howell-aikit/promptpack/internal/history"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved prompt builds",
	Long:  `List all prompt builds recorded in history, newest first.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(cfg.HistoryDir)
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	records, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	// Latest build gets a marker
	latestID, _ := store.LatestID()

	fmt.Printf("%-10s %-17s %6s %8s  %s\n", "ID", "CREATED", "FILES", "TOKENS", "TITLE")
	fmt.Printf("%-10s %-17s %6s %8s  %s\n", "---", "-------", "-----", "------", "-----")

	for _, rec := range records {
		title := rec.Title()
		if len(title) > 40 {
			title = title[:37] + "..."
		}

		marker := " "
		if rec.ID == latestID {
			marker = "*"
		}

		fmt.Printf("%s%-9s %-17s %6d %8d  %s\n",
			marker,
			rec.ID,
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.FileCount,
			rec.Tokens,
			title)
	}

	fmt.Printf("\n* = latest build\n")
	return nil
}
