package cli

import (
	"fmt"
	"strings"

	"github.com/howell-aikit/promptpack/internal/history"
	"github.com/spf13/cobra"
)

var (
	cleanAll   bool
	cleanForce bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [record-id...]",
	Short: "Remove saved prompt builds",
	Long: `Remove prompt build record(s) from history.

Examples:
  promptpack clean abc123      # Remove a specific record
  promptpack clean --all       # Remove all records
  promptpack clean -f abc123   # Remove without confirmation`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanAll, "all", "a", false, "remove all records")
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false, "skip confirmation")
}

func runClean(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(cfg.HistoryDir)
	if err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}

	var toClean []*history.Record

	if cleanAll {
		toClean, err = store.List()
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}
	} else if len(args) > 0 {
		for _, id := range args {
			rec, err := store.Load(id)
			if err != nil {
				fmt.Printf("Warning: record %s not found\n", id)
				continue
			}
			toClean = append(toClean, rec)
		}
	} else {
		return fmt.Errorf("specify record ID(s) or use --all")
	}

	if len(toClean) == 0 {
		fmt.Println("No records to clean")
		return nil
	}

	// Confirm
	if !cleanForce {
		fmt.Printf("This will remove %d record(s):\n", len(toClean))
		for _, rec := range toClean {
			fmt.Printf("  - %s: %s\n", rec.ID, rec.Title())
		}
		fmt.Print("\nContinue? [y/N] ")

		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	lock, err := history.NewLock(cfg.HistoryDir, cfg.LockTimeoutDuration())
	if err != nil {
		return err
	}
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	for _, rec := range toClean {
		if err := store.Delete(rec.ID); err != nil {
			fmt.Printf("Warning: failed to remove record %s: %v\n", rec.ID, err)
		} else {
			fmt.Printf("Removed record: %s\n", rec.ID)
		}
	}

	fmt.Printf("\nCleaned %d record(s)\n", len(toClean))
	return nil
}
