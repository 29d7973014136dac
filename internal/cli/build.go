package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/howell-aikit/promptpack/internal/clip"
	"github.com/howell-aikit/promptpack/internal/history"
	"github.com/howell-aikit/promptpack/internal/markdown"
	"github.com/howell-aikit/promptpack/internal/project"
	"github.com/howell-aikit/promptpack/internal/prompt"
	"github.com/howell-aikit/promptpack/internal/source"
	"github.com/howell-aikit/promptpack/internal/tui"
	"github.com/howell-aikit/promptpack/pkg/git"
	"github.com/spf13/cobra"
)

var (
	buildOverview     string
	buildStructure    bool
	buildContents     bool
	buildQuestion     string
	buildWhitelist    []string
	buildBlacklist    []string
	buildMarker       string
	buildNoComments   bool
	buildNoImports    bool
	buildNoDocstrings bool
	buildIpynbOutput  bool
	buildCopy         bool
	buildMarkdown     bool
	buildOut          string
	buildGitInfo      bool
	buildPick         bool
	buildSave         bool
)

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Build a prompt from a project directory",
	Long: `Build a prompt from a project directory (default: the current one).

This command will:
1. Scan the directory, applying whitelist and blacklist patterns
2. Render the project structure and inline file contents
3. Append the question, if given
4. Print the prompt, copy it to the clipboard, and record it in history`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOverview, "overview", "o", "", "project overview text")
	buildCmd.Flags().BoolVarP(&buildStructure, "structure", "s", true, "include the project structure section")
	buildCmd.Flags().BoolVarP(&buildContents, "contents", "c", true, "include file contents")
	buildCmd.Flags().StringVarP(&buildQuestion, "question", "q", "", "question appended to the prompt")
	buildCmd.Flags().StringSliceVarP(&buildWhitelist, "whitelist", "w", nil, "patterns a file must match to be included (default from config)")
	buildCmd.Flags().StringSliceVarP(&buildBlacklist, "blacklist", "b", nil, "patterns that exclude files and directories (default from config)")
	buildCmd.Flags().StringVar(&buildMarker, "marker", "", "snippet fence line (default from config)")
	buildCmd.Flags().BoolVar(&buildNoComments, "no-comments", false, "strip comment lines")
	buildCmd.Flags().BoolVar(&buildNoImports, "no-imports", false, "strip import lines")
	buildCmd.Flags().BoolVar(&buildNoDocstrings, "no-docstrings", false, "strip docstrings")
	buildCmd.Flags().BoolVar(&buildIpynbOutput, "ipynb-output", false, "include notebook cell outputs")
	buildCmd.Flags().BoolVar(&buildCopy, "copy", true, "copy the prompt to the clipboard")
	buildCmd.Flags().BoolVarP(&buildMarkdown, "markdown", "m", false, "render the prompt as markdown")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "write the prompt to a file")
	buildCmd.Flags().BoolVar(&buildGitInfo, "git-info", false, "append a Git section with branch and commit")
	buildCmd.Flags().BoolVarP(&buildPick, "pick", "p", false, "pick files interactively")
	buildCmd.Flags().BoolVar(&buildSave, "save", true, "record the build in history")
}

func runBuild(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return fmt.Errorf("failed to read project root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", absRoot)
	}

	// Flags override the configured defaults only when set
	whitelist := cfg.Whitelist
	if cmd.Flags().Changed("whitelist") {
		whitelist = buildWhitelist
	}
	blacklist := cfg.Blacklist
	if cmd.Flags().Changed("blacklist") {
		blacklist = buildBlacklist
	}
	marker := cfg.SnippetMarker
	if cmd.Flags().Changed("marker") {
		marker = buildMarker
	}

	srcOpts := source.Options{
		Comments:       cfg.Source.Comments,
		Imports:        cfg.Source.Imports,
		Docstrings:     cfg.Source.Docstrings,
		NotebookOutput: cfg.Source.NotebookOutput,
	}
	if buildNoComments {
		srcOpts.Comments = false
	}
	if buildNoImports {
		srcOpts.Imports = false
	}
	if buildNoDocstrings {
		srcOpts.Docstrings = false
	}
	if buildIpynbOutput {
		srcOpts.NotebookOutput = true
	}

	proj := project.New(absRoot, project.Options{
		Whitelist: whitelist,
		Blacklist: blacklist,
		Marker:    marker,
	})

	gitInfo := ""
	if buildGitInfo {
		repo, err := git.Open(absRoot)
		if err != nil {
			return fmt.Errorf("--git-info requires a git repository: %w", err)
		}
		gitInfo, err = repo.Summary()
		if err != nil {
			return fmt.Errorf("failed to read repository state: %w", err)
		}
	}

	var promptText string
	var files []string

	if buildPick {
		result, err := tui.Pick(tui.NewPickerModel(proj, tui.PickOptions{
			Overview:  buildOverview,
			Structure: buildStructure,
			Question:  buildQuestion,
			GitInfo:   gitInfo,
			Source:    srcOpts,
		}))
		if err != nil {
			return err
		}
		if result.Cancelled {
			fmt.Println("Cancelled")
			return nil
		}
		promptText = result.Prompt
		files = result.Files
	} else {
		b := proj.NewPrompt()
		err := proj.WriteInfo(b, project.InfoOptions{
			Overview:  buildOverview,
			Structure: buildStructure,
			Contents:  buildContents,
			Source:    srcOpts,
		})
		if err != nil {
			return err
		}
		b.AddSection("Git", gitInfo)
		b.AddQuestion(buildQuestion)
		promptText = b.String()
		if buildContents {
			files = proj.Files()
		}
	}

	tokens := prompt.EstimateTokens(promptText)

	recordID := ""
	if buildSave {
		lock, err := history.NewLock(cfg.HistoryDir, cfg.LockTimeoutDuration())
		if err != nil {
			return err
		}
		if err := lock.Acquire(); err != nil {
			return err
		}
		defer lock.Release()

		store, err := history.NewStore(cfg.HistoryDir)
		if err != nil {
			return err
		}
		rec := &history.Record{
			Root:      absRoot,
			Question:  buildQuestion,
			FileCount: len(files),
			Tokens:    tokens,
			Prompt:    promptText,
		}
		if err := store.Add(rec); err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		recordID = rec.ID
	}

	copied := false
	doCopy := cfg.CopyToClipboard
	if cmd.Flags().Changed("copy") {
		doCopy = buildCopy
	}
	if doCopy {
		if err := clip.Copy(promptText); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			copied = true
		}
	}

	// --out replaces stdout; the file always gets the plain prompt
	if buildOut != "" {
		if err := os.WriteFile(buildOut, []byte(promptText), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", buildOut, err)
		}
	} else if buildMarkdown {
		renderer := markdown.NewRenderer(cfg.MarkdownStyle, 100)
		fmt.Print(renderer.Render(promptText))
	} else {
		fmt.Println(promptText)
	}

	// Status lines go to stderr so the prompt on stdout stays pipeable
	fmt.Fprintf(os.Stderr, "\nFiles: %d  Tokens: ~%d\n", len(files), tokens)
	if recordID != "" {
		fmt.Fprintf(os.Stderr, "Saved as %s\n", recordID)
	}
	if copied {
		fmt.Fprintln(os.Stderr, "Copied to clipboard")
	}
	if buildOut != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", buildOut)
	}

	return nil
}
