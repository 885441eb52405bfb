package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/py-imports-group/pkg/config"
	"github.com/siyuan-infoblox/py-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/py-imports-group/pkg/utils"
	"github.com/siyuan-infoblox/py-imports-group/pkg/version"
)

const (
	UseDescription   = "pig [flags] PATH"
	ShortDescription = "Python imports grouper - A tool to group and sort Python imports"
	LongDescription  = `pig is a command-line tool that groups and sorts Python imports.

It reorganizes the leading import block of each file into groups:
1. __future__ imports
2. Python standard library
3. Third-party packages
4. Local (relative) imports

Within each group, plain "import" statements come before "from ... import"
statements, sorted by lowercased module path. Files are rewritten in place
only when the canonical form differs, and every rewritten file is backed
up first.

PATH can be either a single Python file or a directory. When a directory is
specified, all Python source files in the directory and subdirectories will
be processed in parallel.`
)

var (
	threads     int
	configPath  string
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&threads, "threads", "t", config.DefaultThreads, "Number of worker threads for parallel processing")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file (pig.toml in the working directory by default)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		info := version.Get()
		if info.Version == "dev" && versionStr != "" {
			info.Version = versionStr
		}
		fmt.Println(info.String())
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}
	if cmd.Flags().Changed("threads") {
		cfg.Threads = threads
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	path := args[0]
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	var files []string
	if isDir {
		files, err = utils.FindPythonFiles(path, cfg.SkipDirs)
		if err != nil {
			return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindPyFiles, err)
		}
		if len(files) == 0 {
			fmt.Printf(errors.InfoMsgNoPyFilesFound+"\n", path)
			return nil
		}
		fmt.Printf(errors.InfoMsgFoundPyFiles+"\n\n", len(files), path)
	} else {
		if !utils.IsPythonFile(path) {
			fmt.Printf(errors.InfoMsgNotAPythonFile+"\n", path)
			return nil
		}
		files = []string{path}
	}

	g := formatter.New(formatter.FormatterConfig{
		ExtraStdlib: cfg.ExtraStdlib,
		BackupDir:   cfg.BackupDir,
	})
	results := g.ProcessPaths(files, cfg.Threads)

	failed := 0
	for _, res := range results {
		switch res.Status {
		case formatter.StatusRewritten:
			fmt.Printf(errors.InfoMsgFileRewritten+"\n", res.Path)
		case formatter.StatusUnchanged:
			fmt.Printf(errors.InfoMsgFileUnchanged+"\n", res.Path)
		case formatter.StatusFailed:
			failed++
			fmt.Printf(errors.InfoMsgFileFailed+"\n", res.Path, res.Err)
		}
	}

	fmt.Println()
	fmt.Println(renderSummary(results))
	if loc := g.BackupLocation(); loc != "" {
		fmt.Printf("\n"+errors.InfoMsgBackupLocation+"\n", loc)
	}

	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgFilesFailedToProcess, failed)
	}
	return nil
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
