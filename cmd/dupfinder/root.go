package dupfinder

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/dupfinder/internal/version"
	"github.com/arthur-debert/dupfinder/pkg/commands/purge"
	"github.com/arthur-debert/dupfinder/pkg/commands/scan"
	"github.com/arthur-debert/dupfinder/pkg/config"
	"github.com/arthur-debert/dupfinder/pkg/filesystem"
	"github.com/arthur-debert/dupfinder/pkg/logging"
	"github.com/arthur-debert/dupfinder/pkg/paths"
	"github.com/arthur-debert/dupfinder/pkg/report"
	"github.com/arthur-debert/dupfinder/pkg/style"
	"github.com/arthur-debert/dupfinder/pkg/types"
	"github.com/arthur-debert/dupfinder/pkg/ui/confirmations"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		deleteMode bool
		similarity float64
		reportPath string
		configPath string
		noColor    bool
	)

	rootCmd := &cobra.Command{
		Use:     "dupfinder FOLDER",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var threshold *float64
			if cmd.Flags().Changed("similarity") {
				threshold = &similarity
			}
			return runScan(cmd, runOptions{
				folder:     args[0],
				deleteMode: deleteMode,
				threshold:  threshold,
				reportPath: reportPath,
				configPath: configPath,
				noColor:    noColor,
			})
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVar(&deleteMode, "delete", false, MsgFlagDelete)
	rootCmd.Flags().Float64Var(&similarity, "similarity", 1.0, MsgFlagSimilarity)
	rootCmd.Flags().StringVar(&reportPath, "report", "", MsgFlagReport)
	rootCmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd(rootCmd))

	return rootCmd
}

type runOptions struct {
	folder     string
	deleteMode bool
	threshold  *float64
	reportPath string
	configPath string
	noColor    bool
}

// runScan validates the invocation, asks for confirmation in delete
// mode, and runs the scan / purge / report sequence. Validation happens
// strictly before the confirmation prompt, and the prompt strictly
// before any file is read.
func runScan(cmd *cobra.Command, opts runOptions) error {
	style.ConfigureColors(opts.noColor)
	out := cmd.OutOrStdout()

	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		if opts.threshold == nil {
			opts.threshold = cfg.Similarity
		}
		if opts.reportPath == "" {
			opts.reportPath = cfg.Report
		}
	}

	if opts.threshold != nil {
		if err := config.ValidateThreshold(*opts.threshold); err != nil {
			return err
		}
	}

	folder, err := paths.ResolveScanDir(filesystem.NewOS(), opts.folder)
	if err != nil {
		return err
	}

	if opts.deleteMode {
		dialog := confirmations.NewDialog(cmd.InOrStdin(), out)
		confirmed, err := dialog.ConfirmDeletion(folder, opts.threshold)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, MsgAbortingDeletion)
			return nil
		}
	}

	var bar *pterm.ProgressbarPrinter
	progress := func(done, total int) {
		if !style.Interactive() {
			return
		}
		if bar == nil {
			bar, _ = style.NewProgressBar(total)
		}
		if bar != nil {
			bar.Increment()
		}
	}

	result, err := scan.Scan(scan.Options{
		Folder:    folder,
		Threshold: opts.threshold,
		Progress:  progress,
	})
	if bar != nil {
		_, _ = bar.Stop()
	}
	if err != nil {
		return err
	}

	renderer := newRenderer(opts.noColor)
	fmt.Fprintln(out, renderer.RenderScanResult(result))

	var purgeRes *types.PurgeResult
	if opts.deleteMode && !result.Empty() {
		purgeRes = purge.Purge(purge.Options{
			Result:    result,
			OnRemoved: func(path string) { fmt.Fprintf(out, MsgDeletedItem, path) },
			OnFailed:  func(path string, err error) { fmt.Fprintf(out, MsgDeleteFailedItem, path, err) },
		})
		fmt.Fprintln(out, renderer.RenderPurgeSummary(purgeRes))
	} else if summary := renderer.RenderReportSummary(result); summary != "" {
		fmt.Fprintln(out, summary)
	}

	if opts.reportPath != "" {
		rep := report.Build(result, folder, opts.threshold, purgeRes)
		if err := report.Write(opts.reportPath, rep); err != nil {
			return err
		}
		log.Info().Str("path", opts.reportPath).Msg("Report written")
	}

	return nil
}

func newRenderer(noColor bool) style.Renderer {
	if noColor || !style.Interactive() {
		return style.NewPlainRenderer()
	}
	return style.NewTerminalRenderer()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dupfinder version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := rootCmd.GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := rootCmd.GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := rootCmd.GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
