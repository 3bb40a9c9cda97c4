package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"bithacks/internal/config"
	"bithacks/internal/eval"
	applog "bithacks/internal/log"
	"bithacks/internal/transport"
	"bithacks/internal/tui"
	"bithacks/pkg/build"

	"github.com/spf13/cobra"
)

// options collects flag values and the loaded configuration.
type options struct {
	configPath string
	format     string
	verbose    bool

	cfg *config.Config
}

// outputFormat resolves --format over the configured default.
func (o *options) outputFormat() (eval.Format, error) {
	if o.format != "" {
		return eval.ParseFormat(o.format)
	}
	return eval.ParseFormat(o.cfg.Output.Format)
}

// NewRootCommand builds the bithacks command tree.
func NewRootCommand() *cobra.Command {
	buildInfo := build.GetBuildFlags()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         buildInfo.Description,
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if opts.format != "" {
				opts.format = strings.ToLower(opts.format)
				if err := config.ValidateFormat(opts.format); err != nil {
					return err
				}
			}
			level := cfg.Level()
			if opts.verbose {
				level = applog.LevelDebug
			}
			applog.SetLevel(level)
			return nil
		},
	}

	// Display help message
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"Path to a YAML config file (default: ./"+config.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "",
		"Output format for words: dec, hex or bin (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Show verbose output")

	rootCmd.AddCommand(
		newEvalCommand(opts),
		newOpsCommand(),
		newPermsCommand(opts),
		newServeCommand(opts),
		newInspectCommand(opts),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the command line with os.Args until ctx is done.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(os.Args[1:])
	return rootCmd.ExecuteContext(ctx)
}

func newEvalCommand(opts *options) *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval <op> [args...]",
		Short: "Evaluate one operation",
		Long: "Evaluate one operation. Arguments accept Go integer literals " +
			"(42, -7, 0x2a, 0b101010, 0o52, 1_000) and uint8 arguments also accept 'c'.\n" +
			"Flags must come before <op> so negative arguments are not read as flags.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			r, err := eval.Evaluate(args[0], args[1:])
			if err != nil {
				return err
			}
			if r.Caveat != "" {
				applog.Warnf("%s: %s", r.Op, r.Caveat)
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Render(format, opts.cfg.Output.Width))
			return nil
		},
	}
	// Stop flag parsing at <op> so "eval signs 5 -3" works.
	evalCmd.Flags().SetInterspersed(false)
	return evalCmd
}

func newOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SIGNATURE\tALIASES\tDESCRIPTION")
			for _, op := range eval.Ops() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", op.Signature(), strings.Join(op.Aliases, ","), op.Help)
			}
			return tw.Flush()
		},
	}
}

func newPermsCommand(opts *options) *cobra.Command {
	var limit int

	permsCmd := &cobra.Command{
		Use:   "perms <width> <ones>",
		Short: "List every width-bit word with the given number of set bits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: width %q", eval.ErrArgument, args[0])
			}
			ones, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: ones %q", eval.ErrArgument, args[1])
			}
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			if limit == 0 {
				limit = opts.cfg.Permutations.Limit
			}

			listing, err := eval.Permutations(width, ones, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, w := range listing.Words {
				fmt.Fprintln(out, eval.FormatWord(uint64(w), format, width))
			}
			if listing.Truncated {
				applog.Warnf("perms: showing %d of %d words, raise --limit to see more",
					len(listing.Words), listing.Total)
			}
			return nil
		},
	}
	permsCmd.Flags().IntVarP(&limit, "limit", "n", 0,
		"Maximum number of words to list (default from config)")
	return permsCmd
}

func newServeCommand(opts *options) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve operations over a WebSocket endpoint at /ws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			serverCfg := opts.cfg.Server
			if addr != "" {
				serverCfg.Address = addr
			}

			wst := transport.NewWebSocketTransport(serverCfg, transport.Evaluator{
				Format: format,
				Width:  opts.cfg.Output.Width,
			})
			if err := wst.Start(); err != nil {
				wst.Close()
				return fmt.Errorf("failed to listen on %s: %w", serverCfg.Address, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "listening on ws://%s/ws\n", wst.Addr())

			// Block until termination signal is received
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			return wst.Close()
		},
	}
	serveCmd.Flags().StringVarP(&addr, "addr", "a", "",
		"Listen address (default from config)")
	return serveCmd
}

func newInspectCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [word]",
		Short: "Explore a 32-bit word interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.outputFormat()
			if err != nil {
				return err
			}
			var word int64
			if len(args) == 1 {
				if word, err = eval.ParseArg(args[0], eval.KindUint32); err != nil {
					return err
				}
			}
			return tui.StartInspectorUI(uint32(word), format)
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), build.GetBuildFlags())
			return nil
		},
	}
}
