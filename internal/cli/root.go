package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/park285/hanoi-towers/internal/adapter/hanoipresenter"
	"github.com/park285/hanoi-towers/internal/config"
	"github.com/park285/hanoi-towers/internal/domain"
	"github.com/park285/hanoi-towers/internal/game"
	"github.com/park285/hanoi-towers/internal/msgcat"
	"github.com/park285/hanoi-towers/internal/obslog"
	"github.com/park285/hanoi-towers/internal/render"
	"github.com/park285/hanoi-towers/internal/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func Execute() {
	cmd := NewRootCmd()
	cmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, domain.UserMessage(err))
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var (
		format    string
		strategy  string
		renderDir string
	)

	cmd := &cobra.Command{
		Use:           "hanoi [disks]",
		Short:         "Print every move of the Towers of Hanoi for a number of disks",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("solver") {
				cfg.Solver = strategy
			}
			if cmd.Flags().Changed("render-dir") {
				cfg.RenderDir = renderDir
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config error: %w", err)
			}

			cleanup, err := obslog.InitFromEnv()
			if err != nil {
				return fmt.Errorf("logger init: %w", err)
			}
			defer func() { _ = cleanup() }()

			cat, err := msgcat.New(cfg.MessagesDir)
			if err != nil {
				return fmt.Errorf("load messages: %w", err)
			}

			// JSON output owns stdout, so the prompt goes to stderr.
			prompt := cmd.OutOrStdout()
			if cfg.Format == config.FormatJSON {
				prompt = cmd.ErrOrStderr()
			}
			n, err := ReadDiskCount(cat, args, cmd.InOrStdin(), prompt)
			if err != nil {
				return err
			}
			return run(cmd, cfg, cat, n, obslog.L())
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTable, "Output format: table|json")
	cmd.Flags().StringVar(&strategy, "solver", "recursive", "Move generation: recursive|iterative")
	cmd.Flags().StringVar(&renderDir, "render-dir", "", "Write one PNG frame per move into this directory")
	return cmd
}

func run(cmd *cobra.Command, cfg *config.AppConfig, cat *msgcat.Catalog, n int, logger *zap.Logger) error {
	strategy, err := solver.ParseStrategy(cfg.Solver)
	if err != nil {
		return err
	}
	svc, err := game.NewService(game.Config{
		PegNames:  cfg.PegNames,
		Strategy:  strategy,
		WarnDisks: cfg.WarnDisks,
		Messages:  cat,
	}, logger)
	if err != nil {
		return err
	}
	formatter := hanoipresenter.NewFormatter(cat)

	sess, err := svc.NewSession(n)
	if err != nil {
		return err
	}
	if n > cfg.WarnDisks {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.LargeGameWarning(n))
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	var opts []hanoipresenter.Option
	if cfg.Format == config.FormatJSON {
		opts = append(opts, hanoipresenter.WithJSON())
	}
	var sendImage func(name string, png []byte) error
	if cfg.RenderDir != "" {
		if err := os.MkdirAll(cfg.RenderDir, 0o755); err != nil {
			return fmt.Errorf("create render dir: %w", err)
		}
		sendImage = fileSink(cfg.RenderDir)
		opts = append(opts, hanoipresenter.WithRenderer(render.NewSVGBoardRenderer()))
	}
	presenter := hanoipresenter.NewPresenter(formatter, textSink(out), sendImage, opts...)

	ctx := cmd.Context()
	if err := presenter.Start(ctx, sess); err != nil {
		return err
	}
	res, err := svc.Play(sess, func(ev domain.MoveEvent) error {
		return presenter.Move(ctx, ev)
	})
	if err != nil {
		return err
	}
	if err := presenter.Finish(ctx, res); err != nil {
		return err
	}
	return out.Flush()
}

func textSink(w io.Writer) func(string) error {
	return func(s string) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func fileSink(dir string) func(name string, png []byte) error {
	return func(name string, png []byte) error {
		return os.WriteFile(filepath.Join(dir, name), png, 0o644)
	}
}
