package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	flagDebug    = "debug"
	flagExtended = "extended"
	flagColor    = "color"
	flagFormat   = "format"
)

// NewRootCmd returns the canmsg command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "canmsg",
		Short:        "Build, validate and encode CAN 2.0 messages",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if debug, _ := cmd.Flags().GetBool(flagDebug); debug {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolP(flagDebug, "d", false, "debug logging")

	root.AddCommand(newBuildCmd(), newEncodeCmd(), newDecodeCmd())
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, l)
}

func logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
