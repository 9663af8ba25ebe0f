package cli

import (
	"context"
	"io"
	"time"

	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	setup      Setup
	configPath string
	output     string
	out        io.Writer
	errOut     io.Writer
	deps       *Dependencies
}

func NewApp(setup Setup, out, errOut io.Writer) *App {
	return &App{setup: setup, out: out, errOut: errOut}
}

// Run executes clinicctl with args and returns the process exit code.
func Run(ctx context.Context, setup Setup, args []string, out, errOut io.Writer) int {
	app := NewApp(setup, out, errOut)
	root := app.RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	defer app.close()

	if err := root.ExecuteContext(ctx); err != nil {
		utils.BuildErrorResponse(app.logger(), errOut, err)
		return 1
	}
	return 0
}

func (a *App) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "clinicctl",
		Short:         "Command line client for the clinic API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml, json or toml)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format: json, yaml or table")

	attachRequestCommands(root, a)
	attachAuthCommands(root, a)
	attachResourceCommands(root, a)
	attachVersionCommand(root, a)
	return root
}

// dependencies builds the dependencies once, on first use.
func (a *App) dependencies(cmd *cobra.Command) (*Dependencies, error) {
	if a.deps != nil {
		return a.deps, nil
	}
	deps, err := a.setup(cmd.Context(), a.configPath)
	if err != nil {
		return nil, err
	}
	a.deps = deps
	return deps, nil
}

func (a *App) outputFormat() string {
	if a.output != "" {
		return a.output
	}
	if a.deps != nil && a.deps.InternalConfig != nil {
		return a.deps.InternalConfig.App.OutputFormat
	}
	return ""
}

func (a *App) print(value any) error {
	return utils.WriteOutput(a.out, a.outputFormat(), value)
}

func (a *App) printResult(result *responses.Result) error {
	return utils.WriteResult(a.out, a.outputFormat(), result)
}

func (a *App) logger() *zap.Logger {
	if a.deps != nil && a.deps.Logger != nil {
		return a.deps.Logger
	}
	return zap.NewNop()
}

func (a *App) close() {
	if a.deps == nil || a.deps.Shutdown == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.deps.Shutdown(ctx); err != nil {
		a.logger().Warn("App.close failed to release resources", zap.Error(err))
	}
}
