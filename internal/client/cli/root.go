package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/client/client"
	"github.com/spf13/cobra"
)

// Factory opens a client for the server at addr.
type Factory func(addr string) (client.Client, error)

// DefaultFactory dials the server over gRPC.
func DefaultFactory(addr string) (client.Client, error) {
	c, err := client.NewUserDirectoryClient(addr)
	if err != nil {
		return nil, err
	}
	return c, nil
}

type options struct {
	addr    string
	timeout time.Duration
	output  string
}

// app is shared by every subcommand of one root command.
type app struct {
	opts    options
	factory Factory
}

// NewRootCommand builds the userdir-cli command tree.
func NewRootCommand(factory Factory) *cobra.Command {
	a := &app{factory: factory}

	root := &cobra.Command{
		Use:           "userdir-cli",
		Short:         "Command line client for the user directory",
		Long:          "Create, fetch, update, delete, list and stream users over gRPC.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.opts.output {
			case outputTable, outputJSON, outputYAML:
				return nil
			}
			return fmt.Errorf("unknown output format %q (want %s, %s or %s)", a.opts.output, outputTable, outputJSON, outputYAML)
		},
	}

	root.PersistentFlags().StringVarP(&a.opts.addr, "addr", "a", "localhost:9090", "Server address")
	root.PersistentFlags().DurationVar(&a.opts.timeout, "timeout", 10*time.Second, "Per-command timeout")
	root.PersistentFlags().StringVarP(&a.opts.output, "output", "o", outputTable, "Output format: table, json or yaml")

	root.AddCommand(
		a.createCommand(),
		a.getCommand(),
		a.updateCommand(),
		a.deleteCommand(),
		a.listCommand(),
		a.streamCommand(),
	)

	return root
}

// Execute runs the command tree with args and writes output to out.
func Execute(ctx context.Context, factory Factory, args []string, out, errOut io.Writer) error {
	root := NewRootCommand(factory)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(ctx)
}

// withClient opens a client, bounds ctx by the configured timeout and
// runs fn.
func (a *app) withClient(cmd *cobra.Command, fn func(ctx context.Context, c client.Client) error) error {
	c, err := a.factory(a.opts.addr)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", a.opts.addr, err)
	}
	defer c.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, a.opts.timeout)
	defer cancel()

	return fn(ctx, c)
}
