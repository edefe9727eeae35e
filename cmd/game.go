package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/digital-prison-cli/internal/adapters/render/terminal"
	"github.com/bnema/digital-prison-cli/internal/application"
	"github.com/bnema/digital-prison-cli/internal/domain"
	"github.com/spf13/cobra"
)

type sessionOutput struct {
	Logs      []domain.LogEntry `json:"logs"`
	Status    string            `json:"status"`
	Location  string            `json:"location"`
	Sector    string            `json:"sector"`
	Inventory []domain.Item     `json:"inventory"`
	Image     *domain.LogEntry  `json:"image,omitempty"`
}

type sessionOp struct {
	use     string
	short   string
	label   string
	args    cobra.PositionalArgs
	run     func(ctx context.Context, app *app, args []string) error
	example string
}

func newInitCmd(a *app) *cobra.Command {
	return newSessionOpCmd(a, sessionOp{
		use:   "init",
		short: "Start a new game and print the opening log",
		label: "Connecting to the prison core...",
		args:  cobra.NoArgs,
		run: func(ctx context.Context, app *app, _ []string) error {
			app.session.Warmup(ctx)
			return app.session.Init(ctx)
		},
	})
}

func newSendCmd(a *app) *cobra.Command {
	return newSessionOpCmd(a, sessionOp{
		use:     "send <command...>",
		short:   "Send one player command",
		label:   "Transmitting...",
		args:    cobra.MinimumNArgs(1),
		example: "  prison send 주변을 살펴본다\n  prison send open the door",
		run: func(ctx context.Context, app *app, args []string) error {
			return app.session.Send(ctx, strings.Join(args, " "))
		},
	})
}

func newHintCmd(a *app) *cobra.Command {
	return newSessionOpCmd(a, sessionOp{
		use:   "hint",
		short: "Ask the guide system for a hint",
		label: "Requesting guidance...",
		args:  cobra.NoArgs,
		run: func(ctx context.Context, app *app, _ []string) error {
			return app.session.Hint(ctx)
		},
	})
}

func newSaveCmd(a *app) *cobra.Command {
	return newSessionOpCmd(a, sessionOp{
		use:   "save",
		short: "Save the server session to local storage",
		label: "Syncing session...",
		args:  cobra.NoArgs,
		run: func(ctx context.Context, app *app, _ []string) error {
			return app.session.Save(ctx)
		},
	})
}

func newLoadCmd(a *app) *cobra.Command {
	return newSessionOpCmd(a, sessionOp{
		use:   "load",
		short: "Restore the locally saved session on the server",
		label: "Restoring session...",
		args:  cobra.NoArgs,
		run: func(ctx context.Context, app *app, _ []string) error {
			return app.session.Load(ctx)
		},
	})
}

func newSessionOpCmd(app *app, op sessionOp) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     op.use,
		Short:   op.short,
		Args:    op.args,
		Example: op.example,
		RunE: func(cmd *cobra.Command, args []string) error {
			request := func(ctx context.Context) error {
				return op.run(ctx, app, args)
			}

			var opErr error
			if asJSON {
				opErr = request(cmd.Context())
			} else {
				opErr = runRequestSpinner(cmd.Context(), cmd.ErrOrStderr(), op.label, request)
			}

			if err := writeSessionOutput(cmd, app, app.session.Snapshot(), asJSON); err != nil {
				return errors.Join(opErr, err)
			}
			return opErr
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func writeSessionOutput(cmd *cobra.Command, app *app, snapshot application.Snapshot, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sessionOutput{
			Logs:      snapshot.Entries,
			Status:    snapshot.State.Status,
			Location:  snapshot.State.Location,
			Sector:    application.SectorLabel(snapshot.State.Location),
			Inventory: snapshot.State.Inventory,
			Image:     snapshot.State.CurrentImage,
		})
	}

	opts := app.render
	if current, ok := app.audio.Current(); ok {
		opts.NowPlaying = current.Name
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), terminal.Render(snapshot, opts))
	return err
}

func newPingCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the game server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client := app.remote
			if err := client.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("ping %s: %w", app.serverURL, err)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "server reachable: %s\n", app.serverURL)
			return err
		},
	}
}

func newForgetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Delete the locally saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.persistence.Forget(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "local save removed from %s\n", app.savesPath)
			return err
		},
	}
}
