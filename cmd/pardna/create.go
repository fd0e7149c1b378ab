package main

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/pardna/internal/errors"
	"github.com/vango-dev/pardna/pkg/navigation"
	"github.com/vango-dev/pardna/pkg/pardna"
	"github.com/vango-dev/pardna/pkg/tui"
)

// createScreen is the screen the form lives on before navigation.
const createScreen = "CreatePardna"

func createCmd(flags *globalFlags) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pardna",
		Long: `Create a pardna interactively, or from a YAML or JSON file.

Without --file the form is shown field by field. Invalid fields are
reported and the form is shown again; a failed create can be retried.

Examples:
  pardna create
  pardna create --file pardna.yaml
  cat pardna.json | pardna create --file - --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runCreate(ctx, cmd, flags, file, format)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the pardna from a YAML or JSON file (- for stdin)")
	cmd.Flags().StringVar(&format, "format", "", "File format: yaml or json (default from the file extension)")

	return cmd
}

func runCreate(ctx context.Context, cmd *cobra.Command, flags *globalFlags, file, format string) error {
	out, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	cfg, err := loadConfig(flags, stderr)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(stderr)

	stack := navigation.NewStack(createScreen)
	stack.OnNavigate(func(r navigation.Route) {
		success(out, "Opened %s %s", r.Screen, r.Params["id"])
	})

	f := pardna.NewForm(cfg.FormDefaults())
	ctrl := pardna.NewController(f,
		newCreator(newClient(cfg, logger), logger),
		stack,
		pardna.LogReporter{Logger: logger},
		pardna.WithLogger(logger),
	)

	if file == "" {
		runner := tui.NewRunner(ctrl, tui.NewSurveyDriver(out),
			tui.WithCurrencySymbol(cfg.CurrencySymbol),
			tui.WithLogger(logger),
		)
		_, err := runner.Run(ctx)
		return err
	}

	data, err := readInput(cmd.InOrStdin(), file)
	if err != nil {
		return errors.New("P140").Wrap(err)
	}
	if format == "" {
		format = formatFromPath(file)
	}
	draft, err := pardna.ParseDraft(data, format)
	if err != nil {
		return err
	}
	f.SetValues(draft.Record())

	id, err := ctrl.Submit(ctx)
	if err != nil {
		var invalid *pardna.InvalidRecordError
		if stderrors.As(err, &invalid) {
			for _, path := range invalid.Errors.Paths() {
				errorMsg(stderr, "%s: %s", path, invalid.Errors[path])
			}
		}
		return err
	}
	success(out, "Created pardna %s", id)
	return nil
}

func readInput(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}

func formatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}
