// Package main is a command line tool for checking and previewing the
// program and club catalogs before they are deployed.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/campus-web/internal/adapters/content"
	"github.com/jsamuelsen11/campus-web/internal/adapters/http/dto"
	"github.com/jsamuelsen11/campus-web/internal/app"
	"github.com/jsamuelsen11/campus-web/internal/domain"
	"github.com/jsamuelsen11/campus-web/internal/domain/catalog"
	"github.com/jsamuelsen11/campus-web/internal/platform/logging"
	"github.com/jsamuelsen11/campus-web/internal/ports"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the flags shared by every subcommand.
type options struct {
	dir      string
	logLevel string
	stderr   io.Writer
}

func (o *options) source() ports.CatalogSource {
	if o.dir == "" {
		return content.Embedded()
	}
	return content.Dir(o.dir)
}

func (o *options) logger() *slog.Logger {
	return logging.New(o.logLevel, "text", o.stderr)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{stderr: stderr}

	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Validate and preview campus catalogs",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&opts.dir, "dir", "", "read catalogs from this directory instead of the embedded set")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newValidateCmd(opts), newShowCmd(opts))
	return root
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load every catalog and report entry counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := opts.source()
			catalogs, err := app.LoadCatalogs(cmd.Context(), src, catalog.Names(), opts.logger())
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name(), err)
			}

			names := make([]string, 0, len(catalogs))
			for n := range catalogs {
				names = append(names, string(n))
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, n := range names {
				fmt.Fprintf(out, "%s\t%d entries\n", n, catalogs[catalog.Name(n)].Len())
			}
			fmt.Fprintf(out, "ok (%s)\n", src.Name())
			return nil
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <catalog> <key>",
		Short: "Print the rendered dialog body of one entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := catalog.Name(args[0])
			if !name.IsValid() {
				return fmt.Errorf("catalog %q: %w", args[0], domain.ErrNotFound)
			}

			c, err := opts.source().Load(cmd.Context(), name)
			if err != nil {
				return err
			}
			e, ok := c.Lookup(args[1])
			if !ok {
				return fmt.Errorf("%s entry %q: %w", name, args[1], domain.ErrNotFound)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dto.ToEntryResponse(e))
			}
			fmt.Fprintf(out, "%s\n\n%s\n", e.Title, e.Markup)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the entry as JSON")
	return cmd
}
