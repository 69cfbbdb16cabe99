package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown export format")

func newViewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive page (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runView,
	}
}

func (a *app) runView(cmd *cobra.Command, args []string) error {
	m, err := newModel(a.cfg, a.page, a.logger)
	if err != nil {
		return err
	}
	// Unmount even when the program is killed rather than quit
	defer m.close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if a.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && errors.Is(cmd.Context().Err(), context.Canceled) {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func newExportCmd(a *app) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page as html, markdown, yaml or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return a.export(cmd.OutOrStdout(), format)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := a.export(f, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format (html, markdown, yaml, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}

// export writes the page to w in the given format.
func (a *app) export(w io.Writer, format string) error {
	switch format {
	case "html":
		return renderHTML(w, a.page, a.cfg.CompactThreshold)

	case "markdown", "md":
		sections, err := a.sections()
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, sectionsMarkdown(sections))
		return err

	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(a.page); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(a.page); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the page in the system browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.CreateTemp("", appName+"-*.html")
			if err != nil {
				return fmt.Errorf("create page file: %w", err)
			}
			if err := renderHTML(f, a.page, a.cfg.CompactThreshold); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close page file: %w", err)
			}

			a.logger.Debug("opening page", "path", f.Name())
			browser.Stdout = cmd.ErrOrStderr()
			browser.Stderr = cmd.ErrOrStderr()
			if err := browser.OpenFile(f.Name()); err != nil {
				return fmt.Errorf("failed to open browser automatically, please open this file manually:\n%s\nError: %w", f.Name(), err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.Name())
			return nil
		},
	}
}

func newPlansCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Print the pricing plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePlansTable(cmd.OutOrStdout(), a.page.Pricing.Plans)
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the page content and its anchors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.check(); err != nil {
				return fmt.Errorf("page check failed:\n%w", err)
			}
			featured, _ := a.page.FeaturedPlan()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nav links resolve, featured plan %q\n", len(a.page.Nav), featured.Name)
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := a.v.ConfigFileUsed()
			if configPath == "" {
				configPath = "(none)"
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Setting", "Value")
			rows := [][]string{
				{"compact-threshold", strconv.Itoa(a.cfg.CompactThreshold)},
				{"row-height", strconv.Itoa(a.cfg.RowHeight)},
				{"style", a.cfg.Style},
				{"wrap", strconv.Itoa(a.cfg.Wrap)},
				{"desktop-width", strconv.Itoa(a.cfg.DesktopWidth)},
				{"mouse", strconv.FormatBool(a.cfg.Mouse)},
				{"no-color", strconv.FormatBool(a.cfg.NoColor)},
				{"debug", strconv.FormatBool(a.cfg.Debug)},
				{"log-file", a.cfg.LogFile},
				{"config file", configPath},
			}
			for _, row := range rows {
				if err := table.Append(row[0], row[1]); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
