package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/tools/go/packages"

	"github.com/sirkon/fieldguard/internal/model"
	"github.com/sirkon/fieldguard/internal/report"
)

const (
	formatText  = "text"
	formatPlain = "plain"
	formatJSON  = "json"
)

var (
	severityErrorColor   = color.New(color.FgRed, color.Bold)
	severityWarningColor = color.New(color.FgYellow, color.Bold)
	severityInfoColor    = color.New(color.FgCyan)
	locationColor        = color.New(color.Faint)
)

func newCheckCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Check packages, ./... by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"./..."}
			}

			switch format {
			case formatText, formatPlain, formatJSON:
			default:
				return fmt.Errorf("unknown output format %q", format)
			}

			e, err := a.engine()
			if err != nil {
				return err
			}
			a.log.Debug(
				"check packages",
				slog.String("dir", a.dir),
				slog.Any("patterns", args),
				slog.String("writes", e.WriteMode().String()),
			)

			pkgs, err := packages.Load(&packages.Config{
				Mode:    model.LoadMode,
				Context: cmd.Context(),
				Dir:     a.dir,
			}, args...)
			if err != nil {
				return fmt.Errorf("load packages: %w", err)
			}

			units, err := model.FromPackages(pkgs)
			if err != nil {
				return err
			}

			var r report.Reporter
			if format == formatText {
				out := cmd.OutOrStdout()
				r.OnDiagnostic(func(d report.Diagnostic) {
					printDiagnostic(out, d)
				})
			}

			for _, u := range units {
				a.log.Debug("check package", slog.String("package", u.Path()), slog.Int("files", len(u.Files)))
				if err := e.Run(cmd.Context(), u, &r); err != nil {
					return fmt.Errorf("check %s: %w", u.Path(), err)
				}
			}

			switch format {
			case formatPlain:
				if err := r.PrintSummary(cmd.OutOrStdout()); err != nil {
					return err
				}
			case formatJSON:
				if err := printJSON(cmd.OutOrStdout(), r.Diagnostics()); err != nil {
					return err
				}
			}

			if r.HasErrors() {
				return &exitError{code: 1}
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text|plain|json)")

	return cmd
}

func printDiagnostic(w io.Writer, d report.Diagnostic) {
	var sev *color.Color
	switch d.Severity {
	case report.SeverityError:
		sev = severityErrorColor
	case report.SeverityWarning:
		sev = severityWarningColor
	default:
		sev = severityInfoColor
	}

	_, _ = fmt.Fprintf(
		w,
		"%s %s %s: %s\n",
		locationColor.Sprintf("%s:%d:%d:", d.Span.File, d.Span.StartLine, d.Span.StartColumn),
		sev.Sprint(d.Severity),
		d.RuleID,
		d.Message,
	)
}

type jsonDiagnostic struct {
	Rule      string          `json:"rule"`
	Severity  report.Severity `json:"severity"`
	Message   string          `json:"message"`
	Symbol    string          `json:"symbol"`
	File      string          `json:"file"`
	Line      int             `json:"line"`
	Column    int             `json:"column"`
	EndLine   int             `json:"end_line"`
	EndColumn int             `json:"end_column"`
}

func printJSON(w io.Writer, ds []report.Diagnostic) error {
	res := make([]jsonDiagnostic, len(ds))
	for i, d := range ds {
		res[i] = jsonDiagnostic{
			Rule:      d.RuleID,
			Severity:  d.Severity,
			Message:   d.Message,
			Symbol:    d.Symbol,
			File:      d.Span.File,
			Line:      d.Span.StartLine,
			Column:    d.Span.StartColumn,
			EndLine:   d.Span.EndLine,
			EndColumn: d.Span.EndColumn,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
