// Package engine evaluates mutation constraint rules against assignment sites.
package engine

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"iter"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/sirkon/fieldguard/internal/locate"
	"github.com/sirkon/fieldguard/internal/marker"
	"github.com/sirkon/fieldguard/internal/model"
	"github.com/sirkon/fieldguard/internal/report"
	"github.com/sirkon/fieldguard/internal/rules"
	"github.com/sirkon/fieldguard/internal/scopes"
)

// Engine checks assignments of a unit against a rule set. It is safe for
// concurrent use once created.
type Engine struct {
	all     []rules.Rule
	enabled []rules.Rule

	workers   int
	writes    locate.WriteMode
	generated bool
	log       *slog.Logger
}

// New creates an engine over the given rules. Disabled rules are listed by
// Rules but never evaluated.
func New(rs []rules.Rule, opts ...Option) (*Engine, error) {
	if err := rules.Validate(rs); err != nil {
		return nil, fmt.Errorf("validate rules: %w", err)
	}

	e := &Engine{
		all:     slices.Clone(rs),
		enabled: rules.Enabled(rs),
		workers: runtime.GOMAXPROCS(0),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Rules lists every rule of the engine in registration order.
func (e *Engine) Rules() []rules.Info {
	res := make([]rules.Info, len(e.all))
	for i := range e.all {
		res[i] = e.all[i].Info()
	}

	return res
}

// WriteMode returns statements the engine treats as writes.
func (e *Engine) WriteMode() locate.WriteMode {
	return e.writes
}

// Evaluate checks sites in their order and calls emit for every violation,
// rules in registration order for a site. A site not belonging to the unit
// aborts evaluation with a *MalformedSiteError.
func (e *Engine) Evaluate(u *model.Unit, sites iter.Seq[locate.Site], emit func(report.Diagnostic)) error {
	indices := make(map[*ast.File]*scopes.Index)
	for s := range sites {
		file, err := checkSite(u, s)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", u.Path(), err)
		}

		if s.Target == nil {
			e.log.Debug(
				"skip unresolved assignment target",
				slog.String("site", s.Span.String()),
				slog.String("lhs", types.ExprString(s.LHS)),
			)
			continue
		}

		if !e.constrained(s.Target) {
			if names := marker.Names(s.Target); len(names) > 0 {
				e.log.Debug(
					"skip symbol without enabled rules",
					slog.String("symbol", s.Target.Qualified()),
					slog.Any("markers", names),
				)
			}
			continue
		}

		idx, ok := indices[file]
		if !ok {
			if !e.generated && ast.IsGenerated(file) {
				e.log.Debug("skip generated file", slog.String("file", s.Span.File))
				indices[file] = nil
				continue
			}

			idx, err = scopes.Build(u.Info, file)
			if err != nil {
				return fmt.Errorf("index scopes of %s: %w", s.Span.File, err)
			}
			indices[file] = idx
		}
		if idx == nil {
			continue
		}

		c := &rules.Context{
			Site:    s,
			Symbol:  s.Target,
			Scopes:  idx.Path(s.Pos),
			Package: u.Path(),
		}
		for i := range e.enabled {
			r := &e.enabled[i]
			if !r.Violates(c) {
				continue
			}

			emit(report.Diagnostic{
				RuleID:   r.ID,
				Severity: r.Severity,
				Message:  r.Format(s.Target),
				Span:     s.Span,
				Symbol:   s.Target.Name,
				Pos:      s.Pos,
				End:      s.End,
			})
		}
	}

	return nil
}

// Run evaluates every file of the unit in parallel and reports diagnostics to
// r in file order, then in site order within a file.
func (e *Engine) Run(ctx context.Context, u *model.Unit, r *report.Reporter) error {
	buffers := make([][]report.Diagnostic, len(u.Files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, f := range u.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Each goroutine owns its buffer slot.
			sites := locate.Sites(u, []*ast.File{f}, e.writes)
			return e.Evaluate(u, sites, func(d report.Diagnostic) {
				buffers[i] = append(buffers[i], d)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var count int
	for _, buf := range buffers {
		for _, d := range buf {
			r.Report(d)
		}
		count += len(buf)
	}
	e.log.Debug(
		"package checked",
		slog.String("package", u.Path()),
		slog.Int("files", len(u.Files)),
		slog.Int("diagnostics", count),
	)

	return nil
}

// Collect evaluates all files of the unit sequentially and returns found diagnostics.
func (e *Engine) Collect(u *model.Unit) ([]report.Diagnostic, error) {
	var res []report.Diagnostic
	err := e.Evaluate(u, locate.Sites(u, nil, e.writes), func(d report.Diagnostic) {
		res = append(res, d)
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (e *Engine) constrained(sym *model.Symbol) bool {
	for i := range e.enabled {
		if e.enabled[i].Applies(sym) {
			return true
		}
	}

	return false
}

func checkSite(u *model.Unit, s locate.Site) (*ast.File, error) {
	if !s.Pos.IsValid() || !s.End.IsValid() {
		return nil, &MalformedSiteError{Site: s, Reason: "position is not valid"}
	}
	if s.End < s.Pos {
		return nil, &MalformedSiteError{Site: s, Reason: "site ends before it starts"}
	}

	f := u.File(s.Pos)
	if f == nil {
		return nil, &MalformedSiteError{Site: s, Reason: "position is outside of unit files"}
	}
	if s.End > f.FileEnd {
		return nil, &MalformedSiteError{Site: s, Reason: "site spans beyond its file"}
	}

	return f, nil
}
