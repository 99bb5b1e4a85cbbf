package fieldguard

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"github.com/sirkon/fieldguard/internal/config"
	"github.com/sirkon/fieldguard/internal/engine"
	"github.com/sirkon/fieldguard/internal/model"
	"github.com/sirkon/fieldguard/internal/report"
	"github.com/sirkon/fieldguard/internal/rules"
)

const doc = `fieldguard reports assignments to annotated struct fields

Fields are annotated with //fieldguard:<Marker> directives or with the
fieldguard struct tag. Each rule binds a marker to the places where marked
fields may be assigned: constructors, methods of the owner type, the
declaring package or nowhere at all.`

// Rule is a mutation constraint. See [Builtin] for the default set.
type Rule = rules.Rule

// RuleInfo describes a rule for listings.
type RuleInfo = rules.Info

// Analyzer checks assignments against builtin rules.
var Analyzer = NewAnalyzer()

// NewAnalyzer creates an analyzer checking builtin rules merged with custom
// ones: a custom rule replaces the builtin rule with the same ID.
func NewAnalyzer(custom ...Rule) *analysis.Analyzer {
	c := &checker{custom: custom}

	a := &analysis.Analyzer{
		Name:      "fieldguard",
		Doc:       doc,
		Requires:  []*analysis.Analyzer{inspect.Analyzer},
		FactTypes: []analysis.Fact{(*model.MarkedField)(nil)},
		Run:       c.run,
	}
	a.Flags.StringVar(&c.config, "config", "", "path to the YAML configuration file")

	return a
}

// Builtin returns the builtin rule set.
func Builtin() []Rule {
	return rules.Builtin()
}

// Rules lists builtin rules.
func Rules() []RuleInfo {
	rs := rules.Builtin()
	res := make([]RuleInfo, len(rs))
	for i := range rs {
		res[i] = rs[i].Info()
	}

	return res
}

type checker struct {
	custom []Rule
	config string

	once   sync.Once
	engine *engine.Engine
	err    error
}

// setup builds the engine once flags are parsed.
func (c *checker) setup() (*engine.Engine, error) {
	c.once.Do(func() {
		var cfg *config.Config
		if c.config != "" {
			cfg, c.err = config.Load(c.config)
			if c.err != nil {
				return
			}
		}

		c.engine, c.err = cfg.Engine(rules.Merge(rules.Builtin(), c.custom), nil)
	})

	return c.engine, c.err
}

func (c *checker) run(pass *analysis.Pass) (any, error) {
	e, err := c.setup()
	if err != nil {
		return nil, fmt.Errorf("setup fieldguard: %w", err)
	}

	u := model.FromPass(pass)

	var r report.Reporter
	r.OnDiagnostic(func(d report.Diagnostic) {
		pass.Report(analysis.Diagnostic{
			Pos:      d.Pos,
			End:      d.End,
			Category: d.RuleID,
			Message:  d.RuleID + ": " + d.Message,
		})
	})

	if err := e.Run(context.Background(), u, &r); err != nil {
		return nil, err
	}

	return nil, nil
}
