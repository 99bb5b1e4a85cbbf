package config

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/sirkon/fieldguard/internal/engine"
	"github.com/sirkon/fieldguard/internal/report"
	"github.com/sirkon/fieldguard/internal/rules"
)

const (
	customCategory = "Custom"
	customMessage  = "field {symbol} marked with {marker} must not be assigned here"
)

// Rules applies configured rules over base. A nil config returns base as is.
func (c *Config) Rules(base []rules.Rule) ([]rules.Rule, error) {
	if c == nil || len(c.Rules) == 0 {
		return base, nil
	}

	custom := make([]rules.Rule, 0, len(c.Rules))
	for i, rc := range c.Rules {
		if rc.ID == "" {
			return nil, fmt.Errorf("rule #%d: missing id", i)
		}

		j := slices.IndexFunc(base, func(r rules.Rule) bool { return r.ID == rc.ID })
		if j >= 0 {
			custom = append(custom, rc.apply(base[j]))
			continue
		}

		switch {
		case rc.Marker == "":
			return nil, fmt.Errorf("rule %s: marker is required for a new rule", rc.ID)
		case rc.Policy == nil:
			return nil, fmt.Errorf("rule %s: policy is required for a new rule", rc.ID)
		}
		custom = append(custom, rc.apply(rules.Rule{
			ID:       rc.ID,
			Title:    rc.ID,
			Category: customCategory,
			Message:  customMessage,
			Severity: report.SeverityWarning,
			Enabled:  true,
		}))
	}

	res := rules.Merge(base, custom)
	if err := rules.Validate(res); err != nil {
		return nil, err
	}

	return res, nil
}

// Engine creates an engine over base rules adjusted by the config.
func (c *Config) Engine(base []rules.Rule, log *slog.Logger) (*engine.Engine, error) {
	rs, err := c.Rules(base)
	if err != nil {
		return nil, fmt.Errorf("apply config rules: %w", err)
	}

	opts := []engine.Option{engine.WithLogger(log)}
	if c != nil {
		opts = append(
			opts,
			engine.WithWorkers(c.Workers),
			engine.WithWriteMode(c.Writes),
			engine.WithGenerated(c.Generated),
		)
	}

	if log != nil {
		for _, r := range rs {
			log.Debug(
				"rule",
				slog.String("id", r.ID),
				slog.String("marker", r.Marker),
				slog.String("policy", r.Policy.String()),
				slog.Bool("enabled", r.Enabled),
			)
		}
	}

	return engine.New(rs, opts...)
}

func (rc RuleConfig) apply(r rules.Rule) rules.Rule {
	if rc.Title != "" {
		r.Title = rc.Title
	}
	if rc.Category != "" {
		r.Category = rc.Category
	}
	if rc.Message != "" {
		r.Message = rc.Message
	}
	if rc.Severity != nil {
		r.Severity = *rc.Severity
	}
	if rc.Enabled != nil {
		r.Enabled = *rc.Enabled
	}
	if rc.Marker != "" {
		r.Marker = rc.Marker
	}
	if rc.Policy != nil {
		r.Policy = *rc.Policy
	}
	if len(rc.ConstructorPrefixes) > 0 {
		r.ConstructorPrefixes = slices.Clone(rc.ConstructorPrefixes)
	}
	if len(rc.Initializers) > 0 {
		r.Initializers = slices.Clone(rc.Initializers)
	}

	return r
}
