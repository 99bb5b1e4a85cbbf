package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirkon/fieldguard/internal/locate"
	"github.com/sirkon/fieldguard/internal/report"
	"github.com/sirkon/fieldguard/internal/rules"
)

const sample = `
writes: all
workers: 4
rules:
  - id: RO001
    severity: warning
    constructor_prefixes: [New, Make]
    initializers:
      - '"example.com/pkg".Builder.Reset'
  - id: RO004
    enabled: true
  - id: X100
    title: custom
    message: "{symbol} is frozen"
    marker: Frozen
    policy: never
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, locate.WriteModeAll, cfg.Writes)
	assert.Equal(t, 4, cfg.Workers)
	require.Len(t, cfg.Rules, 3)

	ro001 := cfg.Rules[0]
	require.NotNil(t, ro001.Severity)
	assert.Equal(t, report.SeverityWarning, *ro001.Severity)
	assert.Nil(t, ro001.Enabled)
	assert.Nil(t, ro001.Policy)
	assert.Equal(t, []rules.Reference{{Package: "example.com/pkg", Type: "Builder", Name: "Reset"}}, ro001.Initializers)

	x100 := cfg.Rules[2]
	require.NotNil(t, x100.Policy)
	assert.Equal(t, rules.PolicyNever, *x100.Policy)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "unknown key",
			data: "writes: simple\nworkerz: 2\n",
		},
		{
			name: "unknown write mode",
			data: "writes: compound\n",
		},
		{
			name: "unknown severity",
			data: "rules:\n  - id: RO001\n    severity: fatal\n",
		},
		{
			name: "unknown policy",
			data: "rules:\n  - id: RO001\n    policy: sometimes\n",
		},
		{
			name: "bad initializer",
			data: "rules:\n  - id: RO001\n    initializers: [Reset]\n",
		},
		{
			name: "negative workers",
			data: "workers: -1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	rs, err := cfg.Rules(rules.Builtin())
	require.NoError(t, err)
	assert.Len(t, rs, 4)
}

func TestConfig_Rules(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	rs, err := cfg.Rules(rules.Builtin())
	require.NoError(t, err)
	require.Len(t, rs, 5)

	var ids []string
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"RO001", "RO002", "RO003", "RO004", "X100"}, ids)

	ro001 := rs[0]
	assert.Equal(t, report.SeverityWarning, ro001.Severity)
	assert.True(t, ro001.Enabled)
	assert.Equal(t, "NoManualSet", ro001.Marker)
	assert.Equal(t, rules.PolicyConstructor, ro001.Policy)
	assert.Equal(t, []string{"New", "Make"}, ro001.ConstructorPrefixes)
	assert.Len(t, ro001.Initializers, 1)

	assert.True(t, rs[3].Enabled)

	x100 := rs[4]
	assert.Equal(t, "custom", x100.Title)
	assert.Equal(t, "{symbol} is frozen", x100.Message)
	assert.Equal(t, report.SeverityWarning, x100.Severity)
	assert.True(t, x100.Enabled)
	assert.Equal(t, rules.PolicyNever, x100.Policy)

	var nilConfig *Config
	base, err := nilConfig.Rules(rules.Builtin())
	require.NoError(t, err)
	assert.Len(t, base, 4)
}

func TestConfig_RulesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  string
	}{
		{
			name: "missing id",
			data: "rules:\n  - marker: M\n    policy: never\n",
			err:  "rule #0: missing id",
		},
		{
			name: "new rule without marker",
			data: "rules:\n  - id: X1\n    policy: never\n",
			err:  "rule X1: marker is required",
		},
		{
			name: "new rule without policy",
			data: "rules:\n  - id: X1\n    marker: M\n",
			err:  "rule X1: policy is required",
		},
		{
			name: "duplicate custom rule",
			data: "rules:\n  - id: X1\n    marker: M\n    policy: never\n  - id: X1\n    marker: N\n    policy: owner\n",
			err:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			require.NoError(t, err)

			_, err = cfg.Rules(rules.Builtin())
			if tt.err == "" {
				// A repeated custom ID overrides the first one like a builtin does.
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.err)
		})
	}
}

func TestConfig_Engine(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	e, err := cfg.Engine(rules.Builtin(), nil)
	require.NoError(t, err)
	assert.Equal(t, locate.WriteModeAll, e.WriteMode())
	assert.Len(t, e.Rules(), 5)

	var nilConfig *Config
	e, err = nilConfig.Engine(rules.Builtin(), nil)
	require.NoError(t, err)
	assert.Equal(t, locate.WriteModeSimple, e.WriteMode())
}

func TestLoadAndFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Empty(t, Find(nested))

	path := filepath.Join(root, FileName)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	assert.Equal(t, path, Find(nested))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)

	_, err = Load(filepath.Join(root, "missing.yaml"))
	require.ErrorContains(t, err, "load config")
}
