package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func testBuilder(environment map[string]string) *configBuilder {
	b := newConfigBuilder()
	if environment == nil {
		environment = map[string]string{}
	}
	b.environment = environment
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that earlier configs take precedence
// and later ones only fill zero fields.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Output: Output{Dir: "from-flags"}},
		&StructuredConfig{Output: Output{Dir: "from-env", Mkdir: true}},
		Defaults(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Output.Dir)
	assert.True(t, cfg.Output.Mkdir)
	assert.Equal(t, DefaultRoot, cfg.Media.Root)
	assert.Equal(t, DefaultJobs, cfg.Workers.Jobs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that no JSON config is added when no source
// specified a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_MissingFile verifies that a non-existent file path records
// an error on the builder.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetDumpConfig ─────────────────────────────────────────────────────────────

func TestGetDumpConfig_Defaults(t *testing.T) {
	cfg, err := getDumpConfig(testBuilder(nil), []string{"-o", "/tmp/out"})
	require.NoError(t, err)

	assert.Equal(t, DefaultRoot, cfg.Media.Root)
	assert.True(t, cfg.Media.IsDefaultRoot())
	assert.Equal(t, DefaultContentDir, cfg.Media.ContentDir)
	assert.Equal(t, DefaultPattern, cfg.Media.Pattern.String())
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	assert.False(t, cfg.Output.Mkdir)
	assert.False(t, cfg.Grouping.Auto)
	assert.Equal(t, DefaultJobs, cfg.Workers.Jobs)
}

func TestGetDumpConfig_MissingOut(t *testing.T) {
	cfg, err := getDumpConfig(testBuilder(nil), []string{"-a"})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUsage)
	assert.ErrorIs(t, err, ErrMissingOutput)
}

func TestGetDumpConfig_HelpBeatsMissingOut(t *testing.T) {
	_, err := getDumpConfig(testBuilder(nil), []string{"--help"})
	assert.ErrorIs(t, err, ErrHelpRequested)
	assert.NotErrorIs(t, err, ErrMissingOutput)
}

func TestGetDumpConfig_FlagsOverrideEnv(t *testing.T) {
	env := map[string]string{
		"DUMPMAN_OUT_DIR":      "/env/out",
		"DUMPMAN_MEDIA_ROOT":   "/env/root",
		"DUMPMAN_WORKERS_JOBS": "2",
		"DUMPMAN_GROUP_AUTO":   "true",
	}

	cfg, err := getDumpConfig(testBuilder(env), []string{"-o", "/flag/out"})
	require.NoError(t, err)

	assert.Equal(t, "/flag/out", cfg.Output.Dir)
	assert.Equal(t, "/env/root", cfg.Media.Root)
	assert.Equal(t, 2, cfg.Workers.Jobs)
	assert.True(t, cfg.Grouping.Auto)
}

func TestGetDumpConfig_ExplicitFalseFlagsOverrideEnv(t *testing.T) {
	env := map[string]string{
		"DUMPMAN_OUT_DIR":      "/env/out",
		"DUMPMAN_OUT_MKDIR":    "true",
		"DUMPMAN_UI_PLAIN":     "true",
		"DUMPMAN_GROUP_AUTO":   "true",
		"DUMPMAN_WORKERS_JOBS": "8",
	}

	cfg, err := getDumpConfig(testBuilder(env), []string{"--mkdir=false", "--plain=false"})
	require.NoError(t, err)

	assert.Equal(t, "/env/out", cfg.Output.Dir)
	assert.False(t, cfg.Output.Mkdir)
	assert.False(t, cfg.UI.Plain)
	assert.True(t, cfg.Grouping.Auto, "flags not given keep the env value")
	assert.Equal(t, 8, cfg.Workers.Jobs)
}

func TestGetDumpConfig_ExplicitZeroJobsIsRejected(t *testing.T) {
	env := map[string]string{"DUMPMAN_WORKERS_JOBS": "8"}

	_, err := getDumpConfig(testBuilder(env), []string{"-o", "out", "-j", "0"})
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestGetDumpConfig_EnvOverridesJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"media":   map[string]any{"root": "/json/root", "content_dir": "DCIM/101CANON"},
		"output":  map[string]any{"dir": "/json/out", "mkdir": true},
		"workers": map[string]any{"jobs": 6},
	})
	env := map[string]string{
		"DUMPMAN_CONFIG":     path,
		"DUMPMAN_MEDIA_ROOT": "/env/root",
	}

	cfg, err := getDumpConfig(testBuilder(env), nil)
	require.NoError(t, err)

	assert.Equal(t, "/env/root", cfg.Media.Root)
	assert.Equal(t, "DCIM/101CANON", cfg.Media.ContentDir)
	assert.Equal(t, "/json/out", cfg.Output.Dir)
	assert.True(t, cfg.Output.Mkdir)
	assert.Equal(t, 6, cfg.Workers.Jobs)
}

func TestGetDumpConfig_InvalidPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "does not compile", pattern: `MVI_(\d{4}`},
		{name: "no capture group", pattern: `MVI_\d{4}\.MOV`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := getDumpConfig(testBuilder(nil), []string{"-o", "out", "--pattern", tt.pattern})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUsage)
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

func TestGetDumpConfig_InvalidJobs(t *testing.T) {
	_, err := getDumpConfig(testBuilder(nil), []string{"-o", "out", "-j", "-3"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)

	_, err = getDumpConfig(testBuilder(nil), []string{"-o", "out", "-j", "1000"})
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

func TestDumpMedia_ContentPath(t *testing.T) {
	m := DumpMedia{Root: "/mnt/sd", ContentDir: "DCIM/100CANON"}
	assert.Equal(t, "/mnt/sd/DCIM/100CANON", m.ContentPath())
	assert.False(t, m.IsDefaultRoot())
}
