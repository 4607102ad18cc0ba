package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/jsonsh/format"
	"github.com/tableauio/jsonsh/log"
	"github.com/tableauio/jsonsh/xerrors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestParseOptions(t *testing.T) {
	opts := ParseOptions(
		Pretty(true),
		Log(&log.Options{Mode: "FULL", Level: "DEBUG"}),
		Shell(&ShellOption{Prompt: "$ ", ShowPrompt: ShowPromptNever}),
	)
	assert.True(t, opts.Store.Pretty)
	assert.Equal(t, "    ", opts.Store.Indent)
	assert.Equal(t, "DEBUG", opts.Log.Level)
	assert.Equal(t, "$ ", opts.Shell.Prompt)
	assert.Equal(t, ".", opts.Export.Outdir)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, opts *Options)
		errKind error
	}{
		{
			name:    "empty",
			content: "",
			check: func(t *testing.T, opts *Options) {
				assert.Equal(t, NewDefault(), opts)
			},
		},
		{
			name: "partial",
			content: `
store:
  pretty: true
export:
  formats: [yaml, xlsx]
`,
			check: func(t *testing.T, opts *Options) {
				assert.True(t, opts.Store.Pretty)
				assert.Equal(t, "    ", opts.Store.Indent)
				assert.Equal(t, []format.Format{format.YAML, format.Excel}, opts.Export.Formats)
				assert.Equal(t, ".", opts.Export.Outdir)
				assert.Equal(t, "INFO", opts.Log.Level)
				assert.Equal(t, ShowPromptAuto, opts.Shell.ShowPrompt)
			},
		},
		{
			name:    "null-section",
			content: "log:\nshell:\n  prompt: '# '\n",
			check: func(t *testing.T, opts *Options) {
				assert.Equal(t, log.NewDefault(), opts.Log)
				assert.Equal(t, "# ", opts.Shell.Prompt)
			},
		},
		{
			name:    "unknown-field",
			content: "store:\n  compress: true\n",
			errKind: xerrors.ErrParse,
		},
		{
			name:    "unknown-format",
			content: "export:\n  formats: [csv]\n",
			errKind: xerrors.ErrParse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Load(writeConfig(t, tt.content))
			if tt.errKind != nil {
				assert.ErrorIs(t, err, tt.errKind)
				return
			}
			require.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestLoad_Setters(t *testing.T) {
	opts, err := Load(writeConfig(t, "store:\n  pretty: false\n  indent: \"\\t\"\n"), Pretty(true))
	require.NoError(t, err)
	assert.True(t, opts.Store.Pretty)
	assert.Equal(t, "\t", opts.Store.Indent)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, xerrors.ErrIO)
}

func TestTemplate(t *testing.T) {
	content, err := Template()
	require.NoError(t, err)
	assert.Contains(t, string(content), "showPrompt: auto")
	assert.Contains(t, string(content), "level: INFO")

	opts, err := Load(writeConfig(t, string(content)))
	require.NoError(t, err)
	assert.Equal(t, NewDefault().Store, opts.Store)
	assert.Equal(t, NewDefault().Shell, opts.Shell)
}
