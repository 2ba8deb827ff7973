package preset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presetctl/src/preset"
)

const yamlDoc = `version: "1.0"
presets:
  - display_name: "Grok 4 (200k)"
    model_provider_class: "Grok"
    model_name: "grok-4"
    initial_tokens_max: 200000
    llm_system_prompt: ""
  - display_name: "GPT-5 (270k)"
    model_provider_class: "OpenAI"
    model_name: "gpt-5"
    initial_tokens_max: "270000"
    llm_system_prompt: "Be brief."
`

const jsonList = `[
  {
    "display_name": "Grok 4 (200k)",
    "model_provider_class": "Grok",
    "model_name": "grok-4",
    "initial_tokens_max": 200000,
    "llm_system_prompt": ""
  },
  {
    "display_name": "GPT-5 (270k)",
    "model_provider_class": "OpenAI",
    "model_name": "gpt-5",
    "initial_tokens_max": 270000,
    "llm_system_prompt": "Be brief."
  }
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLAndJSONDecodeAlike(t *testing.T) {
	fromYAML, err := preset.LoadFile(writeFile(t, "presets.yaml", yamlDoc))
	require.NoError(t, err)
	fromJSON, err := preset.LoadFile(writeFile(t, "presets.json", jsonList))
	require.NoError(t, err)

	if diff := cmp.Diff(fromYAML.List(), fromJSON.List()); diff != "" {
		t.Errorf("YAML and JSON registries differ (-yaml +json):\n%s", diff)
	}
}

func TestIntegralFloatTokensAcrossFormats(t *testing.T) {
	fromYAML, err := preset.LoadFile(writeFile(t, "presets.yaml", strings.ReplaceAll(yamlDoc, "200000", "200000.0")))
	require.NoError(t, err)

	for _, tokens := range []string{"200000.0", "2e5"} {
		doc := strings.Replace(jsonList, "200000", tokens, 1)
		fromJSON, err := preset.LoadFile(writeFile(t, "presets.json", doc))
		require.NoError(t, err, tokens)

		if diff := cmp.Diff(fromYAML.List(), fromJSON.List()); diff != "" {
			t.Errorf("tokens %s: YAML and JSON registries differ (-yaml +json):\n%s", tokens, diff)
		}
	}
}

func TestDecodeForms(t *testing.T) {
	testCases := []struct {
		name        string
		format      preset.Format
		input       string
		wantVersion string
		wantCount   int
		wantErr     bool
	}{
		{name: "YAML document", format: preset.FormatYAML, input: yamlDoc, wantVersion: "1.0", wantCount: 2},
		{name: "YAML bare list", format: preset.FormatYAML, input: "- display_name: A\n  model_name: a\n", wantCount: 1},
		{name: "YAML empty", format: preset.FormatYAML, input: "", wantCount: 0},
		{name: "YAML unknown key", format: preset.FormatYAML, input: "- display_name: A\n  colour: red\n", wantErr: true},
		{name: "JSON bare list", format: preset.FormatJSON, input: jsonList, wantCount: 2},
		{name: "JSON document", format: preset.FormatJSON, input: `{"version": "1.2", "presets": []}`, wantVersion: "1.2"},
		{name: "JSON unknown key", format: preset.FormatJSON, input: `[{"display_name": "A", "colour": "red"}]`, wantErr: true},
		{name: "JSON malformed", format: preset.FormatJSON, input: `[{"display_name": }]`, wantErr: true},
		{name: "Unsupported format", format: preset.Format("toml"), input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := preset.Decode(strings.NewReader(tc.input), tc.format)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantVersion, f.Version)
			assert.Len(t, f.Presets, tc.wantCount)
		})
	}
}

func TestDecodeKeepsMissingFieldsNil(t *testing.T) {
	f, err := preset.Decode(strings.NewReader("- display_name: A\n  llm_system_prompt: \"\"\n"), preset.FormatYAML)
	require.NoError(t, err)
	require.Len(t, f.Presets, 1)

	e := f.Presets[0]
	assert.Nil(t, e.ModelName)
	assert.Nil(t, e.InitialTokensMax)
	require.NotNil(t, e.LLMSystemPrompt)
	assert.Equal(t, "", *e.LLMSystemPrompt)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := preset.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = preset.LoadFile(writeFile(t, "presets.txt", yamlDoc))
	assert.Error(t, err)

	_, err = preset.LoadFile(writeFile(t, "presets.yaml", "version: \"2.0\"\npresets: []\n"))
	var verr *preset.VersionError
	assert.ErrorAs(t, err, &verr)

	dup := strings.Replace(yamlDoc, "GPT-5 (270k)", "Grok 4 (200k)", 1)
	_, err = preset.LoadFile(writeFile(t, "presets.yaml", dup))
	assert.ErrorIs(t, err, preset.ErrValidation)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]preset.Format{
		"a.yaml":     preset.FormatYAML,
		"b.YML":      preset.FormatYAML,
		"dir/c.json": preset.FormatJSON,
	} {
		got, err := preset.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := preset.FormatFromPath("presets.js")
	assert.Error(t, err)
}

func TestBuiltin(t *testing.T) {
	f := preset.Builtin()
	assert.Equal(t, preset.FormatVersion, f.Version)
	assert.Len(t, f.Presets, 7)

	reg, err := f.Load()
	require.NoError(t, err)

	want := []string{
		"Gemini 3 Pro (300k)",
		"Gemini 2.5 Pro (300k)",
		"Gemini 2.5 Flash (600k)",
		"Claude Opus 4.1 (200k)",
		"Grok 4 (200k)",
		"GPT-5.1 (270k)",
		"GPT-5 (270k)",
	}
	assert.Equal(t, want, reg.DisplayNames())
}

func TestEncodeDecode(t *testing.T) {
	reg, err := preset.LoadBuiltin()
	require.NoError(t, err)

	for _, format := range []preset.Format{preset.FormatJSON, preset.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, preset.Encode(&buf, format, reg.List()))

			f, err := preset.Decode(&buf, format)
			require.NoError(t, err)
			again, err := f.Load()
			require.NoError(t, err)

			if diff := cmp.Diff(reg.List(), again.List()); diff != "" {
				t.Errorf("re-encoded presets differ (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeJSONShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, preset.Encode(&buf, preset.FormatJSON, []preset.Record{{
		DisplayName:        "Grok 4 (200k)",
		ModelProviderClass: "Grok",
		ModelName:          "grok-4",
		InitialTokensMax:   200000,
	}}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "["))
	assert.Contains(t, out, `"model_provider_class": "Grok"`)
	assert.Contains(t, out, `"initial_tokens_max": 200000`)
	assert.Contains(t, out, `"llm_system_prompt": ""`)

	buf.Reset()
	require.NoError(t, preset.Encode(&buf, preset.FormatJSON, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]preset.Format{
		"json": preset.FormatJSON,
		"YAML": preset.FormatYAML,
		"yml":  preset.FormatYAML,
	} {
		got, err := preset.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := preset.ParseFormat("toml")
	assert.Error(t, err)
}
