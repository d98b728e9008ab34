package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/icd-suggest/internal/common"
	"github.com/Veraticus/icd-suggest/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func decodePrediction(t *testing.T, out string) model.PredictResponse {
	t.Helper()
	var resp model.PredictResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

func TestPredictCmd_JSON(t *testing.T) {
	out, err := execute(t, "", "predict", "--output", "json", "Type", "2", "diabetes", "mellitus")
	require.NoError(t, err)

	resp := decodePrediction(t, out)
	assert.Equal(t, "E11.9", resp.Code)
	assert.Equal(t, "Type 2 diabetes mellitus", resp.Label)
	assert.Equal(t, model.MaxConfidence, resp.Confidence)
}

func TestPredictCmd_Fallback(t *testing.T) {
	out, err := execute(t, "", "predict", "-o", "json", "unrelated text with no keywords")
	require.NoError(t, err)

	assert.Equal(t, model.NewPredictResponse(model.Fallback), decodePrediction(t, out))
}

func TestPredictCmd_Stdin(t *testing.T) {
	out, err := execute(t, "ASTHMA\n", "predict", "-o", "json")
	require.NoError(t, err)

	assert.Equal(t, "J45.909", decodePrediction(t, out).Code)
}

func TestPredictCmd_Text(t *testing.T) {
	out, err := execute(t, "", "predict", "-o", "text", "back pain")
	require.NoError(t, err)

	assert.Contains(t, out, "M54.5")
	assert.Contains(t, out, "Low back pain")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "Confidence")
}

func TestPredictCmd_EmptyDiagnosis(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "blank argument", args: []string{"predict", "   "}},
		{name: "empty stdin", args: []string{"predict"}},
		{name: "blank stdin line", stdin: " \n", args: []string{"predict"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrEmptyDiagnosis)
			assert.Equal(t, "Please enter a diagnosis", common.UserMessage(err))
		})
	}
}

func TestPredictCmd_InvalidOutput(t *testing.T) {
	_, err := execute(t, "", "predict", "-o", "yaml", "asthma")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestCodesCmd(t *testing.T) {
	out, err := execute(t, "", "codes")
	require.NoError(t, err)

	for _, ref := range model.DefaultReferences() {
		assert.Contains(t, out, ref.Code)
		assert.Contains(t, out, ref.Label)
	}
	assert.Contains(t, out, "Z00.00")
	assert.Contains(t, out, "30%")
}

func TestFormCmd_Flags(t *testing.T) {
	cmd := formCmd()

	for _, name := range []string{"latency", "theme", "debug-log"} {
		assert.NotNil(t, cmd.Flag(name), "flag %s should exist", name)
	}
}

func TestFormCmd_UnknownTheme(t *testing.T) {
	_, err := execute(t, "", "form", "--theme", "neon")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestFormCmd_DebugLogFlagBindsSetting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.log")

	_, err := execute(t, "", "form", "--theme", "neon", "--debug-log", path)
	require.ErrorIs(t, err, common.ErrInvalidConfig)

	settings, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, path, settings.Form.DebugLog)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "icd version dev\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "codes")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"predict", "codes", "form", "version"})
}
