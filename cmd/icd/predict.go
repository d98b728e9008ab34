package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/icd-suggest/internal/cli"
	"github.com/Veraticus/icd-suggest/internal/common"
	"github.com/Veraticus/icd-suggest/internal/config"
	"github.com/Veraticus/icd-suggest/internal/matcher"
	"github.com/Veraticus/icd-suggest/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func predictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predict [diagnosis...]",
		Short: "Suggest an ICD-10 code for a diagnosis",
		Long: `Suggest an ICD-10 code for free-text diagnosis wording.

The diagnosis is taken from the arguments, or read as one line from stdin
when no arguments are given.

Examples:
  icd predict "type 2 diabetes"
  icd predict --output json low back pain
  echo "asthma" | icd predict`,
		RunE: runPredict,
	}

	cmd.Flags().StringP("output", "o", config.OutputText, "output format (text, json)")
	_ = viper.BindPFlag("predict.output", cmd.Flags().Lookup("output"))

	return cmd
}

func runPredict(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	diagnosis := strings.Join(args, " ")
	if len(args) == 0 {
		diagnosis, err = cli.NewLineReader(cmd.InOrStdin()).ReadLine(cmd.Context())
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read diagnosis: %w", err)
		}
	}

	if strings.TrimSpace(diagnosis) == "" {
		return common.NewUserError("Please enter a diagnosis", common.ErrEmptyDiagnosis)
	}

	result := matcher.NewDefault().Match(diagnosis)
	common.LogDebug("Predicted ICD-10 code", common.Fields{
		"diagnosis":  diagnosis,
		"code":       result.Code,
		"confidence": result.Confidence,
		"fallback":   result.IsFallback(),
	})

	return writePrediction(cmd.OutOrStdout(), settings.Predict.Output, diagnosis, result)
}

func writePrediction(w io.Writer, output, diagnosis string, result model.MatchResult) error {
	if output == config.OutputJSON {
		return cli.WriteJSON(w, result)
	}

	if _, err := fmt.Fprintln(w, cli.RenderResult(diagnosis, result)); err != nil {
		return fmt.Errorf("failed to write prediction: %w", err)
	}
	return cli.WriteConfidenceBar(w, result.Confidence)
}
