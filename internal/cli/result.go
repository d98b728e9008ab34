package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/Veraticus/icd-suggest/internal/model"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// HighConfidence is the score from which a suggestion is shown as strong.
const HighConfidence = 0.7

var printer = message.NewPrinter(language.English)

// FormatConfidence renders a confidence score as a whole percentage.
func FormatConfidence(confidence float64) string {
	return printer.Sprint(number.Percent(confidence, number.MaxFractionDigits(0)))
}

// FormatScore renders the raw confidence score with two decimals.
func FormatScore(confidence float64) string {
	return printer.Sprint(number.Decimal(confidence,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// ConfidenceStyle picks the text style for a score.
func ConfidenceStyle(result model.MatchResult) func(...string) string {
	switch {
	case result.IsFallback():
		return SubtleStyle.Render
	case result.Confidence >= HighConfidence:
		return SuccessStyle.Render
	default:
		return WarningStyle.Render
	}
}

// RenderResult renders a suggestion for the given diagnosis text.
func RenderResult(diagnosis string, result model.MatchResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render("Diagnosis:  "), diagnosis)
	fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render("Code:       "), CodeStyle.Render(result.Code))
	fmt.Fprintf(&b, "%s %s\n", SubtleStyle.Render("Description:"), result.Label)
	fmt.Fprintf(&b, "%s %s %s", SubtleStyle.Render("Confidence: "),
		ConfidenceStyle(result)(FormatConfidence(result.Confidence)),
		SubtleStyle.Render("(score "+FormatScore(result.Confidence)+")"))

	if result.IsFallback() {
		b.WriteString("\n\n" + FormatWarning("No close match, showing the general examination code"))
	} else {
		b.WriteString("\n\n" + FormatSuccess("Matched reference diagnosis \""+result.Label+"\""))
	}

	return RenderBox("Predicted ICD-10 code", b.String())
}

// WriteConfidenceBar draws the confidence as a filled bar on w.
func WriteConfidenceBar(w io.Writer, confidence float64) error {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetDescription("[cyan]Confidence[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]█[reset]",
			SaucerPadding: "░",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)

	if err := bar.Set(int(math.Round(confidence * 100))); err != nil {
		return fmt.Errorf("failed to render confidence bar: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to render confidence bar: %w", err)
	}
	return nil
}

// WriteJSON writes the suggestion in the prediction service response shape.
func WriteJSON(w io.Writer, result model.MatchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model.NewPredictResponse(result)); err != nil {
		return fmt.Errorf("failed to encode prediction: %w", err)
	}
	return nil
}
