package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/icd-suggest/internal/cli"
	"github.com/Veraticus/icd-suggest/internal/matcher"
	"github.com/Veraticus/icd-suggest/internal/model"
	"github.com/spf13/cobra"
)

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the reference diagnoses",
		Long:  `Display the built-in reference diagnoses and the ICD-10 codes they map to.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Reference diagnoses"))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\n",
				cli.TableHeaderStyle.Render("Code"),
				cli.TableHeaderStyle.Render("Diagnosis"))
			fmt.Fprintf(w, "%s\t%s\n",
				strings.Repeat("-", 8),
				strings.Repeat("-", 34))

			for _, ref := range matcher.NewDefault().References() {
				fmt.Fprintf(w, "%s\t%s\n", ref.Code, ref.Label)
			}

			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to write reference table: %w", err)
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf(
				"Anything scoring %s or less falls back to %s (%s).",
				cli.FormatConfidence(model.FallbackConfidence), model.Fallback.Code, model.Fallback.Label)))
			return nil
		},
	}
}
