package commands

import (
	"fmt"
	"strings"

	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/understanding"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract [question]",
	Short: "Show the context and preferences read from a question",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	extractor, err := loadExtractor()
	if err != nil {
		return fmt.Errorf("load taxonomy: %w", err)
	}

	question := strings.Join(args, " ")
	ctx := extractor.Extract(question)
	prefs := preference.FillFromContext(preference.Mine(question), ctx)

	out := cmd.OutOrStdout()
	if extractJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"context":     ctx,
			"preferences": prefs,
		})
	}

	header(out, "Context")
	field(out, "occasion", ctx.Occasion)
	field(out, "recipient", ctx.RecipientType)
	field(out, "relationship", ctx.Relationship)
	field(out, "gender", ctx.Gender)
	if ctx.Age.Numerical != nil {
		field(out, "age", *ctx.Age.Numerical)
	}
	field(out, "age group", ctx.Age.Group)
	field(out, "interests", strings.Join(ctx.Interests, ", "))
	field(out, "budget", formatBudget(ctx.Budget))
	field(out, "urgency", ctx.Urgency)

	fmt.Fprintln(out)
	header(out, "Preferences")
	if prefs.IsEmpty() {
		dimColor.Fprintln(out, "  (none)")
		return nil
	}
	field(out, "gender", prefs.Gender)
	field(out, "age group", prefs.AgeGroup)
	field(out, "occasion", prefs.Occasion)
	field(out, "interests", strings.Join(prefs.Interests, ", "))
	field(out, "price range", prefs.PriceRange)
	return nil
}

func formatBudget(b understanding.Budget) string {
	switch {
	case b.Min != nil && b.Max != nil:
		return fmt.Sprintf("%d - %d", *b.Min, *b.Max)
	case b.Approx != nil && b.Qualitative != "":
		return fmt.Sprintf("~%d (%s)", *b.Approx, b.Qualitative)
	case b.Approx != nil:
		return fmt.Sprintf("~%d", *b.Approx)
	default:
		return b.Qualitative
	}
}
