package commands

import (
	"fmt"
	"io"
	"strings"

	"gift-recommender-be/pkg/understanding"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	labelColor  = color.New(color.FgYellow)
	valueColor  = color.New(color.FgWhite)
	okColor     = color.New(color.FgGreen)
	errColor    = color.New(color.FgRed, color.Bold)
	dimColor    = color.New(color.FgHiBlack)
)

func header(w io.Writer, title string) {
	headerColor.Fprintln(w, title)
	dimColor.Fprintln(w, strings.Repeat("-", 40))
}

func field(w io.Writer, label string, value interface{}) {
	s := fmt.Sprint(value)
	if s == "" || s == "[]" || s == "0" {
		return
	}
	labelColor.Fprintf(w, "  %-14s ", label+":")
	valueColor.Fprintln(w, s)
}

func loadExtractor() (*understanding.Extractor, error) {
	if taxonomyFile == "" {
		return understanding.Default(), nil
	}
	return understanding.NewExtractorFromFile(taxonomyFile)
}
