package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/internal/repository/memory"
	"gift-recommender-be/pkg/catalog"
	"gift-recommender-be/pkg/embedding"
	"gift-recommender-be/pkg/recommend"
	"gift-recommender-be/pkg/scoring"
	"gift-recommender-be/pkg/session"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	suggestCatalog    string
	suggestTopK       int
	suggestThreshold  float64
	suggestDimensions int
	suggestChat       bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [question]",
	Short: "Run the recommendation pipeline against a catalog file",
	Long: `Run the full pipeline locally with hashed local embeddings.
With --chat the command keeps one session open and reads questions from stdin
until EOF, so preferences carry over between turns.`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestCatalog, "catalog", "f", "data/products.json", "catalog JSON file")
	suggestCmd.Flags().IntVarP(&suggestTopK, "top-k", "k", recommend.DefaultTopK, "number of products to return")
	suggestCmd.Flags().Float64Var(&suggestThreshold, "threshold", scoring.DefaultSimilarityThreshold, "minimum cosine similarity")
	suggestCmd.Flags().IntVar(&suggestDimensions, "dimensions", 384, "local embedding dimensions")
	suggestCmd.Flags().BoolVar(&suggestChat, "chat", false, "interactive multi-turn session")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if !suggestChat && len(args) == 0 {
		return fmt.Errorf("a question is required unless --chat is set")
	}

	extractor, err := loadExtractor()
	if err != nil {
		return fmt.Errorf("load taxonomy: %w", err)
	}

	log := logger.NewConsoleLogger(verbose)
	defer log.Sync()

	var sessions *session.Manager
	if suggestChat {
		sessions = session.NewManager(memory.NewSessionRepository(), log)
	}

	pipeline := recommend.NewPipeline(recommend.Deps{
		Extractor: extractor,
		Sessions:  sessions,
		Catalog:   catalog.NewFileSource(suggestCatalog),
		Scorer: scoring.NewScorer(embedding.NewLocalProvider(suggestDimensions), log,
			scoring.WithThreshold(suggestThreshold),
		),
		Logger:      log,
		DefaultTopK: suggestTopK,
	})

	out := cmd.OutOrStdout()
	if !suggestChat {
		return ask(cmd.Context(), out, pipeline, recommend.Request{Question: strings.Join(args, " "), TopK: suggestTopK})
	}

	sessionID := uuid.NewString()
	dimColor.Fprintf(out, "session %s (Ctrl+D to quit)\n", sessionID)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		labelColor.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if err := ask(cmd.Context(), out, pipeline, recommend.Request{
			Question:  question,
			TopK:      suggestTopK,
			SessionID: sessionID,
		}); err != nil {
			return err
		}
	}
}

func ask(ctx context.Context, out io.Writer, p *recommend.Pipeline, req recommend.Request) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	res := p.Suggest(ctx, req)
	if res.Error != "" {
		errColor.Fprintln(os.Stderr, res.Error)
	}

	okColor.Fprintln(out, res.Message)
	for i, item := range res.Products {
		labelColor.Fprintf(out, "%2d. ", i+1)
		valueColor.Fprintf(out, "%s", item.Name)
		dimColor.Fprintf(out, "  %.0f | final %.3f | sim %.3f | pref %d\n",
			item.Price, item.FinalScore, item.Score, item.PreferenceScore)
	}
	dimColor.Fprintf(out, "(%.3fs)\n\n", res.ExecutionTime)
	return nil
}
