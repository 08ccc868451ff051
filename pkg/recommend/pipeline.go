package recommend

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"gift-recommender-be/internal/entity"
	"gift-recommender-be/internal/metrics"
	"gift-recommender-be/internal/pkg/logger"
	"gift-recommender-be/pkg/catalog"
	"gift-recommender-be/pkg/events"
	"gift-recommender-be/pkg/message"
	"gift-recommender-be/pkg/preference"
	"gift-recommender-be/pkg/ranking"
	"gift-recommender-be/pkg/scoring"
	"gift-recommender-be/pkg/session"
	"gift-recommender-be/pkg/understanding"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "gift-recommender-be/pkg/recommend"

// Deps are the collaborators of a Pipeline. Sessions, Formatter and
// Publisher are optional.
type Deps struct {
	Extractor *understanding.Extractor
	Sessions  *session.Manager
	Catalog   catalog.Source
	Scorer    *scoring.Scorer
	Reranker  *ranking.Reranker
	Formatter *message.Formatter
	Publisher events.Publisher
	Logger    logger.ILogger
	Now       func() time.Time

	// DefaultTopK replaces a missing or unusable top_k. Zero means DefaultTopK.
	DefaultTopK int
}

// Pipeline answers one suggestion request end to end.
type Pipeline struct {
	extractor *understanding.Extractor
	sessions  *session.Manager
	catalog   catalog.Source
	scorer    *scoring.Scorer
	reranker  *ranking.Reranker
	formatter *message.Formatter
	publisher events.Publisher
	log       logger.ILogger
	now       func() time.Time
	tracer    trace.Tracer
	topK      int
}

func NewPipeline(d Deps) *Pipeline {
	p := &Pipeline{
		extractor: d.Extractor,
		sessions:  d.Sessions,
		catalog:   d.Catalog,
		scorer:    d.Scorer,
		reranker:  d.Reranker,
		formatter: d.Formatter,
		publisher: d.Publisher,
		log:       d.Logger,
		now:       d.Now,
		tracer:    otel.Tracer(tracerName),
		topK:      d.DefaultTopK,
	}
	if p.topK <= 0 {
		p.topK = DefaultTopK
	}
	if p.extractor == nil {
		p.extractor = understanding.Default()
	}
	if p.reranker == nil {
		p.reranker = ranking.NewReranker(p.now)
	}
	if p.formatter == nil {
		p.formatter = message.NewFormatter(nil, p.now)
	}
	if p.publisher == nil {
		p.publisher = events.NopPublisher{}
	}
	if p.log == nil {
		p.log = logger.NewNopLogger()
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

// Suggest never returns an error. Failures anywhere in the pipeline, panics
// included, produce the generic apology with the diagnostic in Result.Error.
func (p *Pipeline) Suggest(ctx context.Context, req Request) (res Result) {
	started := p.now()
	ctx, span := p.tracer.Start(ctx, "recommend.Suggest", trace.WithAttributes(
		attribute.String("session.id", req.SessionID),
	))

	defer func() {
		if r := recover(); r != nil {
			p.log.Error("Recommend", "Pipeline panic recovered", map[string]interface{}{
				"panic": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			})
			res = p.failure(req, fmt.Errorf("panic: %v", r), started)
		}
		if res.Error != "" {
			span.SetStatus(codes.Error, res.Error)
		}
		span.SetAttributes(attribute.Int("products.returned", len(res.Products)))
		span.End()
		metrics.RecommendDuration.Observe(res.ExecutionTime)
	}()

	res, err := p.run(ctx, req, started)
	if err != nil {
		span.RecordError(err)
		return p.failure(req, err, started)
	}
	return res
}

func (p *Pipeline) run(ctx context.Context, req Request, started time.Time) (Result, error) {
	topK := coerceTopK(req.TopK, p.topK)
	p.log.Info("Recommend", "Processing query", map[string]interface{}{
		"question":   truncateRunes(req.Question, 50),
		"top_k":      topK,
		"session_id": req.SessionID,
	})

	extracted := p.extractor.Extract(req.Question)
	prefs := preference.FillFromContext(preference.Mine(req.Question), extracted)

	var prior []string
	if req.SessionID != "" && p.sessions != nil {
		sess, err := p.sessions.Record(ctx, req.SessionID, req.Question, prefs)
		if err != nil {
			// sessions are ephemeral; the request proceeds on fresh preferences
			p.log.Warn("Recommend", "Session update failed", map[string]interface{}{
				"session_id": req.SessionID,
				"error":      err.Error(),
			})
		} else {
			prefs = sess.Preferences
			if n := len(sess.QuestionHistory); n > 0 {
				prior = sess.QuestionHistory[:n-1]
			}
		}
	}

	resultCtx := &ResultContext{Context: extracted, Preferences: prefs}

	products, err := p.catalog.All(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("catalog: %w", err)
	}
	if len(products) == 0 {
		metrics.RecommendRequests.WithLabelValues("empty_catalog").Inc()
		return Result{
			Message:       MessageEmptyCatalog,
			Products:      []Item{},
			Context:       resultCtx,
			ExecutionTime: p.elapsed(started),
			SessionID:     req.SessionID,
		}, nil
	}

	conversation := BuildConversationContext(req.Question, prior, prefs)
	query, err := p.scorer.EmbedQuery(ctx, conversation)
	if err != nil {
		return Result{}, fmt.Errorf("embed query: %w", err)
	}

	candidates, err := p.scorer.Score(ctx, products, query)
	if err != nil {
		return Result{}, fmt.Errorf("score catalog: %w", err)
	}

	filtered := qualityGate(ranking.Filter(candidates, prefs))
	ranked := p.reranker.Rank(filtered)
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	items := make([]Item, len(ranked))
	ids := make([]string, len(ranked))
	for i, c := range ranked {
		items[i] = toItem(c)
		ids[i] = items[i].ID
	}

	msg := p.formatter.Format(message.Input{
		Context:     extracted,
		Preferences: prefs,
		Products:    productsOf(ranked),
	})

	elapsed := p.elapsed(started)
	metrics.RecommendRequests.WithLabelValues("ok").Inc()
	metrics.CandidatesReturned.Observe(float64(len(items)))
	p.log.Info("Recommend", "Query processed", map[string]interface{}{
		"execution_time": elapsed,
		"candidates":     len(candidates),
		"returned":       len(items),
	})

	event := events.RecommendationServed(req.SessionID, req.Question, ids, len(items), elapsed, p.now())
	if err := p.publisher.Publish(ctx, event); err != nil {
		p.log.Warn("Recommend", "Failed to publish event", map[string]interface{}{"error": err.Error()})
	}

	return Result{
		Message:       msg,
		Products:      items,
		Context:       resultCtx,
		ExecutionTime: elapsed,
		SessionID:     req.SessionID,
	}, nil
}

func (p *Pipeline) failure(req Request, err error, started time.Time) Result {
	metrics.RecommendRequests.WithLabelValues("error").Inc()
	p.log.Error("Recommend", "Pipeline failed", map[string]interface{}{
		"session_id": req.SessionID,
		"error":      err.Error(),
	})
	return Result{
		Message:       MessageSystemError,
		Products:      []Item{},
		ExecutionTime: p.elapsed(started),
		SessionID:     req.SessionID,
		Error:         err.Error(),
	}
}

func (p *Pipeline) elapsed(started time.Time) float64 {
	return p.now().Sub(started).Seconds()
}

// qualityGate drops candidates whose name or description is too thin to show.
func qualityGate(candidates []scoring.Candidate) []scoring.Candidate {
	out := make([]scoring.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if scoring.IsMeaningful(c.Product.Name) && scoring.IsMeaningful(c.Product.Description) {
			out = append(out, c)
		}
	}
	return out
}

func productsOf(cs []scoring.Candidate) []*entity.Product {
	out := make([]*entity.Product, len(cs))
	for i, c := range cs {
		out[i] = c.Product
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
