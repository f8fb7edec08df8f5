package rag

import (
	"context"
	"sort"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/ai"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/logger"
	"github.com/AhsanAsc/Social-Support-App/internal/usecase/eligibility"
)

const (
	minTopK     = 1
	maxTopK     = 12
	defaultTopK = 6
)

// ParseGuard hands out the per-document parse lock so embedding and chunk
// replacement never interleave. The ingest lock arena satisfies it.
type ParseGuard interface {
	TryAcquire(docID string) (release func(), ok bool)
}

type Usecase struct {
	apps      application.Repository
	docs      document.Repository
	chunks    document.ChunkRepository
	embedder  ai.Embedder
	generator ai.Generator
	guard     ParseGuard
	log       logger.Logger
}

func NewUsecase(
	apps application.Repository,
	docs document.Repository,
	chunks document.ChunkRepository,
	embedder ai.Embedder,
	generator ai.Generator,
	guard ParseGuard,
	log logger.Logger,
) *Usecase {
	return &Usecase{
		apps:      apps,
		docs:      docs,
		chunks:    chunks,
		embedder:  embedder,
		generator: generator,
		guard:     guard,
		log:       log,
	}
}

type Hit struct {
	DocType string  `json:"doc_type"`
	Page    *int    `json:"page"`
	Text    string  `json:"text"`
	Score   float64 `json:"-"`
}

type AnswerResult struct {
	Answer string `json:"answer"`
	Hits   []Hit  `json:"hits"`
}

// Reindex embeds every chunk without a vector under the application's
// Parsed documents. Already-embedded chunks are skipped, as are documents
// whose parse lock is held (their chunks are about to be replaced).
func (u *Usecase) Reindex(ctx context.Context, appID string) (int, error) {
	docs, err := u.parsedDocs(ctx, appID)
	if err != nil {
		return 0, err
	}

	embedded := 0
	for _, d := range docs {
		n, err := u.reindexDocument(ctx, d.DocID)
		embedded += n
		if err != nil {
			return embedded, err
		}
	}

	u.log.Info("reindex complete", map[string]interface{}{"application_id": appID, "embedded": embedded})
	return embedded, nil
}

// reindexDocument embeds the document's vectorless chunks while holding
// its parse lock, so a reparse cannot swap the chunk set out from under
// the embed loop. A document mid-parse is skipped, not an error; a parse
// arriving while the lock is held fails busy, mirroring the other side.
func (u *Usecase) reindexDocument(ctx context.Context, docID string) (int, error) {
	release, ok := u.guard.TryAcquire(docID)
	if !ok {
		u.log.Debug("reindex: skipping document mid-parse", map[string]interface{}{"document_id": docID})
		return 0, nil
	}
	defer release()

	chunks, err := u.chunks.ListByDocument(ctx, docID)
	if err != nil {
		return 0, err
	}
	embedded := 0
	for _, c := range chunks {
		if len(c.Embedding) > 0 {
			continue
		}
		vec, err := u.embedder.Embed(ctx, c.Text)
		if err != nil {
			return embedded, err
		}
		if err := u.chunks.SaveEmbedding(ctx, c.ChunkID, normalize(vec)); err != nil {
			return embedded, err
		}
		embedded++
	}
	return embedded, nil
}

// Search ranks the application's embedded chunks by cosine similarity to
// the query. k is clamped to [1,12] and to the available chunk count;
// ties keep chunk creation order. No embedded chunks is an empty result,
// not an error.
func (u *Usecase) Search(ctx context.Context, appID, query string, k int) ([]Hit, error) {
	if k <= 0 {
		k = defaultTopK
	}
	if k < minTopK {
		k = minTopK
	}
	if k > maxTopK {
		k = maxTopK
	}

	docs, err := u.parsedDocs(ctx, appID)
	if err != nil {
		return nil, err
	}

	// candidates in creation order: documents by id, chunks by seq
	var hits []Hit
	var vecs [][]float32
	for _, d := range docs {
		chunks, err := u.chunks.ListByDocument(ctx, d.DocID)
		if err != nil {
			return nil, err
		}
		for _, c := range chunks {
			if len(c.Embedding) == 0 {
				continue
			}
			hits = append(hits, Hit{DocType: string(d.Type), Page: c.Page, Text: c.Text})
			vecs = append(vecs, c.Embedding)
		}
	}
	if len(hits) == 0 {
		return []Hit{}, nil
	}

	qvec, err := u.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}
	qvec = normalize(qvec)

	for i := range hits {
		hits[i].Score = dot(qvec, vecs[i])
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })

	if k > len(hits) {
		k = len(hits)
	}
	return hits[:k], nil
}

// Answer retrieves grounding context and delegates to the generator,
// returning the hit list for citation alongside the answer.
func (u *Usecase) Answer(ctx context.Context, appID, question string, k int) (*AnswerResult, error) {
	hits, err := u.Search(ctx, appID, question, k)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return &AnswerResult{
			Answer: "No indexed document content is available for this application yet. Parse and reindex documents first.",
			Hits:   []Hit{},
		}, nil
	}

	answer, err := u.generator.Generate(ctx, buildAnswerPrompt(question, hits))
	if err != nil {
		return nil, err
	}
	return &AnswerResult{Answer: answer, Hits: hits}, nil
}

// Justify renders an evaluation as a reviewer-facing narrative. It never
// alters the computed score or status.
func (u *Usecase) Justify(ctx context.Context, res *eligibility.ResultDTO) (string, error) {
	return u.generator.Generate(ctx, buildJustifyPrompt(res))
}

func (u *Usecase) parsedDocs(ctx context.Context, appID string) ([]document.Document, error) {
	if _, err := u.apps.GetByAppID(ctx, appID); err != nil {
		return nil, err
	}
	all, err := u.docs.ListByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, d := range all {
		if d.ParseState == document.ParseStateParsed {
			out = append(out, d)
		}
	}
	return out, nil
}
