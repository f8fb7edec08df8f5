package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/uow"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/ai"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/blob"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/logger"
	"github.com/AhsanAsc/Social-Support-App/pkg/id"
)

type Usecase struct {
	apps      application.Repository
	docs      document.Repository
	uow       uow.UnitOfWork
	blobs     *blob.Store
	extractor ai.Extractor
	locks     *LockArena
	log       logger.Logger

	parseTimeout time.Duration
	parallel     int
}

func NewUsecase(
	apps application.Repository,
	docs document.Repository,
	tx uow.UnitOfWork,
	blobs *blob.Store,
	extractor ai.Extractor,
	locks *LockArena,
	log logger.Logger,
	parseTimeout time.Duration,
	parallel int,
) *Usecase {
	if parallel < 1 {
		parallel = 1
	}
	return &Usecase{
		apps:         apps,
		docs:         docs,
		uow:          tx,
		blobs:        blobs,
		extractor:    extractor,
		locks:        locks,
		log:          log,
		parseTimeout: parseTimeout,
		parallel:     parallel,
	}
}

// Locks exposes the parse-lock arena so reindexing can skip documents
// whose chunk set is mid-replacement.
func (u *Usecase) Locks() *LockArena { return u.locks }

// Upload stores the blob and registers the document. An application holds
// at most one document per type; re-upload replaces the old row, blob and
// chunks.
func (u *Usecase) Upload(ctx context.Context, appID string, in UploadInput) (*DocumentDTO, error) {
	if !document.ValidType(in.DocType) {
		return nil, fmt.Errorf("%w: unknown doc_type %q", application.ErrInvalid, in.DocType)
	}
	if len(in.Data) == 0 {
		return nil, fmt.Errorf("%w: empty file", application.ErrInvalid)
	}
	if _, err := u.apps.GetByAppID(ctx, appID); err != nil {
		return nil, err
	}

	d := &document.Document{
		DocID:         id.NewID32(),
		ApplicationID: appID,
		Type:          in.DocType,
		Filename:      in.Filename,
		ContentType:   in.ContentType,
		SizeBytes:     int64(len(in.Data)),
		ParseState:    document.ParseStateUploaded,
	}

	path, err := u.blobs.Save(appID, d.DocID, in.Filename, in.Data)
	if err != nil {
		return nil, err
	}
	d.BlobPath = path

	var staleBlob string
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		prev, err := r.Documents.GetByApplicationAndType(ctx, appID, in.DocType)
		switch {
		case err == nil:
			staleBlob = prev.BlobPath
			if err := r.Chunks.DeleteByDocID(ctx, prev.DocID); err != nil {
				return err
			}
			if err := r.Documents.DeleteByDocID(ctx, prev.DocID); err != nil {
				return err
			}
		case !errors.Is(err, document.ErrNotFound):
			return err
		}
		return r.Documents.Create(ctx, d)
	})
	if err != nil {
		_ = u.blobs.Remove(path)
		return nil, err
	}
	if staleBlob != "" && staleBlob != path {
		if err := u.blobs.Remove(staleBlob); err != nil {
			u.log.Warn("stale blob not removed", map[string]interface{}{"path": staleBlob, "err": err.Error()})
		}
	}

	u.log.Info("document uploaded", map[string]interface{}{
		"application_id": appID,
		"document_id":    d.DocID,
		"doc_type":       in.DocType,
		"size_bytes":     d.SizeBytes,
	})
	return toDTO(d), nil
}

func (u *Usecase) ListDocuments(ctx context.Context, appID string) ([]DocumentDTO, error) {
	if _, err := u.apps.GetByAppID(ctx, appID); err != nil {
		return nil, err
	}
	docs, err := u.docs.ListByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}
	out := make([]DocumentDTO, 0, len(docs))
	for i := range docs {
		out = append(out, *toDTO(&docs[i]))
	}
	return out, nil
}

// Parse extracts page-anchored chunks and commits them with the state
// transition in one transaction. At most one parse runs per document;
// later callers fail fast with ErrBusy. On a context timeout nothing is
// committed and the document keeps its prior state.
func (u *Usecase) Parse(ctx context.Context, docID string) (int, error) {
	release, ok := u.locks.TryAcquire(docID)
	if !ok {
		return 0, document.ErrBusy
	}
	defer release()

	d, err := u.docs.GetByDocID(ctx, docID)
	if err != nil {
		return 0, err
	}

	data, err := u.blobs.Load(d.BlobPath)
	if err != nil {
		return 0, err
	}

	extractCtx, cancel := context.WithTimeout(ctx, u.parseTimeout)
	defer cancel()

	pages, err := u.extractor.Extract(extractCtx, data, d.ContentType)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return 0, err
		}
		d.ParseState = document.ParseStateFailed
		d.ParseErr = err.Error()
		if saveErr := u.docs.Save(ctx, d); saveErr != nil {
			u.log.Error("mark parse failed", map[string]interface{}{"document_id": docID, "err": saveErr.Error()})
		}
		return 0, fmt.Errorf("%w: %v", document.ErrParse, err)
	}

	chunks := buildChunks(docID, pages)

	now := time.Now().UTC()
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Chunks.ReplaceForDocument(ctx, docID, chunks); err != nil {
			return err
		}
		d.ParseState = document.ParseStateParsed
		d.ParseErr = ""
		d.ParsedAt = &now
		return r.Documents.Save(ctx, d)
	})
	if err != nil {
		return 0, err
	}

	u.log.Info("document parsed", map[string]interface{}{
		"document_id": docID,
		"chunks":      len(chunks),
	})
	return len(chunks), nil
}

// ParseAll parses every not-yet-Parsed document of the application with
// bounded parallelism. Individual failures are logged and counted, never
// fatal to the batch.
func (u *Usecase) ParseAll(ctx context.Context, appID string) (*ParseAllResult, error) {
	if _, err := u.apps.GetByAppID(ctx, appID); err != nil {
		return nil, err
	}
	docs, err := u.docs.ListByApplication(ctx, appID)
	if err != nil {
		return nil, err
	}

	var pending []string
	for _, d := range docs {
		if d.ParseState != document.ParseStateParsed {
			pending = append(pending, d.DocID)
		}
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ok  int
		sem = make(chan struct{}, u.parallel)
	)
	for _, docID := range pending {
		wg.Add(1)
		sem <- struct{}{}
		go func(docID string) {
			defer wg.Done()
			defer func() { <-sem }()
			if _, err := u.Parse(ctx, docID); err != nil {
				u.log.Warn("parse_all: document failed", map[string]interface{}{
					"document_id": docID,
					"err":         err.Error(),
				})
				return
			}
			mu.Lock()
			ok++
			mu.Unlock()
		}(docID)
	}
	wg.Wait()

	return &ParseAllResult{ParsedOK: ok, Total: len(pending)}, nil
}

// buildChunks maps extractor pages to chunk rows. Empty pages are
// dropped; page 0 from the extractor means "no pagination" and is stored
// as a null page.
func buildChunks(docID string, pages []ai.Page) []document.Chunk {
	chunks := make([]document.Chunk, 0, len(pages))
	seq := 0
	for _, p := range pages {
		text := strings.TrimSpace(p.Text)
		if text == "" {
			continue
		}
		var page *int
		if p.Page > 0 {
			v := p.Page
			page = &v
		}
		chunks = append(chunks, document.Chunk{
			ChunkID: uuid.NewString(),
			DocID:   docID,
			Seq:     seq,
			Page:    page,
			Text:    text,
		})
		seq++
	}
	return chunks
}
