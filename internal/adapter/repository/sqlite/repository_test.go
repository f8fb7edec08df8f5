package sqlite

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	appDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/application"
	docDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/document"
	evalDomain "github.com/AhsanAsc/Social-Support-App/internal/domain/evaluation"
	"github.com/AhsanAsc/Social-Support-App/internal/domain/uow"
	"github.com/AhsanAsc/Social-Support-App/internal/infrastructure/db"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.OpenGorm(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestApplicationRepository_CRUD(t *testing.T) {
	gdb := testDB(t)
	repo := NewApplicationRepository(gdb)
	ctx := context.Background()

	a := &appDomain.Application{AppID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", FullName: "Jane", HouseholdSize: 2, Status: appDomain.StatusDraft}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByAppID(ctx, a.AppID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.FullName != "Jane" || got.Status != appDomain.StatusDraft {
		t.Fatalf("got = %+v", got)
	}

	got.Status = appDomain.StatusEvaluated
	if err := repo.Save(ctx, got); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ := repo.GetByAppID(ctx, a.AppID)
	if again.Status != appDomain.StatusEvaluated {
		t.Fatalf("status after save = %s", again.Status)
	}

	if _, err := repo.GetByAppID(ctx, "ffffffffffffffffffffffffffffffff"); !errors.Is(err, appDomain.ErrNotFound) {
		t.Fatalf("miss: err = %v, want ErrNotFound", err)
	}
}

func TestDocumentRepository_ByApplicationAndType(t *testing.T) {
	gdb := testDB(t)
	repo := NewDocumentRepository(gdb)
	ctx := context.Background()

	d := &docDomain.Document{DocID: "d1", ApplicationID: "app1", Type: docDomain.TypeBankStatement, ParseState: docDomain.ParseStateUploaded}
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByApplicationAndType(ctx, "app1", docDomain.TypeBankStatement)
	if err != nil {
		t.Fatalf("get by type: %v", err)
	}
	if got.DocID != "d1" {
		t.Fatalf("got = %+v", got)
	}

	if _, err := repo.GetByApplicationAndType(ctx, "app1", docDomain.TypeResume); !errors.Is(err, docDomain.ErrNotFound) {
		t.Fatalf("miss: err = %v, want ErrNotFound", err)
	}

	if err := repo.DeleteByDocID(ctx, "d1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByDocID(ctx, "d1"); !errors.Is(err, docDomain.ErrNotFound) {
		t.Fatalf("after delete: err = %v, want ErrNotFound", err)
	}
}

func TestDocumentRepository_ListInCreationOrder(t *testing.T) {
	gdb := testDB(t)
	repo := NewDocumentRepository(gdb)
	ctx := context.Background()

	for _, id := range []string{"d1", "d2", "d3"} {
		if err := repo.Create(ctx, &docDomain.Document{DocID: id, ApplicationID: "app1", Type: docDomain.TypeResume}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}
	docs, err := repo.ListByApplication(ctx, "app1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 3 || docs[0].DocID != "d1" || docs[2].DocID != "d3" {
		t.Fatalf("docs = %+v", docs)
	}
}

func TestChunkRepository_ReplaceAndEmbed(t *testing.T) {
	gdb := testDB(t)
	repo := NewChunkRepository(gdb)
	ctx := context.Background()

	first := []docDomain.Chunk{
		{ChunkID: "c1", DocID: "d1", Seq: 0, Text: "one"},
		{ChunkID: "c2", DocID: "d1", Seq: 1, Text: "two"},
	}
	if err := repo.ReplaceForDocument(ctx, "d1", first); err != nil {
		t.Fatalf("replace: %v", err)
	}

	// reparse swaps the whole set
	second := []docDomain.Chunk{{ChunkID: "c3", DocID: "d1", Seq: 0, Text: "fresh"}}
	if err := repo.ReplaceForDocument(ctx, "d1", second); err != nil {
		t.Fatalf("replace again: %v", err)
	}
	got, err := repo.ListByDocument(ctx, "d1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ChunkID != "c3" {
		t.Fatalf("chunks after replace = %+v", got)
	}

	if err := repo.SaveEmbedding(ctx, "c3", []float32{0.6, 0.8}); err != nil {
		t.Fatalf("save embedding: %v", err)
	}
	got, _ = repo.ListByDocument(ctx, "d1")
	if len(got[0].Embedding) != 2 {
		t.Fatalf("embedding not persisted: %+v", got[0])
	}

	if err := repo.SaveEmbedding(ctx, "nope", []float32{1}); err == nil {
		t.Fatal("embedding a missing chunk must fail")
	}
}

func TestEvaluationRepository_LatestWins(t *testing.T) {
	gdb := testDB(t)
	repo := NewEvaluationRepository(gdb)
	ctx := context.Background()

	for i, eval := range []*evalDomain.Evaluation{
		{EvalID: "e1", ApplicationID: "app1", Score: 0.3, Status: evalDomain.StatusManualReview},
		{EvalID: "e2", ApplicationID: "app1", Score: 0.8, Status: evalDomain.StatusApproved},
	} {
		if err := repo.Create(ctx, eval); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	got, err := repo.LatestByApplication(ctx, "app1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got.EvalID != "e2" {
		t.Fatalf("latest = %s, want e2", got.EvalID)
	}

	if _, err := repo.LatestByApplication(ctx, "other"); !errors.Is(err, evalDomain.ErrNotFound) {
		t.Fatalf("miss: err = %v, want ErrNotFound", err)
	}
}

func TestGormUoW_RollsBackOnError(t *testing.T) {
	gdb := testDB(t)
	u := NewGormUoW(gdb)
	ctx := context.Background()

	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Documents.Create(ctx, &docDomain.Document{DocID: "d1", ApplicationID: "app1", Type: docDomain.TypeResume}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if _, err := NewDocumentRepository(gdb).GetByDocID(ctx, "d1"); !errors.Is(err, docDomain.ErrNotFound) {
		t.Fatalf("row survived rollback: err = %v", err)
	}
}
