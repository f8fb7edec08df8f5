package db

import (
	"testing"

	"github.com/AhsanAsc/Social-Support-App/internal/domain/document"
)

func TestOpenGormAndMigrate(t *testing.T) {
	gdb, err := OpenGorm(":memory:")
	if err != nil {
		t.Fatalf("OpenGorm: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// schema must be usable right away
	for _, table := range []string{"applications", "documents", "chunks", "evaluations"} {
		if !gdb.Migrator().HasTable(table) {
			t.Errorf("missing table %q after migrate", table)
		}
	}

	// serializer:json round-trip for embeddings
	c := document.Chunk{ChunkID: "c-1", DocID: "d", Seq: 0, Text: "hello", Embedding: []float32{0.5, 0.5}}
	if err := gdb.Create(&c).Error; err != nil {
		t.Fatalf("insert chunk: %v", err)
	}
	var got document.Chunk
	if err := gdb.Where("chunk_id = ?", "c-1").First(&got).Error; err != nil {
		t.Fatalf("load chunk: %v", err)
	}
	if len(got.Embedding) != 2 || got.Embedding[0] != 0.5 {
		t.Fatalf("embedding round-trip broken: %+v", got.Embedding)
	}
}
