package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"ramayana-qa-be/internal/config"
	"ramayana-qa-be/internal/dto"
	"ramayana-qa-be/internal/entity"
	"ramayana-qa-be/internal/model"
	"ramayana-qa-be/internal/repository/implementation"
	"ramayana-qa-be/pkg/database"
	"ramayana-qa-be/pkg/embedding"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// Seeds the passage corpus from the JSON data file: wipes the table, inserts
// every record with a fresh embedding, then runs one sanity retrieval so a
// broken provider is caught here instead of at the first user question.
func main() {
	cfg := config.Load()

	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.EnsureVectorExtension(db); err != nil {
		log.Fatal("Error: Failed to install pgvector extension:", err)
	}
	if err := db.AutoMigrate(&model.Passage{}, &model.ChatSession{}, &model.ChatTurn{}); err != nil {
		log.Fatal("Error: Failed to migrate schema:", err)
	}

	var provider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		provider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		provider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
	}

	raw, err := os.ReadFile(cfg.Corpus.DataFile)
	if err != nil {
		log.Fatalf("Error: Failed to read corpus file %s: %v", cfg.Corpus.DataFile, err)
	}

	var records []dto.PassageRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatal("Error: Failed to parse corpus file:", err)
	}

	color.Cyan("🌱 Seeding %d passages from %s", len(records), cfg.Corpus.DataFile)

	ctx := context.Background()
	passages := implementation.NewPassageRepository(db)

	if err := passages.DeleteAll(ctx); err != nil {
		log.Fatal("Error: Failed to clear passages:", err)
	}

	now := time.Now()
	seeded := make([]*entity.Passage, 0, len(records))
	for i, record := range records {
		res, err := provider.Generate(record.Text, embedding.TaskRetrievalDocument)
		if err != nil {
			color.Red("Failed to embed passage %s: %v", record.Id, err)
			os.Exit(1)
		}

		seeded = append(seeded, &entity.Passage{
			Id:         uuid.New(),
			ExternalId: record.Id,
			Text:       record.Text,
			Kanda:      record.Kanda,
			Topic:      record.Topic,
			Characters: record.Characters,
			Embedding:  res.Embedding.Values,
			CreatedAt:  now,
		})
		color.Green("  [%d/%d] %s (%s)", i+1, len(records), record.Id, record.Topic)
	}

	if err := passages.CreateBulk(ctx, seeded); err != nil {
		log.Fatal("Error: Failed to insert passages:", err)
	}

	// Sanity retrieval against the freshly seeded corpus
	color.Yellow("\n🔍 Sanity query: Who is Hanuman?")
	queryRes, err := provider.Generate("Who is Hanuman?", embedding.TaskRetrievalQuery)
	if err != nil {
		log.Fatal("Error: Failed to embed sanity query:", err)
	}
	nearest, err := passages.SearchSimilar(ctx, queryRes.Embedding.Values, 3)
	if err != nil {
		log.Fatal("Error: Sanity retrieval failed:", err)
	}
	for _, p := range nearest {
		color.Green("  → %s, Topic: %s", p.Kanda, p.Topic)
	}

	color.Cyan("\n✅ Seeded %d passages", len(seeded))
}
