package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/reportsext/agent/docstore"
	"github.com/reportsext/agent/docstore/mimir"
	"github.com/reportsext/agent/docstore/providers/embedder"
	fallbackembedder "github.com/reportsext/agent/docstore/providers/embedder/fallback"
	openaiembedder "github.com/reportsext/agent/docstore/providers/embedder/openai"
	"github.com/reportsext/agent/docstore/providers/storer"
	"github.com/reportsext/agent/docstore/providers/storer/chromem"
)

var (
	cfg struct {
		DocsDir     string `help:"Directory of markdown documentation files" default:"./database_docs"`
		StorePath   string `help:"Path for the embedded query memory store" default:"./query_memory"`
		Collection  string `help:"Collection name inside the store" default:"documents"`
		EmbedderKey string `help:"API key for the embedder" env:"OPENAI_API_KEY" default:""`
		Embedder    string `help:"Model identifier for vector embeddings" default:"text-embedding-ada-002"`
	}
)

func main() {
	// Parse inputs
	_ = godotenv.Load()
	_ = kong.Parse(&cfg)
	ctx := context.Background()

	store := buildDocStore(cfg.StorePath, cfg.Collection, cfg.EmbedderKey, cfg.Embedder)
	defer store.Close()

	paths, err := filepath.Glob(filepath.Join(cfg.DocsDir, "*.md"))
	if err != nil {
		log.Fatalf("❌ failed to scan %s: %v", cfg.DocsDir, err)
	}
	if len(paths) == 0 {
		fmt.Printf("No markdown files found in %s\n", cfg.DocsDir)
		return
	}

	loaded := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("⚠️ skipping %s: %v", path, err)
			continue
		}

		title := titleFromPath(path)
		kind := docstore.KindDatabaseDocumentation
		if strings.Contains(strings.ToLower(filepath.Base(path)), "table") {
			kind = docstore.KindTableDocumentation
		}

		if store.RecordDocument(ctx, title, string(content), kind) {
			fmt.Printf("✅ loaded %s (%s)\n", title, kind)
			loaded++
		} else {
			log.Printf("⚠️ failed to store %s", title)
		}
	}

	fmt.Printf("Loaded %d of %d documents.\n", loaded, len(paths))

	stats := store.Stats(ctx)
	fmt.Printf("📊 Store now holds %d documents (%d documentation, %d query history).\n", stats.Total, stats.Documents, stats.QueryHistory)
}

// buildDocStore never aborts: with a dead memory backend every load reports
// failure instead of crashing the loader.
func buildDocStore(storePath string, collection string, embedderKey string, embedderModel string) docstore.DocStore {
	var primary embedder.Embedder
	if len(embedderKey) > 0 {
		primary = openaiembedder.NewEmbedder(
			embedder.WithApiKey(embedderKey),
			embedder.WithModel(embedderModel),
		)
	}

	opts := []docstore.Option{
		docstore.WithEmbedder(fallbackembedder.NewEmbedder(primary)),
	}

	st, err := chromem.NewStorer(
		storer.WithLocation(storePath),
		storer.WithCollection(collection),
	)
	if err != nil {
		log.Printf("⚠️ query memory unavailable, continuing without it: %v", err)
	} else {
		opts = append(opts, docstore.WithStorer(st))
	}

	return mimir.NewDocStore(opts...)
}

// titleFromPath turns "order_tables.md" into "Order Tables".
func titleFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.Split(strings.ReplaceAll(stem, "_", " "), " ")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
