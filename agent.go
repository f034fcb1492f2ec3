package agent

import (
	"context"
	"errors"

	"github.com/reportsext/agent/database"
	"github.com/reportsext/agent/docstore"
	"github.com/reportsext/agent/generator"
	agentservice "github.com/reportsext/agent/internal/service/agent"
	toolhandler "github.com/reportsext/agent/tool_handler"
)

// Agent ties the pieces together: the reporting database, the query memory,
// the generator, and the tool catalog.
type Agent struct {
	db    database.Database
	store docstore.DocStore
	agent *agentservice.Service
}

func (a *Agent) Answer(ctx context.Context, question string) (string, error) {
	return a.agent.Answer(ctx, question)
}

func (a *Agent) AddDocument(ctx context.Context, title string, content string, kind string) bool {
	return a.store.RecordDocument(ctx, title, content, kind)
}

func (a *Agent) Suggestions(ctx context.Context, partial string) []string {
	return a.store.QuerySuggestions(ctx, partial)
}

func (a *Agent) Stats(ctx context.Context) docstore.Stats {
	return a.store.Stats(ctx)
}

func (a *Agent) Tables(ctx context.Context) ([]string, error) {
	return a.db.ListTables(ctx)
}

func (a *Agent) TableSchema(ctx context.Context, table string) (string, error) {
	return a.db.TableSchema(ctx, table)
}

func (a *Agent) Close() error {
	return errors.Join(a.db.Close(), a.store.Close())
}

func New(
	db database.Database,
	store docstore.DocStore,
	generator generator.Generator,
	toolHandlers []toolhandler.ToolHandler,
	maxTurns int,
	systemPrompt string,
) *Agent {
	service := agentservice.New(
		store,
		generator,
		toolHandlers,
		maxTurns,
		systemPrompt,
	)

	return &Agent{
		db:    db,
		store: store,
		agent: service,
	}
}
