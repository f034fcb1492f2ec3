package sqltoolkit

import (
	"context"
	"errors"
	"strings"

	"github.com/reportsext/agent/database"
	toolhandler "github.com/reportsext/agent/tool_handler"
)

// The SQL toolkit gives the model the same three capabilities the reporting
// workflow needs: see the tables, inspect a schema, run a read-only query.

type listTablesHandler struct {
	db database.Database
}

func (h *listTablesHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "list_tables",
		Description: "List the tables available in the reporting database",
		InputSchema: map[string]any{},
	}
}

func (h *listTablesHandler) Invoke(ctx context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	tables, err := h.db.ListTables(ctx)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  strings.Join(tables, ", "),
		Metadata: map[string]string{"source": "database"},
	}, nil
}

type tableSchemaHandler struct {
	db database.Database
}

func (h *tableSchemaHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "table_schema",
		Description: "Describe the columns of one table",
		InputSchema: map[string]any{
			"table": "string, name of the table to describe",
		},
		Examples: []map[string]any{
			{"table": "ordhdr"},
		},
	}
}

func (h *tableSchemaHandler) Invoke(ctx context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	table, _ := req.Arguments["table"].(string)
	if len(strings.TrimSpace(table)) == 0 {
		if input, ok := req.Arguments["input"].(string); ok {
			table = input
		}
	}
	if len(strings.TrimSpace(table)) == 0 {
		return toolhandler.ToolResponse{}, errors.New("table argument is required")
	}

	schema, err := h.db.TableSchema(ctx, strings.TrimSpace(table))
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  schema,
		Metadata: map[string]string{"source": "database", "table": table},
	}, nil
}

type runQueryHandler struct {
	db database.Database
}

func (h *runQueryHandler) Spec() toolhandler.ToolSpec {
	return toolhandler.ToolSpec{
		Name:        "run_query",
		Description: "Execute a single read-only SQL query and return the rows. DML is rejected.",
		InputSchema: map[string]any{
			"query": "string, the SQL SELECT statement to run",
		},
		Examples: []map[string]any{
			{"query": "SELECT COUNT(*) FROM ordhdr"},
		},
	}
}

func (h *runQueryHandler) Invoke(ctx context.Context, req toolhandler.ToolRequest) (toolhandler.ToolResponse, error) {
	query, _ := req.Arguments["query"].(string)
	if len(strings.TrimSpace(query)) == 0 {
		if input, ok := req.Arguments["input"].(string); ok {
			query = input
		}
	}
	if len(strings.TrimSpace(query)) == 0 {
		return toolhandler.ToolResponse{}, errors.New("query argument is required")
	}

	result, err := h.db.RunQuery(ctx, query)
	if err != nil {
		return toolhandler.ToolResponse{}, err
	}

	return toolhandler.ToolResponse{
		Content:  result,
		Metadata: map[string]string{"source": "database", "sql": query},
	}, nil
}

func NewToolHandlers(db database.Database) []toolhandler.ToolHandler {
	return []toolhandler.ToolHandler{
		&listTablesHandler{db: db},
		&tableSchemaHandler{db: db},
		&runQueryHandler{db: db},
	}
}
