package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/reportsext/agent/docstore"
	"github.com/reportsext/agent/generator"
	toolhandler "github.com/reportsext/agent/tool_handler"
)

const (
	defaultSystemPrompt = "You are a SQL assistant for a reporting database. Answer questions by inspecting the schema and running read-only queries. Always check which tables exist before querying. Never issue INSERT, UPDATE, DELETE, or DDL statements. When you have the answer, include the final SQL you used in a ```sql fenced block."

	defaultMaxTurns = 5

	similarQueryLimit = 3
	docContextLimit   = 2
)

type Service struct {
	store        docstore.DocStore
	generator    generator.Generator
	catalog      *Catalog
	maxTurns     int
	systemPrompt string
}

// Answer drives the question through the generate/tool loop and records the
// outcome in the query history.
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	if len(strings.TrimSpace(question)) == 0 {
		return "", errors.New("question is required")
	}

	transcript := []string{s.buildPrompt(ctx, question)}

	for turn := 0; turn < s.maxTurns; turn++ {
		reply, err := s.generator.Generate(ctx, strings.Join(transcript, "\n"))
		if err != nil {
			s.store.RecordQuery(ctx, question, "", err.Error(), false)
			return "", err
		}

		payload, ok := findToolCommand(reply)
		if !ok {
			return s.finish(ctx, question, reply)
		}

		transcript = append(transcript, reply)

		name, args := splitCommand(payload)

		th, spec, found := s.catalog.Get(name)
		if !found {
			transcript = append(transcript, fmt.Sprintf("Observation: unknown tool %q. Use one of the listed tools or answer directly.", name))
			continue
		}

		result, err := th.Invoke(ctx, toolhandler.ToolRequest{
			Arguments: parseToolArguments(args),
		})
		if err != nil {
			transcript = append(transcript, fmt.Sprintf("Observation from %s: error: %v", spec.Name, err))
			continue
		}

		transcript = append(transcript, fmt.Sprintf("Observation from %s: %s", spec.Name, strings.TrimSpace(result.Content)))
	}

	transcript = append(transcript, "You are out of tool calls. Answer the question now with what you have learned, without calling any more tools.")

	reply, err := s.generator.Generate(ctx, strings.Join(transcript, "\n"))
	if err != nil {
		s.store.RecordQuery(ctx, question, "", err.Error(), false)
		return "", err
	}

	return s.finish(ctx, question, reply)
}

func (s *Service) finish(ctx context.Context, question string, reply string) (string, error) {
	s.store.RecordQuery(ctx, question, ExtractSQL(reply), reply, true)
	return reply, nil
}

func (s *Service) buildPrompt(ctx context.Context, question string) string {
	var sb bytes.Buffer
	sb.WriteString(s.systemPrompt)

	if specs := s.catalog.ListSpecs(); len(specs) > 0 {
		sb.WriteString("\n\nAvailable tools:\n")
		for _, spec := range specs {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", spec.Name, spec.Description))
			if len(spec.InputSchema) > 0 {
				schemaJSON, _ := json.MarshalIndent(spec.InputSchema, "  ", "  ")
				sb.WriteString("  Input schema: ")
				sb.Write(schemaJSON)
				sb.WriteString("\n")
			}
			if len(spec.Examples) > 0 {
				sb.WriteString("  Examples:\n")
				for _, ex := range spec.Examples {
					exJSON, _ := json.MarshalIndent(ex, "    ", "  ")
					sb.Write(exJSON)
					sb.WriteString("\n")
				}
			}
		}
		sb.WriteString("Invoke a tool by replying with the format `tool:<name> <json arguments>` on its own line.\n")
	}

	if docs := s.store.SearchDocumentation(ctx, question, docContextLimit); len(docs) > 0 {
		sb.WriteString("\nRelevant documentation:\n")
		for _, doc := range docs {
			sb.WriteString(fmt.Sprintf("## %s\n%s\n", doc.Title, doc.Content))
		}
	}

	if matches := s.store.SearchSimilarQueries(ctx, question, similarQueryLimit); len(matches) > 0 {
		sb.WriteString("\nSimilar past queries:\n")
		for _, match := range matches {
			if !match.Success || len(match.SQLQuery) == 0 {
				continue
			}
			sb.WriteString(fmt.Sprintf("- Query: %s\n  SQL: %s\n", match.Query, match.SQLQuery))
		}
	}

	sb.WriteString("\nQuestion:\n")
	sb.WriteString(strings.TrimSpace(question))
	sb.WriteString("\n")

	return sb.String()
}

func New(
	store docstore.DocStore,
	generator generator.Generator,
	toolHandlers []toolhandler.ToolHandler,
	maxTurns int,
	systemPrompt string,
) *Service {
	if store == nil {
		panic("doc store is required")
	}

	if generator == nil {
		panic("generator is required")
	}

	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}

	if len(strings.TrimSpace(systemPrompt)) == 0 {
		systemPrompt = defaultSystemPrompt
	}

	return &Service{
		store:        store,
		generator:    generator,
		catalog:      NewCatalog(toolHandlers),
		maxTurns:     maxTurns,
		systemPrompt: systemPrompt,
	}
}
