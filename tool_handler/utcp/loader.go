package utcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	toolhandler "github.com/reportsext/agent/tool_handler"
	goutcp "github.com/universal-tool-calling-protocol/go-utcp"
)

// LoadToolHandlers discovers tools exposed by remote UTCP servers and wraps
// each one as a ToolHandler the agent catalog can register alongside the
// local SQL toolkit.
func LoadToolHandlers(ctx context.Context, addrs []string, query string, limit int) ([]toolhandler.ToolHandler, error) {
	if len(addrs) == 0 {
		return nil, nil
	}

	configPath, err := writeTempConfig(addrs)
	if err != nil {
		return nil, err
	}
	defer os.Remove(configPath)

	client, err := goutcp.NewUTCPClient(
		ctx,
		&goutcp.UtcpClientConfig{
			ProvidersFilePath: configPath,
		},
		nil,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("utcp client: %w", err)
	}

	remoteTools, err := client.SearchTools(query, limit)
	if err != nil {
		return nil, fmt.Errorf("utcp discovery failed: %w", err)
	}

	var handlers []toolhandler.ToolHandler
	for _, tool := range remoteTools {
		spec := toolhandler.ToolSpec{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: tool.Inputs.Properties,
		}
		handlers = append(handlers, NewToolHandler(
			WithUtcpClient(client),
			WithToolName(tool.Name),
			WithToolSpec(spec),
		))
	}

	return handlers, nil
}

func writeTempConfig(addrs []string) (string, error) {
	type providerConfig struct {
		Type    string            `json:"provider_type"`
		Name    string            `json:"name"`
		URL     string            `json:"url"`
		Method  string            `json:"http_method"`
		Headers map[string]string `json:"headers"`
	}

	config := struct {
		Providers []providerConfig `json:"providers"`
	}{}

	for _, u := range addrs {
		parsed, err := url.Parse(u)
		if err != nil {
			return "", err
		}
		config.Providers = append(config.Providers, providerConfig{
			Type:   "http",
			Name:   parsed.Hostname(),
			URL:    u,
			Method: "POST",
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
		})
	}

	f, err := os.CreateTemp("", "utcp_config_*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(config); err != nil {
		return "", err
	}

	return f.Name(), nil
}
