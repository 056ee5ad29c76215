package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/feed"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"
)

const DefaultPath = "/pets"

// Client consume el endpoint de listing por HTTP.
type Client struct {
	http *httpclient.Client
	path string
	log  logger.Logger
}

func NewClient(c *httpclient.Client, path string, log logger.Logger) *Client {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Client{http: c, path: path, log: log}
}

// List devuelve el resultado tagged del upstream.
// Un status no-2xx es un fallo reportado (Success=false), no un error: el
// upstream respondió. Red o JSON inválido sí son error.
func (c *Client) List(ctx context.Context) (feed.ListResult, error) {
	var out feed.ListResult
	err := c.http.Get(ctx, c.path, nil, &out)
	if err == nil {
		return out, nil
	}

	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		return feed.ListResult{}, fmt.Errorf("list pets: %w", err)
	}

	c.log.Warn("listing responded with non-2xx", map[string]any{
		"status": he.StatusCode,
	})

	// El upstream suele mandar el cuerpo tagged también en errores.
	var tagged feed.ListResult
	if jerr := json.Unmarshal([]byte(he.Body), &tagged); jerr == nil && len(tagged.Errors) > 0 {
		tagged.Success = false
		tagged.Value = nil
		return tagged, nil
	}
	return feed.ListResult{
		Success: false,
		Errors:  []string{fmt.Sprintf("listing responded with status %d", he.StatusCode)},
	}, nil
}
