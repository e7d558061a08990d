// Package pokeapi is the client for the PokeAPI data provider
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/pokebattle/battle-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pokebattle/battle-api/internal/entities/pokemon"
	"github.com/pokebattle/battle-api/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultHTTPTimeout bounds a single provider request
	DefaultHTTPTimeout = 10 * time.Second

	resourcePokemon = "pokemon"
	resourceMove    = "move"
	resourceType    = "type"
)

// Client defines the read-only operations used against the data provider.
// Not found upstream is reported as errors.NotFound, transport failures as errors.Unavailable.
type Client interface {
	// GetPokemon fetches a species by name
	GetPokemon(ctx context.Context, name string) (*PokemonData, error)

	// GetMove fetches a move by name or absolute resource URL
	GetMove(ctx context.Context, ref string) (*MoveData, error)

	// GetType fetches the damage relations of a type by name or absolute resource URL
	GetType(ctx context.Context, ref string) (*TypeData, error)
}

// Config contains configuration options for the PokeAPI client
type Config struct {
	// BaseURL of the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to DefaultHTTPTimeout)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("HTTP timeout cannot be negative")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a PokeAPI client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, name string) (*PokemonData, error) {
	key := pokemon.NormalizeName(name)
	if key == "" {
		return nil, errors.InvalidArgument("pokemon name is required")
	}

	var data PokemonData
	if err := c.get(ctx, c.resourceURL(resourcePokemon, key), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", key).WithMeta("pokemon", key)
	}
	return &data, nil
}

func (c *client) GetMove(ctx context.Context, ref string) (*MoveData, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, errors.InvalidArgument("move reference is required")
	}

	var data MoveData
	if err := c.get(ctx, c.resourceURL(resourceMove, ref), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to get move %s", ref).WithMeta("move", ref)
	}
	return &data, nil
}

func (c *client) GetType(ctx context.Context, ref string) (*TypeData, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, errors.InvalidArgument("type reference is required")
	}

	var data TypeData
	if err := c.get(ctx, c.resourceURL(resourceType, ref), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to get type %s", ref).WithMeta("type", ref)
	}
	return &data, nil
}

// resourceURL accepts either a bare name or a URL already returned by the API
func (c *client) resourceURL(resource, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return c.baseURL + resource + "/" + url.PathEscape(pokemon.NormalizeName(ref)) + "/"
}

// get performs a single GET with no retry and decodes the JSON body into out
func (c *client) get(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", rawURL)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "request to %s failed", rawURL)
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body already consumed
	}()

	slog.Debug("PokeAPI request",
		"url", rawURL,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("%s not found", rawURL)
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.Unavailablef("PokeAPI returned %d for %s", resp.StatusCode, rawURL)
	case resp.StatusCode >= http.StatusBadRequest:
		return errors.NotFoundf("PokeAPI returned %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read response from %s", rawURL)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to decode response from %s", rawURL))
	}
	return nil
}
