// Package external is the location for the D&D 5e spell API client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/spellbook/internal/clients/external Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	dnd5eentities "github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/spellbook/internal/entities"
	"github.com/KirkDiggler/spellbook/internal/errors"
)

const (
	// DefaultBaseURL is the public D&D 5e API, 2014 ruleset
	DefaultBaseURL = "https://www.dnd5eapi.co/api/2014/"

	// MetaEndpoint is set on every error that came back from the API
	MetaEndpoint = "endpoint"

	spellsPath = "spells"
)

// Client defines the interface for spell API interactions
type Client interface {
	// ListSpells fetches the whole spell catalog, in API order
	ListSpells(ctx context.Context) ([]entities.SpellSummary, error)

	// GetSpell fetches the full record for one spell by index
	GetSpell(ctx context.Context, index string) (*entities.SpellDetail, error)
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached list client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateAbsoluteURL("BaseURL", cfg.BaseURL, vb)
	if cfg.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.InvalidField("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	dnd5eClient dnd5e.Interface
	httpClient  *http.Client
	baseURL     string
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	// The catalog rarely changes, so list calls go through the library cache
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
		httpClient:  httpClient,
		baseURL:     cfg.BaseURL,
	}, nil
}

func (c *client) ListSpells(ctx context.Context) ([]entities.SpellSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "list spells")
	}

	type result struct {
		refs []*dnd5eentities.ReferenceItem
		err  error
	}

	// The library call takes no context, so the caller stops waiting on
	// cancellation and the goroutine drains into the buffered channel.
	done := make(chan result, 1)
	go func() {
		refs, err := c.dnd5eClient.ListSpells(nil)
		done <- result{refs: refs, err: err}
	}()

	slog.Info("Calling D&D 5e API to list spells")
	var res result
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "list spells")
	case res = <-done:
	}

	if res.err != nil {
		return nil, errors.WrapWithCode(res.err, errors.CodeUnavailable,
			"failed to list spells from D&D 5e API").
			WithMeta(MetaEndpoint, c.baseURL+spellsPath)
	}

	spells := make([]entities.SpellSummary, 0, len(res.refs))
	for _, ref := range res.refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		spells = append(spells, entities.SpellSummary{Index: ref.Key, Name: ref.Name})
	}
	slog.Info("Got spell references", "count", len(spells))

	return spells, nil
}

func (c *client) GetSpell(ctx context.Context, index string) (*entities.SpellDetail, error) {
	if strings.TrimSpace(index) == "" {
		return nil, errors.InvalidArgument("spell index is required")
	}

	endpoint := c.baseURL + spellsPath + "/" + url.PathEscape(index)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for spell %s", index)
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("Calling D&D 5e API to get spell", "index", index)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, err, endpoint)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if code := errors.FromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.Newf(code, "spell %s: API returned %s", index, resp.Status).
			WithMeta(MetaEndpoint, endpoint).
			WithMeta("status", resp.StatusCode)
	}

	var spell entities.SpellDetail
	if err := json.NewDecoder(resp.Body).Decode(&spell); err != nil {
		return nil, c.transportError(ctx, err, endpoint)
	}
	if spell.Index == "" {
		spell.Index = index
	}

	return &spell, nil
}

func (c *client) transportError(ctx context.Context, err error, endpoint string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrap(ctxErr, "spell request aborted")
	}
	code := errors.CodeUnavailable
	if os.IsTimeout(err) {
		code = errors.CodeDeadlineExceeded
	}
	return errors.WrapWithCode(err, code, "failed to fetch spell").
		WithMeta(MetaEndpoint, endpoint)
}

// IsFetchError reports whether err came from talking to the spell API,
// as opposed to a caller mistake or cancellation.
func IsFetchError(err error) bool {
	if err == nil || errors.IsCanceled(err) {
		return false
	}
	_, ok := errors.GetMeta(err)[MetaEndpoint]
	return ok
}
