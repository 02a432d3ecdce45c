package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/voltmarket/internal/aggregate"
	"github.com/donaldgifford/voltmarket/internal/config"
	"github.com/donaldgifford/voltmarket/internal/imagestore"
	"github.com/donaldgifford/voltmarket/internal/marketplace"
	"github.com/donaldgifford/voltmarket/pkg/logger"
	"github.com/donaldgifford/voltmarket/pkg/suggest"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func newMarketplaceClient(cfg *config.Config, log *slog.Logger) *marketplace.Client {
	return marketplace.New(cfg.Marketplace.BaseURL,
		marketplace.WithToken(cfg.Marketplace.Token),
		marketplace.WithRateLimit(cfg.Marketplace.RateLimit.PerSecond, cfg.Marketplace.RateLimit.Burst),
		marketplace.WithHTTPClient(&http.Client{Timeout: cfg.Marketplace.Timeout}),
		marketplace.WithLogger(logger.Component(log, "marketplace")),
	)
}

func newAggregator(client aggregate.Fetcher, log *slog.Logger) *aggregate.Aggregator {
	return aggregate.New(client, aggregate.WithLogger(logger.Component(log, "aggregate")))
}

// newSuggester builds the price suggester selected by llm.backend.
func newSuggester(cfg *config.Config, log *slog.Logger) suggest.Suggester {
	l := cfg.LLM
	hc := &http.Client{Timeout: l.Timeout}

	var backend suggest.LLMBackend
	switch l.Backend {
	case config.BackendOllama:
		backend = suggest.NewOllamaBackend(l.Ollama.Endpoint, l.Ollama.Model,
			suggest.WithOllamaHTTPClient(hc))
	case config.BackendAnthropic:
		opts := []suggest.AnthropicOption{
			suggest.WithAnthropicModel(l.Anthropic.Model),
			suggest.WithAnthropicHTTPClient(hc),
		}
		if l.Anthropic.APIKey != "" {
			opts = append(opts, suggest.WithAnthropicAPIKey(l.Anthropic.APIKey))
		}
		backend = suggest.NewAnthropicBackend(opts...)
	case config.BackendOpenAICompat:
		opts := []suggest.OpenAICompatOption{suggest.WithOpenAICompatHTTPClient(hc)}
		if l.OpenAICompat.APIKey != "" {
			opts = append(opts, suggest.WithOpenAICompatAPIKey(l.OpenAICompat.APIKey))
		}
		backend = suggest.NewOpenAICompatBackend(l.OpenAICompat.Endpoint, l.OpenAICompat.Model, opts...)
	default:
		return suggest.NewHeuristicSuggester()
	}

	return suggest.NewLLMSuggester(backend,
		suggest.WithTemperature(l.Temperature),
		suggest.WithMaxTokens(l.MaxTokens),
		suggest.WithLogger(logger.Component(log, "suggest")),
	)
}

// newImageStore returns nil when no upload bucket is configured.
func newImageStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (*imagestore.S3Store, error) {
	img := cfg.Images
	if !img.Enabled() {
		return nil, nil
	}

	client, err := imagestore.NewS3Client(ctx, img.Region, img.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating S3 client: %w", err)
	}

	return imagestore.NewS3Store(client, img.Bucket,
		imagestore.WithPrefix(img.Prefix),
		imagestore.WithRegion(img.Region),
		imagestore.WithPublicBaseURL(img.PublicBaseURL),
		imagestore.WithMaxSize(img.MaxFileSize),
		imagestore.WithLogger(logger.Component(log, "imagestore")),
	), nil
}

// newLocalAggregator loads the config and builds an aggregator over the
// marketplace client for commands that run the engine in-process.
func newLocalAggregator() (*aggregate.Aggregator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)
	return newAggregator(newMarketplaceClient(cfg, log), log), nil
}

// available returns the entities of kind, failing only when the backend
// gave none.
func available(cmd *cobra.Command, agg *aggregate.Aggregator, kind domain.Kind) ([]domain.Entity, error) {
	items, srcErr := agg.Available(cmd.Context(), kind)
	if srcErr != nil && len(items) == 0 {
		return nil, srcErr
	}
	return items, nil
}
