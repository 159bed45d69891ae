package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sashabaranov/go-openai"

	"github.com/simplifeed/feedsync/pkg/db"
)

//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache

// cacheBucket is where generated summaries are stored
const cacheBucket = "summaries"

// maxInputChars bounds the article text sent to the model
const maxInputChars = 12000

// Extractor retrieves readable article text
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Cache stores generated summaries between requests
type Cache interface {
	GetBlob(ctx context.Context, bucket, id string) (string, error)
	PutBlob(ctx context.Context, bucket, id, data string) error
}

// Config holds LLM configuration for summarization
type Config struct {
	APIKey       string
	Endpoint     string
	Model        string
	Temperature  float64
	MaxTokens    int
	SystemPrompt string
}

// Summarizer produces short article summaries, caching them by article id
type Summarizer struct {
	client    *openai.Client
	config    Config
	extractor Extractor
	cache     Cache
	systemMsg string
	policy    *bluemonday.Policy
}

// NewSummarizer creates a new summarizer
func NewSummarizer(cfg Config, extractor Extractor, cache Cache) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Summarizer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		extractor: extractor,
		cache:     cache,
		systemMsg: systemMsg,
		policy:    bluemonday.StrictPolicy(),
	}
}

const defaultSystemPrompt = `You summarize news articles. Produce a concise summary of 3-5 sentences that captures the key facts and findings. Write directly about the content itself, never open with phrases like "The article discusses". Write the summary in the same language as the article.`

// Summarize returns a summary for the article, serving a cached one when
// available. The second return reports whether the cache was hit.
func (s *Summarizer) Summarize(ctx context.Context, articleID, articleURL string) (string, bool, error) {
	cached, err := s.cache.GetBlob(ctx, cacheBucket, articleID)
	switch {
	case err == nil:
		lgr.Printf("[DEBUG] summary cache hit for article %s", articleID)
		return cached, true, nil
	case !errors.Is(err, db.ErrNotFound):
		lgr.Printf("[WARN] summary cache read failed for article %s: %v", articleID, err)
	}

	text, err := s.extractor.Extract(ctx, articleURL)
	if err != nil {
		return "", false, fmt.Errorf("extract article %s: %w", articleURL, err)
	}

	// strip any markup that survived extraction before handing text to the model
	text = strings.TrimSpace(s.policy.Sanitize(text))
	if text == "" {
		return "", false, fmt.Errorf("article %s has no text to summarize", articleURL)
	}
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", false, fmt.Errorf("no response from llm")
	}

	result := strings.TrimSpace(resp.Choices[0].Message.Content)
	if result == "" {
		return "", false, fmt.Errorf("empty summary from llm")
	}

	if err := s.cache.PutBlob(ctx, cacheBucket, articleID, result); err != nil {
		lgr.Printf("[WARN] summary cache write failed for article %s: %v", articleID, err)
	}

	return result, false, nil
}
