package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"jobhunter"
	"jobhunter/internal/apperr"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultOllamaModel    = "llama3.1"
)

type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

type Completion struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// CompletionOptions override the configured defaults when non-zero.
type CompletionOptions struct {
	MaxTokens   int
	Temperature *float64
}

// Completer sends one system + user exchange to a language model.
type Completer interface {
	Complete(ctx context.Context, system, user string, opts CompletionOptions) (Completion, error)
}

type langchainCompleter struct {
	model       llms.Model
	name        string
	maxTokens   int
	temperature float64
}

type unavailableCompleter struct {
	reason error
}

func (u unavailableCompleter) Complete(context.Context, string, string, CompletionOptions) (Completion, error) {
	return Completion{}, apperr.External(u.reason, "language model is not configured")
}

var (
	defaultCompleter     Completer
	defaultCompleterOnce sync.Once
)

// DefaultCompleter returns the process-wide completer built from the LLM
// configuration. A misconfigured provider yields a completer whose calls fail
// with an external service error instead of stopping the process.
func DefaultCompleter() Completer {
	defaultCompleterOnce.Do(func() {
		c, err := NewCompleter(context.Background(), jobhunter.GetConfig())
		if err != nil {
			jobhunter.Logger.Warn().Err(err).Msg("LLM provider unavailable")
			defaultCompleter = unavailableCompleter{reason: err}
			return
		}
		defaultCompleter = c
	})
	return defaultCompleter
}

func NewCompleter(ctx context.Context, cfg jobhunter.AppConfig) (Completer, error) {
	llmCfg := cfg.LLMConfig
	model := llmCfg.Model

	var (
		llm llms.Model
		err error
	)
	switch llmCfg.Provider {
	case "anthropic", "":
		if llmCfg.AnthropicKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is not set")
		}
		if model == "" {
			model = DefaultAnthropicModel
		}
		llm, err = anthropic.New(anthropic.WithToken(llmCfg.AnthropicKey), anthropic.WithModel(model))
	case "openai":
		if llmCfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		if model == "" {
			model = DefaultOpenAIModel
		}
		llm, err = openai.New(openai.WithToken(llmCfg.OpenAIKey), openai.WithModel(model))
	case "googleai":
		if llmCfg.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		if model == "" {
			model = DefaultGeminiModel
		}
		llm, err = googleai.New(ctx, googleai.WithAPIKey(llmCfg.GeminiKey), googleai.WithDefaultModel(model))
	case "ollama":
		if model == "" {
			model = DefaultOllamaModel
		}
		llm, err = ollama.New(ollama.WithModel(model), ollama.WithServerURL(llmCfg.OllamaHost))
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", llmCfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", llmCfg.Provider, err)
	}

	return &langchainCompleter{
		model:       llm,
		name:        model,
		maxTokens:   llmCfg.MaxTokens,
		temperature: llmCfg.Temperature,
	}, nil
}

func (slf *langchainCompleter) Complete(ctx context.Context, system, user string, opts CompletionOptions) (Completion, error) {
	maxTokens := slf.maxTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}
	temperature := slf.temperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, system),
		llms.TextParts(llms.ChatMessageTypeHuman, user),
	}
	resp, err := slf.model.GenerateContent(ctx, messages,
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(temperature),
	)
	if err != nil {
		return Completion{}, apperr.External(err, "language model request failed")
	}
	if len(resp.Choices) == 0 {
		return Completion{}, apperr.Malformed(nil, "language model returned no choices")
	}

	var text strings.Builder
	for _, choice := range resp.Choices {
		text.WriteString(choice.Content)
	}

	return Completion{
		Text:  StripCodeFences(text.String()),
		Usage: usageFrom(resp.Choices[0].GenerationInfo),
	}, nil
}

var (
	leadingFence  = regexp.MustCompile("(?i)^\\s*```(?:json)?\\s*\\n?")
	trailingFence = regexp.MustCompile("\\n?```\\s*$")
)

// StripCodeFences removes a markdown code fence wrapped around a model reply.
func StripCodeFences(text string) string {
	text = leadingFence.ReplaceAllString(text, "")
	return trailingFence.ReplaceAllString(text, "")
}

// DecodeCompletion parses a JSON reply into T.
func DecodeCompletion[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		return out, apperr.Malformed(err, "language model reply is not valid JSON")
	}
	return out, nil
}

// usageFrom reads token counts from the provider specific generation info.
func usageFrom(info map[string]any) Usage {
	return Usage{
		InputTokens:  firstInt(info, "InputTokens", "PromptTokens", "input_tokens", "prompt_tokens"),
		OutputTokens: firstInt(info, "OutputTokens", "CompletionTokens", "output_tokens", "completion_tokens"),
	}
}

func firstInt(info map[string]any, keys ...string) int {
	for _, key := range keys {
		switch v := info[key].(type) {
		case int:
			return v
		case int32:
			return int(v)
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}
