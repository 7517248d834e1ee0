// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package llm generates docstring suggestions for undocumented functions
// via the AWS Bedrock Converse API.
// Implements: prd006-doc-suggestions R1, R2, R3;
//
//	docs/ARCHITECTURE § Docstring Suggestions.
package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/petar-djukic/go-reviewer/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultMaxTokens = 512
	maxRetryAttempts = 3
	baseRetryDelay   = 1 * time.Second
)

// ErrLLMFailure indicates the LLM call failed (network, auth, rate limit).
var ErrLLMFailure = errors.New("LLM failure")

// TokenUsage tracks cumulative token consumption across calls.
type TokenUsage struct {
	InputTokens  int
	OutputTokens int
}

// Total returns input plus output tokens.
func (u TokenUsage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// ClientConfig configures the Bedrock client.
type ClientConfig struct {
	ModelID   string        // Bedrock model ID (required)
	Region    string        // AWS region (required)
	Profile   string        // AWS credential profile (optional)
	Timeout   time.Duration // Per-request timeout (default 60s)
	MaxTokens int           // Max response tokens (default 512)
}

// ConverseAPI abstracts the Bedrock Converse call for testing.
type ConverseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

// Client wraps the AWS Bedrock runtime client. It implements the review
// pipeline's Suggester interface.
type Client struct {
	api       ConverseAPI
	modelID   string
	timeout   time.Duration
	maxTokens int
	usage     TokenUsage
}

// NewClient creates a Bedrock client from the given configuration using
// the standard AWS credential chain.
//
// Implements: prd006-doc-suggestions R1.1-R1.4.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	if cfg.ModelID == "" {
		return nil, fmt.Errorf("%w: model ID is required", ErrLLMFailure)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: region is required", ErrLLMFailure)
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: loading AWS config: %v", ErrLLMFailure, err)
	}

	return NewClientWithAPI(bedrockruntime.NewFromConfig(awsCfg), cfg), nil
}

// NewClientWithAPI creates a client with a pre-configured API
// implementation. Used for testing with mock clients.
func NewClientWithAPI(api ConverseAPI, cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}
	return &Client{
		api:       api,
		modelID:   cfg.ModelID,
		timeout:   timeout,
		maxTokens: maxTokens,
	}
}

// SuggestDocstring asks the model for a docstring for one undocumented
// function and returns the cleaned suggestion text.
//
// Implements: prd006-doc-suggestions R2.1-R2.4.
func (c *Client) SuggestDocstring(ctx context.Context, fn types.FunctionInfo, filePath string) (string, error) {
	prompt, err := RenderDocstringPrompt(PromptData{
		FilePath:  filePath,
		Signature: FormatSignature(fn),
		Calls:     fn.Calls,
	})
	if err != nil {
		return "", err
	}

	text, err := c.converseWithRetry(ctx, prompt)
	if err != nil {
		return "", err
	}

	return cleanSuggestion(text), nil
}

// CumulativeUsage returns the total token usage across all calls.
func (c *Client) CumulativeUsage() TokenUsage {
	return c.usage
}

// converseWithRetry calls Converse with exponential backoff on
// throttling errors.
//
// Implements: prd006-doc-suggestions R3.1-R3.3.
func (c *Client) converseWithRetry(ctx context.Context, prompt string) (string, error) {
	input := &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.modelID),
		Messages: []brtypes.Message{
			{
				Role: brtypes.ConversationRoleUser,
				Content: []brtypes.ContentBlock{
					&brtypes.ContentBlockMemberText{Value: prompt},
				},
			},
		},
		InferenceConfig: &brtypes.InferenceConfiguration{
			MaxTokens: aws.Int32(int32(c.maxTokens)),
		},
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetryAttempts; attempt++ {
		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(math.Pow(2, float64(attempt-1)))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", fmt.Errorf("%w: context cancelled during retry: %v", ErrLLMFailure, ctx.Err())
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		output, err := c.api.Converse(callCtx, input)
		cancel()
		if err != nil {
			var throttle *brtypes.ThrottlingException
			if errors.As(err, &throttle) {
				lastErr = err
				continue
			}
			return "", c.classifyError(err)
		}

		if output.Usage != nil {
			c.usage.InputTokens += int(aws.ToInt32(output.Usage.InputTokens))
			c.usage.OutputTokens += int(aws.ToInt32(output.Usage.OutputTokens))
		}

		return extractText(output)
	}

	return "", fmt.Errorf("%w: rate limited after %d retries: %v", ErrLLMFailure, maxRetryAttempts, lastErr)
}

// extractText pulls the first text block out of a Converse response.
func extractText(output *bedrockruntime.ConverseOutput) (string, error) {
	msg, ok := output.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("%w: response holds no message", ErrLLMFailure)
	}
	for _, block := range msg.Value.Content {
		if text, ok := block.(*brtypes.ContentBlockMemberText); ok {
			return text.Value, nil
		}
	}
	return "", fmt.Errorf("%w: response holds no text block", ErrLLMFailure)
}

// classifyError wraps Bedrock errors into ErrLLMFailure with descriptive
// messages.
func (c *Client) classifyError(err error) error {
	var accessDenied *brtypes.AccessDeniedException
	if errors.As(err, &accessDenied) {
		return fmt.Errorf("%w: credential or permission issue: %v", ErrLLMFailure, err)
	}

	var notFound *brtypes.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return fmt.Errorf("%w: model not found: %s", ErrLLMFailure, c.modelID)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out after %s", ErrLLMFailure, c.timeout)
	}

	return fmt.Errorf("%w: %v", ErrLLMFailure, err)
}

// cleanSuggestion strips markdown fences and quote delimiters the model
// tends to wrap suggestions in.
func cleanSuggestion(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if idx := strings.Index(s, "\n"); idx >= 0 && !strings.ContainsAny(s[:idx], " .") {
			s = s[idx+1:] // Drop a language tag line.
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	s = strings.TrimSpace(s)
	for _, q := range []string{`"""`, "'''"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			s = strings.TrimSpace(s[len(q) : len(s)-len(q)])
			break
		}
	}
	return s
}
