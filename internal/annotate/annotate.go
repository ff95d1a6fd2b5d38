package annotate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hyperifyio/goscrape/internal/extract"
	"github.com/hyperifyio/goscrape/internal/llm"
)

// maxExcerptChars bounds how much page text travels in the prompt.
const maxExcerptChars = 4000

// ErrNoSummary indicates the model produced no usable summary text.
var ErrNoSummary = errors.New("no summary produced")

// Annotator asks a chat model for a short Markdown summary of one
// extraction run. It is strictly a sidecar: summaries never feed back into
// the extraction pipeline or its JSON output.
type Annotator struct {
	Client llm.Client
	Model  string
}

// Summarize returns a short Markdown note describing the matches found on
// the page. A transient call failure is retried once after a short pause;
// persistent failure or empty model output is an error the caller may
// downgrade to a warning.
func (a *Annotator) Summarize(ctx context.Context, url string, result extract.Result, excerpt string) (string, error) {
	if a.Client == nil || strings.TrimSpace(a.Model) == "" {
		return "", errors.New("annotator not configured")
	}

	req := openai.ChatCompletionRequest{
		Model: a.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(url, result, excerpt)},
		},
		Temperature: 0.1,
		N:           1,
	}

	resp, err := a.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		if sleeper := sleepFunc; sleeper != nil {
			sleeper(100)
		} else {
			defaultSleep(100)
		}
		resp, err = a.Client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("summary call (after retry): %w", err)
		}
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoSummary
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", ErrNoSummary
	}
	return out, nil
}

const systemMessage = "You are a careful analyst. Use ONLY the provided field matches and page excerpt for facts. Do not invent values that are not listed. Keep the summary short and factual."

func buildUserMessage(url string, result extract.Result, excerpt string) string {
	var sb strings.Builder
	sb.WriteString("Write a short Markdown summary of the data extracted from a web page:")
	sb.WriteString("\n- One sentence on what the page appears to contain")
	sb.WriteString("\n- One bullet per field with its notable values, or 'none'")
	sb.WriteString("\n\nPage: ")
	sb.WriteString(url)
	sb.WriteString("\n\nExtracted fields:\n")
	for _, name := range result.Names() {
		matches := result.Matches(name)
		sb.WriteString(fmt.Sprintf("%s (%d): ", name, len(matches)))
		if len(matches) == 0 {
			sb.WriteString("none")
		} else {
			sb.WriteString(strings.Join(matches, ", "))
		}
		sb.WriteString("\n")
	}
	if trimmed := strings.TrimSpace(excerpt); trimmed != "" {
		if len(trimmed) > maxExcerptChars {
			trimmed = trimmed[:maxExcerptChars]
		}
		sb.WriteString("\nPage excerpt:\n\n")
		sb.WriteString(trimmed)
		sb.WriteString("\n")
	}
	sb.WriteString("\nOutput only the Markdown summary.")
	return sb.String()
}

// sleepFunc lets tests replace the retry pause, measured in milliseconds.
var sleepFunc func(ms int)

func defaultSleep(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
