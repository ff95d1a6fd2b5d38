package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
)

// llm-stub is a deterministic OpenAI-compatible server for exercising the
// summary sidecar without a real model:
//
//	ADDR=:8081 MODEL_ID=test-model llm-stub &
//	goscrape -llm.base http://localhost:8081/v1 -llm.model test-model \
//	         -summary out.md https://example.com/
//
// The reply restates the per-field match counts found in the prompt, so the
// output is stable across runs.

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

var fieldLine = regexp.MustCompile(`(?m)^([\w-]+) \((\d+)\):`)

// summarizePrompt builds a canned Markdown summary from the "name (count):"
// field lines the scraper puts in its user message.
func summarizePrompt(user string) string {
	matches := fieldLine.FindAllStringSubmatch(user, -1)
	if len(matches) == 0 {
		return "## Summary\n\nNo extracted fields were provided."
	}
	var sb strings.Builder
	sb.WriteString("## Summary\n\nThe page was scanned for ")
	sb.WriteString(fmt.Sprintf("%d field(s).\n\n", len(matches)))
	for _, m := range matches {
		sb.WriteString("- ")
		sb.WriteString(m[1])
		sb.WriteString(": ")
		sb.WriteString(m[2])
		sb.WriteString(" match(es)\n")
	}
	return sb.String()
}

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		user := ""
		for _, m := range req.Messages {
			if m.Role == "user" {
				user = m.Content
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": summarizePrompt(user)}},
			},
		})
	})

	log.Printf("llm-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
