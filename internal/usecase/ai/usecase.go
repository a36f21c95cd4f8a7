package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Usecase talks to an OpenAI-compatible chat-completions endpoint to
// produce book summaries and Q&A answers. Summaries are cached in Redis
// per (book, style); if the upstream fails, callers get a canned
// fallback summary instead of an error so the portal keeps working.
type Usecase struct {
	baseURL  string
	apiKey   string
	model    string
	client   *http.Client
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewUsecase(baseURL, apiKey, model string, client *http.Client, rdb *redis.Client, cacheTTL time.Duration) *Usecase {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Usecase{
		baseURL:  baseURL,
		apiKey:   apiKey,
		model:    model,
		client:   client,
		rdb:      rdb,
		cacheTTL: cacheTTL,
	}
}

type Style string

const (
	StyleBrief    Style = "brief"
	StyleDetailed Style = "detailed"
	StyleAcademic Style = "academic"
)

func StyleAllowed(s Style) bool {
	return s == StyleBrief || s == StyleDetailed || s == StyleAcademic
}

type SummaryInput struct {
	BookID string `json:"book_id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Style  Style  `json:"style"`
}

type SummaryDTO struct {
	Summary string `json:"summary"`
	Cached  bool   `json:"cached"`
	// Fallback is true when the upstream failed and the summary is the
	// canned text rather than a generated one.
	Fallback bool `json:"fallback"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatInput struct {
	Title    string    `json:"title"`
	Question string    `json:"question"`
	History  []Message `json:"history"`
}

type ChatDTO struct {
	Answer string `json:"answer"`
}

var styleSystem = map[Style]string{
	StyleBrief:    "You are a book summarization expert. Always answer briefly and to the point.",
	StyleDetailed: "You are a book analysis expert. Answer in depth but stay accessible.",
	StyleAcademic: "You are a literary scholar. Answer in a systematic, academic register.",
}

func stylePrompt(s Style, title, author string) string {
	switch s {
	case StyleBrief:
		return fmt.Sprintf("Summarize the main content of the book %q by %s in 3-4 sentences, focusing on the core ideas. No bullet points.", title, author)
	case StyleAcademic:
		return fmt.Sprintf("Give an academic analysis of the book %q by %s: methodology, theoretical contribution and its place in the field, in about 10-12 sentences of flowing prose.", title, author)
	default:
		return fmt.Sprintf("Analyze the book %q by %s: main themes, key ideas and practical examples, in about 8-10 sentences of flowing prose.", title, author)
	}
}

func fallbackSummary(title, author string) string {
	return fmt.Sprintf("The book %q by %s is a noteworthy work. A generated summary is temporarily unavailable; please try again later.", title, author)
}

func (u *Usecase) cacheKey(in SummaryInput) string {
	return "ai:summary:" + in.BookID + ":" + string(in.Style)
}

// Summarize returns a summary of the book in the requested style,
// serving from cache when possible.
func (u *Usecase) Summarize(ctx context.Context, in SummaryInput) (*SummaryDTO, error) {
	if in.Title == "" {
		return nil, errors.New("title is required")
	}
	if in.Style == "" {
		in.Style = StyleBrief
	}
	if !StyleAllowed(in.Style) {
		return nil, fmt.Errorf("unknown summary style %q", in.Style)
	}

	key := u.cacheKey(in)
	if u.rdb != nil && in.BookID != "" {
		if v, err := u.rdb.Get(ctx, key).Result(); err == nil && v != "" {
			return &SummaryDTO{Summary: v, Cached: true}, nil
		}
	}

	text, err := u.complete(ctx, []Message{
		{Role: "system", Content: styleSystem[in.Style]},
		{Role: "user", Content: stylePrompt(in.Style, in.Title, in.Author)},
	}, temperatureFor(in.Style))
	if err != nil {
		return &SummaryDTO{Summary: fallbackSummary(in.Title, in.Author), Fallback: true}, nil
	}

	if u.rdb != nil && in.BookID != "" {
		_ = u.rdb.Set(ctx, key, text, u.cacheTTL).Err()
	}
	return &SummaryDTO{Summary: text}, nil
}

// Chat answers a free-form question about the book, carrying the prior
// conversation along. Chat responses are not cached.
func (u *Usecase) Chat(ctx context.Context, in ChatInput) (*ChatDTO, error) {
	if in.Title == "" || in.Question == "" {
		return nil, errors.New("title and question are required")
	}
	msgs := make([]Message, 0, len(in.History)+2)
	msgs = append(msgs, Message{
		Role:    "system",
		Content: fmt.Sprintf("You are a helpful assistant answering questions about the book %q. Stay on topic.", in.Title),
	})
	msgs = append(msgs, in.History...)
	msgs = append(msgs, Message{Role: "user", Content: in.Question})

	text, err := u.complete(ctx, msgs, 0.7)
	if err != nil {
		return nil, err
	}
	return &ChatDTO{Answer: text}, nil
}

func temperatureFor(s Style) float64 {
	if s == StyleAcademic {
		return 0.3
	}
	return 0.7
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (u *Usecase) complete(ctx context.Context, msgs []Message, temperature float64) (string, error) {
	body, _ := json.Marshal(completionRequest{
		Model:       u.model,
		Messages:    msgs,
		Temperature: temperature,
		MaxTokens:   600,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+u.apiKey)

	resp, err := u.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("ai upstream returned %s", resp.Status)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", errors.New("ai upstream returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}
