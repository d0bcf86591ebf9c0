package genre

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"ebook-library/core/catalog"
)

// BatchClassifier assigns one genre per book. Missing answers are empty strings.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, books []catalog.Book) ([]string, error)
}

const systemPrompt = "Sen bir kitap türü uzmanısın. Kitapların türlerini kısa ve net bir şekilde belirlersin. Her satırda sadece tür adını yazarsın."

var numberedLine = regexp.MustCompile(`^\d+[.)]\s*(.+)$`)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// RemoteClassifier asks a chat completions endpoint for a batch of genres.
type RemoteClassifier struct {
	cfg    Config
	client *http.Client
}

// NewRemoteClassifier creates a remote classifier. It returns nil when no API key is configured.
func NewRemoteClassifier(cfg Config) *RemoteClassifier {
	if !cfg.RemoteEnabled() {
		return nil
	}
	cfg = cfg.withDefaults()
	return &RemoteClassifier{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

// ClassifyBatch sends one request for all books and maps the numbered answer lines back by position.
func (r *RemoteClassifier) ClassifyBatch(ctx context.Context, books []catalog.Book) ([]string, error) {
	body, err := json.Marshal(chatRequest{
		Model: r.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildPrompt(books)},
		},
		Temperature: 0.3,
		MaxTokens:   15 * len(books),
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("classifier returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("classifier returned no choices")
	}

	return ParseAnswer(out.Choices[0].Message.Content, len(books)), nil
}

// BuildPrompt renders the numbered book list and the allowed labels.
func BuildPrompt(books []catalog.Book) string {
	var b strings.Builder
	b.WriteString("Aşağıdaki kitapların türlerini belirle. Her kitap için SADECE türünü yaz, açıklama yapma.\n\nKitaplar:\n")
	for i, book := range books {
		fmt.Fprintf(&b, "%d. %q - %s\n", i+1, book.Title, book.Author)
	}
	b.WriteString("\nKullanılabilir türler: ")
	b.WriteString(strings.Join(Genres, ", "))
	b.WriteString("\n\nCevap formatı (her satırda sadece tür adı):\n1. [Tür]\n2. [Tür]\n...")
	return b.String()
}

// ParseAnswer splits content into n genres. Both "1. Roman" and "Roman" lines are accepted;
// absent lines yield empty strings.
func ParseAnswer(content string, n int) []string {
	genres := make([]string, n)
	i := 0
	for _, line := range strings.Split(content, "\n") {
		if i >= n {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			line = m[1]
		}
		genres[i] = cleanLabel(line)
		i++
	}
	return genres
}

func cleanLabel(s string) string {
	s = strings.Trim(strings.TrimSpace(s), `"'[]*.`)
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > 128 {
		s = string(r[:128])
	}
	return s
}
