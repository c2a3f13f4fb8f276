package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"yourtour/pkg/utils"
)

type FactsServiceInterface interface {
	// GenerateCityFacts fetches the city's Wikipedia article and summarizes
	// it into the structured facts payload. NotFound when the article does
	// not exist; Upstream when fetching or summarization fails.
	GenerateCityFacts(ctx context.Context, city, state string) (json.RawMessage, error)
}

type FactsService struct {
	HTTP       *http.Client
	WikiBase   string
	Summarizer utils.SummarizerClient
}

func NewFactsService(summarizer utils.SummarizerClient) FactsServiceInterface {
	return &FactsService{
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		WikiBase:   "https://en.wikipedia.org/wiki",
		Summarizer: summarizer,
	}
}

var (
	paragraphRe = regexp.MustCompile(`(?s)<p[^>]*>(.*?)</p>`)
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	citationRe  = regexp.MustCompile(`\[\d+\]`)
)

func (f *FactsService) GenerateCityFacts(ctx context.Context, city, state string) (json.RawMessage, error) {
	text, err := f.fetchWikipediaText(ctx, city, state)
	if err != nil {
		return nil, err
	}

	facts, err := f.Summarizer.Summarize(ctx, city, state, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	return facts, nil
}

func (f *FactsService) fetchWikipediaText(ctx context.Context, city, state string) (string, error) {
	cityClean := strings.ReplaceAll(city, " ", "_")
	stateClean := strings.ReplaceAll(state, " ", "_")
	endpoint := fmt.Sprintf("%s/%s,_%s", f.WikiBase, cityClean, stateClean)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", utils.ErrLocationNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: wikipedia status %d", utils.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}

	return extractParagraphText(string(body)), nil
}

// extractParagraphText pulls paragraph content out of the article HTML and
// strips markup and citation markers, matching what the summarizer expects.
func extractParagraphText(page string) string {
	var text strings.Builder
	for _, match := range paragraphRe.FindAllStringSubmatch(page, -1) {
		text.WriteString(match[1])
	}

	cleaned := tagRe.ReplaceAllString(text.String(), "")
	cleaned = citationRe.ReplaceAllString(cleaned, "")
	cleaned = strings.ReplaceAll(cleaned, "\n", "")
	return cleaned
}
