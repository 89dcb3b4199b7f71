package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"benefit-calculator/domain"
)

// AdvisorService turns a simulated plan into a short consultation note.
// When OPENAI_API_KEY is unset it falls back to a deterministic sentence, so
// the calculator never depends on network availability.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
	logger     *zap.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService(logger *zap.Logger) *AdvisorService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &AdvisorService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// ExplainPlan produces a short explanation of the simulated payout for the
// customer-facing summary.
func (s *AdvisorService) ExplainPlan(
	plan domain.TreatmentPlan,
	result domain.PlanResult,
) string {
	if !s.enabled {
		return s.fallbackExplanation(result)
	}

	prompt := fmt.Sprintf(`You are preparing a note for an insurance sales consultation in Korea.

SIMULATION RESULT:
- Customer: %s
- Treatment years simulated: %d
- Samsung Life estimated payout: %s KRW
- KB Insurance estimated payout: %s KRW
- Combined estimated payout: %s KRW

PAYOUT LINES:
%s

INSTRUCTIONS:
1. Summarize in 2-3 sentences which riders drive the estimated payout.
2. Remind the customer that this is a simulation and actual payouts depend on the policy terms and claim review.
3. Keep a warm, professional consultation tone.`,
		plan.Customer, len(plan.EventsByYear),
		FormatKRW(result.SamsungTotal), FormatKRW(result.KBTotal),
		FormatKRW(result.GrandTotal), s.formatDetail(result.Detail))

	explanation, err := s.callLLM(prompt)
	if err != nil {
		s.logger.Warn("advisor call failed, using fallback", zap.Error(err))
		return s.fallbackExplanation(result)
	}
	return explanation
}

func (s *AdvisorService) callLLM(prompt string) (string, error) {
	reqBody := chatRequest{
		Model: "gpt-4o-mini",
		Messages: []chatMessage{
			{
				Role:    "system",
				Content: "You are an experienced insurance consultant specializing in Korean cancer-treatment riders from Samsung Life and KB Insurance. You explain payout simulations clearly and cautiously, always noting that actual benefits depend on the individual policy terms and claim review.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty response from advisor model")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (s *AdvisorService) formatDetail(detail []domain.PlanDetail) string {
	var b strings.Builder
	for _, line := range detail {
		fmt.Fprintf(&b, "- year %d: %s, %s KRW\n", line.Year, line.Label, FormatKRW(line.Amount))
	}
	return b.String()
}

func (s *AdvisorService) fallbackExplanation(result domain.PlanResult) string {
	return fmt.Sprintf(
		"Based on the simulated treatment plan, the estimated payout is %s KRW from Samsung Life and %s KRW from KB Insurance, %s KRW combined. This is a simulation for consultation purposes; actual benefits depend on the individual policy terms and claim review.",
		FormatKRW(result.SamsungTotal), FormatKRW(result.KBTotal), FormatKRW(result.GrandTotal))
}
