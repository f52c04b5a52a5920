// Package ai calls the Gemini generative API for hand analysis and
// coach chat. All failures are converted to localized strings at this
// boundary; callers never see an error and local saves never block on
// these calls.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/nicehand/nicehand/internal/deck"
	"github.com/nicehand/nicehand/internal/i18n"
	"github.com/nicehand/nicehand/internal/ledger"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	model          = "gemini-2.5-flash"
)

// Role identifies a chat participant
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one turn of a coach conversation
type Message struct {
	Role Role
	Text string
}

// Client talks to the Gemini REST API
type Client struct {
	http   *resty.Client
	logger *log.Logger
}

// NewClient creates a Gemini client
func NewClient(logger *log.Logger) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(defaultBaseURL),
		logger: logger.WithPrefix("ai"),
	}
}

// SetBaseURL overrides the API endpoint, used by tests
func (c *Client) SetBaseURL(url string) {
	c.http.SetBaseURL(url)
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// AnalyzeHand asks for strategic commentary on a recorded hand. It
// returns the generated text, or a localized placeholder when no key is
// configured or the call fails.
func (c *Client) AnalyzeHand(ctx context.Context, hand *ledger.Hand, lang i18n.Language, apiKey string) string {
	if apiKey == "" {
		return i18n.T(lang, "ai.noKey")
	}

	text, err := c.generate(ctx, apiKey, generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: analysisPrompt(hand, lang)}}}},
	})
	if err != nil {
		c.logger.Warn("hand analysis failed", "err", err)
		return i18n.T(lang, "ai.analyzeError")
	}
	if text == "" {
		return i18n.T(lang, "ai.empty")
	}
	return text
}

// Chat sends one conversational turn to the poker coach persona and
// returns the reply, or a localized fallback on failure
func (c *Client) Chat(ctx context.Context, history []Message, message string, lang i18n.Language, apiKey string) string {
	if apiKey == "" {
		return i18n.T(lang, "ai.chatNoKey")
	}

	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{Role: string(m.Role), Parts: []part{{Text: m.Text}}})
	}
	contents = append(contents, content{Role: string(RoleUser), Parts: []part{{Text: message}}})

	text, err := c.generate(ctx, apiKey, generateRequest{
		Contents:          contents,
		SystemInstruction: &content{Parts: []part{{Text: coachPersona(lang)}}},
	})
	if err != nil {
		c.logger.Warn("coach chat failed", "err", err)
		return i18n.T(lang, "ai.chatError")
	}
	if text == "" {
		return i18n.T(lang, "ai.chatEmpty")
	}
	return text
}

func (c *Client) generate(ctx context.Context, apiKey string, req generateRequest) (string, error) {
	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", apiKey).
		SetBody(req).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", model))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini returned %s", resp.Status())
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text), nil
}

func formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "None"
	}
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func analysisPrompt(hand *ledger.Hand, lang i18n.Language) string {
	langInstruction := "Please answer in English."
	if lang == i18n.Chinese {
		langInstruction = "请用中文回答。"
	}

	var villains string
	if len(hand.Villains) > 0 {
		lines := make([]string, len(hand.Villains))
		for i, v := range hand.Villains {
			lines[i] = fmt.Sprintf("Villain (%s) Cards: %s", v.Name, formatCards(v.Cards))
		}
		villains = strings.Join(lines, "\n")
	} else {
		villains = "Villain Cards: Unknown"
	}

	actions := hand.StreetActions
	if actions == "" {
		actions = "Not provided"
	}
	note := hand.Note
	if note == "" {
		note = "None"
	}

	return fmt.Sprintf(`You are a world-class poker assistant and strategist.
Please analyze this poker hand played by Hero.
%s

Hand Details:
- Hero Hole Cards: %s
- Community Board: %s
- %s
- Profit/Loss: %g
- Action History/Line: %s
- User Notes: %s

Provide a concise strategy analysis (approx 200 words).
Focus on the action line and key decision points.
Highlight mistakes, good plays, and alternative lines based on GTO or exploit principles.`,
		langInstruction,
		formatCards(hand.HoleCards),
		formatCards(hand.CommunityCards),
		villains,
		hand.Profit,
		actions,
		note,
	)
}

func coachPersona(lang i18n.Language) string {
	if lang == i18n.Chinese {
		return "你是一位专业的德州扑克教练和助手，名叫 HAO。你精通 GTO 策略和剥削打法。你的回答应该简洁、专业且具有建设性。如果用户问非扑克相关的问题，请礼貌地将话题引回扑克。"
	}
	return "You are a professional poker coach and assistant named HAO. You are an expert in GTO strategy and exploitative play. Your answers should be concise, professional, and constructive."
}
