// Package ai answers free-form travel questions through an OpenAI-compatible
// chat completion API and classifies query intent locally before each call.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"margdarshak.in/internal/geo"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"

	maxHistoryMessages = 6
	completionTokens   = 2048
	temperature        = 0.7
)

const systemPrompt = `You are MargDarshak AI — an expert Indian real-time travel intelligence assistant.

When a user describes their travel intent (location, budget, interests, or route), respond with a structured travel recommendation.

ALWAYS respond in this JSON format:
{
  "places": [
    { "name": "Place Name", "description": "Short description", "estimatedCost": "₹200-500", "lat": 28.6139, "lng": 77.2090 }
  ],
  "estimatedBudget": "₹500-1500",
  "bestTime": "4:30 PM - 6:30 PM",
  "tips": ["Tip 1", "Tip 2", "Tip 3"],
  "summary": "A brief 1-2 sentence summary of the recommendation",
  "detectedIntent": "sightseeing | food | budget | safety | quick_trip | route | general",
  "transportOptions": [
    {
      "mode": "train | metro | bus | cab | walk",
      "label": "Local Train / Mumbai Metro Line 1 / Bus 320 / Ola/Uber / Walk",
      "boarding": "Station or stop name",
      "destination": "Station or stop name",
      "details": "Train type, bus number, or cab app",
      "duration": "25 min",
      "cost": "₹15",
      "frequency": "Every 5 min",
      "crowdLevel": "low | moderate | high | packed",
      "peakWarning": "Avoid 8-11 AM rush" or null,
      "isBest": true,
      "whyBest": "Fastest and cheapest during non-peak hours"
    }
  ]
}

IMPORTANT — Transport Analysis Rules:
- When a user asks about routes, directions, or how to travel between locations, you MUST populate the "transportOptions" array.
- For NON-route queries (sightseeing, food, etc.), set "transportOptions" to an empty array [].
- In metro cities (Mumbai, Delhi, Chennai, Kolkata, Bangalore, Hyderabad), always include local train AND metro options with REAL station names.
- Use real Indian bus route numbers where known, otherwise simulate realistic ones.
- Bus boarding and destination stops MUST be DIFFERENT. Never use the same stop name for both. Use the nearest real bus stop to the origin as boarding, and the nearest real bus stop to the destination as alighting.
- Cab/auto prices: base ₹30 + ₹12-15/km. Mention Ola/Uber/auto.
- Peak hours: Morning 8-11 AM, Evening 6-9 PM — add peakWarning if travel falls in these windows.
- ALWAYS mark exactly ONE option as "isBest": true with a "whyBest" explanation.
- Walk option only if distance < 3 km.

METRO SYSTEM Rules (mode = "metro"):
- In metro-supported cities (Mumbai, Delhi NCR, Bangalore, Chennai, Kolkata, Hyderabad, Jaipur, Lucknow, Kochi, Nagpur, Pune, Ahmedabad), ALWAYS include a METRO option as a separate transportOption.
- Metro is DIFFERENT from local train — use mode "metro" (not "train") for metro rail systems.
- Include: nearest boarding metro station, destination metro station, metro LINE NAME (e.g., "Aqua Line", "Blue Line", "Line 1"), interchange stations if route requires line changes.
- Typical metro frequency: every 4-8 minutes. Fare: ₹10-60 depending on distance.
- Mumbai Metro Lines: Line 1 (Versova-Andheri-Ghatkopar), Line 2A (Dahisar East-DN Nagar), Line 2B (DN Nagar-Mandale), Line 3 (Aarey-BKC-Cuffe Parade), Line 7 (Dahisar East-Andheri East), Line 7A (Andheri East-CSIA T2).
- Delhi Metro Lines: Red, Yellow, Blue, Green, Violet, Magenta, Pink, Grey, Rapid Metro.
- Bangalore Metro: Purple Line, Green Line.
- Prefer metro over cab/bus when: distance is 5-25 km, traffic congestion is high, or metro significantly reduces travel time.
- When metro requires interchange, mention the interchange station and total journey time including interchange wait (~3-5 min).

General Rules:
- All prices in INR (₹)
- Focus on Indian cities, culture, food, and transport
- Be safety-aware (mention safe travel hours, areas)
- Budget-conscious recommendations by default
- Include local tips (best chai spots, rickshaw rates, etc.)
- ALWAYS include accurate lat/lng coordinates for each place (use real coordinates for Indian locations)
- If the query is not travel-related, politely redirect to travel topics
- ALWAYS return valid JSON, nothing else`

// Place is a recommended location inside a travel plan.
type Place struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	EstimatedCost string  `json:"estimatedCost"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
}

// TransportOption is one mode suggestion inside a travel plan.
type TransportOption struct {
	Mode        string `json:"mode"`
	Label       string `json:"label"`
	Boarding    string `json:"boarding"`
	Destination string `json:"destination"`
	Details     string `json:"details"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
	Frequency   string `json:"frequency"`
	CrowdLevel  string `json:"crowdLevel"`
	PeakWarning string `json:"peakWarning"`
	IsBest      bool   `json:"isBest"`
	WhyBest     string `json:"whyBest"`
}

// TravelPlan is the structured assistant answer. When the model returns text
// that is not valid JSON the raw text lands in Summary and the collections
// stay empty, so callers always get a usable plan.
type TravelPlan struct {
	Places           []Place           `json:"places"`
	EstimatedBudget  string            `json:"estimatedBudget"`
	BestTime         string            `json:"bestTime"`
	Tips             []string          `json:"tips"`
	Summary          string            `json:"summary"`
	DetectedIntent   string            `json:"detectedIntent"`
	TransportOptions []TransportOption `json:"transportOptions"`
}

// Message is one turn of prior conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Query carries everything the assistant needs for one question.
type Query struct {
	Message        string
	History        []Message
	Location       *geo.Point
	City           string
	WeatherContext string
}

// Assistant wraps an OpenAI-compatible chat client.
type Assistant struct {
	client *openai.Client
	model  string
	logger *slog.Logger
}

// NewAssistant builds an assistant against the Groq OpenAI-compatible
// endpoint. Returns nil when no API key is configured; callers treat a nil
// assistant as the feature being off.
func NewAssistant(apiKey string, logger *slog.Logger) *Assistant {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = defaultBaseURL
	return &Assistant{
		client: openai.NewClientWithConfig(cfg),
		model:  defaultModel,
		logger: logger,
	}
}

// Ask sends the question with location, weather and intent context folded
// into the system prompt and parses the structured reply.
func (a *Assistant) Ask(ctx context.Context, q Query) (*TravelPlan, error) {
	system := systemPrompt + locationContext(q.Location, q.City) + q.WeatherContext + BuildIntentPrompt(q.Message)

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
	}
	history := q.History
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: q.Message,
	})

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   completionTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("ai: empty completion response")
	}

	content := resp.Choices[0].Message.Content
	var plan TravelPlan
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		a.logger.Warn("assistant returned non-JSON content, degrading to plain summary",
			slog.String("error", err.Error()))
		return &TravelPlan{
			Summary: strings.TrimSpace(content),
			Places:  []Place{},
			Tips:    []string{},
		}, nil
	}
	return &plan, nil
}

func locationContext(loc *geo.Point, city string) string {
	if loc == nil || !loc.Valid() {
		return ""
	}
	ctx := fmt.Sprintf("\n\n[CONTEXT] The user's current location is: lat=%.4f, lng=%.4f", loc.Lat, loc.Lng)
	if city != "" {
		ctx += ", city: " + city
	}
	return ctx + ". Use this to give nearby recommendations when relevant."
}
