// Package chat relays visitor questions to an OpenAI-compatible chat
// completions endpoint with a fixed ministry persona. The relay holds no
// conversation state; callers send prior turns back as context.
package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const systemPrompt = `Tu es Abel Fabrice Ekra, un pasteur, coach, entrepreneur et leader du ministère LADÉ (Les Anges De L'Évangile).

INFORMATIONS SUR TOI :
- Homme de qualité et d'intégrité, de délivrance et de miracles
- Évangéliste et prophète, président du ministère LADÉ
- Visionnaire du séminaire BARA qui transforme le corps de Christ depuis 3 ans
- Amoureux des âmes et du prophétique
- Expérience dans l'évangélisation et la délivrance

CONTACTS :
- WhatsApp/Téléphone : +225 0757 48 03 17
- Facebook : facebook.com/fabrice.ekra.754
- TikTok : @abelfabriceekra
- Instagram : @abelfabriceekra

INSTRUCTIONS :
- Réponds en français uniquement
- Sois bienveillant, spirituel et encourageant
- Partage des conseils basés sur la foi chrétienne
- Offre du coaching et de la motivation
- Parle du ministère LADÉ et du séminaire BARA quand approprié
- Si on demande des informations de contact, fournis les réseaux sociaux et numéro
- Reste dans le contexte spirituel et de coaching`

// Message is one turn of an OpenAI-style conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to one chat completions endpoint.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// UpstreamError carries the status of a failed completions call so the HTTP
// layer can distinguish relay failures from local ones.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}

// Complete sends the persona prompt, the prior turns and the new user message
// and returns the assistant reply.
func (c *Client) Complete(message string, context []Message) (string, error) {
	messages := make([]Message, 0, len(context)+2)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, context...)
	messages = append(messages, Message{Role: "user", Content: message})

	payload, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   1000,
		Temperature: 0.8,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach chat endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var decoded completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("chat endpoint returned no choices")
	}

	return decoded.Choices[0].Message.Content, nil
}
