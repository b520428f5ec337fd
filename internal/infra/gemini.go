package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jtruch-maker/precificagourmet/internal/config"

	"github.com/rs/zerolog/log"
)

// Fallback texts surfaced to the user when the consultor inteligente cannot
// answer. Degrading to these strings instead of an error is part of the
// collaborator contract — a broken Gemini never breaks a simulation.
const (
	MsgChaveAusente = "Chave de API não configurada. Adicione sua chave do Google Gemini nas configurações para receber o parecer do consultor."
	MsgFalhaServico = "Erro ao conectar com o consultor inteligente. Verifique sua chave de API nas configurações."
	MsgSemResposta  = "Não foi possível gerar a análise no momento."
)

const geminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the Gemini REST API to produce the natural-language
// pricing commentary. All failures — missing key, network error, open
// circuit, empty candidates — degrade to a fallback string.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	modelo     string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewGeminiClient(cfg *config.Config, cb *CircuitBreaker) *GeminiClient {
	return &GeminiClient{
		baseURL:    geminiBaseURL,
		apiKey:     cfg.GeminiAPIKey,
		modelo:     cfg.GeminiModel,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		cb:         cb,
	}
}

// GerarParecer returns the consultant's text for the given prompt.
// Key precedence: the user-supplied chave wins, then the configured
// GEMINI_API_KEY; with neither, the missing-key advisory is returned.
func (c *GeminiClient) GerarParecer(ctx context.Context, chaveUsuario, prompt string) string {
	chave := chaveUsuario
	if chave == "" {
		chave = c.apiKey
	}
	if chave == "" {
		return MsgChaveAusente
	}

	var texto string
	err := c.cb.Execute(func() error {
		t, err := c.generateContent(ctx, chave, prompt)
		if err != nil {
			return err
		}
		texto = t
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("cb_state", c.cb.State().String()).Msg("gemini: parecer indisponível")
		return MsgFalhaServico
	}
	if texto == "" {
		return MsgSemResposta
	}
	return texto
}

func (c *GeminiClient) generateContent(ctx context.Context, chave, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.modelo, chave)

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"temperature":     0.4,
			"maxOutputTokens": 1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: status %d", resp.StatusCode)
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: resposta vazia")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
