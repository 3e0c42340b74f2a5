// Package backend implementa el cliente REST hacia el backend de retail.
// El backend es un servicio opaco: aquí solo se tipan sus contratos de
// petición/respuesta y se distinguen sus dos clases de fallo (422 de
// validación estructurada vs. error genérico).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/DeiVid1337/BossFront-sub002/internal/domain"
)

type tokenKey struct{}

// WithToken inyecta el token Bearer del operador en el contexto; el cliente lo
// añade como header Authorization en cada llamada.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	if v := ctx.Value(tokenKey{}); v != nil {
		s, _ := v.(string)
		return s
	}
	return ""
}

// Client cliente HTTP tipado hacia el backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient construye el cliente. baseURL sin slash final (ej. https://api.acme.co/api/v1).
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "backend_client").Logger(),
	}
}

// Authorize implementa transfer.Authorizer.
func (c *Client) Authorize(ctx context.Context, token string) context.Context {
	return WithToken(ctx, token)
}

// errorEnvelope forma de los cuerpos de error del backend.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// call ejecuta una petición JSON y decodifica la respuesta en out (si no es nil).
// 422 se convierte en *domain.ValidationError; cualquier otro no-2xx en
// *domain.BackendError.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend: leer respuesta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("backend: decodificar respuesta de %s %s: %w", method, path, err)
		}
		return nil
	}

	var envelope errorEnvelope
	_ = json.Unmarshal(data, &envelope) // cuerpo no-JSON: se conserva solo el status

	c.log.Debug().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("path", path).
		Str("message", envelope.Message).
		Msg("respuesta de error del backend")

	if resp.StatusCode == http.StatusUnprocessableEntity {
		return &domain.ValidationError{
			Message:     envelope.Message,
			FieldErrors: domain.FieldErrors(envelope.Errors),
		}
	}
	return &domain.BackendError{Status: resp.StatusCode, Message: envelope.Message}
}
