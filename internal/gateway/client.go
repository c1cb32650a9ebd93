// Package gateway implementa el cliente del API REST de negocio.
// Cada petición lleva el Bearer Token obtenido de un TokenSource registrado
// de forma diferida: el token se pide recién en la primera llamada, nunca
// en el arranque de la aplicación.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elbuensabor/backoffice-api/internal/domain"
)

// TokenSource entrega un token vigente para autenticar la petición saliente.
// La obtención puede suspender (refresh contra el proveedor de identidad);
// el cliente la trata como caja negra.
type TokenSource func(ctx context.Context) (string, error)

// StatusError es una respuesta no-2xx del API de negocio.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api de negocio: HTTP %d: %s", e.StatusCode, e.Body)
}

// Unwrap permite errors.Is(err, domain.ErrUpstream) y el mapeo 404 -> ErrNotFound.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return domain.ErrUpstream
}

// Client es el cliente HTTP del API de negocio.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// New construye el cliente. El TokenSource se registra después con SetTokenSource
// (mismo orden que el arranque real: el proveedor de identidad se inicializa
// en paralelo al resto del cableado).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetTokenSource registra el obtentor de tokens. Hasta que se registre, las
// peticiones salen sin Authorization (el API de negocio las rechazará).
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// Get ejecuta GET path y decodifica la respuesta JSON en out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post ejecuta POST path con body JSON y decodifica la respuesta en out (puede ser nil).
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put ejecuta PUT path con body JSON y decodifica la respuesta en out (puede ser nil).
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete ejecuta DELETE path.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return fmt.Errorf("obtener token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}
