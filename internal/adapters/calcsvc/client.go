// Package calcsvc is the HTTP client for the remote calculation service.
package calcsvc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/ldamico/sueldos-comercio/internal/domain"
)

// Client talks JSON to the calculation service. It implements
// ports.CalculationService.
type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: http.DefaultClient,
	}
}

// Metadata fetches the classification tree and months index.
func (c *Client) Metadata(ctx context.Context) (*domain.Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/meta", nil)
	if err != nil {
		return nil, err
	}
	var meta domain.Metadata
	if err := c.do(req, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// CalcularMensual runs a monthly calculation.
func (c *Client) CalcularMensual(ctx context.Context, in *domain.EntradaMensual) (*domain.ResultadoMensual, error) {
	var out domain.ResultadoMensual
	if err := c.post(ctx, "/api/calc/mensual", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CalcularFinal runs a final-settlement calculation.
func (c *Client) CalcularFinal(ctx context.Context, in *domain.EntradaFinal) (*domain.ResultadoFinal, error) {
	var out domain.ResultadoFinal
	if err := c.post(ctx, "/api/calc/final", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("servicio de cálculo: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("servicio de cálculo: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.New(failureMessage(raw, resp.StatusCode))
	}

	// A success body the service mangled decodes to the zero value, so
	// downstream field access degrades to defaults instead of failing
	// the whole action.
	_ = json.Unmarshal(raw, out)
	return nil
}

// failureMessage prefers the service-provided detail over the transport
// status text.
func failureMessage(raw []byte, status int) string {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &e); err == nil && e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(status)
}
