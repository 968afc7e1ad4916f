package fakestore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/ports"
)

// Client consume el catálogo público de fakestoreapi.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient crea el cliente con timeout propio; el contexto de cada llamada
// puede acortarlo pero no extenderlo.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

var _ ports.ExternalCatalog = (*Client)(nil)

// FetchProducts descarga el listado completo de productos del catálogo externo.
func (c *Client) FetchProducts(ctx context.Context) ([]ports.ExternalProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("construir request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("consultar catálogo externo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catálogo externo respondió %d", resp.StatusCode)
	}

	var products []ports.ExternalProduct
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decodificar respuesta: %w", err)
	}
	return products, nil
}
