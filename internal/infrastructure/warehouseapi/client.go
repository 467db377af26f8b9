package warehouseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/agrivault-booking/internal/application"
	"github.com/DanielPopoola/agrivault-booking/internal/config"
	"github.com/DanielPopoola/agrivault-booking/internal/domain"
)

// HTTPClient talks to the AgriVault warehouse API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.WarehouseAPIConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *HTTPClient) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	endpoint := fmt.Sprintf("%s/warehouses", c.baseURL)
	resp, err := sendRequest[any, []WarehouseResponse](c, ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return nil, err
	}

	warehouses := make([]domain.Warehouse, 0, len(*resp))
	for _, w := range *resp {
		warehouses = append(warehouses, w.toDomain())
	}
	return warehouses, nil
}

func (c *HTTPClient) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	endpoint := fmt.Sprintf("%s/warehouses/%s", c.baseURL, url.PathEscape(id))
	resp, err := sendRequest[any, WarehouseResponse](c, ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		if upErr, ok := application.IsUpstreamError(err); ok && upErr.StatusCode == http.StatusNotFound {
			return nil, domain.NewWarehouseNotFoundError(id)
		}
		return nil, err
	}

	w := resp.toDomain()
	return &w, nil
}

// FinalizeBooking marks the warehouse booked. The response body is not needed; the
// status code carries the outcome.
func (c *HTTPClient) FinalizeBooking(ctx context.Context, token, warehouseID string, handle domain.TransactionHandle) error {
	endpoint := fmt.Sprintf("%s/warehouses/%s/book", c.baseURL, url.PathEscape(warehouseID))
	req := BookRequest{TransactionHash: string(handle)}
	_, err := sendRequest[BookRequest, json.RawMessage](c, ctx, http.MethodPut, endpoint, &req, token)
	return err
}

func sendRequest[Req any, Resp any](c *HTTPClient, ctx context.Context, method, endpoint string, reqBody *Req, token string) (*Resp, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		var errResp application.UpstreamErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Message == "" {
			errResp.Message = strings.TrimSpace(string(body))
			if errResp.Message == "" {
				errResp.Message = http.StatusText(resp.StatusCode)
			}
		}
		return nil, &application.UpstreamError{
			Message:    errResp.Message,
			StatusCode: resp.StatusCode,
		}
	}

	var out Resp
	if resp.StatusCode == http.StatusNoContent {
		return &out, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &out, nil
}
