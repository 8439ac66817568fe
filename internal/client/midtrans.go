package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"toko-backend/internal/config"
)

// MidtransClient wraps the Snap API. One call per checkout; failures are
// surfaced to the caller without retry.
type MidtransClient interface {
	CreateSnapTransaction(ctx context.Context, req *SnapRequest) (*SnapResponse, error)
}

type SnapRequest struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
	CustomerDetails    CustomerDetails    `json:"customer_details"`
	ItemDetails        []ItemDetail       `json:"item_details"`
}

type TransactionDetails struct {
	OrderID     string  `json:"order_id"`
	GrossAmount float64 `json:"gross_amount"`
}

type CustomerDetails struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
}

type ItemDetail struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Name     string  `json:"name"`
}

type SnapResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type midtransClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	serverKey  string
}

func NewMidtransClient(cfg *config.Midtrans) MidtransClient {
	return &midtransClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		serverKey:  cfg.ServerKey,
	}
}

func (c *midtransClientImpl) CreateSnapTransaction(ctx context.Context, snapReq *SnapRequest) (*SnapResponse, error) {
	body, err := json.Marshal(snapReq)
	if err != nil {
		return nil, fmt.Errorf("marshal snap payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/snap/v1/transactions",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	// Snap authenticates with the server key as basic-auth username.
	auth := base64.StdEncoding.EncodeToString([]byte(c.serverKey + ":"))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("midtrans error %d: %s", resp.StatusCode, string(b))
	}

	var result SnapResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode midtrans response: %w", err)
	}

	return &result, nil
}
