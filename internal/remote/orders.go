package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"walletfeed/internal/cancel"

	"go.uber.org/zap"
)

// OrderClient fetches encoded UniswapX order payloads from the order API for
// orders the wallet no longer holds locally.
type OrderClient struct {
	logs    *zap.SugaredLogger
	baseURL string
	client  HTTPDoer
}

func NewOrderClient(logger *zap.SugaredLogger, baseURL string, client HTTPDoer) *OrderClient {
	return &OrderClient{
		logs:    logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// FetchEncodedOrders returns the order API's entries for the given hashes.
// An empty input returns empty without a round-trip. Transport and status
// failures are returned as errors; the caller decides how soft to fail.
func (c *OrderClient) FetchEncodedOrders(ctx context.Context, orderHashes []string) ([]cancel.OrderEncoding, error) {
	if len(orderHashes) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("orderHashes", strings.Join(orderHashes, ","))

	endpoint := fmt.Sprintf("%s/v2/orders?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list orders: unexpected status %d", resp.StatusCode)
	}

	var payload listOrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}

	encodings := make([]cancel.OrderEncoding, 0, len(payload.Orders))
	for _, order := range payload.Orders {
		encodings = append(encodings, cancel.OrderEncoding{
			OrderHash:    order.OrderHash,
			EncodedOrder: order.EncodedOrder,
			OrderStatus:  order.OrderStatus,
		})
	}

	c.logs.Infow("encoded orders fetched", "requested", len(orderHashes), "returned", len(encodings))
	return encodings, nil
}
