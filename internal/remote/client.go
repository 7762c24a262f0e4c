package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name HTTPDoer . HTTPDoer
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// IndexerClient reads the remote indexing backend's view of a wallet's
// transactions.
type IndexerClient struct {
	logs    *zap.SugaredLogger
	baseURL string
	client  HTTPDoer
}

func NewIndexerClient(logger *zap.SugaredLogger, baseURL string, client HTTPDoer) *IndexerClient {
	return &IndexerClient{
		logs:    logger,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// GetRemoteTransactions fetches transactions observed on-chain for the given
// owners, restricted to the enabled chains.
func (c *IndexerClient) GetRemoteTransactions(
	ctx context.Context,
	owners []common.Address,
	enabledChains map[transaction.ChainID]struct{},
) ([]transaction.Record, error) {
	params := url.Values{}
	for _, owner := range owners {
		params.Add("address", strings.ToLower(owner.Hex()))
	}
	for chainID := range enabledChains {
		params.Add("chainId", strconv.FormatUint(uint64(chainID), 10))
	}

	endpoint := fmt.Sprintf("%s/v1/transactions?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list transactions: unexpected status %d", resp.StatusCode)
	}

	var payload listTransactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode transactions response: %w", err)
	}

	records := make([]transaction.Record, 0, len(payload.Transactions))
	for _, wire := range payload.Transactions {
		rec, err := wire.toRecord()
		if err != nil {
			// one malformed entry should not lose the rest of the page
			c.logs.Errorw("decoding remote transaction", "error", err, "id", wire.ID)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}
