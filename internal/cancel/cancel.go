package cancel

import (
	"context"
	"fmt"
	"sort"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// CancellationData is the minimal payload needed to build an on-chain
// cancellation for one order.
type CancellationData struct {
	OrderHash    string
	EncodedOrder string
	Routing      transaction.Routing
}

// Canceller turns a set of the wallet's UniswapX orders into submitted
// cancellation transactions: it gathers encoded order payloads (locally held
// or fetched), builds cancellation requests per chain through the factory,
// and submits them sequentially.
type Canceller struct {
	logs      *zap.SugaredLogger
	fetcher   EncodedOrderFetcher
	factory   Factory
	submitter Submitter
	executor  *Executor
}

func NewCanceller(
	logger *zap.SugaredLogger,
	fetcher EncodedOrderFetcher,
	factory Factory,
	submitter Submitter,
	waiter ReceiptWaiter,
) *Canceller {
	return &Canceller{
		logs:      logger,
		fetcher:   fetcher,
		factory:   factory,
		submitter: submitter,
		executor:  NewExecutor(logger, waiter),
	}
}

// ExtractCancellationData filters orders to those already holding a valid
// encoded order payload locally. The input is never mutated; orders without
// local encoding are simply excluded, not fetched here.
func ExtractCancellationData(orders []transaction.Record) []CancellationData {
	withEncoding := lo.Filter(orders, func(tx transaction.Record, _ int) bool {
		return hasValidEncodedOrder(tx)
	})
	return lo.Map(withEncoding, func(tx transaction.Record, _ int) CancellationData {
		return CancellationData{
			OrderHash:    tx.OrderHash,
			EncodedOrder: tx.EncodedOrder,
			Routing:      tx.Routing,
		}
	})
}

// FetchMissingEncodedOrders recovers encodings for orders that lack one
// locally, through the injected fetcher. Orders the fetcher does not know
// about are dropped silently; a fetcher failure is logged and yields an empty
// result rather than an error, so the rest of the cancellation flow proceeds
// with whatever data is available.
func (c *Canceller) FetchMissingEncodedOrders(ctx context.Context, orders []transaction.Record) []CancellationData {
	missing := lo.Filter(orders, func(tx transaction.Record, _ int) bool {
		return !hasValidEncodedOrder(tx)
	})
	if len(missing) == 0 {
		return nil
	}

	hashes := lo.Map(missing, func(tx transaction.Record, _ int) string { return tx.OrderHash })

	fetched, err := c.fetcher.FetchEncodedOrders(ctx, hashes)
	if err != nil {
		c.logs.Errorw("fetching encoded orders", "error", err, "orderHashes", hashes)
		return nil
	}

	byHash := make(map[string]OrderEncoding, len(fetched))
	for _, enc := range fetched {
		byHash[enc.OrderHash] = enc
	}

	data := make([]CancellationData, 0, len(missing))
	for _, tx := range missing {
		enc, ok := byHash[tx.OrderHash]
		if !ok || enc.EncodedOrder == "" {
			continue
		}
		data = append(data, CancellationData{
			OrderHash:    tx.OrderHash,
			EncodedOrder: enc.EncodedOrder,
			Routing:      tx.Routing,
		})
	}
	return data
}

// OrdersMatchingCancellationData projects the original order records whose
// hash appears in the cancellation-data set, preserving their full metadata.
func OrdersMatchingCancellationData(
	orders []transaction.Record,
	data []CancellationData,
) []transaction.Record {
	hashes := make(map[string]struct{}, len(data))
	for _, d := range data {
		hashes[d.OrderHash] = struct{}{}
	}
	return lo.Filter(orders, func(tx transaction.Record, _ int) bool {
		_, ok := hashes[tx.OrderHash]
		return ok
	})
}

// BuildCancelTransaction asks the factory for the cancellation calls covering
// the given orders on one chain and returns the first request, which callers
// use for gas estimation. Execution submits the whole batch.
func (c *Canceller) BuildCancelTransaction(
	ctx context.Context,
	data []CancellationData,
	chainID transaction.ChainID,
	from common.Address,
) (*transaction.Request, error) {
	batch, err := c.factory.BuildCancellation(ctx, data, chainID, from)
	if err != nil {
		return nil, fmt.Errorf("build cancellation: %w", err)
	}
	if batch == nil || len(batch.Requests) == 0 {
		return nil, nil
	}
	return batch.Requests[0], nil
}

// CancelOrders runs the full flow: extract locally-held encodings, fetch the
// missing ones, group cancellable orders by chain, then build and submit one
// batch per chain. Submission is sequential; a failure stops the current
// chain's batch and is reported with everything already submitted.
func (c *Canceller) CancelOrders(
	ctx context.Context,
	orders []transaction.Record,
	from common.Address,
) (*Outcome, error) {
	data := ExtractCancellationData(orders)
	data = append(data, c.FetchMissingEncodedOrders(ctx, orders)...)
	if len(data) == 0 {
		return &Outcome{}, nil
	}

	cancellable := OrdersMatchingCancellationData(orders, data)

	byChain := make(map[transaction.ChainID][]CancellationData)
	for _, tx := range cancellable {
		for _, d := range data {
			if d.OrderHash == tx.OrderHash {
				byChain[tx.ChainID] = append(byChain[tx.ChainID], d)
				break
			}
		}
	}

	outcome := &Outcome{}
	for _, chainID := range sortedChainIDs(byChain) {
		chainData := byChain[chainID]

		batch, err := c.factory.BuildCancellation(ctx, chainData, chainID, from)
		if err != nil {
			return outcome, fmt.Errorf("build cancellation for chain %d: %w", chainID, err)
		}
		if batch == nil || len(batch.Requests) == 0 {
			continue
		}

		signer, err := c.submitter.GetSigner(from)
		if err != nil {
			return outcome, fmt.Errorf("get signer: %w", err)
		}

		submitted, err := c.executor.Submit(ctx, signer, batch)
		outcome.Submissions = append(outcome.Submissions, submitted...)
		outcome.OrderHashes = append(outcome.OrderHashes, lo.Map(chainData,
			func(d CancellationData, _ int) string { return d.OrderHash })...)
		if err != nil {
			// earlier entries in the batch are already on-chain; surface the
			// partial result instead of swallowing it
			return outcome, fmt.Errorf("submit cancellation batch for chain %d: %w", chainID, err)
		}
	}

	return outcome, nil
}

func hasValidEncodedOrder(tx transaction.Record) bool {
	return tx.IsUniswapXOrder() && tx.OrderHash != "" && tx.EncodedOrder != ""
}

func sortedChainIDs(byChain map[transaction.ChainID][]CancellationData) []transaction.ChainID {
	ids := lo.Keys(byChain)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
