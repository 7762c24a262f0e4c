package cancel

import (
	"context"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// OrderEncoding is one entry of the order API's response.
type OrderEncoding struct {
	OrderHash    string `json:"orderHash"`
	EncodedOrder string `json:"encodedOrder"`
	OrderStatus  string `json:"orderStatus"`
}

//counterfeiter:generate -o fake -fake-name EncodedOrderFetcher . EncodedOrderFetcher
type EncodedOrderFetcher interface {
	// FetchEncodedOrders must tolerate an empty hash list (returning empty)
	// and must return an error on transport failure.
	FetchEncodedOrders(ctx context.Context, orderHashes []string) ([]OrderEncoding, error)
}

// Batch is the factory's result: the ordered on-chain calls needed to cancel
// a set of orders. A batch may hold a single request; keeping the slice shape
// prevents callers from mistaking a multi-call batch for one transaction.
type Batch struct {
	Requests []*transaction.Request
}

//counterfeiter:generate -o fake -fake-name Factory . Factory
type Factory interface {
	BuildCancellation(
		ctx context.Context,
		data []CancellationData,
		chainID transaction.ChainID,
		from common.Address,
	) (*Batch, error)
}

//counterfeiter:generate -o fake -fake-name Signer . Signer
type Signer interface {
	SendTransaction(ctx context.Context, req *transaction.Request) (common.Hash, error)
}

//counterfeiter:generate -o fake -fake-name Submitter . Submitter
type Submitter interface {
	GetSigner(from common.Address) (Signer, error)
}

//counterfeiter:generate -o fake -fake-name ReceiptWaiter . ReceiptWaiter
type ReceiptWaiter interface {
	WaitReceipt(ctx context.Context, chainID transaction.ChainID, hash common.Hash) (*types.Receipt, error)
}
