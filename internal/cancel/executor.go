package cancel

import (
	"context"
	"errors"
	"fmt"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// Submission is one entry of a batch that made it on-chain.
type Submission struct {
	Request *transaction.Request
	Hash    common.Hash
	Receipt *types.Receipt
}

// Outcome reports what a cancellation flow actually did. Submissions may be
// non-empty even when the flow returns an error: entries submitted before the
// failure stay on-chain and are not compensated.
type Outcome struct {
	OrderHashes []string
	Submissions []Submission
}

// PartialSubmitError marks a batch that failed after some entries were
// already submitted.
type PartialSubmitError struct {
	FailedIndex int
	Submitted   int
	Err         error
}

func (e *PartialSubmitError) Error() string {
	return fmt.Sprintf("batch entry %d failed after %d submission(s): %s", e.FailedIndex, e.Submitted, e.Err)
}

func (e *PartialSubmitError) Unwrap() error { return e.Err }

// Executor submits a batch's entries strictly in order, one at a time, so
// wallet nonces are assigned sequentially.
type Executor struct {
	logs   *zap.SugaredLogger
	waiter ReceiptWaiter
}

func NewExecutor(logger *zap.SugaredLogger, waiter ReceiptWaiter) *Executor {
	return &Executor{
		logs:   logger,
		waiter: waiter,
	}
}

// Submit sends each request and collects one receipt per submission. A
// failed send stops the batch; entries already submitted are returned
// alongside the error and never rolled back. A submission whose receipt
// never shows up stays in the batch receiptless: the entry is on-chain
// whether or not its mining was observed.
func (x *Executor) Submit(ctx context.Context, signer Signer, batch *Batch) ([]Submission, error) {
	if batch == nil || len(batch.Requests) == 0 {
		return nil, nil
	}

	submissions := make([]Submission, 0, len(batch.Requests))
	for i, req := range batch.Requests {
		hash, err := signer.SendTransaction(ctx, req)
		if err != nil {
			x.logs.Errorw("batch submission failed",
				"error", err,
				"index", i,
				"submitted", len(submissions))
			return submissions, &PartialSubmitError{FailedIndex: i, Submitted: len(submissions), Err: err}
		}

		receipt, err := x.waiter.WaitReceipt(ctx, req.ChainID, hash)
		if err != nil {
			x.logs.Errorw("waiting for batch entry receipt",
				"error", err,
				"index", i,
				"hash", hash.Hex())
		}

		submissions = append(submissions, Submission{Request: req, Hash: hash, Receipt: receipt})
	}

	return submissions, nil
}

// IsPartial reports whether err carries a partial batch submission.
func IsPartial(err error) bool {
	var partial *PartialSubmitError
	return errors.As(err, &partial)
}
