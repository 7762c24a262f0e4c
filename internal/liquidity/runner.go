package liquidity

import (
	"context"
	"fmt"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name StepSigner . StepSigner
type StepSigner interface {
	SignTypedData(ctx context.Context, permit *PermitData) (string, error)
	SendTransaction(ctx context.Context, req *transaction.Request) (common.Hash, error)
	SendBatch(ctx context.Context, reqs []*transaction.Request) (common.Hash, error)
}

// StepError reports which step of a flow failed.
type StepError struct {
	Type StepType
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %s", e.Type, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Runner executes a generated step list in order, threading the permit
// signature from a signature step into the async steps that consume it.
// Submission is sequential; the first failure stops the flow.
type Runner struct {
	logs   *zap.SugaredLogger
	signer StepSigner
}

func NewRunner(logger *zap.SugaredLogger, signer StepSigner) *Runner {
	return &Runner{
		logs:   logger,
		signer: signer,
	}
}

// Run walks the steps. Submitted transaction hashes are returned in step
// order; an empty step list is a no-op, not an error.
func (r *Runner) Run(ctx context.Context, steps []Step) ([]common.Hash, error) {
	var signature string
	hashes := make([]common.Hash, 0, len(steps))

	for _, step := range steps {
		switch s := step.(type) {
		case Permit2SignatureStep:
			signed, err := r.signer.SignTypedData(ctx, s.Permit)
			if err != nil {
				return hashes, &StepError{Type: s.StepType(), Err: err}
			}
			signature = signed

		case IncreasePositionAsyncStep:
			hash, err := r.runAsync(ctx, s.StepType(), s.BuildRequest, signature)
			if err != nil {
				return hashes, err
			}
			hashes = append(hashes, hash)

		case MigratePositionAsyncStep:
			hash, err := r.runAsync(ctx, s.StepType(), s.BuildRequest, signature)
			if err != nil {
				return hashes, err
			}
			hashes = append(hashes, hash)

		case IncreasePositionBatchedStep:
			hash, err := r.signer.SendBatch(ctx, s.TxRequests)
			if err != nil {
				return hashes, &StepError{Type: s.StepType(), Err: err}
			}
			hashes = append(hashes, hash)

		default:
			onChain, ok := step.(OnChainStep)
			if !ok {
				return hashes, &StepError{Type: step.StepType(), Err: fmt.Errorf("unexpected step type")}
			}
			hash, err := r.signer.SendTransaction(ctx, onChain.Request())
			if err != nil {
				return hashes, &StepError{Type: step.StepType(), Err: err}
			}
			r.logs.Infow("step submitted", "step", step.StepType(), "hash", hash.Hex())
			hashes = append(hashes, hash)
		}
	}

	return hashes, nil
}

func (r *Runner) runAsync(ctx context.Context, stepType StepType, build RequestBuilder, signature string) (common.Hash, error) {
	if signature == "" {
		return common.Hash{}, &StepError{Type: stepType, Err: fmt.Errorf("signature required before async step")}
	}

	req, err := build(ctx, signature)
	if err != nil {
		return common.Hash{}, &StepError{Type: stepType, Err: fmt.Errorf("build request: %w", err)}
	}
	if req == nil {
		return common.Hash{}, &StepError{Type: stepType, Err: fmt.Errorf("builder returned no request")}
	}

	hash, err := r.signer.SendTransaction(ctx, req)
	if err != nil {
		return common.Hash{}, &StepError{Type: stepType, Err: err}
	}
	r.logs.Infow("step submitted", "step", stepType, "hash", hash.Hex())
	return hash, nil
}
