package liquidity

import (
	"walletfeed/internal/transaction"
)

// GenerateSteps maps a validated liquidity context to the ordered step list
// that carries it out. It is a pure function of the context, keyed by
// (type, unsigned, canBatchTransactions).
//
// Ordering invariant across all flows: revoke before approve (some tokens
// require a zero allowance before a new one can be set), approve before
// permit, and the position mutation last since it consumes everything before
// it.
func GenerateSteps(ctx *TxAndGasInfo) []Step {
	if !ctx.Valid() {
		return []Step{}
	}

	switch ctx.Type {
	case TypeCollect:
		return []Step{CollectFeesStep{TxRequest: ctx.TxRequest}}

	case TypeDecrease:
		steps := make([]Step, 0, 2)
		if ctx.ApprovePositionToken != nil {
			steps = append(steps, TokenApprovalStep{TxRequest: ctx.ApprovePositionToken})
		}
		return append(steps, DecreasePositionStep{TxRequest: ctx.TxRequest})

	case TypeMigrate:
		return migrateSteps(ctx)

	case TypeCreate, TypeIncrease:
		if ctx.Unsigned {
			return unsignedIncreaseSteps(ctx)
		}
		return signedIncreaseSteps(ctx)
	}

	return []Step{}
}

func migrateSteps(ctx *TxAndGasInfo) []Step {
	if ctx.Unsigned {
		// the permit signature replaces any on-chain approval/permit steps;
		// the migration request is built against the permit deadline
		return []Step{
			Permit2SignatureStep{Permit: ctx.Permit},
			MigratePositionAsyncStep{BuildRequest: ctx.BuildWithSignature},
		}
	}

	steps := make([]Step, 0, 3)
	if ctx.PositionTokenPermit != nil {
		steps = append(steps, Permit2TransactionStep{TxRequest: ctx.PositionTokenPermit})
	}
	if ctx.ApprovePositionToken != nil {
		steps = append(steps, TokenApprovalStep{TxRequest: ctx.ApprovePositionToken})
	}
	return append(steps, MigratePositionStep{TxRequest: ctx.TxRequest})
}

func unsignedIncreaseSteps(ctx *TxAndGasInfo) []Step {
	steps := make([]Step, 0, 7)
	steps = appendRevocations(steps, ctx)
	steps = appendApprovals(steps, ctx)
	steps = append(steps, Permit2SignatureStep{Permit: ctx.Permit})
	return append(steps, IncreasePositionAsyncStep{
		CreatesPosition: ctx.Type == TypeCreate,
		BuildRequest:    ctx.BuildWithSignature,
	})
}

func signedIncreaseSteps(ctx *TxAndGasInfo) []Step {
	steps := make([]Step, 0, 8)
	steps = appendRevocations(steps, ctx)
	steps = appendApprovals(steps, ctx)
	if ctx.Token0Permit != nil {
		steps = append(steps, Permit2TransactionStep{Token: ctx.Action.Currency0.CurrencyID, TxRequest: ctx.Token0Permit})
	}
	if ctx.Token1Permit != nil {
		steps = append(steps, Permit2TransactionStep{Token: ctx.Action.Currency1.CurrencyID, TxRequest: ctx.Token1Permit})
	}
	steps = append(steps, IncreasePositionStep{TxRequest: ctx.TxRequest})

	if !ctx.CanBatchTransactions {
		return steps
	}

	// collapse the entire flow into one wallet-level batch call, preserving
	// the relative order of the individual requests
	requests := make([]*transaction.Request, 0, len(steps))
	for _, step := range steps {
		onChain, ok := step.(OnChainStep)
		if !ok {
			continue
		}
		requests = append(requests, onChain.Request())
	}
	return []Step{IncreasePositionBatchedStep{TxRequests: requests}}
}

func appendRevocations(steps []Step, ctx *TxAndGasInfo) []Step {
	if ctx.RevokeToken0 != nil {
		steps = append(steps, TokenRevocationStep{Token: ctx.Action.Currency0.CurrencyID, TxRequest: ctx.RevokeToken0})
	}
	if ctx.RevokeToken1 != nil {
		steps = append(steps, TokenRevocationStep{Token: ctx.Action.Currency1.CurrencyID, TxRequest: ctx.RevokeToken1})
	}
	return steps
}

func appendApprovals(steps []Step, ctx *TxAndGasInfo) []Step {
	if ctx.ApproveToken0 != nil {
		steps = append(steps, TokenApprovalStep{
			Token:     ctx.Action.Currency0.CurrencyID,
			Amount:    ctx.Action.Currency0.AmountRaw,
			TxRequest: ctx.ApproveToken0,
		})
	}
	if ctx.ApproveToken1 != nil {
		steps = append(steps, TokenApprovalStep{
			Token:     ctx.Action.Currency1.CurrencyID,
			Amount:    ctx.Action.Currency1.AmountRaw,
			TxRequest: ctx.ApproveToken1,
		})
	}
	if ctx.ApprovePositionToken != nil {
		steps = append(steps, TokenApprovalStep{TxRequest: ctx.ApprovePositionToken})
	}
	return steps
}
