package liquidity

import (
	"walletfeed/internal/transaction"
)

// Type tags the liquidity operation a context describes.
type Type string

const (
	TypeCreate   Type = "create"
	TypeIncrease Type = "increase"
	TypeDecrease Type = "decrease"
	TypeMigrate  Type = "migrate"
	TypeCollect  Type = "collect"
)

// CurrencyAmount is one side of a liquidity action.
type CurrencyAmount struct {
	CurrencyID string
	ChainID    transaction.ChainID
	AmountRaw  string
}

// Action carries the pair the liquidity operation touches. Both currencies
// must live on the same chain.
type Action struct {
	Currency0 CurrencyAmount
	Currency1 CurrencyAmount
}

// TxAndGasInfo is a validated liquidity transaction context: the action plus
// every per-token approval/permit/revoke request the flow may need. A nil
// request means the corresponding step is not needed.
type TxAndGasInfo struct {
	Type   Type
	Action Action

	// Unsigned marks flows gathering permits as off-chain signatures rather
	// than on-chain permit transactions.
	Unsigned bool

	// CanBatchTransactions marks wallets able to execute the whole signed
	// flow as one atomic batch call.
	CanBatchTransactions bool

	Permit *PermitData

	RevokeToken0 *transaction.Request
	RevokeToken1 *transaction.Request

	ApproveToken0        *transaction.Request
	ApproveToken1        *transaction.Request
	ApprovePositionToken *transaction.Request

	Token0Permit        *transaction.Request
	Token1Permit        *transaction.Request
	PositionTokenPermit *transaction.Request

	// TxRequest executes the position mutation itself in signed flows.
	TxRequest *transaction.Request

	// BuildWithSignature resolves the execution request for unsigned flows
	// once the permit signature exists.
	BuildWithSignature RequestBuilder
}

// Valid reports whether the context is complete enough to generate steps
// from. Callers treat steps generated from an invalid context — an empty
// list — as nothing to execute, not as an error.
func (c *TxAndGasInfo) Valid() bool {
	if c == nil {
		return false
	}

	switch c.Type {
	case TypeCreate, TypeIncrease, TypeDecrease, TypeMigrate, TypeCollect:
	default:
		return false
	}

	if c.Action.Currency0.ChainID == 0 || c.Action.Currency0.ChainID != c.Action.Currency1.ChainID {
		return false
	}

	switch c.Type {
	case TypeCollect, TypeDecrease:
		return c.TxRequest != nil
	case TypeMigrate, TypeCreate, TypeIncrease:
		if c.Unsigned {
			return c.Permit != nil && c.BuildWithSignature != nil
		}
		return c.TxRequest != nil
	}
	return false
}
