package liquidity

import (
	"context"
	"encoding/json"
	"walletfeed/internal/transaction"
)

// StepType discriminates the atomic actions a liquidity flow is made of.
type StepType string

const (
	StepTokenRevocation         StepType = "TokenRevocationTransaction"
	StepTokenApproval           StepType = "TokenApprovalTransaction"
	StepPermit2Signature        StepType = "Permit2Signature"
	StepPermit2Transaction      StepType = "Permit2Transaction"
	StepIncreasePosition        StepType = "IncreasePositionTransaction"
	StepIncreasePositionAsync   StepType = "IncreasePositionTransactionAsync"
	StepIncreasePositionBatched StepType = "IncreasePositionTransactionBatched"
	StepDecreasePosition        StepType = "DecreasePositionTransaction"
	StepMigratePosition         StepType = "MigratePositionTransaction"
	StepMigratePositionAsync    StepType = "MigratePositionTransactionAsync"
	StepCollectFees             StepType = "CollectFeesTransaction"
)

// Step is one atomic action in a multi-step flow: either a signable message
// (Permit2Signature) or an on-chain transaction request. Step lists are
// constructed fresh per invocation and have no persisted identity.
type Step interface {
	StepType() StepType
}

// OnChainStep is implemented by every step carrying a ready transaction
// request, letting the runner submit them uniformly.
type OnChainStep interface {
	Step
	Request() *transaction.Request
}

// RequestBuilder resolves an async step's transaction request once the
// permit signature gathered earlier in the flow is known.
type RequestBuilder func(ctx context.Context, signature string) (*transaction.Request, error)

// PermitData is the EIP-712 payload a Permit2Signature step asks the wallet
// to sign.
type PermitData struct {
	Domain      json.RawMessage `json:"domain"`
	Types       json.RawMessage `json:"types"`
	PrimaryType string          `json:"primaryType"`
	Values      json.RawMessage `json:"values"`
	Deadline    int64           `json:"deadline,omitempty"`
}

type TokenRevocationStep struct {
	Token     string
	TxRequest *transaction.Request
}

func (TokenRevocationStep) StepType() StepType              { return StepTokenRevocation }
func (s TokenRevocationStep) Request() *transaction.Request { return s.TxRequest }

type TokenApprovalStep struct {
	Token     string
	Amount    string
	TxRequest *transaction.Request
}

func (TokenApprovalStep) StepType() StepType              { return StepTokenApproval }
func (s TokenApprovalStep) Request() *transaction.Request { return s.TxRequest }

type Permit2SignatureStep struct {
	Permit *PermitData
}

func (Permit2SignatureStep) StepType() StepType { return StepPermit2Signature }

type Permit2TransactionStep struct {
	Token     string
	TxRequest *transaction.Request
}

func (Permit2TransactionStep) StepType() StepType              { return StepPermit2Transaction }
func (s Permit2TransactionStep) Request() *transaction.Request { return s.TxRequest }

type IncreasePositionStep struct {
	TxRequest *transaction.Request
}

func (IncreasePositionStep) StepType() StepType              { return StepIncreasePosition }
func (s IncreasePositionStep) Request() *transaction.Request { return s.TxRequest }

// IncreasePositionAsyncStep resolves its request from the permit signature.
// CreatesPosition distinguishes pool creation from adding to an existing
// position; both occupy the same slot in the flow.
type IncreasePositionAsyncStep struct {
	CreatesPosition bool
	BuildRequest    RequestBuilder
}

func (IncreasePositionAsyncStep) StepType() StepType { return StepIncreasePositionAsync }

// IncreasePositionBatchedStep carries an entire signed increase/create flow
// collapsed into one wallet-level batch call.
type IncreasePositionBatchedStep struct {
	TxRequests []*transaction.Request
}

func (IncreasePositionBatchedStep) StepType() StepType { return StepIncreasePositionBatched }

type DecreasePositionStep struct {
	TxRequest *transaction.Request
}

func (DecreasePositionStep) StepType() StepType              { return StepDecreasePosition }
func (s DecreasePositionStep) Request() *transaction.Request { return s.TxRequest }

type MigratePositionStep struct {
	TxRequest *transaction.Request
}

func (MigratePositionStep) StepType() StepType              { return StepMigratePosition }
func (s MigratePositionStep) Request() *transaction.Request { return s.TxRequest }

type MigratePositionAsyncStep struct {
	BuildRequest RequestBuilder
}

func (MigratePositionAsyncStep) StepType() StepType { return StepMigratePositionAsync }

type CollectFeesStep struct {
	TxRequest *transaction.Request
}

func (CollectFeesStep) StepType() StepType              { return StepCollectFees }
func (s CollectFeesStep) Request() *transaction.Request { return s.TxRequest }
