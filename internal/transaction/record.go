package transaction

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID identifies the network a transaction belongs to.
type ChainID uint64

// NetworkFee is the fee paid for an on-chain transaction, denominated in the
// chain's fee token. Remote data may refine a locally estimated fee.
type NetworkFee struct {
	Quantity     string  `json:"quantity"`
	TokenSymbol  string  `json:"tokenSymbol"`
	TokenAddress string  `json:"tokenAddress"`
	ChainID      ChainID `json:"chainId"`
}

// DappInfo is origination metadata for transactions initiated from an
// external dapp (WalletConnect and similar).
type DappInfo struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// Record represents one transaction or UniswapX order known to the wallet,
// whether submitted locally or reported by the remote indexer.
type Record struct {
	// ID is the wallet-local identifier, assigned at creation time.
	ID      string         `json:"id"`
	ChainID ChainID        `json:"chainId"`
	From    common.Address `json:"from"`

	// Hash is the on-chain transaction hash. Empty until the transaction is
	// broadcast, and empty forever for unfilled off-chain orders.
	Hash string `json:"hash,omitempty"`

	// OrderHash is set only for off-chain-signed UniswapX orders. A filled
	// order carries both OrderHash and Hash.
	OrderHash string `json:"orderHash,omitempty"`

	Routing    Routing     `json:"routing"`
	Status     Status      `json:"status"`
	TypeInfo   TypeInfo    `json:"typeInfo"`
	AddedTime  int64       `json:"addedTime"` // unix milliseconds
	NetworkFee *NetworkFee `json:"networkFee,omitempty"`

	// EncodedOrder is the serialized UniswapX order payload needed to build
	// an on-chain cancellation. Present only while the wallet still holds it.
	EncodedOrder string `json:"encodedOrder,omitempty"`

	DappInfo *DappInfo `json:"dappInfo,omitempty"`
}

// IsUniswapXOrder reports whether the record tracks an off-chain-signed order.
func (r Record) IsUniswapXOrder() bool {
	return r.Routing.IsUniswapX()
}

// IsOffChainFiat reports whether the record is a fiat on/off-ramp action that
// never carries an on-chain hash of its own.
func (r Record) IsOffChainFiat() bool {
	if r.TypeInfo == nil {
		return false
	}
	switch r.TypeInfo.Type() {
	case TypeOnRampPurchase, TypeOnRampTransfer, TypeOffRampSale:
		return true
	}
	return false
}

// CurrencyID builds the canonical chain-scoped currency identifier used to
// relate approvals to the swaps they enable.
func CurrencyID(chainID ChainID, tokenAddress string) string {
	return fmt.Sprintf("%d-%s", chainID, strings.ToLower(tokenAddress))
}
