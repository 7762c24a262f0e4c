package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"walletfeed/internal/cancel"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// Permit2 lives at the same address on every chain.
var permit2Address = common.HexToAddress("0x000000000022D473030F116dDEE9F6B43aC78BA3")

const invalidateNoncesABI = `[{
	"name": "invalidateUnorderedNonces",
	"type": "function",
	"stateMutability": "nonpayable",
	"inputs": [
		{"name": "wordPos", "type": "uint256"},
		{"name": "mask", "type": "uint256"}
	],
	"outputs": []
}]`

// Permit2Factory builds the transactions that cancel UniswapX orders by
// invalidating their Permit2 nonces. Orders sharing a nonce word collapse
// into one invalidation call.
type Permit2Factory struct {
	logs *zap.SugaredLogger
	abi  abi.ABI
}

func NewPermit2Factory(logger *zap.SugaredLogger) (*Permit2Factory, error) {
	parsed, err := abi.JSON(strings.NewReader(invalidateNoncesABI))
	if err != nil {
		return nil, fmt.Errorf("parse permit2 abi: %w", err)
	}
	return &Permit2Factory{
		logs: logger,
		abi:  parsed,
	}, nil
}

func (f *Permit2Factory) BuildCancellation(
	ctx context.Context,
	data []cancel.CancellationData,
	chainID transaction.ChainID,
	from common.Address,
) (*cancel.Batch, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("no orders to cancel")
	}

	// group order nonces into (wordPos, bit mask) pairs
	masks := make(map[string]*big.Int)
	for _, order := range data {
		nonce, err := orderNonce(order.EncodedOrder)
		if err != nil {
			return nil, fmt.Errorf("recover nonce for order %s: %w", order.OrderHash, err)
		}

		wordPos := new(big.Int).Rsh(nonce, 8)
		bitPos := new(big.Int).And(nonce, big.NewInt(0xff)).Uint64()

		key := wordPos.String()
		if masks[key] == nil {
			masks[key] = new(big.Int)
		}
		masks[key].SetBit(masks[key], int(bitPos), 1)
	}

	words := make([]string, 0, len(masks))
	for word := range masks {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		a, _ := new(big.Int).SetString(words[i], 10)
		b, _ := new(big.Int).SetString(words[j], 10)
		return a.Cmp(b) < 0
	})

	batch := &cancel.Batch{}
	for _, word := range words {
		wordPos, _ := new(big.Int).SetString(word, 10)
		calldata, err := f.abi.Pack("invalidateUnorderedNonces", wordPos, masks[word])
		if err != nil {
			return nil, fmt.Errorf("pack invalidateUnorderedNonces: %w", err)
		}

		to := permit2Address
		batch.Requests = append(batch.Requests, &transaction.Request{
			ChainID: chainID,
			From:    from,
			To:      &to,
			Data:    calldata,
		})
	}

	f.logs.Infow("built cancellation batch",
		"orders", len(data),
		"calls", len(batch.Requests),
		"chain_id", chainID)

	return batch, nil
}

// orderNonce pulls the Permit2 nonce out of an ABI-encoded UniswapX order.
// Every order variant starts with an OrderInfo tuple whose third word is the
// nonce, so the walk is offset-to-order, offset-to-info, third word of info.
func orderNonce(encodedOrder string) (*big.Int, error) {
	raw, err := hexutil.Decode(encodedOrder)
	if err != nil {
		return nil, fmt.Errorf("decode order hex: %w", err)
	}

	orderOffset, err := wordAt(raw, 0)
	if err != nil {
		return nil, err
	}
	infoOffset, err := wordAt(raw, orderOffset)
	if err != nil {
		return nil, err
	}
	nonceAt := orderOffset + infoOffset + 64
	if nonceAt < 0 || nonceAt+32 > len(raw) {
		return nil, fmt.Errorf("encoded order truncated at offset %d", nonceAt)
	}

	return new(big.Int).SetBytes(raw[nonceAt : nonceAt+32]), nil
}

func wordAt(raw []byte, offset int) (int, error) {
	if offset < 0 || offset+32 > len(raw) {
		return 0, fmt.Errorf("encoded order truncated at offset %d", offset)
	}
	word := new(big.Int).SetBytes(raw[offset : offset+32])
	if !word.IsInt64() {
		return 0, fmt.Errorf("implausible offset word at %d", offset)
	}
	return int(word.Int64()), nil
}
