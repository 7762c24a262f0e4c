package ethereum

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"
	"time"
	"walletfeed/internal/cancel"
	"walletfeed/internal/liquidity"
	"walletfeed/internal/transaction"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"go.uber.org/zap"
)

const receiptPollInterval = 2 * time.Second
const receiptPollTimeout = 2 * time.Minute

// Provider is the transaction submission side of the service: it signs
// requests with the configured service key and sends them through the
// ethereum client. Key management beyond holding one configured key is out
// of scope.
type Provider struct {
	logs   *zap.SugaredLogger
	client EthClient
	key    *ecdsa.PrivateKey
	from   common.Address
}

func NewProvider(logger *zap.SugaredLogger, client EthClient, hexKey string) (*Provider, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	return &Provider{
		logs:   logger,
		client: client,
		key:    key,
		from:   crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// GetSigner returns a signer for the given address. Only the configured
// service address can sign.
func (p *Provider) GetSigner(from common.Address) (cancel.Signer, error) {
	if from != p.from {
		return nil, fmt.Errorf("no key available for %s", from.Hex())
	}
	return &keySigner{provider: p}, nil
}

// StepSigner returns the signer used by liquidity step execution.
func (p *Provider) StepSigner() liquidity.StepSigner {
	return &keySigner{provider: p}
}

// WaitReceipt polls for the receipt of a submitted transaction until it is
// mined or the poll window closes. Implements cancel.ReceiptWaiter.
func (p *Provider) WaitReceipt(ctx context.Context, _ transaction.ChainID, hash common.Hash) (*types.Receipt, error) {
	ctx, cancelPoll := context.WithTimeout(ctx, receiptPollTimeout)
	defer cancelPoll()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := p.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for receipt of %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}

type keySigner struct {
	provider *Provider
}

// SendTransaction fills in whatever gas fields the request left unset, signs
// and broadcasts.
func (s *keySigner) SendTransaction(ctx context.Context, req *transaction.Request) (common.Hash, error) {
	p := s.provider

	nonce, err := s.nonce(ctx, req)
	if err != nil {
		return common.Hash{}, err
	}

	tipCap := (*big.Int)(req.MaxPriorityFeePerGas)
	if tipCap == nil {
		if tipCap, err = p.client.SuggestGasTipCap(ctx); err != nil {
			return common.Hash{}, fmt.Errorf("suggest gas tip cap: %w", err)
		}
	}

	feeCap := (*big.Int)(req.MaxFeePerGas)
	if feeCap == nil {
		if feeCap, err = p.client.SuggestGasPrice(ctx); err != nil {
			return common.Hash{}, fmt.Errorf("suggest gas price: %w", err)
		}
	}

	gasLimit := req.GasLimit
	if gasLimit == 0 {
		msg := goethereum.CallMsg{
			From:  p.from,
			To:    req.To,
			Value: (*big.Int)(req.Value),
			Data:  req.Data,
		}
		if gasLimit, err = p.client.EstimateGas(ctx, msg); err != nil {
			return common.Hash{}, fmt.Errorf("estimate gas: %w", err)
		}
	}

	chainID := new(big.Int).SetUint64(uint64(req.ChainID))
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gasLimit,
		To:        req.To,
		Value:     (*big.Int)(req.Value),
		Data:      req.Data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), p.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign transaction: %w", err)
	}

	if err := p.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	p.logs.Infow("transaction submitted", "hash", signed.Hash().Hex(), "nonce", nonce, "chainId", req.ChainID)
	return signed.Hash(), nil
}

// SendBatch submits the requests strictly in order and returns the hash of
// the final entry, the position mutation. Atomic wallet-level batching needs
// wallet support this provider does not have, so nonce ordering is the only
// batching guarantee here.
func (s *keySigner) SendBatch(ctx context.Context, reqs []*transaction.Request) (common.Hash, error) {
	var last common.Hash
	for i, req := range reqs {
		hash, err := s.SendTransaction(ctx, req)
		if err != nil {
			return common.Hash{}, fmt.Errorf("batch entry %d: %w", i, err)
		}
		last = hash
	}
	return last, nil
}

// SignTypedData signs an EIP-712 permit payload.
func (s *keySigner) SignTypedData(_ context.Context, permit *liquidity.PermitData) (string, error) {
	if permit == nil {
		return "", fmt.Errorf("no permit data to sign")
	}

	var typedData apitypes.TypedData
	typedData.PrimaryType = permit.PrimaryType

	if err := json.Unmarshal(permit.Types, &typedData.Types); err != nil {
		return "", fmt.Errorf("decode permit types: %w", err)
	}
	if err := json.Unmarshal(permit.Domain, &typedData.Domain); err != nil {
		return "", fmt.Errorf("decode permit domain: %w", err)
	}
	if err := json.Unmarshal(permit.Values, &typedData.Message); err != nil {
		return "", fmt.Errorf("decode permit values: %w", err)
	}

	digest, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return "", fmt.Errorf("hash typed data: %w", err)
	}

	sig, err := crypto.Sign(digest, s.provider.key)
	if err != nil {
		return "", fmt.Errorf("sign typed data: %w", err)
	}
	sig[64] += 27

	return hexutil.Encode(sig), nil
}

func (s *keySigner) nonce(ctx context.Context, req *transaction.Request) (uint64, error) {
	if req.Nonce != nil {
		return uint64(*req.Nonce), nil
	}
	nonce, err := s.provider.client.PendingNonceAt(ctx, s.provider.from)
	if err != nil {
		return 0, fmt.Errorf("pending nonce: %w", err)
	}
	return nonce, nil
}
