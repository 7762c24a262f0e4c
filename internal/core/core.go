package core

import (
	"context"
	"errors"
	"fmt"
	"walletfeed/internal/cancel"
	"walletfeed/internal/repository"
	"walletfeed/internal/transaction"
	tokenIssuer "walletfeed/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")
var ErrNoCancellableOrders error = errors.New("no cancellable orders")

// Feed serves a wallet's reconciled activity view and drives order
// cancellation against the local record store and the remote indexer.
type Feed struct {
	logs          *zap.SugaredLogger
	repo          Repository
	remote        RemoteSource
	canceller     Canceller
	jwtIssuer     JWTIssuer
	engine        *Engine
	enabledChains map[transaction.ChainID]struct{}
}

func NewFeed(
	logger *zap.SugaredLogger,
	repo Repository,
	remote RemoteSource,
	canceller Canceller,
	jwt JWTIssuer,
	enabledChains []transaction.ChainID,
) *Feed {
	chains := make(map[transaction.ChainID]struct{}, len(enabledChains))
	for _, id := range enabledChains {
		chains[id] = struct{}{}
	}
	return &Feed{
		logs:          logger,
		repo:          repo,
		remote:        remote,
		canceller:     canceller,
		jwtIssuer:     jwt,
		engine:        NewEngine(logger),
		enabledChains: chains,
	}
}

// Authenticate checks the provided credentials against the user table and
// issues a signed JWT on success.
func (f *Feed) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := f.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := f.jwtIssuer.Generate(tokenInfo)
	signed, err := f.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Activity returns the merged local/remote transaction list for an owner.
// Local records promoted to a terminal status by remote data are written back
// to the record store in the background; the returned view does not wait on
// those writes.
func (f *Feed) Activity(ctx context.Context, owner common.Address) ([]transaction.Record, error) {
	local, err := f.repo.GetLocalTransactions(ctx, []common.Address{owner})
	if err != nil {
		return nil, fmt.Errorf("get local transactions: %w", err)
	}

	remote, err := f.remote.GetRemoteTransactions(ctx, []common.Address{owner}, f.enabledChains)
	if err != nil {
		// serve the local-only view rather than failing the whole feed
		f.logs.Errorw("fetching remote transactions", "error", err, "owner", owner.Hex())
		remote = nil
	}

	merged, finalized := f.engine.Merge(local, remote, f.enabledChains)

	if len(finalized) > 0 {
		go f.drainFinalizeOutbox(context.WithoutCancel(ctx), finalized)
	}

	return merged, nil
}

// CancelOrders cancels the owner's UniswapX orders with the given order
// hashes. Orders that are already terminal or unknown locally are skipped;
// orders whose encoded payload cannot be recovered are reported as
// non-cancellable rather than failing the rest of the batch.
func (f *Feed) CancelOrders(ctx context.Context, owner common.Address, orderHashes []string) (*cancel.Outcome, error) {
	local, err := f.repo.GetLocalTransactions(ctx, []common.Address{owner})
	if err != nil {
		return nil, fmt.Errorf("get local transactions: %w", err)
	}

	requested := make(map[string]struct{}, len(orderHashes))
	for _, hash := range orderHashes {
		requested[hash] = struct{}{}
	}

	orders := make([]transaction.Record, 0, len(orderHashes))
	for _, tx := range local {
		if !tx.IsUniswapXOrder() || tx.Status.Finalized() {
			continue
		}
		if _, ok := requested[tx.OrderHash]; ok {
			orders = append(orders, tx)
		}
	}

	if len(orders) == 0 {
		return nil, ErrNoCancellableOrders
	}

	outcome, err := f.canceller.CancelOrders(ctx, orders, owner)
	if err != nil {
		return outcome, fmt.Errorf("cancel orders: %w", err)
	}
	return outcome, nil
}

// SubmitTransaction stores a transaction the wallet just sent or observed
// locally. Transactions on disabled chains are rejected up front so they
// never pollute the merged view.
func (f *Feed) SubmitTransaction(ctx context.Context, owner common.Address, tx transaction.Record) (string, error) {
	if _, ok := f.enabledChains[tx.ChainID]; !ok {
		return "", fmt.Errorf("chain %d is not enabled", tx.ChainID)
	}

	id, err := f.repo.SaveLocalTransaction(ctx, owner, tx)
	if err != nil {
		return "", fmt.Errorf("save local transaction: %w", err)
	}

	f.logs.Infow("local transaction recorded", "id", id, "owner", owner.Hex(), "chain_id", tx.ChainID)
	return id, nil
}

func (f *Feed) drainFinalizeOutbox(ctx context.Context, finalized []transaction.Record) {
	for _, tx := range finalized {
		if err := f.repo.FinalizeTransaction(ctx, tx); err != nil {
			f.logs.Errorw("failed to finalize transaction", "error", err, "id", tx.ID, "hash", tx.Hash)
		}
	}
}
