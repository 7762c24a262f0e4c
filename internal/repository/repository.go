package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"walletfeed/internal/db"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

// WalletRepository is the Transaction Record Store: locally-known transaction
// records keyed by owner address, plus the user table backing API auth.
type WalletRepository struct {
	db Storage
}

func NewWalletRepository(db Storage) *WalletRepository {
	return &WalletRepository{
		db: db,
	}
}

func (r *WalletRepository) MigrateAndSeed(ctx context.Context) error {
	err := r.db.MigrateTable(&Transaction{}, &User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *WalletRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// GetLocalTransactions returns every locally-known record owned by any of
// the given addresses.
func (r *WalletRepository) GetLocalTransactions(ctx context.Context, owners []common.Address) ([]transaction.Record, error) {
	addresses := make([]string, 0, len(owners))
	for _, owner := range owners {
		addresses = append(addresses, strings.ToLower(owner.Hex()))
	}

	rows := []Transaction{}
	err := r.db.GetAllBy(ctx, "owner_address", addresses, &rows)
	if err != nil {
		return nil, fmt.Errorf("get transactions by owner: %w", err)
	}

	records := make([]transaction.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := rowToRecord(row)
		if err != nil {
			return nil, fmt.Errorf("decode stored transaction %q: %w", row.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveLocalTransaction records a transaction the wallet just submitted or
// observed. A new id is assigned when the caller did not set one.
func (r *WalletRepository) SaveLocalTransaction(ctx context.Context, owner common.Address, tx transaction.Record) (string, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}

	row, err := recordToRow(owner, tx)
	if err != nil {
		return "", fmt.Errorf("encode transaction: %w", err)
	}

	if err := r.db.SaveToTable(ctx, &[]Transaction{row}); err != nil {
		return "", fmt.Errorf("save transaction: %w", err)
	}
	return tx.ID, nil
}

// FinalizeTransaction marks a record terminal. The write is an idempotent
// upsert keyed by the record id, safe to repeat from the merge outbox.
func (r *WalletRepository) FinalizeTransaction(ctx context.Context, tx transaction.Record) error {
	owner := tx.From
	row, err := recordToRow(owner, tx)
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}

	if err := r.db.UpsertByColumns(ctx, []string{"id"}, &row); err != nil {
		return fmt.Errorf("finalize transaction: %w", err)
	}
	return nil
}

func recordToRow(owner common.Address, tx transaction.Record) (Transaction, error) {
	typeInfo, err := transaction.MarshalTypeInfo(tx.TypeInfo)
	if err != nil {
		return Transaction{}, err
	}

	var fee []byte
	if tx.NetworkFee != nil {
		if fee, err = json.Marshal(tx.NetworkFee); err != nil {
			return Transaction{}, fmt.Errorf("marshal network fee: %w", err)
		}
	}

	var dapp []byte
	if tx.DappInfo != nil {
		if dapp, err = json.Marshal(tx.DappInfo); err != nil {
			return Transaction{}, fmt.Errorf("marshal dapp info: %w", err)
		}
	}

	return Transaction{
		ID:           tx.ID,
		OwnerAddress: strings.ToLower(owner.Hex()),
		ChainID:      uint64(tx.ChainID),
		FromAddress:  strings.ToLower(tx.From.Hex()),
		Hash:         tx.Hash,
		OrderHash:    tx.OrderHash,
		Routing:      string(tx.Routing),
		Status:       string(tx.Status),
		TypeInfo:     typeInfo,
		AddedTime:    tx.AddedTime,
		NetworkFee:   fee,
		EncodedOrder: tx.EncodedOrder,
		DappInfo:     dapp,
	}, nil
}

func rowToRecord(row Transaction) (transaction.Record, error) {
	typeInfo, err := transaction.UnmarshalTypeInfo(row.TypeInfo)
	if err != nil {
		return transaction.Record{}, err
	}

	var fee *transaction.NetworkFee
	if len(row.NetworkFee) > 0 {
		fee = &transaction.NetworkFee{}
		if err := json.Unmarshal(row.NetworkFee, fee); err != nil {
			return transaction.Record{}, fmt.Errorf("unmarshal network fee: %w", err)
		}
	}

	var dapp *transaction.DappInfo
	if len(row.DappInfo) > 0 {
		dapp = &transaction.DappInfo{}
		if err := json.Unmarshal(row.DappInfo, dapp); err != nil {
			return transaction.Record{}, fmt.Errorf("unmarshal dapp info: %w", err)
		}
	}

	return transaction.Record{
		ID:           row.ID,
		ChainID:      transaction.ChainID(row.ChainID),
		From:         common.HexToAddress(row.FromAddress),
		Hash:         row.Hash,
		OrderHash:    row.OrderHash,
		Routing:      transaction.Routing(row.Routing),
		Status:       transaction.Status(row.Status),
		TypeInfo:     typeInfo,
		AddedTime:    row.AddedTime,
		NetworkFee:   fee,
		EncodedOrder: row.EncodedOrder,
		DappInfo:     dapp,
	}, nil
}
