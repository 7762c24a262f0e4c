package payload

import (
	"encoding/json"
	"fmt"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

// SubmitTransactionRequest records a transaction the wallet just submitted
// or observed locally.
type SubmitTransactionRequest struct {
	Address      string          `json:"address"`
	ChainID      uint64          `json:"chainId"`
	Hash         string          `json:"hash,omitempty"`
	OrderHash    string          `json:"orderHash,omitempty"`
	Routing      string          `json:"routing"`
	Status       string          `json:"status"`
	TypeInfo     json.RawMessage `json:"typeInfo"`
	AddedTime    int64           `json:"addedTime"`
	EncodedOrder string          `json:"encodedOrder,omitempty"`
}

func (s SubmitTransactionRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&s.ChainID, validation.Required),
		validation.Field(&s.Routing, validation.Required),
		validation.Field(&s.Status, validation.Required),
		validation.Field(&s.Hash, validation.Match(hashRegex)),
		validation.Field(&s.OrderHash, validation.Match(hashRegex)),
		validation.Field(&s.AddedTime, validation.Required),
	)
}

func (s SubmitTransactionRequest) ToRecord() (transaction.Record, error) {
	typeInfo, err := transaction.UnmarshalTypeInfo(s.TypeInfo)
	if err != nil {
		return transaction.Record{}, fmt.Errorf("decode type info: %w", err)
	}

	return transaction.Record{
		ChainID:      transaction.ChainID(s.ChainID),
		From:         common.HexToAddress(s.Address),
		Hash:         s.Hash,
		OrderHash:    s.OrderHash,
		Routing:      transaction.Routing(s.Routing),
		Status:       transaction.Status(s.Status),
		TypeInfo:     typeInfo,
		AddedTime:    s.AddedTime,
		EncodedOrder: s.EncodedOrder,
	}, nil
}

// TransactionView is the API shape of one merged record.
type TransactionView struct {
	ID         string                  `json:"id"`
	ChainID    uint64                  `json:"chainId"`
	From       string                  `json:"from"`
	Hash       string                  `json:"hash,omitempty"`
	OrderHash  string                  `json:"orderHash,omitempty"`
	Routing    string                  `json:"routing"`
	Status     string                  `json:"status"`
	TypeInfo   json.RawMessage         `json:"typeInfo"`
	AddedTime  int64                   `json:"addedTime"`
	NetworkFee *transaction.NetworkFee `json:"networkFee,omitempty"`
	DappInfo   *transaction.DappInfo   `json:"dappInfo,omitempty"`
}

// ToTransactionViews converts merged records for the API response.
func ToTransactionViews(records []transaction.Record) ([]TransactionView, error) {
	views := make([]TransactionView, 0, len(records))
	for _, rec := range records {
		typeInfo, err := transaction.MarshalTypeInfo(rec.TypeInfo)
		if err != nil {
			return nil, fmt.Errorf("encode type info for %q: %w", rec.ID, err)
		}
		views = append(views, TransactionView{
			ID:         rec.ID,
			ChainID:    uint64(rec.ChainID),
			From:       rec.From.Hex(),
			Hash:       rec.Hash,
			OrderHash:  rec.OrderHash,
			Routing:    string(rec.Routing),
			Status:     string(rec.Status),
			TypeInfo:   typeInfo,
			AddedTime:  rec.AddedTime,
			NetworkFee: rec.NetworkFee,
			DappInfo:   rec.DappInfo,
		})
	}
	return views, nil
}
