package remote

import (
	"encoding/json"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
)

// wireTransaction is the indexer's representation of one transaction.
type wireTransaction struct {
	ID         string                      `json:"id"`
	ChainID    uint64                      `json:"chainId"`
	From       string                      `json:"from"`
	Hash       string                      `json:"hash,omitempty"`
	OrderHash  string                      `json:"orderHash,omitempty"`
	Routing    string                      `json:"routing"`
	Status     string                      `json:"status"`
	TypeInfo   json.RawMessage             `json:"typeInfo"`
	AddedTime  int64                       `json:"addedTime"`
	NetworkFee *transaction.NetworkFee     `json:"networkFee,omitempty"`
}

type listTransactionsResponse struct {
	Transactions []wireTransaction `json:"transactions"`
}

type listOrdersResponse struct {
	Orders []wireOrder `json:"orders"`
}

type wireOrder struct {
	OrderHash    string `json:"orderHash"`
	EncodedOrder string `json:"encodedOrder"`
	OrderStatus  string `json:"orderStatus"`
}

func (w wireTransaction) toRecord() (transaction.Record, error) {
	typeInfo, err := transaction.UnmarshalTypeInfo(w.TypeInfo)
	if err != nil {
		return transaction.Record{}, err
	}

	return transaction.Record{
		ID:         w.ID,
		ChainID:    transaction.ChainID(w.ChainID),
		From:       common.HexToAddress(w.From),
		Hash:       w.Hash,
		OrderHash:  w.OrderHash,
		Routing:    transaction.Routing(w.Routing),
		Status:     transaction.Status(w.Status),
		TypeInfo:   typeInfo,
		AddedTime:  w.AddedTime,
		NetworkFee: w.NetworkFee,
	}, nil
}
