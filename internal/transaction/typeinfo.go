package transaction

import (
	"encoding/json"
	"fmt"
)

// TxType discriminates the TypeInfo variants.
type TxType string

const (
	TypeApprove        TxType = "approve"
	TypeSwap           TxType = "swap"
	TypeBridge         TxType = "bridge"
	TypeWrap           TxType = "wrap"
	TypeSend           TxType = "send"
	TypeReceive        TxType = "receive"
	TypeOnRampPurchase TxType = "onRampPurchase"
	TypeOnRampTransfer TxType = "onRampTransfer"
	TypeOffRampSale    TxType = "offRampSale"
	TypeWCConfirm      TxType = "walletConnect"
	TypeUnknown        TxType = "unknown"
)

// TypeInfo is the closed set of operation descriptions a record can carry.
// Reconciliation and step generation switch exhaustively over Type().
type TypeInfo interface {
	Type() TxType
}

type ApproveInfo struct {
	TokenAddress   string `json:"tokenAddress"`
	Spender        string `json:"spender"`
	ApprovalAmount string `json:"approvalAmount,omitempty"`
}

func (ApproveInfo) Type() TxType { return TypeApprove }

type SwapInfo struct {
	InputCurrencyID  string `json:"inputCurrencyId"`
	OutputCurrencyID string `json:"outputCurrencyId"`
	InputAmountRaw   string `json:"inputAmountRaw"`
	OutputAmountRaw  string `json:"outputAmountRaw"`
}

func (SwapInfo) Type() TxType { return TypeSwap }

type BridgeInfo struct {
	InputCurrencyID  string `json:"inputCurrencyId"`
	OutputCurrencyID string `json:"outputCurrencyId"`
	InputAmountRaw   string `json:"inputAmountRaw"`
	OutputAmountRaw  string `json:"outputAmountRaw"`
}

func (BridgeInfo) Type() TxType { return TypeBridge }

type WrapInfo struct {
	Unwrapped bool   `json:"unwrapped"`
	AmountRaw string `json:"amountRaw"`
}

func (WrapInfo) Type() TxType { return TypeWrap }

type SendInfo struct {
	Recipient    string `json:"recipient"`
	TokenAddress string `json:"tokenAddress"`
	AmountRaw    string `json:"amountRaw"`
}

func (SendInfo) Type() TxType { return TypeSend }

type ReceiveInfo struct {
	Sender       string `json:"sender"`
	TokenAddress string `json:"tokenAddress"`
	AmountRaw    string `json:"amountRaw"`
}

func (ReceiveInfo) Type() TxType { return TypeReceive }

type OnRampPurchaseInfo struct {
	ServiceProvider    string `json:"serviceProvider"`
	DestinationSymbol  string `json:"destinationSymbol"`
	SourceAmount       string `json:"sourceAmount,omitempty"`
	SourceCurrencyCode string `json:"sourceCurrencyCode,omitempty"`
}

func (OnRampPurchaseInfo) Type() TxType { return TypeOnRampPurchase }

type OnRampTransferInfo struct {
	ServiceProvider   string `json:"serviceProvider"`
	DestinationSymbol string `json:"destinationSymbol"`
}

func (OnRampTransferInfo) Type() TxType { return TypeOnRampTransfer }

type OffRampSaleInfo struct {
	ServiceProvider    string `json:"serviceProvider"`
	SourceSymbol       string `json:"sourceSymbol"`
	TargetCurrencyCode string `json:"targetCurrencyCode,omitempty"`
}

func (OffRampSaleInfo) Type() TxType { return TypeOffRampSale }

type WCConfirmInfo struct {
	Method string `json:"method,omitempty"`
	Chain  string `json:"chain,omitempty"`
}

func (WCConfirmInfo) Type() TxType { return TypeWCConfirm }

type UnknownInfo struct {
	TokenAddress string `json:"tokenAddress,omitempty"`
}

func (UnknownInfo) Type() TxType { return TypeUnknown }

type typeInfoEnvelope struct {
	Type TxType          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// MarshalTypeInfo serializes a TypeInfo into a tagged JSON envelope, the
// representation used by the record store and the HTTP API.
func MarshalTypeInfo(info TypeInfo) ([]byte, error) {
	if info == nil {
		info = UnknownInfo{}
	}
	data, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("marshal type info data: %w", err)
	}
	return json.Marshal(typeInfoEnvelope{Type: info.Type(), Data: data})
}

// UnmarshalTypeInfo decodes a tagged JSON envelope back into the concrete
// TypeInfo variant. Unrecognized tags decode as UnknownInfo rather than
// failing, so newer indexer payloads degrade instead of breaking the feed.
func UnmarshalTypeInfo(raw []byte) (TypeInfo, error) {
	if len(raw) == 0 {
		return UnknownInfo{}, nil
	}

	var env typeInfoEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal type info envelope: %w", err)
	}

	switch env.Type {
	case TypeApprove:
		return decodeInfo[ApproveInfo](env.Data)
	case TypeSwap:
		return decodeInfo[SwapInfo](env.Data)
	case TypeBridge:
		return decodeInfo[BridgeInfo](env.Data)
	case TypeWrap:
		return decodeInfo[WrapInfo](env.Data)
	case TypeSend:
		return decodeInfo[SendInfo](env.Data)
	case TypeReceive:
		return decodeInfo[ReceiveInfo](env.Data)
	case TypeOnRampPurchase:
		return decodeInfo[OnRampPurchaseInfo](env.Data)
	case TypeOnRampTransfer:
		return decodeInfo[OnRampTransferInfo](env.Data)
	case TypeOffRampSale:
		return decodeInfo[OffRampSaleInfo](env.Data)
	case TypeWCConfirm:
		return decodeInfo[WCConfirmInfo](env.Data)
	default:
		return decodeInfo[UnknownInfo](env.Data)
	}
}

func decodeInfo[T TypeInfo](data json.RawMessage) (TypeInfo, error) {
	var info T
	if len(data) == 0 {
		return info, nil
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("unmarshal %q type info: %w", info.Type(), err)
	}
	return info, nil
}
