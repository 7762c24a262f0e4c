package transaction

// Status is the lifecycle state of a transaction record.
type Status string

const (
	StatusPending           Status = "pending"
	StatusCancelling        Status = "cancelling"
	StatusCanceled          Status = "cancelled"
	StatusFailedCancel      Status = "failedCancel"
	StatusSuccess           Status = "confirmed"
	StatusFailed            Status = "failed"
	StatusReplacing         Status = "replacing"
	StatusExpired           Status = "expired"
	StatusInsufficientFunds Status = "insufficientFunds"
	StatusUnknown           Status = "unknown"
)

// Finalized reports whether the status is terminal. A finalized record is
// immutable except for the controlled promote-local-to-finalized transition
// driven by remote data.
func (s Status) Finalized() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusCanceled, StatusFailedCancel, StatusExpired:
		return true
	}
	return false
}

// Routing identifies the execution venue of a transaction.
type Routing string

const (
	RoutingClassic    Routing = "CLASSIC"
	RoutingBridge     Routing = "BRIDGE"
	RoutingDutchV2    Routing = "DUTCH_V2"
	RoutingDutchV3    Routing = "DUTCH_V3"
	RoutingDutchLimit Routing = "DUTCH_LIMIT"
	RoutingPriority   Routing = "PRIORITY"
)

// IsUniswapX reports whether the routing denotes an off-chain-signed
// UniswapX order rather than a directly submitted transaction.
func (r Routing) IsUniswapX() bool {
	switch r {
	case RoutingDutchV2, RoutingDutchV3, RoutingDutchLimit, RoutingPriority:
		return true
	}
	return false
}
