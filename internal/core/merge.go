package core

import (
	"fmt"
	"sort"
	"walletfeed/internal/transaction"

	"go.uber.org/zap"
)

// Engine merges a wallet's locally-tracked transactions with the list
// reported by the remote indexer into one deduplicated, ordered view.
type Engine struct {
	logs *zap.SugaredLogger
}

func NewEngine(logger *zap.SugaredLogger) *Engine {
	return &Engine{
		logs: logger,
	}
}

// buckets partitions one source's records for per-hash reconciliation.
type buckets struct {
	byHash map[string]transaction.Record
	// fiat on/off-ramp records never carry an on-chain hash and are kept
	// keyed by their local id, never deduplicated against hashed records
	offChain []transaction.Record
	// not-yet-submitted bridge/swap actions, kept as-is
	unsubmitted []transaction.Record
}

// Merge reconciles the two snapshots into a single list, restricted to the
// enabled chains. The second return value is the finalize outbox: local
// records promoted to a terminal status by remote data, which the caller
// writes back to the record store without blocking on the result.
func (e *Engine) Merge(
	local []transaction.Record,
	remote []transaction.Record,
	enabledChains map[transaction.ChainID]struct{},
) ([]transaction.Record, []transaction.Record) {
	// no merge needed when either source is empty
	if len(remote) == 0 {
		return filterChains(local, enabledChains), nil
	}
	if len(local) == 0 {
		return filterChains(remote, enabledChains), nil
	}

	// An order that is pending in one source carries only its order hash,
	// while the filled record in the other source carries both hashes.
	// Resolving order hash -> tx hash lets the two collapse into one entry.
	orderToTx := make(map[string]string)
	for _, txs := range [][]transaction.Record{local, remote} {
		for _, tx := range txs {
			if tx.OrderHash != "" && tx.Hash != "" {
				orderToTx[tx.OrderHash] = tx.Hash
			}
		}
	}

	seen := newHashSet()
	localBkt := bucketRecords(local, enabledChains, orderToTx, seen)
	remoteBkt := bucketRecords(remote, enabledChains, orderToTx, seen)

	merged := make([]transaction.Record, 0, len(local)+len(remote))
	merged = append(merged, dedupeByID(localBkt.offChain, remoteBkt.offChain)...)
	merged = append(merged, localBkt.unsubmitted...)
	merged = append(merged, remoteBkt.unsubmitted...)

	var finalized []transaction.Record
	for _, hash := range seen.order {
		localTx, haveLocal := localBkt.byHash[hash]
		remoteTx, haveRemote := remoteBkt.byHash[hash]

		switch {
		case haveLocal && haveRemote:
			out, promoted := e.reconcile(localTx, remoteTx)
			merged = append(merged, out)
			if promoted != nil {
				finalized = append(finalized, *promoted)
			}
		case haveRemote:
			merged = append(merged, remoteTx)
		case haveLocal:
			merged = append(merged, localTx)
		default:
			// the seen set is only populated when inserting into a bucket,
			// so an unresolvable hash means the bucketing logic is broken
			panic(fmt.Sprintf("reconcile: hash %q tracked but missing from both sources", hash))
		}
	}

	sortRecords(merged)

	e.logs.Debugw("merged transaction snapshots",
		"local", len(local),
		"remote", len(remote),
		"merged", len(merged),
		"finalized", len(finalized))

	return merged, finalized
}

// reconcile resolves a hash present in both sources into one record. The
// second return value, when non-nil, is the local record promoted to the
// remote's terminal status for the finalize write-back.
func (e *Engine) reconcile(local, remote transaction.Record) (transaction.Record, *transaction.Record) {
	var promoted *transaction.Record
	if !local.Status.Finalized() && remote.Status.Finalized() {
		p := local
		p.Status = remote.Status
		p.NetworkFee = remote.NetworkFee
		promoted = &p
	}

	// Local Canceled against remote Success means the user's cancellation
	// landed on-chain; the raw remote status reads as a plain success and
	// cannot distinguish this from a stale remote snapshot. Local wins.
	isCancellation := local.Status == transaction.StatusCanceled && remote.Status == transaction.StatusSuccess

	switch {
	case remote.Status != transaction.StatusSuccess || isCancellation:
		out := local
		out.NetworkFee = remote.NetworkFee
		return out, promoted
	case local.TypeInfo != nil && local.TypeInfo.Type() == transaction.TypeWCConfirm:
		// remote parsing is canonical, but only the wallet knows which dapp
		// originated the request
		out := remote
		out.DappInfo = local.DappInfo
		return out, promoted
	default:
		return remote, promoted
	}
}

// trackingHash is the identity a record is deduplicated by: its tx hash when
// present, otherwise its order hash resolved through the order->tx mapping.
func trackingHash(tx transaction.Record, orderToTx map[string]string) string {
	if tx.Hash != "" {
		return tx.Hash
	}
	if tx.IsUniswapXOrder() && tx.OrderHash != "" {
		if hash, ok := orderToTx[tx.OrderHash]; ok {
			return hash
		}
		return tx.OrderHash
	}
	return ""
}

// hashSet tracks every hash inserted into either bucket map, in first-seen
// order so repeated merges over the same inputs assemble identically.
type hashSet struct {
	set   map[string]struct{}
	order []string
}

func newHashSet() *hashSet {
	return &hashSet{set: make(map[string]struct{})}
}

func (s *hashSet) add(hash string) {
	if _, ok := s.set[hash]; ok {
		return
	}
	s.set[hash] = struct{}{}
	s.order = append(s.order, hash)
}

func bucketRecords(
	txs []transaction.Record,
	enabledChains map[transaction.ChainID]struct{},
	orderToTx map[string]string,
	seen *hashSet,
) buckets {
	bkt := buckets{byHash: make(map[string]transaction.Record, len(txs))}
	for _, tx := range txs {
		if _, ok := enabledChains[tx.ChainID]; !ok {
			continue
		}
		if tx.IsOffChainFiat() {
			bkt.offChain = append(bkt.offChain, tx)
			continue
		}
		hash := trackingHash(tx, orderToTx)
		if hash == "" {
			bkt.unsubmitted = append(bkt.unsubmitted, tx)
			continue
		}
		bkt.byHash[hash] = tx
		seen.add(hash)
	}
	return bkt
}

func filterChains(txs []transaction.Record, enabledChains map[transaction.ChainID]struct{}) []transaction.Record {
	out := make([]transaction.Record, 0, len(txs))
	for _, tx := range txs {
		if _, ok := enabledChains[tx.ChainID]; ok {
			out = append(out, tx)
		}
	}
	return out
}

// dedupeByID concatenates off-chain fiat records from both sources, keeping
// the first occurrence of each local id. Local records come first so the
// wallet's own copy wins over the indexer's echo of the same session.
func dedupeByID(local, remote []transaction.Record) []transaction.Record {
	out := make([]transaction.Record, 0, len(local)+len(remote))
	ids := make(map[string]struct{}, len(local)+len(remote))
	for _, tx := range append(local, remote...) {
		if _, ok := ids[tx.ID]; ok {
			continue
		}
		ids[tx.ID] = struct{}{}
		out = append(out, tx)
	}
	return out
}

// sortRecords orders newest-first. When two records tie on time, an approval
// sorts below the swap that consumed it.
func sortRecords(txs []transaction.Record) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if a.AddedTime == b.AddedTime {
			if approvalEnablesSwap(b, a) {
				return true // a is the swap, keep it above its approval
			}
			return false
		}
		return a.AddedTime > b.AddedTime
	})
}

// approvalEnablesSwap reports whether approve is a token approval for the
// input currency of swap.
func approvalEnablesSwap(approve, swap transaction.Record) bool {
	approveInfo, ok := approve.TypeInfo.(transaction.ApproveInfo)
	if !ok {
		return false
	}
	swapInfo, ok := swap.TypeInfo.(transaction.SwapInfo)
	if !ok {
		return false
	}
	if approveInfo.TokenAddress == "" {
		return false
	}
	return swapInfo.InputCurrencyID == transaction.CurrencyID(approve.ChainID, approveInfo.TokenAddress)
}
