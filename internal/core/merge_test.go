package core_test

import (
	"walletfeed/internal/core"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Engine", func() {
	var (
		engine        *core.Engine
		enabledChains map[transaction.ChainID]struct{}
		owner         common.Address

		local     []transaction.Record
		remote    []transaction.Record
		merged    []transaction.Record
		finalized []transaction.Record
	)

	record := func(id string, chainID transaction.ChainID, hash string, status transaction.Status, addedTime int64) transaction.Record {
		return transaction.Record{
			ID:        id,
			ChainID:   chainID,
			From:      owner,
			Hash:      hash,
			Routing:   transaction.RoutingClassic,
			Status:    status,
			TypeInfo:  transaction.SwapInfo{InputCurrencyID: "1-0xaa", OutputCurrencyID: "1-0xbb"},
			AddedTime: addedTime,
		}
	}

	BeforeEach(func() {
		engine = core.NewEngine(zap.NewNop().Sugar())
		owner = common.HexToAddress("0x1111111111111111111111111111111111111111")
		enabledChains = map[transaction.ChainID]struct{}{1: {}, 10: {}}
		local = nil
		remote = nil
	})

	JustBeforeEach(func() {
		merged, finalized = engine.Merge(local, remote, enabledChains)
	})

	When("the remote snapshot is empty", func() {
		BeforeEach(func() {
			local = []transaction.Record{
				record("l1", 1, "0xh1", transaction.StatusPending, 100),
				record("l2", 137, "0xh2", transaction.StatusPending, 200),
			}
		})

		It("returns the local records filtered to enabled chains", func() {
			Expect(merged).To(HaveLen(1))
			Expect(merged[0].ID).To(Equal("l1"))
			Expect(finalized).To(BeEmpty())
		})
	})

	When("the local snapshot is empty", func() {
		BeforeEach(func() {
			remote = []transaction.Record{
				record("r1", 1, "0xh1", transaction.StatusSuccess, 100),
			}
		})

		It("returns the remote records unchanged", func() {
			Expect(merged).To(HaveLen(1))
			Expect(merged[0].ID).To(Equal("r1"))
			Expect(finalized).To(BeEmpty())
		})
	})

	When("both sources know the same transaction hash", func() {
		BeforeEach(func() {
			local = []transaction.Record{record("l1", 1, "0xh1", transaction.StatusPending, 100)}
			remote = []transaction.Record{record("r1", 1, "0xh1", transaction.StatusSuccess, 100)}
		})

		It("keeps a single entry", func() {
			Expect(merged).To(HaveLen(1))
		})

		It("prefers the successful remote record", func() {
			Expect(merged[0].ID).To(Equal("r1"))
			Expect(merged[0].Status).To(Equal(transaction.StatusSuccess))
		})

		It("reports the promoted local record on the finalize outbox", func() {
			Expect(finalized).To(HaveLen(1))
			Expect(finalized[0].ID).To(Equal("l1"))
			Expect(finalized[0].Status).To(Equal(transaction.StatusSuccess))
		})
	})

	When("the local record is cancelled while the remote reads success", func() {
		BeforeEach(func() {
			fee := &transaction.NetworkFee{Quantity: "0.002", TokenSymbol: "ETH", ChainID: 1}
			localTx := record("l1", 1, "0xh1", transaction.StatusCanceled, 100)
			remoteTx := record("r1", 1, "0xh1", transaction.StatusSuccess, 100)
			remoteTx.NetworkFee = fee
			local = []transaction.Record{localTx}
			remote = []transaction.Record{remoteTx}
		})

		It("keeps the local cancellation with the remote fee", func() {
			Expect(merged).To(HaveLen(1))
			Expect(merged[0].ID).To(Equal("l1"))
			Expect(merged[0].Status).To(Equal(transaction.StatusCanceled))
			Expect(merged[0].NetworkFee).NotTo(BeNil())
			Expect(merged[0].NetworkFee.Quantity).To(Equal("0.002"))
		})

		It("does not promote an already terminal local record", func() {
			Expect(finalized).To(BeEmpty())
		})
	})

	When("the remote record is not successful", func() {
		BeforeEach(func() {
			localTx := record("l1", 1, "0xh1", transaction.StatusPending, 100)
			remoteTx := record("r1", 1, "0xh1", transaction.StatusFailed, 100)
			local = []transaction.Record{localTx}
			remote = []transaction.Record{remoteTx}
		})

		It("keeps the local record", func() {
			Expect(merged).To(HaveLen(1))
			Expect(merged[0].ID).To(Equal("l1"))
		})

		It("still promotes the local record to the remote terminal status", func() {
			Expect(finalized).To(HaveLen(1))
			Expect(finalized[0].Status).To(Equal(transaction.StatusFailed))
		})
	})

	When("a dapp-originated request was parsed remotely", func() {
		BeforeEach(func() {
			localTx := record("l1", 1, "0xh1", transaction.StatusPending, 100)
			localTx.TypeInfo = transaction.WCConfirmInfo{Method: "eth_sendTransaction"}
			localTx.DappInfo = &transaction.DappInfo{Name: "uniswap", URL: "https://app.uniswap.org"}
			remoteTx := record("r1", 1, "0xh1", transaction.StatusSuccess, 100)
			local = []transaction.Record{localTx}
			remote = []transaction.Record{remoteTx}
		})

		It("takes the remote parse with the local dapp metadata spliced in", func() {
			Expect(merged).To(HaveLen(1))
			Expect(merged[0].ID).To(Equal("r1"))
			Expect(merged[0].DappInfo).NotTo(BeNil())
			Expect(merged[0].DappInfo.Name).To(Equal("uniswap"))
		})
	})

	When("a pending order matches a filled remote record by order hash", func() {
		BeforeEach(func() {
			localTx := transaction.Record{
				ID:        "l1",
				ChainID:   1,
				From:      owner,
				OrderHash: "0xo1",
				Routing:   transaction.RoutingDutchV2,
				Status:    transaction.StatusPending,
				TypeInfo:  transaction.SwapInfo{},
				AddedTime: 100,
			}
			remoteTx := transaction.Record{
				ID:        "r1",
				ChainID:   1,
				From:      owner,
				Hash:      "0xh1",
				OrderHash: "0xo1",
				Routing:   transaction.RoutingDutchV2,
				Status:    transaction.StatusSuccess,
				TypeInfo:  transaction.SwapInfo{},
				AddedTime: 100,
			}
			local = []transaction.Record{localTx}
			remote = []transaction.Record{remoteTx}
		})

		It("collapses them into one entry", func() {
			Expect(merged).To(HaveLen(1))
			Expect(merged[0].Hash).To(Equal("0xh1"))
		})
	})

	When("both sources carry the same off-chain fiat purchase", func() {
		BeforeEach(func() {
			localTx := record("fiat-1", 1, "", transaction.StatusPending, 100)
			localTx.TypeInfo = transaction.OnRampPurchaseInfo{ServiceProvider: "moonpay"}
			remoteTx := record("fiat-1", 1, "", transaction.StatusSuccess, 100)
			remoteTx.TypeInfo = transaction.OnRampPurchaseInfo{ServiceProvider: "moonpay"}
			local = []transaction.Record{localTx}
			remote = []transaction.Record{remoteTx}
		})

		It("keeps only the local copy", func() {
			Expect(merged).To(HaveLen(1))
			Expect(merged[0].Status).To(Equal(transaction.StatusPending))
		})
	})

	When("a record has no hash and is not fiat", func() {
		BeforeEach(func() {
			localTx := record("l1", 1, "", transaction.StatusPending, 300)
			localTx.Routing = transaction.RoutingBridge
			localTx.TypeInfo = transaction.BridgeInfo{}
			local = []transaction.Record{localTx}
			remote = []transaction.Record{record("r1", 1, "0xh1", transaction.StatusSuccess, 100)}
		})

		It("keeps the unsubmitted record alongside hashed ones", func() {
			Expect(merged).To(HaveLen(2))
			ids := []string{merged[0].ID, merged[1].ID}
			Expect(ids).To(ContainElements("l1", "r1"))
		})
	})

	When("records span disabled chains", func() {
		BeforeEach(func() {
			local = []transaction.Record{
				record("l1", 1, "0xh1", transaction.StatusPending, 100),
				record("l2", 137, "0xh2", transaction.StatusPending, 200),
			}
			remote = []transaction.Record{
				record("r3", 10, "0xh3", transaction.StatusSuccess, 300),
				record("r4", 42161, "0xh4", transaction.StatusSuccess, 400),
			}
		})

		It("drops every record on a disabled chain", func() {
			Expect(merged).To(HaveLen(2))
			for _, tx := range merged {
				Expect(tx.ChainID).To(BeElementOf(transaction.ChainID(1), transaction.ChainID(10)))
			}
		})
	})

	Describe("ordering", func() {
		BeforeEach(func() {
			local = []transaction.Record{
				record("old", 1, "0xh1", transaction.StatusSuccess, 100),
				record("new", 1, "0xh2", transaction.StatusSuccess, 300),
				record("mid", 1, "0xh3", transaction.StatusSuccess, 200),
			}
			remote = []transaction.Record{
				record("remote", 1, "0xh4", transaction.StatusSuccess, 250),
			}
		})

		It("sorts newest first", func() {
			Expect(merged).To(HaveLen(4))
			Expect(merged[0].ID).To(Equal("new"))
			Expect(merged[1].ID).To(Equal("remote"))
			Expect(merged[2].ID).To(Equal("mid"))
			Expect(merged[3].ID).To(Equal("old"))
		})

		When("an approval and its swap share a timestamp", func() {
			BeforeEach(func() {
				approve := record("approve", 1, "0xa1", transaction.StatusSuccess, 500)
				approve.TypeInfo = transaction.ApproveInfo{TokenAddress: "0xToKeN", Spender: "0xspender"}
				swap := record("swap", 1, "0xs1", transaction.StatusSuccess, 500)
				swap.TypeInfo = transaction.SwapInfo{
					InputCurrencyID:  transaction.CurrencyID(1, "0xToKeN"),
					OutputCurrencyID: "1-0xother",
				}
				local = []transaction.Record{approve, swap}
				remote = []transaction.Record{record("r1", 1, "0xh1", transaction.StatusSuccess, 100)}
			})

			It("keeps the swap above the approval that enabled it", func() {
				Expect(merged).To(HaveLen(3))
				Expect(merged[0].ID).To(Equal("swap"))
				Expect(merged[1].ID).To(Equal("approve"))
			})
		})
	})

	Describe("idempotence", func() {
		BeforeEach(func() {
			local = []transaction.Record{
				record("l1", 1, "0xh1", transaction.StatusCanceled, 100),
				record("l2", 1, "0xh2", transaction.StatusPending, 200),
			}
			remote = []transaction.Record{
				record("r1", 1, "0xh1", transaction.StatusSuccess, 100),
				record("r2", 1, "0xh2", transaction.StatusSuccess, 200),
				record("r3", 1, "0xh3", transaction.StatusSuccess, 300),
			}
		})

		It("produces the same result when re-merged with the same remote", func() {
			again, _ := engine.Merge(merged, remote, enabledChains)
			Expect(again).To(Equal(merged))
		})
	})
})
