package liquidity_test

import (
	"context"

	"walletfeed/internal/liquidity"
	"walletfeed/internal/transaction"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("GenerateSteps", func() {
	var (
		txCtx *liquidity.TxAndGasInfo
		steps []liquidity.Step
	)

	request := func() *transaction.Request {
		return &transaction.Request{ChainID: 1}
	}

	action := liquidity.Action{
		Currency0: liquidity.CurrencyAmount{
			CurrencyID: "1-0xToken0",
			ChainID:    1,
			AmountRaw:  "1000",
		},
		Currency1: liquidity.CurrencyAmount{
			CurrencyID: "1-0xToken1",
			ChainID:    1,
			AmountRaw:  "2000",
		},
	}

	JustBeforeEach(func() {
		steps = liquidity.GenerateSteps(txCtx)
	})

	When("the context is invalid", func() {
		BeforeEach(func() {
			txCtx = &liquidity.TxAndGasInfo{
				Type:   liquidity.TypeCollect,
				Action: action,
			}
		})

		It("returns an empty step list", func() {
			Expect(steps).To(BeEmpty())
		})
	})

	When("the currencies sit on different chains", func() {
		BeforeEach(func() {
			crossChain := action
			crossChain.Currency1.ChainID = 10
			txCtx = &liquidity.TxAndGasInfo{
				Type:      liquidity.TypeCollect,
				Action:    crossChain,
				TxRequest: request(),
			}
		})

		It("returns an empty step list", func() {
			Expect(steps).To(BeEmpty())
		})
	})

	When("collecting fees", func() {
		var collect *transaction.Request

		BeforeEach(func() {
			collect = request()
			txCtx = &liquidity.TxAndGasInfo{
				Type:      liquidity.TypeCollect,
				Action:    action,
				TxRequest: collect,
			}
		})

		It("returns the single collect step", func() {
			Expect(steps).To(HaveLen(1))
			step, ok := steps[0].(liquidity.CollectFeesStep)
			Expect(ok).To(BeTrue())
			Expect(step.TxRequest).To(BeIdenticalTo(collect))
		})
	})

	When("decreasing a position", func() {
		var decrease *transaction.Request

		BeforeEach(func() {
			decrease = request()
			txCtx = &liquidity.TxAndGasInfo{
				Type:      liquidity.TypeDecrease,
				Action:    action,
				TxRequest: decrease,
			}
		})

		It("returns the single decrease step", func() {
			Expect(steps).To(HaveLen(1))
			step, ok := steps[0].(liquidity.DecreasePositionStep)
			Expect(ok).To(BeTrue())
			Expect(step.TxRequest).To(BeIdenticalTo(decrease))
		})

		When("the position token needs an approval", func() {
			var approve *transaction.Request

			BeforeEach(func() {
				approve = request()
				txCtx.ApprovePositionToken = approve
			})

			It("puts the approval before the decrease", func() {
				Expect(steps).To(HaveLen(2))
				approval, ok := steps[0].(liquidity.TokenApprovalStep)
				Expect(ok).To(BeTrue())
				Expect(approval.TxRequest).To(BeIdenticalTo(approve))
				Expect(steps[1]).To(BeAssignableToTypeOf(liquidity.DecreasePositionStep{}))
			})
		})
	})

	When("migrating a position", func() {
		When("the flow is unsigned", func() {
			var permit *liquidity.PermitData

			BeforeEach(func() {
				permit = &liquidity.PermitData{PrimaryType: "PermitBatch"}
				txCtx = &liquidity.TxAndGasInfo{
					Type:     liquidity.TypeMigrate,
					Action:   action,
					Unsigned: true,
					Permit:   permit,
					BuildWithSignature: func(_ context.Context, _ string) (*transaction.Request, error) {
						return request(), nil
					},
				}
			})

			It("asks for a signature and defers the migration", func() {
				Expect(steps).To(HaveLen(2))
				signature, ok := steps[0].(liquidity.Permit2SignatureStep)
				Expect(ok).To(BeTrue())
				Expect(signature.Permit).To(BeIdenticalTo(permit))
				async, ok := steps[1].(liquidity.MigratePositionAsyncStep)
				Expect(ok).To(BeTrue())
				Expect(async.BuildRequest).NotTo(BeNil())
			})
		})

		When("the flow is signed", func() {
			var tokenPermit, approve, migrate *transaction.Request

			BeforeEach(func() {
				tokenPermit = request()
				approve = request()
				migrate = request()
				txCtx = &liquidity.TxAndGasInfo{
					Type:                 liquidity.TypeMigrate,
					Action:               action,
					PositionTokenPermit:  tokenPermit,
					ApprovePositionToken: approve,
					TxRequest:            migrate,
				}
			})

			It("orders permit, approval, migration", func() {
				Expect(steps).To(HaveLen(3))
				permitStep, ok := steps[0].(liquidity.Permit2TransactionStep)
				Expect(ok).To(BeTrue())
				Expect(permitStep.TxRequest).To(BeIdenticalTo(tokenPermit))
				approval, ok := steps[1].(liquidity.TokenApprovalStep)
				Expect(ok).To(BeTrue())
				Expect(approval.TxRequest).To(BeIdenticalTo(approve))
				migration, ok := steps[2].(liquidity.MigratePositionStep)
				Expect(ok).To(BeTrue())
				Expect(migration.TxRequest).To(BeIdenticalTo(migrate))
			})
		})
	})

	When("increasing a position unsigned", func() {
		var (
			permit  *liquidity.PermitData
			revoke0 *transaction.Request
			approve *transaction.Request
		)

		BeforeEach(func() {
			permit = &liquidity.PermitData{PrimaryType: "PermitBatch"}
			revoke0 = request()
			approve = request()
			txCtx = &liquidity.TxAndGasInfo{
				Type:          liquidity.TypeIncrease,
				Action:        action,
				Unsigned:      true,
				Permit:        permit,
				RevokeToken0:  revoke0,
				ApproveToken1: approve,
				BuildWithSignature: func(_ context.Context, _ string) (*transaction.Request, error) {
					return request(), nil
				},
			}
		})

		It("orders revocations, approvals, signature, async increase", func() {
			Expect(steps).To(HaveLen(4))

			revocation, ok := steps[0].(liquidity.TokenRevocationStep)
			Expect(ok).To(BeTrue())
			Expect(revocation.Token).To(Equal("1-0xToken0"))
			Expect(revocation.TxRequest).To(BeIdenticalTo(revoke0))

			approval, ok := steps[1].(liquidity.TokenApprovalStep)
			Expect(ok).To(BeTrue())
			Expect(approval.Token).To(Equal("1-0xToken1"))
			Expect(approval.Amount).To(Equal("2000"))
			Expect(approval.TxRequest).To(BeIdenticalTo(approve))

			Expect(steps[2]).To(BeAssignableToTypeOf(liquidity.Permit2SignatureStep{}))

			async, ok := steps[3].(liquidity.IncreasePositionAsyncStep)
			Expect(ok).To(BeTrue())
			Expect(async.CreatesPosition).To(BeFalse())
		})

		When("the flow creates a new pool", func() {
			BeforeEach(func() {
				txCtx.Type = liquidity.TypeCreate
			})

			It("flags the async step as creating a position", func() {
				async, ok := steps[len(steps)-1].(liquidity.IncreasePositionAsyncStep)
				Expect(ok).To(BeTrue())
				Expect(async.CreatesPosition).To(BeTrue())
			})
		})
	})

	When("increasing a position signed", func() {
		var (
			approve0 *transaction.Request
			approve1 *transaction.Request
			permit0  *transaction.Request
			increase *transaction.Request
		)

		BeforeEach(func() {
			approve0 = request()
			approve1 = request()
			permit0 = request()
			increase = request()
			txCtx = &liquidity.TxAndGasInfo{
				Type:          liquidity.TypeIncrease,
				Action:        action,
				ApproveToken0: approve0,
				ApproveToken1: approve1,
				Token0Permit:  permit0,
				TxRequest:     increase,
			}
		})

		It("orders approvals, permits, increase", func() {
			Expect(steps).To(HaveLen(4))

			first, ok := steps[0].(liquidity.TokenApprovalStep)
			Expect(ok).To(BeTrue())
			Expect(first.Token).To(Equal("1-0xToken0"))
			Expect(first.Amount).To(Equal("1000"))

			second, ok := steps[1].(liquidity.TokenApprovalStep)
			Expect(ok).To(BeTrue())
			Expect(second.Token).To(Equal("1-0xToken1"))

			permitStep, ok := steps[2].(liquidity.Permit2TransactionStep)
			Expect(ok).To(BeTrue())
			Expect(permitStep.Token).To(Equal("1-0xToken0"))
			Expect(permitStep.TxRequest).To(BeIdenticalTo(permit0))

			last, ok := steps[3].(liquidity.IncreasePositionStep)
			Expect(ok).To(BeTrue())
			Expect(last.TxRequest).To(BeIdenticalTo(increase))
		})

		When("the wallet can batch transactions", func() {
			BeforeEach(func() {
				txCtx.CanBatchTransactions = true
			})

			It("collapses the flow into one batched step preserving order", func() {
				Expect(steps).To(HaveLen(1))
				batched, ok := steps[0].(liquidity.IncreasePositionBatchedStep)
				Expect(ok).To(BeTrue())
				Expect(batched.TxRequests).To(HaveLen(4))
				Expect(batched.TxRequests[0]).To(BeIdenticalTo(approve0))
				Expect(batched.TxRequests[1]).To(BeIdenticalTo(approve1))
				Expect(batched.TxRequests[2]).To(BeIdenticalTo(permit0))
				Expect(batched.TxRequests[3]).To(BeIdenticalTo(increase))
			})
		})
	})
})
