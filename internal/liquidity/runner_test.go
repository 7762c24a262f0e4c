package liquidity_test

import (
	"context"
	"errors"

	"walletfeed/internal/liquidity"
	"walletfeed/internal/liquidity/fake"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Runner", func() {
	var (
		signer *fake.StepSigner
		runner *liquidity.Runner

		steps  []liquidity.Step
		hashes []common.Hash
		runErr error
	)

	BeforeEach(func() {
		signer = new(fake.StepSigner)
		runner = liquidity.NewRunner(zap.NewNop().Sugar(), signer)
	})

	JustBeforeEach(func() {
		hashes, runErr = runner.Run(context.Background(), steps)
	})

	When("the step list is empty", func() {
		BeforeEach(func() {
			steps = nil
		})

		It("does nothing", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(hashes).To(BeEmpty())
			Expect(signer.SendTransactionCallCount()).To(Equal(0))
		})
	})

	When("running a signed flow", func() {
		var approve, increase *transaction.Request

		BeforeEach(func() {
			approve = &transaction.Request{ChainID: 1}
			increase = &transaction.Request{ChainID: 1}
			steps = []liquidity.Step{
				liquidity.TokenApprovalStep{Token: "1-0xToken0", TxRequest: approve},
				liquidity.IncreasePositionStep{TxRequest: increase},
			}
			signer.SendTransactionReturnsOnCall(0, common.HexToHash("0x01"), nil)
			signer.SendTransactionReturnsOnCall(1, common.HexToHash("0x02"), nil)
		})

		It("submits every request in step order", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(hashes).To(Equal([]common.Hash{
				common.HexToHash("0x01"),
				common.HexToHash("0x02"),
			}))
			Expect(signer.SendTransactionCallCount()).To(Equal(2))
			_, first := signer.SendTransactionArgsForCall(0)
			Expect(first).To(BeIdenticalTo(approve))
			_, second := signer.SendTransactionArgsForCall(1)
			Expect(second).To(BeIdenticalTo(increase))
		})

		When("a submission fails", func() {
			BeforeEach(func() {
				signer.SendTransactionReturnsOnCall(1, common.Hash{}, errors.New("nonce too low"))
			})

			It("stops the flow and names the failed step", func() {
				Expect(hashes).To(Equal([]common.Hash{common.HexToHash("0x01")}))

				var stepErr *liquidity.StepError
				Expect(errors.As(runErr, &stepErr)).To(BeTrue())
				Expect(stepErr.Type).To(Equal(liquidity.StepIncreasePosition))
			})
		})
	})

	When("running an unsigned flow", func() {
		var (
			permit   *liquidity.PermitData
			built    *transaction.Request
			captured string
		)

		BeforeEach(func() {
			permit = &liquidity.PermitData{PrimaryType: "PermitBatch"}
			built = &transaction.Request{ChainID: 1}
			captured = ""
			steps = []liquidity.Step{
				liquidity.Permit2SignatureStep{Permit: permit},
				liquidity.IncreasePositionAsyncStep{
					BuildRequest: func(_ context.Context, signature string) (*transaction.Request, error) {
						captured = signature
						return built, nil
					},
				},
			}
			signer.SignTypedDataReturns("0xsignature", nil)
			signer.SendTransactionReturns(common.HexToHash("0x0a"), nil)
		})

		It("threads the permit signature into the async builder", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(captured).To(Equal("0xsignature"))
			Expect(hashes).To(Equal([]common.Hash{common.HexToHash("0x0a")}))

			_, signedPermit := signer.SignTypedDataArgsForCall(0)
			Expect(signedPermit).To(BeIdenticalTo(permit))
			_, sent := signer.SendTransactionArgsForCall(0)
			Expect(sent).To(BeIdenticalTo(built))
		})

		When("signing fails", func() {
			BeforeEach(func() {
				signer.SignTypedDataReturns("", errors.New("user rejected"))
			})

			It("stops before submitting anything", func() {
				var stepErr *liquidity.StepError
				Expect(errors.As(runErr, &stepErr)).To(BeTrue())
				Expect(stepErr.Type).To(Equal(liquidity.StepPermit2Signature))
				Expect(signer.SendTransactionCallCount()).To(Equal(0))
			})
		})

		When("the async step runs without a signature", func() {
			BeforeEach(func() {
				steps = steps[1:]
			})

			It("rejects the step", func() {
				var stepErr *liquidity.StepError
				Expect(errors.As(runErr, &stepErr)).To(BeTrue())
				Expect(stepErr.Type).To(Equal(liquidity.StepIncreasePositionAsync))
				Expect(signer.SendTransactionCallCount()).To(Equal(0))
			})
		})
	})

	When("running a batched flow", func() {
		var requests []*transaction.Request

		BeforeEach(func() {
			requests = []*transaction.Request{
				{ChainID: 1},
				{ChainID: 1},
			}
			steps = []liquidity.Step{
				liquidity.IncreasePositionBatchedStep{TxRequests: requests},
			}
			signer.SendBatchReturns(common.HexToHash("0xbb"), nil)
		})

		It("submits the batch in one call", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(hashes).To(Equal([]common.Hash{common.HexToHash("0xbb")}))
			Expect(signer.SendBatchCallCount()).To(Equal(1))
			_, sent := signer.SendBatchArgsForCall(0)
			Expect(sent).To(HaveLen(2))
			Expect(signer.SendTransactionCallCount()).To(Equal(0))
		})
	})
})
