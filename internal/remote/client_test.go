package remote_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"walletfeed/internal/remote"
	"walletfeed/internal/remote/fake"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

var _ = Describe("IndexerClient", func() {
	var (
		doer   *fake.HTTPDoer
		client *remote.IndexerClient

		owners  []common.Address
		chains  map[transaction.ChainID]struct{}
		records []transaction.Record
		getErr  error
	)

	owner := common.HexToAddress("0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B")

	BeforeEach(func() {
		doer = new(fake.HTTPDoer)
		client = remote.NewIndexerClient(zap.NewNop().Sugar(), "https://indexer.example.com/", doer)
		owners = []common.Address{owner}
		chains = map[transaction.ChainID]struct{}{1: {}}
	})

	JustBeforeEach(func() {
		records, getErr = client.GetRemoteTransactions(context.Background(), owners, chains)
	})

	When("the indexer responds with transactions", func() {
		BeforeEach(func() {
			doer.DoReturns(jsonResponse(http.StatusOK, `{
				"transactions": [
					{
						"id": "remote-1",
						"chainId": 1,
						"from": "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
						"hash": "0xabc",
						"routing": "CLASSIC",
						"status": "confirmed",
						"typeInfo": {"type": "swap", "data": {"inputCurrencyId": "1-0xToken0", "outputCurrencyId": "1-0xToken1", "inputAmountRaw": "1000", "outputAmountRaw": "990"}},
						"addedTime": 1700000000000
					}
				]
			}`), nil)
		})

		It("queries the versioned endpoint with owners and chains", func() {
			Expect(getErr).NotTo(HaveOccurred())
			Expect(doer.DoCallCount()).To(Equal(1))

			req := doer.DoArgsForCall(0)
			Expect(req.Method).To(Equal(http.MethodGet))
			Expect(req.URL.Path).To(Equal("/v1/transactions"))
			Expect(req.URL.Query()["address"]).To(Equal([]string{"0xab5801a7d398351b8be11c439e05c5b3259aec9b"}))
			Expect(req.URL.Query()["chainId"]).To(Equal([]string{"1"}))
		})

		It("decodes the records", func() {
			Expect(getErr).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].ID).To(Equal("remote-1"))
			Expect(records[0].Status).To(Equal(transaction.StatusSuccess))
			Expect(records[0].Routing).To(Equal(transaction.RoutingClassic))
		})
	})

	When("one entry in the page is malformed", func() {
		BeforeEach(func() {
			doer.DoReturns(jsonResponse(http.StatusOK, `{
				"transactions": [
					{
						"id": "bad-1",
						"chainId": 1,
						"from": "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
						"routing": "CLASSIC",
						"status": "confirmed",
						"typeInfo": {"type": "swap", "data": "not-an-object"},
						"addedTime": 1
					},
					{
						"id": "good-1",
						"chainId": 1,
						"from": "0xab5801a7d398351b8be11c439e05c5b3259aec9b",
						"routing": "CLASSIC",
						"status": "confirmed",
						"typeInfo": {"type": "unknown", "data": {}},
						"addedTime": 2
					}
				]
			}`), nil)
		})

		It("skips the malformed entry and keeps the rest", func() {
			Expect(getErr).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].ID).To(Equal("good-1"))
		})
	})

	When("the indexer responds with a non-200 status", func() {
		BeforeEach(func() {
			doer.DoReturns(jsonResponse(http.StatusServiceUnavailable, `{}`), nil)
		})

		It("returns an error", func() {
			Expect(getErr).To(MatchError(ContainSubstring("unexpected status 503")))
			Expect(records).To(BeNil())
		})
	})

	When("the round-trip fails", func() {
		BeforeEach(func() {
			doer.DoReturns(nil, errors.New("dial tcp: timeout"))
		})

		It("wraps the transport error", func() {
			Expect(getErr).To(MatchError(ContainSubstring("list transactions")))
		})
	})
})
