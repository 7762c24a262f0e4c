package remote_test

import (
	"context"
	"errors"
	"net/http"

	"walletfeed/internal/cancel"
	"walletfeed/internal/remote"
	"walletfeed/internal/remote/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("OrderClient", func() {
	var (
		doer   *fake.HTTPDoer
		client *remote.OrderClient

		hashes    []string
		encodings []cancel.OrderEncoding
		fetchErr  error
	)

	BeforeEach(func() {
		doer = new(fake.HTTPDoer)
		client = remote.NewOrderClient(zap.NewNop().Sugar(), "https://orders.example.com", doer)
		hashes = []string{"0xorder1", "0xorder2"}
	})

	JustBeforeEach(func() {
		encodings, fetchErr = client.FetchEncodedOrders(context.Background(), hashes)
	})

	When("no hashes are requested", func() {
		BeforeEach(func() {
			hashes = nil
		})

		It("skips the round-trip", func() {
			Expect(fetchErr).NotTo(HaveOccurred())
			Expect(encodings).To(BeEmpty())
			Expect(doer.DoCallCount()).To(Equal(0))
		})
	})

	When("the order API responds", func() {
		BeforeEach(func() {
			doer.DoReturns(jsonResponse(http.StatusOK, `{
				"orders": [
					{"orderHash": "0xorder1", "encodedOrder": "0xdeadbeef", "orderStatus": "open"},
					{"orderHash": "0xorder2", "encodedOrder": "0xfeedface", "orderStatus": "open"}
				]
			}`), nil)
		})

		It("requests all hashes in one comma-joined query", func() {
			Expect(fetchErr).NotTo(HaveOccurred())
			Expect(doer.DoCallCount()).To(Equal(1))

			req := doer.DoArgsForCall(0)
			Expect(req.URL.Path).To(Equal("/v2/orders"))
			Expect(req.URL.Query().Get("orderHashes")).To(Equal("0xorder1,0xorder2"))
		})

		It("returns the encodings", func() {
			Expect(encodings).To(Equal([]cancel.OrderEncoding{
				{OrderHash: "0xorder1", EncodedOrder: "0xdeadbeef", OrderStatus: "open"},
				{OrderHash: "0xorder2", EncodedOrder: "0xfeedface", OrderStatus: "open"},
			}))
		})
	})

	When("the order API responds with a non-200 status", func() {
		BeforeEach(func() {
			doer.DoReturns(jsonResponse(http.StatusNotFound, `{}`), nil)
		})

		It("returns an error", func() {
			Expect(fetchErr).To(MatchError(ContainSubstring("unexpected status 404")))
			Expect(encodings).To(BeNil())
		})
	})

	When("the round-trip fails", func() {
		BeforeEach(func() {
			doer.DoReturns(nil, errors.New("connection refused"))
		})

		It("wraps the transport error", func() {
			Expect(fetchErr).To(MatchError(ContainSubstring("list orders")))
		})
	})
})
