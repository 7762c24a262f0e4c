package cancel_test

import (
	"context"
	"errors"

	"walletfeed/internal/cancel"
	"walletfeed/internal/cancel/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("CachedOrderFetcher", func() {
	var (
		fakeFetcher *fake.EncodedOrderFetcher
		cached      *cancel.CachedOrderFetcher
		ctx         context.Context
	)

	BeforeEach(func() {
		var err error
		fakeFetcher = new(fake.EncodedOrderFetcher)
		cached, err = cancel.NewCachedOrderFetcher(zap.NewNop().Sugar(), fakeFetcher)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	It("returns nothing for an empty hash list", func() {
		result, err := cached.FetchEncodedOrders(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(BeEmpty())
		Expect(fakeFetcher.FetchEncodedOrdersCallCount()).To(Equal(0))
	})

	It("fetches a cold hash and serves it from cache afterwards", func() {
		fakeFetcher.FetchEncodedOrdersReturns([]cancel.OrderEncoding{
			{OrderHash: "0xo1", EncodedOrder: "0xenc1", OrderStatus: "open"},
		}, nil)

		first, err := cached.FetchEncodedOrders(ctx, []string{"0xo1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(HaveLen(1))
		Expect(fakeFetcher.FetchEncodedOrdersCallCount()).To(Equal(1))

		second, err := cached.FetchEncodedOrders(ctx, []string{"0xo1"})
		Expect(err).NotTo(HaveOccurred())
		Expect(second).To(Equal(first))
		Expect(fakeFetcher.FetchEncodedOrdersCallCount()).To(Equal(1))
	})

	It("fetches only the hashes the cache does not hold", func() {
		fakeFetcher.FetchEncodedOrdersReturnsOnCall(0, []cancel.OrderEncoding{
			{OrderHash: "0xo1", EncodedOrder: "0xenc1"},
		}, nil)
		fakeFetcher.FetchEncodedOrdersReturnsOnCall(1, []cancel.OrderEncoding{
			{OrderHash: "0xo2", EncodedOrder: "0xenc2"},
		}, nil)

		_, err := cached.FetchEncodedOrders(ctx, []string{"0xo1"})
		Expect(err).NotTo(HaveOccurred())

		result, err := cached.FetchEncodedOrders(ctx, []string{"0xo1", "0xo2"})
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(HaveLen(2))

		_, missing := fakeFetcher.FetchEncodedOrdersArgsForCall(1)
		Expect(missing).To(Equal([]string{"0xo2"}))
	})

	It("propagates the underlying fetch error", func() {
		fakeErr := errors.New("fake error")
		fakeFetcher.FetchEncodedOrdersReturns(nil, fakeErr)

		_, err := cached.FetchEncodedOrders(ctx, []string{"0xo1"})
		Expect(err).To(MatchError(fakeErr))
	})
})
