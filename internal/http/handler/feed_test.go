package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"walletfeed/internal/cancel"
	"walletfeed/internal/core"
	"walletfeed/internal/http/handler"
	"walletfeed/internal/http/handler/fake"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("FeedHandler", func() {
	var (
		fh                 *handler.FeedHandler
		fakeService        *fake.FeedService
		fakeValidator      *fake.RequestValidator
		fakeTokenValidator *fake.TokenValidator
		fakeLogger         *zap.SugaredLogger
		w                  *httptest.ResponseRecorder
		req                *http.Request
		testToken          string
		fakeErr            error
	)

	BeforeEach(func() {
		testToken = "test-token"
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.FeedService)
		fakeValidator = new(fake.RequestValidator)
		fakeTokenValidator = new(fake.TokenValidator)
		fakeTokenValidator.ValidateReturns(jwt.MapClaims{"sub": "alice"}, nil)

		w = httptest.NewRecorder()
		fh = handler.NewFeedHandler(fakeLogger, fakeValidator, fakeTokenValidator, fakeService)
	})

	decodeForReal := func() {
		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}
	}

	Describe("HandleAuthenticate", func() {
		var response map[string]string

		BeforeEach(func() {
			fakeService.AuthenticateReturns(testToken, nil)
			body := strings.NewReader(`{"username":"alice","password":"pass"}`)
			req = httptest.NewRequest("POST", "/wallet/authenticate", body)
			req.Header.Set("Content-Type", "application/json")
			decodeForReal()
		})

		JustBeforeEach(func() {
			fh.HandleAuthenticate(w, req)
		})

		When("authentication succeeds", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["token"]).To(Equal(testToken))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(1))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg.Username).To(Equal("alice"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(w.Body.String()).To(ContainSubstring("incorrect password"))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrUserNotFound)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("authentication fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", fakeErr)
			})

			It("should return 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetActivity", func() {
		address := "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

		BeforeEach(func() {
			fakeService.ActivityReturns([]transaction.Record{
				{
					ID:      "tx-1",
					ChainID: 1,
					From:    common.HexToAddress(address),
					Routing: transaction.RoutingClassic,
					Status:  transaction.StatusSuccess,
				},
			}, nil)
			req = httptest.NewRequest("GET", "/wallet/activity?address="+address, nil)
			req.Header.Set("AUTH_TOKEN", testToken)
		})

		JustBeforeEach(func() {
			fh.HandleGetActivity(w, req)
		})

		When("the request is valid", func() {
			It("should return the activity feed", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string][]map[string]any
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["transactions"]).To(HaveLen(1))
				Expect(response["transactions"][0]["id"]).To(Equal("tx-1"))

				Expect(fakeService.ActivityCallCount()).To(Equal(1))
				_, owner := fakeService.ActivityArgsForCall(0)
				Expect(owner).To(Equal(common.HexToAddress(address)))
			})
		})

		When("the address is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/wallet/activity?address=not-an-address", nil)
				req.Header.Set("AUTH_TOKEN", testToken)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.ActivityCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.ActivityReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 Unauthorized without touching the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ActivityCallCount()).To(Equal(0))
				Expect(fakeTokenValidator.ValidateCallCount()).To(Equal(0))
			})
		})

		When("the auth token is invalid", func() {
			BeforeEach(func() {
				fakeTokenValidator.ValidateReturns(nil, fakeErr)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ActivityCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleSubmitTransaction", func() {
		address := "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

		BeforeEach(func() {
			fakeService.SubmitTransactionReturns("tx-42", nil)
			body := strings.NewReader(`{
				"address": "` + address + `",
				"chainId": 1,
				"routing": "CLASSIC",
				"status": "pending",
				"typeInfo": {"type": "unknown", "data": {}},
				"addedTime": 1700000000000
			}`)
			req = httptest.NewRequest("POST", "/wallet/transactions", body)
			req.Header.Set("AUTH_TOKEN", testToken)
			decodeForReal()
		})

		JustBeforeEach(func() {
			fh.HandleSubmitTransaction(w, req)
		})

		When("the request is valid", func() {
			It("should record the transaction", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var response map[string]string
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["id"]).To(Equal("tx-42"))

				Expect(fakeService.SubmitTransactionCallCount()).To(Equal(1))
				_, owner, record := fakeService.SubmitTransactionArgsForCall(0)
				Expect(owner).To(Equal(common.HexToAddress(address)))
				Expect(record.ChainID).To(Equal(transaction.ChainID(1)))
				Expect(record.Status).To(Equal(transaction.StatusPending))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SubmitTransactionCallCount()).To(Equal(0))
			})
		})

		When("the auth token is invalid", func() {
			BeforeEach(func() {
				fakeTokenValidator.ValidateReturns(nil, fakeErr)
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SubmitTransactionCallCount()).To(Equal(0))
			})
		})

		When("the service rejects the transaction", func() {
			BeforeEach(func() {
				fakeService.SubmitTransactionReturns("", fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCancelOrders", func() {
		address := "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
		orderHash := "0x1111111111111111111111111111111111111111111111111111111111111111"

		outcome := &cancel.Outcome{
			OrderHashes: []string{orderHash},
			Submissions: []cancel.Submission{
				{
					Hash:    common.HexToHash("0xaa"),
					Receipt: &types.Receipt{Status: types.ReceiptStatusSuccessful},
				},
				{Hash: common.HexToHash("0xbb")},
			},
		}

		BeforeEach(func() {
			fakeService.CancelOrdersReturns(outcome, nil)
			body := strings.NewReader(`{"address": "` + address + `", "orderHashes": ["` + orderHash + `"]}`)
			req = httptest.NewRequest("POST", "/wallet/orders/cancel", body)
			req.Header.Set("AUTH_TOKEN", testToken)
			decodeForReal()
		})

		JustBeforeEach(func() {
			fh.HandleCancelOrders(w, req)
		})

		When("the cancellation succeeds", func() {
			It("should return the submitted hashes with their receipt status", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var response map[string]any
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["orderHashes"]).To(ConsistOf(orderHash))
				Expect(response["transactionHashes"]).To(HaveLen(2))

				submissions, ok := response["submissions"].([]any)
				Expect(ok).To(BeTrue())
				Expect(submissions).To(HaveLen(2))
				first, ok := submissions[0].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(first["receiptStatus"]).To(Equal("success"))
				second, ok := submissions[1].(map[string]any)
				Expect(ok).To(BeTrue())
				Expect(second["receiptStatus"]).To(Equal("unknown"))

				Expect(fakeService.CancelOrdersCallCount()).To(Equal(1))
				_, owner, hashes := fakeService.CancelOrdersArgsForCall(0)
				Expect(owner).To(Equal(common.HexToAddress(address)))
				Expect(hashes).To(Equal([]string{orderHash}))
			})
		})

		When("no order is cancellable", func() {
			BeforeEach(func() {
				fakeService.CancelOrdersReturns(nil, core.ErrNoCancellableOrders)
			})

			It("should return status 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the batch fails partway through", func() {
			BeforeEach(func() {
				partial := &cancel.PartialSubmitError{
					FailedIndex: 1,
					Submitted:   1,
					Err:         fakeErr,
				}
				fakeService.CancelOrdersReturns(outcome, partial)
			})

			It("should return 502 with the submissions that went through", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
				Expect(w.Body.String()).To(ContainSubstring("transactionHashes"))
			})
		})

		When("the cancellation fails outright", func() {
			BeforeEach(func() {
				fakeService.CancelOrdersReturns(nil, fakeErr)
			})

			It("should return status 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})

		When("the AUTH_TOKEN header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("should return 401 Unauthorized", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.CancelOrdersCallCount()).To(Equal(0))
			})
		})
	})
})
