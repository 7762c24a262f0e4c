package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"walletfeed/internal/cancel"
	"walletfeed/internal/core"
	"walletfeed/internal/http/handler/middleware"
	"walletfeed/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var (
	Authenticate      = "POST /wallet/authenticate"
	GetActivity       = "GET /wallet/activity"
	SubmitTransaction = "POST /wallet/transactions"
	CancelOrders      = "POST /wallet/orders/cancel"
)

type FeedHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	tokenValidator   TokenValidator
	feed             FeedService
}

func NewFeedHandler(
	logger *zap.SugaredLogger,
	requestValidator RequestValidator,
	tokenValidator TokenValidator,
	feedService FeedService,
) *FeedHandler {
	return &FeedHandler{
		logs:             logger,
		requestValidator: requestValidator,
		tokenValidator:   tokenValidator,
		feed:             feedService,
	}
}

func (h *FeedHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.feed.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *FeedHandler) HandleGetActivity(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, GetActivity, requestId) {
		return
	}

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve activity",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetActivity, "request_id", requestId)
		return
	}

	activityRequest := payload.ActivityRequest{
		Address: values.Get("address"),
	}
	if err := activityRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", GetActivity,
			"request_id", requestId)
		return
	}

	h.logs.Infow("activity request received",
		"address", activityRequest.Address,
		"handler", GetActivity,
		"request_id", requestId)

	records, err := h.feed.Activity(r.Context(), common.HexToAddress(activityRequest.Address))
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve activity",
			Error:   fmt.Errorf("get activity: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to get activity",
			"error", err,
			"handler", GetActivity,
			"request_id", requestId)
		return
	}

	views, err := payload.ToTransactionViews(records)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve activity",
			Error:   "unexpected error occurred",
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to encode activity records",
			"error", err,
			"handler", GetActivity,
			"request_id", requestId)
		return
	}

	resp := map[string][]payload.TransactionView{
		"transactions": views,
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *FeedHandler) HandleSubmitTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, SubmitTransaction, requestId) {
		return
	}

	var payload payload.SubmitTransactionRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not record transaction",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SubmitTransaction,
			"request_id", requestId)
		return
	}

	record, err := payload.ToRecord()
	if err != nil {
		h.respond(w, Response{
			Message: "Could not record transaction",
			Error:   fmt.Errorf("invalid transaction payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to convert transaction payload",
			"error", err,
			"handler", SubmitTransaction,
			"request_id", requestId)
		return
	}

	id, err := h.feed.SubmitTransaction(r.Context(), common.HexToAddress(payload.Address), record)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not record transaction",
			Error:   fmt.Errorf("submit transaction: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to record transaction",
			"error", err,
			"handler", SubmitTransaction,
			"request_id", requestId)
		return
	}

	resp := map[string]string{
		"id": id,
	}
	h.respond(w, resp, http.StatusCreated, requestId)
}

func (h *FeedHandler) HandleCancelOrders(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if !h.authorized(w, r, CancelOrders, requestId) {
		return
	}

	var payload payload.CancelOrdersRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not cancel orders",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", CancelOrders,
			"request_id", requestId)
		return
	}

	h.logs.Infow("cancel orders request received",
		"address", payload.Address,
		"order_hashes", payload.OrderHashes,
		"handler", CancelOrders,
		"request_id", requestId)

	outcome, err := h.feed.CancelOrders(r.Context(), common.HexToAddress(payload.Address), payload.OrderHashes)
	if err != nil {
		if errors.Is(err, core.ErrNoCancellableOrders) {
			h.respond(w, Response{
				Message: "No orders to cancel",
				Error:   err.Error(),
			}, http.StatusNotFound,
				requestId)
			h.logs.Errorw("no cancellable orders",
				"error", err,
				"handler", CancelOrders,
				"request_id", requestId)
			return
		}

		// a partial failure still carries the submissions that went through
		if cancel.IsPartial(err) && outcome != nil {
			h.respond(w, Response{
				Message: "Some cancellations were not submitted",
				Data:    cancelResponse(outcome),
				Error:   err.Error(),
			}, http.StatusBadGateway,
				requestId)
			h.logs.Errorw("cancellation batch partially submitted",
				"error", err,
				"handler", CancelOrders,
				"request_id", requestId)
			return
		}

		h.respond(w, Response{
			Message: "Could not cancel orders",
			Error:   fmt.Errorf("cancel orders: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to cancel orders",
			"error", err,
			"handler", CancelOrders,
			"request_id", requestId)
		return
	}

	h.respond(w, cancelResponse(outcome), http.StatusOK, requestId)
}

func (h *FeedHandler) authorized(w http.ResponseWriter, r *http.Request, route string, requestId string) bool {
	authToken := r.Header.Get("AUTH_TOKEN")
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", route, "request_id", requestId)
		return false
	}

	if _, err := h.tokenValidator.Validate(authToken); err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "invalid auth token",
		}, http.StatusUnauthorized,
			requestId)
		h.logs.Errorw("invalid auth token", "error", err, "handler", route, "request_id", requestId)
		return false
	}

	return true
}

func (h *FeedHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	return reqIdCtx.(string)
}

func cancelResponse(outcome *cancel.Outcome) map[string]any {
	hashes := make([]string, 0, len(outcome.Submissions))
	submissions := make([]map[string]string, 0, len(outcome.Submissions))
	for _, sub := range outcome.Submissions {
		hashes = append(hashes, sub.Hash.Hex())
		submissions = append(submissions, map[string]string{
			"hash":          sub.Hash.Hex(),
			"receiptStatus": receiptStatus(sub.Receipt),
		})
	}
	return map[string]any{
		"orderHashes":       outcome.OrderHashes,
		"transactionHashes": hashes,
		"submissions":       submissions,
	}
}

func receiptStatus(receipt *types.Receipt) string {
	switch {
	case receipt == nil:
		return "unknown"
	case receipt.Status == types.ReceiptStatusSuccessful:
		return "success"
	default:
		return "reverted"
	}
}
