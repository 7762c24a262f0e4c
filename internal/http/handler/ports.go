package handler

import (
	"context"
	"net/http"

	"walletfeed/internal/cancel"
	"walletfeed/internal/core"
	"walletfeed/internal/transaction"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name FeedService . FeedService
type FeedService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	Activity(ctx context.Context, owner common.Address) ([]transaction.Record, error)
	SubmitTransaction(ctx context.Context, owner common.Address, tx transaction.Record) (string, error)
	CancelOrders(ctx context.Context, owner common.Address, orderHashes []string) (*cancel.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TokenValidator . TokenValidator
type TokenValidator interface {
	Validate(token string) (jwt.MapClaims, error)
}
