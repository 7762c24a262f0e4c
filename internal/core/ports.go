package core

import (
	"context"
	"walletfeed/internal/cancel"
	"walletfeed/internal/repository"
	"walletfeed/internal/transaction"
	tokenIssuer "walletfeed/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUser(ctx context.Context, username string) (repository.User, error)
	GetLocalTransactions(ctx context.Context, owners []common.Address) ([]transaction.Record, error)
	SaveLocalTransaction(ctx context.Context, owner common.Address, tx transaction.Record) (string, error)
	FinalizeTransaction(ctx context.Context, tx transaction.Record) error
}

//counterfeiter:generate -o fake -fake-name RemoteSource . RemoteSource
type RemoteSource interface {
	GetRemoteTransactions(
		ctx context.Context,
		owners []common.Address,
		enabledChains map[transaction.ChainID]struct{},
	) ([]transaction.Record, error)
}

//counterfeiter:generate -o fake -fake-name Canceller . Canceller
type Canceller interface {
	CancelOrders(ctx context.Context, orders []transaction.Record, from common.Address) (*cancel.Outcome, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
