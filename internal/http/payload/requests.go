package payload

import (
	"regexp"
	"walletfeed/internal/core"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
var hashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
		validation.Field(&a.Password, validation.Required),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type ActivityRequest struct {
	Address string
}

func (a ActivityRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Address, validation.Required, validation.Match(addressRegex)),
	)
}

type CancelOrdersRequest struct {
	Address     string   `json:"address"`
	OrderHashes []string `json:"orderHashes"`
}

func (c CancelOrdersRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.Required, validation.Match(addressRegex)),
		validation.Field(&c.OrderHashes, validation.Required, validation.Each(validation.Match(hashRegex))),
	)
}
