package echoapi

import (
	"github.com/go-playground/validator/v10"
)

type BlockedRequest struct {
	Blocked *bool `json:"blocked" validate:"required"`
}

func (r *BlockedRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

type CommentRequest struct {
	Comment string `json:"comment"`
}
