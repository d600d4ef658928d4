package request

import (
	"strings"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/domain/validation"
)

// Field error messages shown under the checkout form inputs.
const (
	MsgFullNameRequired = "Nome completo é obrigatório"
	MsgFullNameInvalid  = "Informe nome e sobrenome"
	MsgEmailRequired    = "E-mail é obrigatório"
	MsgEmailInvalid     = "E-mail inválido"
	MsgCPFRequired      = "CPF é obrigatório"
	MsgCPFInvalid       = "CPF inválido"
	MsgPhoneRequired    = "Telefone é obrigatório"
	MsgPhoneInvalid     = "Telefone inválido"
)

// CheckoutFormRequest is the urlencoded checkout form.
type CheckoutFormRequest struct {
	FullName string `form:"fullName"`
	Email    string `form:"email"`
	CPF      string `form:"cpf"`
	Phone    string `form:"phone"`
}

// Validate returns one message per invalid field, keyed by the form field name.
// An empty map means the form can be submitted.
func (r CheckoutFormRequest) Validate() map[string]string {
	errs := map[string]string{}

	switch name := strings.TrimSpace(r.FullName); {
	case name == "":
		errs["fullName"] = MsgFullNameRequired
	case !validation.ValidFullName(name):
		errs["fullName"] = MsgFullNameInvalid
	}

	switch email := strings.TrimSpace(r.Email); {
	case email == "":
		errs["email"] = MsgEmailRequired
	case !validation.ValidEmail(email):
		errs["email"] = MsgEmailInvalid
	}

	switch {
	case strings.TrimSpace(r.CPF) == "":
		errs["cpf"] = MsgCPFRequired
	case !validation.ValidDocument(r.CPF):
		errs["cpf"] = MsgCPFInvalid
	}

	switch {
	case strings.TrimSpace(r.Phone) == "":
		errs["phone"] = MsgPhoneRequired
	case !validation.ValidPhone(r.Phone):
		errs["phone"] = MsgPhoneInvalid
	}

	return errs
}

// Masked returns the form with cpf and phone re-masked, for re-rendering.
func (r CheckoutFormRequest) Masked() CheckoutFormRequest {
	return CheckoutFormRequest{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.TrimSpace(r.Email),
		CPF:      validation.MaskDocument(r.CPF),
		Phone:    validation.MaskPhone(r.Phone),
	}
}

func (r CheckoutFormRequest) ToEntity() entities.CustomerInput {
	return entities.CustomerInput{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.TrimSpace(r.Email),
		Document: validation.Digits(r.CPF),
		Phone:    validation.Digits(r.Phone),
	}
}
