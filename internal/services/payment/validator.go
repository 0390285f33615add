package payment

import (
	perrors "payproc/internal/errors"
	"payproc/internal/models"
)

// MethodRule validates the metadata of one payment method.
type MethodRule interface {
	Validate(meta models.Metadata) error
}

type cardRule struct{}

func (cardRule) Validate(meta models.Metadata) error {
	if !meta.Has(models.MetaCardNumber) || !meta.Has(models.MetaExpiry) {
		return perrors.ErrInvalidCardMetadata
	}
	return nil
}

type payPalRule struct{}

func (payPalRule) Validate(meta models.Metadata) error {
	if !meta.Has(models.MetaPayPalAccount) {
		return perrors.ErrInvalidPayPalMetadata
	}
	return nil
}

// Validator checks payment metadata against the rule of its method.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// RuleFor returns the rule for method. Every PaymentMethod constant must
// have a case here.
func RuleFor(method models.PaymentMethod) (MethodRule, bool) {
	switch method {
	case models.PaymentMethodCreditCard:
		return cardRule{}, true
	case models.PaymentMethodPayPal:
		return payPalRule{}, true
	default:
		return nil, false
	}
}

// Validate returns ErrUnsupportedMethod for unknown methods and the
// method's metadata error when a required field is missing.
func (v *Validator) Validate(method models.PaymentMethod, meta models.Metadata) error {
	rule, ok := RuleFor(method)
	if !ok {
		return perrors.ErrUnsupportedMethod
	}
	return rule.Validate(meta)
}
