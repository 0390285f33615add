package handlers

import (
	"payproc/internal/middleware"
	"payproc/internal/models"
	"payproc/internal/services/payment"
	"payproc/internal/utils/response"
	"payproc/internal/validation"

	perrors "payproc/internal/errors"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService payment.Service
}

func NewPaymentHandler(paymentSvc payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentSvc}
}

// ProcessPayment charges the authenticated user.
func (h *PaymentHandler) ProcessPayment(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req models.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	req.UserID = claims.UserID

	v := validation.New()
	v.Payment(&req)
	if !v.Valid() {
		return response.ValidationErrors(c, v.Errors)
	}

	tx, err := h.paymentService.ProcessPayment(c.UserContext(), req)
	if err != nil {
		if code := perrors.CodeOf(err); code != "" {
			return response.CodedError(c, statusFor(code), code, err.Error())
		}
		return response.ServerError(c, err.Error())
	}

	return response.Created(c, "Payment processed successfully", tx)
}

// RefundPayment refunds a transaction. The refund is recorded for the user
// named in the request, defaulting to the caller.
func (h *PaymentHandler) RefundPayment(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req models.RefundRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if req.UserID == "" {
		req.UserID = claims.UserID
	}

	v := validation.New()
	v.Refund(&req)
	if !v.Valid() {
		return response.ValidationErrors(c, v.Errors)
	}

	refund := h.paymentService.RefundPayment(c.UserContext(), req)
	return response.Created(c, "Refund processed successfully", refund)
}
