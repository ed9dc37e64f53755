package validation

import (
	"github.com/Cheertaboi/shop-admin/internal/changes"
	"github.com/Cheertaboi/shop-admin/internal/models"
)

type OrderStatusInput struct {
	Status *string `json:"status"`
}

// ValidateOrderStatus checks that the requested status is a known one.
func ValidateOrderStatus(in OrderStatusInput) (models.OrderStatus, error) {
	if err := FieldsError(ValidateFields(map[string]any{"status": in.Status}, OrderStatusRules)); err != nil {
		return "", err
	}
	status := models.OrderStatus(*in.Status)
	if !status.Valid() {
		return "", Error(MsgOrderStatusNotRule)
	}
	return status, nil
}

// ValidateOrderTransition rejects moving an order to the status it already has.
func ValidateOrderTransition(current, next models.OrderStatus) error {
	if changes.OrderStatusUnchanged(current, next) {
		return Error("order " + MsgDataNotChanged)
	}
	return nil
}
