package usecase

import (
	"strconv"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	"github.com/avolkou/crmdesk/internal/domain/model"
)

// validateOrderDraft checks the required scalar fields of an order before
// anything touches the store or the filesystem.
func validateOrderDraft(draft model.OrderDraft) error {
	if draft.Amount == "" {
		return domainErrors.Validationf("amount is required")
	}
	if _, err := strconv.ParseFloat(draft.Amount, 64); err != nil {
		return domainErrors.Validationf("amount %q is not a decimal number", draft.Amount)
	}
	if draft.Status == "" {
		return domainErrors.Validationf("status is required")
	}
	if draft.ClientID <= 0 {
		return domainErrors.Validationf("client_id is required")
	}
	return nil
}
