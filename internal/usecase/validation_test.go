package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/avolkou/crmdesk/internal/domain/errors"
	"github.com/avolkou/crmdesk/internal/domain/model"
)

func TestValidateOrderDraft(t *testing.T) {
	desc := "two lamps"
	valid := model.OrderDraft{Amount: "10.00", Status: "open", ClientID: 1, Description: &desc}

	cases := []struct {
		name    string
		mutate  func(*model.OrderDraft)
		wantErr bool
	}{
		{name: "valid", mutate: func(*model.OrderDraft) {}},
		{name: "valid without description", mutate: func(d *model.OrderDraft) { d.Description = nil }},
		{name: "negative amount is still a decimal", mutate: func(d *model.OrderDraft) { d.Amount = "-3.50" }},
		{name: "missing amount", mutate: func(d *model.OrderDraft) { d.Amount = "" }, wantErr: true},
		{name: "non-decimal amount", mutate: func(d *model.OrderDraft) { d.Amount = "ten" }, wantErr: true},
		{name: "missing status", mutate: func(d *model.OrderDraft) { d.Status = "" }, wantErr: true},
		{name: "missing client", mutate: func(d *model.OrderDraft) { d.ClientID = 0 }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := valid
			tc.mutate(&draft)
			err := validateOrderDraft(draft)
			if tc.wantErr {
				if !errors.Is(err, domainErrors.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
