package utils

import (
	"strings"

	"homeo-service/internal/pkg/dto/requests"
)

// SanitizeLoginRequest normalizes the fields users tend to type inconsistently. The
// password is left untouched.
func SanitizeLoginRequest(input *requests.Login) {
	if input == nil {
		return
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeReceivePurchaseOrderRequest(input *requests.ReceivePurchaseOrder) {
	if input == nil {
		return
	}
	input.ReceivedBy = strings.TrimSpace(input.ReceivedBy)
	input.Notes = strings.TrimSpace(input.Notes)
	for i := range input.Items {
		input.Items[i].ItemID = strings.TrimSpace(input.Items[i].ItemID)
	}
}

func SanitizeRecordPaymentRequest(input *requests.RecordPayment) {
	if input == nil {
		return
	}
	input.Method = strings.ToLower(strings.TrimSpace(input.Method))
	input.Reference = strings.TrimSpace(input.Reference)
}
