package utils

import (
	"homeo-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeLoginRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.Login{
			Email:    "  DOC@CLINIC.TEST  ",
			Password: " Secret ",
		}

		SanitizeLoginRequest(request)

		assert.Equal(t, "doc@clinic.test", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, " Secret ", request.Password, "password must not change")
	})

	t.Run("Role Sanitization", func(t *testing.T) {
		request := &requests.Login{Email: "doc@clinic.test", Role: "  Doctor "}

		SanitizeLoginRequest(request)

		assert.Equal(t, "doctor", request.Role)
	})
}

func TestSanitizeReceivePurchaseOrderRequest(t *testing.T) {
	request := &requests.ReceivePurchaseOrder{
		ReceivedBy: " staff-1 ",
		Items:      []requests.ReceivePurchaseOrderItem{{ItemID: " i-1 ", Quantity: 3}},
	}

	SanitizeReceivePurchaseOrderRequest(request)

	assert.Equal(t, "staff-1", request.ReceivedBy)
	assert.Equal(t, "i-1", request.Items[0].ItemID)
}

func TestSanitizeRecordPaymentRequest(t *testing.T) {
	request := &requests.RecordPayment{Method: " Cash ", Reference: " R-1 "}

	SanitizeRecordPaymentRequest(request)

	assert.Equal(t, "cash", request.Method)
	assert.Equal(t, "R-1", request.Reference)
}
