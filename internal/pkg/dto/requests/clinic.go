package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin doctor patient staff"`
}

type CancelAppointment struct {
	Reason string `json:"reason,omitempty"`
}

type AdjustStock struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

type RecordPayment struct {
	Amount    float64 `json:"amount" validate:"gt=0"`
	Method    string  `json:"method" validate:"required"`
	Reference string  `json:"reference,omitempty"`
	PaidAt    string  `json:"paidAt,omitempty"`
}

type ReceivePurchaseOrder struct {
	ReceivedBy string                     `json:"receivedBy,omitempty"`
	Items      []ReceivePurchaseOrderItem `json:"items" validate:"required,min=1,dive"`
	Notes      string                     `json:"notes,omitempty"`
}

type ReceivePurchaseOrderItem struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}
