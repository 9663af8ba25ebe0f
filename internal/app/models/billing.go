package models

const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusUnpaid  = "unpaid"
	InvoiceStatusPartial = "partial"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID             string        `json:"id,omitempty" yaml:"id,omitempty"`
	InvoiceNumber  string        `json:"invoiceNumber,omitempty" yaml:"invoiceNumber,omitempty"`
	PatientID      string        `json:"patientId" yaml:"patientId"`
	AppointmentID  string        `json:"appointmentId,omitempty" yaml:"appointmentId,omitempty"`
	Items          []InvoiceLine `json:"items,omitempty" yaml:"items,omitempty"`
	Subtotal       float64       `json:"subtotal,omitempty" yaml:"subtotal,omitempty"`
	Discount       float64       `json:"discount,omitempty" yaml:"discount,omitempty"`
	Tax            float64       `json:"tax,omitempty" yaml:"tax,omitempty"`
	Total          float64       `json:"total" yaml:"total"`
	AmountPaid     float64       `json:"amountPaid,omitempty" yaml:"amountPaid,omitempty"`
	Status         string        `json:"status,omitempty" yaml:"status,omitempty"`
	PaymentTermsID string        `json:"paymentTermsId,omitempty" yaml:"paymentTermsId,omitempty"`
	DueDate        string        `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	IssuedAt       string        `json:"issuedAt,omitempty" yaml:"issuedAt,omitempty"`
}

type InvoiceLine struct {
	Description string  `json:"description" yaml:"description"`
	Quantity    int     `json:"quantity" yaml:"quantity"`
	UnitPrice   float64 `json:"unitPrice" yaml:"unitPrice"`
	Amount      float64 `json:"amount" yaml:"amount"`
}

type Payment struct {
	ID        string  `json:"id,omitempty" yaml:"id,omitempty"`
	InvoiceID string  `json:"invoiceId" yaml:"invoiceId"`
	Amount    float64 `json:"amount" yaml:"amount"`
	Method    string  `json:"method" yaml:"method"`
	Reference string  `json:"reference,omitempty" yaml:"reference,omitempty"`
	PaidAt    string  `json:"paidAt,omitempty" yaml:"paidAt,omitempty"`
}

type PaymentTerms struct {
	ID              string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name            string  `json:"name" yaml:"name"`
	DueInDays       int     `json:"dueInDays" yaml:"dueInDays"`
	DiscountPercent float64 `json:"discountPercent,omitempty" yaml:"discountPercent,omitempty"`
	DiscountDays    int     `json:"discountDays,omitempty" yaml:"discountDays,omitempty"`
	Description     string  `json:"description,omitempty" yaml:"description,omitempty"`
}
