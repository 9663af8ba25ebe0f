package models

type Supplier struct {
	ID            string `json:"id,omitempty" yaml:"id,omitempty"`
	Name          string `json:"name" yaml:"name"`
	ContactPerson string `json:"contactPerson,omitempty" yaml:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone         string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Address       string `json:"address,omitempty" yaml:"address,omitempty"`
	TaxID         string `json:"taxId,omitempty" yaml:"taxId,omitempty"`
}

const (
	PurchaseOrderStatusDraft    = "draft"
	PurchaseOrderStatusOrdered  = "ordered"
	PurchaseOrderStatusReceived = "received"
)

type PurchaseOrder struct {
	ID             string              `json:"id,omitempty" yaml:"id,omitempty"`
	OrderNumber    string              `json:"orderNumber,omitempty" yaml:"orderNumber,omitempty"`
	SupplierID     string              `json:"supplierId" yaml:"supplierId"`
	Items          []PurchaseOrderLine `json:"items,omitempty" yaml:"items,omitempty"`
	Total          float64             `json:"total,omitempty" yaml:"total,omitempty"`
	Status         string              `json:"status,omitempty" yaml:"status,omitempty"`
	PaymentTermsID string              `json:"paymentTermsId,omitempty" yaml:"paymentTermsId,omitempty"`
	OrderedAt      string              `json:"orderedAt,omitempty" yaml:"orderedAt,omitempty"`
	ExpectedAt     string              `json:"expectedAt,omitempty" yaml:"expectedAt,omitempty"`
}

type PurchaseOrderLine struct {
	ItemID    string  `json:"itemId" yaml:"itemId"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
	UnitPrice float64 `json:"unitPrice" yaml:"unitPrice"`
}

type GoodsReceipt struct {
	ID              string             `json:"id,omitempty" yaml:"id,omitempty"`
	PurchaseOrderID string             `json:"purchaseOrderId" yaml:"purchaseOrderId"`
	ReceivedBy      string             `json:"receivedBy,omitempty" yaml:"receivedBy,omitempty"`
	Items           []GoodsReceiptLine `json:"items,omitempty" yaml:"items,omitempty"`
	ReceivedAt      string             `json:"receivedAt,omitempty" yaml:"receivedAt,omitempty"`
	Notes           string             `json:"notes,omitempty" yaml:"notes,omitempty"`
}

type GoodsReceiptLine struct {
	ItemID   string `json:"itemId" yaml:"itemId"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}
