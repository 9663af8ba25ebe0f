package models

type InventoryItem struct {
	ID           string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name         string  `json:"name" yaml:"name"`
	Category     string  `json:"category,omitempty" yaml:"category,omitempty"`
	Potency      string  `json:"potency,omitempty" yaml:"potency,omitempty"`
	Unit         string  `json:"unit,omitempty" yaml:"unit,omitempty"`
	Quantity     int     `json:"quantity" yaml:"quantity"`
	ReorderLevel int     `json:"reorderLevel,omitempty" yaml:"reorderLevel,omitempty"`
	UnitPrice    float64 `json:"unitPrice,omitempty" yaml:"unitPrice,omitempty"`
	SupplierID   string  `json:"supplierId,omitempty" yaml:"supplierId,omitempty"`
	ExpiryDate   string  `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
}
