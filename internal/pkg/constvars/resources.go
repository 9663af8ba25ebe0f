package constvars

const (
	ResourceAuth           = "/auth"
	ResourcePatients       = "/patients"
	ResourceDoctors        = "/doctors"
	ResourceStaff          = "/staff"
	ResourceAppointments   = "/appointments"
	ResourcePrescriptions  = "/prescriptions"
	ResourceInventory      = "/inventory"
	ResourceInvoices       = "/invoices"
	ResourcePaymentTerms   = "/payment-terms"
	ResourceSuppliers      = "/suppliers"
	ResourcePurchaseOrders = "/purchase-orders"
	ResourceGoodsReceipts  = "/goods-receipts"
	ResourceAdvertisements = "/advertisements"
)

const (
	PathLogin        = "/login"
	PathMe           = "/me"
	PathCancel       = "/cancel"
	PathAvailability = "/availability"
	PathAttachments  = "/attachments"
	PathAdjustStock  = "/adjust-stock"
	PathLowStock     = "/low-stock"
	PathPayments     = "/payments"
	PathReceive      = "/receive"
	PathImage        = "/image"
)
