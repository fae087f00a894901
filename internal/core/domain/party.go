package domain

// Customer is a directory entry; email is unique when present.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary key (UUID)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	AuditFields
}

// Store is a physical location; users, products and sales may be attached
// to one. No per-store authorization is applied.
type Store struct {
	StoreID string `json:"storeID"` // Primary key (UUID)
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	AuditFields
}
