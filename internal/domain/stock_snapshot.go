package domain

// StockSnapshot is the availability of one product at a single point in time.
// It is built per validation call and never shared.
type StockSnapshot struct {
	ProductID             int     `db:"product_id" json:"productId"`
	ProductName           string  `db:"product_name" json:"productName"`
	ProductCode           string  `db:"product_code" json:"productCode"`
	PhysicalStock         int     `db:"physical_stock" json:"physicalStock"`
	ReservedStock         int     `db:"reserved_stock" json:"reservedStock"`
	MinimumStock          int     `db:"minimum_stock" json:"minimumStock"`
	ReorderQuantity       int     `db:"reorder_quantity" json:"reorderQuantity"`
	PreferredSupplierName *string `db:"preferred_supplier_name" json:"preferredSupplierName"`
}

// AvailableStock is physical stock not yet promised to open orders, floored at zero.
// Over-reservation is tolerated and reported as zero availability.
func (s StockSnapshot) AvailableStock() int {
	available := s.PhysicalStock - s.ReservedStock
	if available < 0 {
		return 0
	}
	return available
}

// HasMinimumStockPolicy reports whether a reorder threshold is configured.
func (s StockSnapshot) HasMinimumStockPolicy() bool {
	return s.MinimumStock > 0
}

// PreferredSupplier returns the preferred supplier name, if one is known.
func (s StockSnapshot) PreferredSupplier() (string, bool) {
	if s.PreferredSupplierName == nil || *s.PreferredSupplierName == "" {
		return "", false
	}
	return *s.PreferredSupplierName, true
}

// LowStockItem is a product whose physical stock sits below its minimum.
type LowStockItem struct {
	ProductID             int     `db:"product_id" json:"productId"`
	ProductName           string  `db:"product_name" json:"productName"`
	ProductCode           string  `db:"product_code" json:"productCode"`
	PhysicalStock         int     `db:"physical_stock" json:"physicalStock"`
	MinimumStock          int     `db:"minimum_stock" json:"minimumStock"`
	ReorderQuantity       int     `db:"reorder_quantity" json:"reorderQuantity"`
	PreferredSupplierName *string `db:"preferred_supplier_name" json:"preferredSupplierName"`
}

func (i LowStockItem) Shortfall() int {
	return i.MinimumStock - i.PhysicalStock
}
