package domain

// OrderStatus is the status vocabulary shared with the order subsystem.
// The string values are stored verbatim in Orders.status and are case-sensitive.
type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "New"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusConfirmed  OrderStatus = "Confirmed"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	OrderStatusNew,
	OrderStatusInProgress,
	OrderStatusConfirmed,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// ParseOrderStatus maps stored status text onto the enumeration.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range orderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsOpen reports whether order lines in this status hold reserved stock.
func (s OrderStatus) IsOpen() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusConfirmed:
		return true
	}
	return false
}

// OpenOrderStatuses returns the statuses counted toward reserved stock.
func OpenOrderStatuses() []OrderStatus {
	open := make([]OrderStatus, 0, 3)
	for _, st := range orderStatuses {
		if st.IsOpen() {
			open = append(open, st)
		}
	}
	return open
}
