package preorder

import "time"

// Pre-order statuses
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusFulfilled = "Fulfilled"
	StatusCancelled = "Cancelled"
)

// IsAvailable reports whether the pre-order window is open and slots remain
func (p *PreOrderProduct) IsAvailable(now time.Time) bool {
	return p.IsActive &&
		!now.Before(p.PreOrderStartDate) &&
		!now.After(p.PreOrderEndDate) &&
		p.CurrentPreOrders < p.MaxPreOrderQuantity
}

// SlotsRemaining how many reservations are still open
func (p *PreOrderProduct) SlotsRemaining() uint64 {
	if p.CurrentPreOrders >= p.MaxPreOrderQuantity {
		return 0
	}
	return p.MaxPreOrderQuantity - p.CurrentPreOrders
}
