package order

// Order statuses
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
	StatusCancelled = "Cancelled"
)

// IsCancellable reports whether the user may still cancel the order
func (o *Order) IsCancellable() bool {
	return o.Status == StatusPending || o.Status == StatusConfirmed
}
