package domain

type OrderType string

const (
	TypePayIn  OrderType = "DEPOSIT"
	TypePayOut OrderType = "PAYOUT"
)

type OrderStatus string

const (
	StatusCreated         OrderStatus = "CREATED"
	StatusCompleted       OrderStatus = "COMPLETED"
	StatusCanceled        OrderStatus = "CANCELED"
	StatusDisputeCreated  OrderStatus = "DISPUTE_CREATED"
	StatusDisputeResolved OrderStatus = "DISPUTE_RESOLVED"
)

// Order is a history entry shown on the orders page. Read-only here.
type Order struct {
	ID         string      `json:"id"`
	Amount     float64     `json:"amount"`
	OrderType  OrderType   `json:"order_type"`
	Status     OrderStatus `json:"status"`
	CreatedAt  string      `json:"created_at"`
	MerchantID string      `json:"merchant_id"`
	TraderID   string      `json:"trader_id"`
}
