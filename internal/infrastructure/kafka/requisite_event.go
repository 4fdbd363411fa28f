package publisher

type RequisiteAction string

const (
	RequisiteCreated       RequisiteAction = "created"
	RequisiteUpdated       RequisiteAction = "updated"
	RequisiteStatusChanged RequisiteAction = "status_changed"
)

type RequisiteEvent struct {
	RequisiteID    string          `json:"requisite_id"`
	TraderID       string          `json:"trader_id"`
	Action         RequisiteAction `json:"action"`
	Status         string          `json:"status"`
	RequisitesType string          `json:"requisites_type"`
	OperationType  string          `json:"operation_type"`
	BankID         string          `json:"bank_id,omitempty"`
	UpdatedAt      string          `json:"updated_at"`
}
