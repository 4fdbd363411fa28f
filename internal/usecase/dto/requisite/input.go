package requisitedto

import "github.com/LavaJover/shvark-requisites-service/internal/domain"

// RequisiteForm mirrors the create/edit form: every field arrives as text and
// empty strings mean "not set".
type RequisiteForm struct {
	OperationType   string `json:"operation_type"`
	RequisitesType  string `json:"requisites_type"`
	OrderCntPerDay  string `json:"order_cnt_per_day"`
	OrderSumPerDay  string `json:"order_sum_per_day"`
	OrderGap        string `json:"order_gap"`
	OrderInParallel string `json:"order_in_parallel"`
	CntIssuance     string `json:"cnt_issuance"`
	StartWorkTime   string `json:"start_work_time"`
	EndWorkTime     string `json:"end_work_time"`
	Fullname        string `json:"fullname"`
	LimitMin        string `json:"limit_min"`
	LimitMax        string `json:"limit_max"`
	BankID          string `json:"bank_id"`
	Requisites      string `json:"requisites"`
	IBAN            string `json:"iban"`
	PhoneNumber     string `json:"phone_number"`
	BankBIK         string `json:"bank_bik"`
}

type CreateRequisiteInput struct {
	Form RequisiteForm
	User domain.CurrentUser
}

type EditRequisiteInput struct {
	ID   string
	Form RequisiteForm
	User domain.CurrentUser
}

type ToggleStatusInput struct {
	ID   string
	User domain.CurrentUser
}

// RequisitesFilters is the filter form payload. Only one of CardNumber,
// PhoneNumber and AccountNumber is expected to be filled.
type RequisitesFilters struct {
	TraderID      string `form:"trader_id" json:"trader_id"`
	CardNumber    string `form:"card_number" json:"card_number"`
	PhoneNumber   string `form:"phone_number" json:"phone_number"`
	AccountNumber string `form:"account_number" json:"account_number"`
	OperationType string `form:"operation_type" json:"operation_type"`
	PaymentMethod string `form:"payment_method" json:"payment_method"`
	Fullname      string `form:"fullname" json:"fullname"`
}

type ListRequisitesInput struct {
	Filters RequisitesFilters
	Page    int
	User    domain.CurrentUser
}
