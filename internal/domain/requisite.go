package domain

type OperationType string

const (
	OperationDebit  OperationType = "debit"
	OperationCredit OperationType = "credit"
)

type RequisitesType string

const (
	RequisitesCard2Card       RequisitesType = "card2card"
	RequisitesSBP             RequisitesType = "sbp"
	RequisitesAccountTransfer RequisitesType = "account-transfer"
)

type RequisiteStatus string

const (
	RequisiteActive   RequisiteStatus = "active"
	RequisiteInactive RequisiteStatus = "inactive"
)

// Requisite is a payment collection profile as it is stored: seed catalog
// entries and local edits share this shape. Nullable columns are pointers.
type Requisite struct {
	ID              string          `json:"id"`
	TraderID        string          `json:"trader_id,omitempty"`
	OperationType   OperationType   `json:"operation_type"`
	RequisitesType  RequisitesType  `json:"requisites_type"`
	Requisites      *string         `json:"requisites"`
	PhoneNumber     *string         `json:"phone_number"`
	IBAN            *string         `json:"iban"`
	LimitMin        *float64        `json:"limit_min"`
	LimitMax        *float64        `json:"limit_max"`
	OrderCntPerDay  *int64          `json:"order_cnt_per_day"`
	OrderSumPerDay  *float64        `json:"order_sum_per_day"`
	OrderGap        *int64          `json:"order_gap"`
	OrderInParallel *int64          `json:"order_in_parallel"`
	CntIssuance     *int64          `json:"cnt_issuance"`
	StartWorkTime   *string         `json:"start_work_time"`
	EndWorkTime     *string         `json:"end_work_time"`
	Fullname        *string         `json:"fullname"`
	BankID          *string         `json:"bank_id"`
	BankBIK         *string         `json:"bank_bik"`
	Status          RequisiteStatus `json:"status"`
	Country         string          `json:"country,omitempty"`
	QRManagerKey    *string         `json:"qr_manager_key,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
	UpdatedAt       string          `json:"updated_at,omitempty"`
	Statistics      *Statistics     `json:"statistics,omitempty"`
}

// ActiveIdentifier returns the identifier that matters for the requisite's
// type. Stale values of the other two identifiers are ignored.
func (r *Requisite) ActiveIdentifier() string {
	var v *string
	switch r.RequisitesType {
	case RequisitesCard2Card:
		v = r.Requisites
	case RequisitesSBP:
		v = r.PhoneNumber
	case RequisitesAccountTransfer:
		v = r.IBAN
	}
	if v == nil {
		return ""
	}
	return *v
}

// Statistics is the usage block shown next to a requisite.
type Statistics struct {
	StatOrderInParallel     int64   `json:"stat_order_in_parallel"`
	TraderID                string  `json:"trader_id"`
	StatCntSuccessOrder     int64   `json:"stat_cnt_success_order"`
	StatMedianAmount        float64 `json:"stat_median_amount"`
	StatSuccessConversion   float64 `json:"stat_success_conversion"`
	ID                      string  `json:"id"`
	StatLastOrderCreateDttm *string `json:"stat_last_order_create_dttm"`
	StatCntIssuance         int64   `json:"stat_cnt_issuance"`
	StatSumSuccessOrder     float64 `json:"stat_sum_success_order"`
	StatMeanAmount          float64 `json:"stat_mean_amount"`
	StatCreatedExist        bool    `json:"stat_created_exist"`
}

// EnrichedRequisite is a requisite ready for display: bank resolved and
// statistics always present.
type EnrichedRequisite struct {
	Requisite
	Bank       *Bank       `json:"bank"`
	Statistics *Statistics `json:"statistics"`
}
