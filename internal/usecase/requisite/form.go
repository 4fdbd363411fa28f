package requisite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	requisitedto "github.com/LavaJover/shvark-requisites-service/internal/usecase/dto/requisite"
)

const defaultCountry = "RUS"

// ValidateForm applies the submit rules of the requisite form. Limits are not
// cross-checked.
func ValidateForm(form *requisitedto.RequisiteForm) error {
	_, reqType, err := formTypes(form)
	if err != nil {
		return err
	}

	if strings.TrimSpace(form.Fullname) == "" {
		return domain.ErrFullnameRequired
	}
	if form.BankID == "" {
		return domain.ErrBankRequired
	}

	switch reqType {
	case domain.RequisitesSBP:
		if phoneDigitsCount(form.PhoneNumber) < 10 {
			return domain.ErrInvalidPhone
		}
	case domain.RequisitesCard2Card:
		if len(domain.DigitsOnly(form.Requisites)) < 16 {
			return domain.ErrInvalidCard
		}
	case domain.RequisitesAccountTransfer:
		if strings.TrimSpace(form.IBAN) == "" {
			return domain.ErrAccountRequired
		}
	}
	return nil
}

// BuildRequisite turns a submitted form into a stored record. initial is the
// record being edited, nil on create; its id, owner, creation time, status
// and statistics carry over.
func BuildRequisite(form *requisitedto.RequisiteForm, initial *domain.Requisite) (domain.Requisite, error) {
	opType, reqType, err := formTypes(form)
	if err != nil {
		return domain.Requisite{}, err
	}

	r := domain.Requisite{
		OperationType:  opType,
		RequisitesType: reqType,
		Status:         domain.RequisiteActive,
		Country:        defaultCountry,
		StartWorkTime:  optString(form.StartWorkTime),
		EndWorkTime:    optString(form.EndWorkTime),
		Fullname:       optString(form.Fullname),
		BankID:         optString(form.BankID),
	}
	if initial != nil {
		r.ID = initial.ID
		r.TraderID = initial.TraderID
		r.CreatedAt = initial.CreatedAt
		r.Statistics = initial.Statistics
		if initial.Status != "" {
			r.Status = initial.Status
		}
	}

	if r.OrderCntPerDay, err = optInt(form.OrderCntPerDay, "order_cnt_per_day"); err != nil {
		return domain.Requisite{}, err
	}
	if r.OrderSumPerDay, err = optFloat(form.OrderSumPerDay, "order_sum_per_day"); err != nil {
		return domain.Requisite{}, err
	}
	if r.OrderGap, err = optInt(form.OrderGap, "order_gap"); err != nil {
		return domain.Requisite{}, err
	}
	if r.OrderInParallel, err = optInt(form.OrderInParallel, "order_in_parallel"); err != nil {
		return domain.Requisite{}, err
	}
	if r.CntIssuance, err = optInt(form.CntIssuance, "cnt_issuance"); err != nil {
		return domain.Requisite{}, err
	}
	if r.LimitMin, err = optFloat(form.LimitMin, "limit_min"); err != nil {
		return domain.Requisite{}, err
	}
	if r.LimitMax, err = optFloat(form.LimitMax, "limit_max"); err != nil {
		return domain.Requisite{}, err
	}

	if reqType == domain.RequisitesCard2Card {
		r.Requisites = optString(domain.DigitsOnly(form.Requisites))
	} else {
		r.IBAN = optString(form.IBAN)
	}
	if form.PhoneNumber != "" {
		phone := ParsePhoneToStorage(form.PhoneNumber)
		r.PhoneNumber = &phone
	}

	bik := domain.DigitsOnly(form.BankBIK)
	if len(bik) > 9 {
		bik = bik[:9]
	}
	r.BankBIK = optString(bik)

	return r, nil
}

// FormFromRequisite prefills the edit form.
func FormFromRequisite(r *domain.Requisite) requisitedto.RequisiteForm {
	form := requisitedto.RequisiteForm{
		OperationType:   string(r.OperationType),
		RequisitesType:  string(r.RequisitesType),
		OrderCntPerDay:  fmtInt(r.OrderCntPerDay),
		OrderSumPerDay:  fmtFloat(r.OrderSumPerDay),
		OrderGap:        fmtInt(r.OrderGap),
		OrderInParallel: fmtInt(r.OrderInParallel),
		CntIssuance:     fmtInt(r.CntIssuance),
		StartWorkTime:   deref(r.StartWorkTime),
		EndWorkTime:     deref(r.EndWorkTime),
		Fullname:        deref(r.Fullname),
		LimitMin:        fmtFloat(r.LimitMin),
		LimitMax:        fmtFloat(r.LimitMax),
		BankID:          deref(r.BankID),
		Requisites:      deref(r.Requisites),
		IBAN:            deref(r.IBAN),
		PhoneNumber:     FormatPhoneRu(deref(r.PhoneNumber)),
		BankBIK:         deref(r.BankBIK),
	}
	if form.OperationType == "" {
		form.OperationType = string(domain.OperationDebit)
	}
	if form.RequisitesType == "" {
		form.RequisitesType = string(domain.RequisitesCard2Card)
	}
	return form
}

func formTypes(form *requisitedto.RequisiteForm) (domain.OperationType, domain.RequisitesType, error) {
	opType := domain.OperationType(form.OperationType)
	switch opType {
	case "":
		opType = domain.OperationDebit
	case domain.OperationDebit, domain.OperationCredit:
	default:
		return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidOperationType, form.OperationType)
	}

	reqType := domain.RequisitesType(form.RequisitesType)
	switch reqType {
	case "":
		reqType = domain.RequisitesCard2Card
	case domain.RequisitesCard2Card, domain.RequisitesSBP, domain.RequisitesAccountTransfer:
	default:
		return "", "", fmt.Errorf("%w: %q", domain.ErrInvalidRequisitesType, form.RequisitesType)
	}

	return opType, reqType, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optFloat(s, field string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidNumber, field)
	}
	return &v, nil
}

func optInt(s, field string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidNumber, field)
	}
	return &v, nil
}

func fmtInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
