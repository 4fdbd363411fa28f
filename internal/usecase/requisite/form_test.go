package requisite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	requisitedto "github.com/LavaJover/shvark-requisites-service/internal/usecase/dto/requisite"
)

func validCardForm() requisitedto.RequisiteForm {
	return requisitedto.RequisiteForm{
		OperationType:  "debit",
		RequisitesType: "card2card",
		Fullname:       "Иванов Иван Иванович",
		BankID:         "bank-sber",
		Requisites:     "4111 1111 1111 1111",
	}
}

func TestValidateForm(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(f *requisitedto.RequisiteForm)
		want   error
	}{
		{"valid card", func(*requisitedto.RequisiteForm) {}, nil},
		{"blank fullname", func(f *requisitedto.RequisiteForm) { f.Fullname = "   " }, domain.ErrFullnameRequired},
		{"no bank", func(f *requisitedto.RequisiteForm) { f.BankID = "" }, domain.ErrBankRequired},
		{"short card", func(f *requisitedto.RequisiteForm) { f.Requisites = "4111 1111" }, domain.ErrInvalidCard},
		{"short phone", func(f *requisitedto.RequisiteForm) {
			f.RequisitesType = "sbp"
			f.PhoneNumber = "+7 (999) 12"
		}, domain.ErrInvalidPhone},
		{"valid phone", func(f *requisitedto.RequisiteForm) {
			f.RequisitesType = "sbp"
			f.PhoneNumber = "8 999 123 45 67"
		}, nil},
		{"blank iban", func(f *requisitedto.RequisiteForm) {
			f.RequisitesType = "account-transfer"
			f.IBAN = " "
		}, domain.ErrAccountRequired},
		{"limits are not cross-checked", func(f *requisitedto.RequisiteForm) {
			f.LimitMin = "90000"
			f.LimitMax = "10000"
		}, nil},
		{"unknown type", func(f *requisitedto.RequisiteForm) { f.RequisitesType = "crypto" }, domain.ErrInvalidRequisitesType},
		{"unknown operation", func(f *requisitedto.RequisiteForm) { f.OperationType = "swap" }, domain.ErrInvalidOperationType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validCardForm()
			tc.mutate(&form)
			err := ValidateForm(&form)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildRequisite_Create(t *testing.T) {
	form := validCardForm()
	form.IBAN = "stale"
	form.LimitMin = "100"
	form.LimitMax = ""
	form.OrderCntPerDay = "5"
	form.BankBIK = "04-452-5225-99"

	r, err := BuildRequisite(&form, nil)
	require.NoError(t, err)

	assert.Empty(t, r.ID)
	assert.Equal(t, domain.OperationDebit, r.OperationType)
	assert.Equal(t, domain.RequisitesCard2Card, r.RequisitesType)
	assert.Equal(t, domain.RequisiteActive, r.Status)
	assert.Equal(t, "RUS", r.Country)
	require.NotNil(t, r.Requisites)
	assert.Equal(t, "4111111111111111", *r.Requisites)
	assert.Nil(t, r.IBAN, "iban is dropped for card requisites")
	assert.Equal(t, floatPtr(100), r.LimitMin)
	assert.Nil(t, r.LimitMax)
	require.NotNil(t, r.OrderCntPerDay)
	assert.Equal(t, int64(5), *r.OrderCntPerDay)
	assert.Nil(t, r.OrderGap)
	require.NotNil(t, r.BankBIK)
	assert.Equal(t, "044525225", *r.BankBIK)
}

func TestBuildRequisite_SBPStoresCanonicalPhone(t *testing.T) {
	form := validCardForm()
	form.RequisitesType = "sbp"
	form.PhoneNumber = "+7 (999) 123-45-67"

	r, err := BuildRequisite(&form, nil)
	require.NoError(t, err)
	assert.Nil(t, r.Requisites, "card number is dropped for non-card requisites")
	require.NotNil(t, r.PhoneNumber)
	assert.Equal(t, "79991234567", *r.PhoneNumber)
}

func TestBuildRequisite_EditCarriesIdentity(t *testing.T) {
	stats := &domain.Statistics{StatCntSuccessOrder: 3}
	initial := &domain.Requisite{
		ID:         "req-001",
		TraderID:   "trader-1",
		CreatedAt:  "2026-01-01T10:00:00",
		Status:     domain.RequisiteInactive,
		Statistics: stats,
	}
	form := validCardForm()

	r, err := BuildRequisite(&form, initial)
	require.NoError(t, err)
	assert.Equal(t, "req-001", r.ID)
	assert.Equal(t, "trader-1", r.TraderID)
	assert.Equal(t, "2026-01-01T10:00:00", r.CreatedAt)
	assert.Equal(t, domain.RequisiteInactive, r.Status)
	assert.Same(t, stats, r.Statistics)
}

func TestBuildRequisite_InvalidNumber(t *testing.T) {
	form := validCardForm()
	form.OrderGap = "ten"

	_, err := BuildRequisite(&form, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidNumber)
}

func TestFormFromRequisite_RoundTrip(t *testing.T) {
	form := validCardForm()
	form.Requisites = "4111111111111111"
	form.LimitMin = "1500.5"
	form.OrderInParallel = "2"

	r, err := BuildRequisite(&form, nil)
	require.NoError(t, err)

	back := FormFromRequisite(&r)
	assert.Equal(t, form.Requisites, back.Requisites)
	assert.Equal(t, "1500.5", back.LimitMin)
	assert.Equal(t, "2", back.OrderInParallel)
	assert.Equal(t, form.Fullname, back.Fullname)
}

func TestFormFromRequisite_DefaultsTypes(t *testing.T) {
	back := FormFromRequisite(&domain.Requisite{PhoneNumber: strPtr("79991234567")})
	assert.Equal(t, "debit", back.OperationType)
	assert.Equal(t, "card2card", back.RequisitesType)
	assert.Equal(t, "+7 (999) 123-45-67", back.PhoneNumber)
}
