package domain

import "errors"

var (
	ErrRequisiteNotFound = errors.New("requisite not found")
	ErrEmptyRequisiteID  = errors.New("requisite id is empty")
	ErrAccessDenied      = errors.New("access denied for role")
	ErrUnknownRole       = errors.New("unknown role")

	ErrFullnameRequired      = errors.New("fullname is required")
	ErrBankRequired          = errors.New("bank is required")
	ErrInvalidPhone          = errors.New("phone number must contain at least 10 digits")
	ErrInvalidCard           = errors.New("card number must contain 16 digits")
	ErrAccountRequired       = errors.New("account number is required")
	ErrInvalidRequisitesType = errors.New("unsupported requisites type")
	ErrInvalidOperationType  = errors.New("unsupported operation type")
	ErrInvalidNumber         = errors.New("invalid numeric value")
)
