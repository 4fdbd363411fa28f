package referencedto

import (
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/table"
)

type BankOutput struct {
	domain.Bank
	IconKey string `json:"icon_key,omitempty"`
}

type UserOutput struct {
	domain.User
	RoleLabel string `json:"role_label"`
}

type ListBanksOutput struct {
	table.Rendered[BankOutput]
}

type ListUsersOutput struct {
	table.Rendered[UserOutput]
}

type ListOrdersOutput struct {
	table.Rendered[domain.Order]
}
