package reference

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/access"
	referencedto "github.com/LavaJover/shvark-requisites-service/internal/usecase/dto/reference"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/table"
)

const PageSize = 10

var (
	BankColumns = []table.Column{
		{Key: "id", Label: "ID"},
		{Key: "name", Label: "Название"},
		{Key: "code", Label: "Код"},
		{Key: "status", Label: "Статус"},
	}
	UserColumns = []table.Column{
		{Key: "user_id", Label: "ID"},
		{Key: "login", Label: "Логин"},
		{Key: "email", Label: "Email"},
		{Key: "role", Label: "Роль"},
		{Key: "status_code", Label: "Статус"},
		{Key: "create_dttm", Label: "Создан"},
	}
	OrderColumns = []table.Column{
		{Key: "id", Label: "ID"},
		{Key: "amount", Label: "Сумма"},
		{Key: "order_type", Label: "Тип"},
		{Key: "status", Label: "Статус"},
		{Key: "created_at", Label: "Создан"},
		{Key: "merchant_id", Label: "ID мерчанта"},
		{Key: "trader_id", Label: "ID трейдера"},
	}
	// Merchants never see which trader served an order.
	OrderColumnRoles = table.RoleMap{
		"trader_id": {domain.RoleAdmin, domain.RoleSupport, domain.RoleTrader},
	}
)

// Icon files are named after the letter prefix of the bank code, except
// where listed here.
var bankIconAliases = map[string]string{
	"tinkoff": "tbank",
}

var codePrefix = regexp.MustCompile(`^([a-zA-Z]+)`)

type ReferenceUsecase interface {
	ListBanks(page int) *referencedto.ListBanksOutput
	ListUsers(page int) *referencedto.ListUsersOutput
	ListOrders(role domain.Role, page int) *referencedto.ListOrdersOutput
	Users() []domain.User
}

type DefaultReferenceUsecase struct {
	banks  []domain.Bank
	users  []domain.User
	orders []domain.Order
}

func NewDefaultReferenceUsecase(banks []domain.Bank, users []domain.User, orders []domain.Order) *DefaultReferenceUsecase {
	return &DefaultReferenceUsecase{banks: banks, users: users, orders: orders}
}

// BankIconKey maps a bank code such as "sber900" to its icon key ("sber").
// Returns "" when the code has no letter prefix.
func BankIconKey(code string) string {
	m := codePrefix.FindStringSubmatch(code)
	if m == nil {
		return ""
	}
	prefix := strings.ToLower(m[1])
	if alias, ok := bankIconAliases[prefix]; ok {
		return alias
	}
	return prefix
}

func (uc *DefaultReferenceUsecase) ListBanks(page int) *referencedto.ListBanksOutput {
	rows := make([]referencedto.BankOutput, len(uc.banks))
	for i, b := range uc.banks {
		rows[i] = referencedto.BankOutput{Bank: b, IconKey: BankIconKey(b.Code)}
	}
	return &referencedto.ListBanksOutput{
		Rendered: table.Render(BankColumns, rows, PageSize, page, bankCell),
	}
}

func (uc *DefaultReferenceUsecase) ListUsers(page int) *referencedto.ListUsersOutput {
	rows := make([]referencedto.UserOutput, len(uc.users))
	for i, u := range uc.users {
		rows[i] = referencedto.UserOutput{User: u, RoleLabel: access.RoleLabel(u.Role)}
	}
	return &referencedto.ListUsersOutput{
		Rendered: table.Render(UserColumns, rows, PageSize, page, userCell),
	}
}

func (uc *DefaultReferenceUsecase) ListOrders(role domain.Role, page int) *referencedto.ListOrdersOutput {
	columns := table.VisibleColumns(OrderColumns, role, OrderColumnRoles)
	return &referencedto.ListOrdersOutput{
		Rendered: table.Render(columns, uc.orders, PageSize, page, orderCell),
	}
}

// Users feeds the trader dropdown of the requisites filter.
func (uc *DefaultReferenceUsecase) Users() []domain.User {
	return uc.users
}

func bankCell(b referencedto.BankOutput, key string) (string, bool) {
	switch key {
	case "id":
		return b.ID, b.ID != ""
	case "name":
		return b.Name, b.Name != ""
	case "code":
		return b.Code, b.Code != ""
	case "status":
		return b.Status, b.Status != ""
	}
	return "", false
}

func userCell(u referencedto.UserOutput, key string) (string, bool) {
	var v string
	switch key {
	case "user_id":
		v = u.UserID
	case "login":
		v = u.Login
	case "email":
		v = u.Email
	case "role":
		v = string(u.Role)
	case "status_code":
		v = u.StatusCode
	case "create_dttm":
		v = u.CreateDttm
	}
	return v, v != ""
}

func orderCell(o domain.Order, key string) (string, bool) {
	var v string
	switch key {
	case "id":
		v = o.ID
	case "amount":
		v = strconv.FormatFloat(o.Amount, 'f', -1, 64)
	case "order_type":
		v = string(o.OrderType)
	case "status":
		v = string(o.Status)
	case "created_at":
		v = o.CreatedAt
	case "merchant_id":
		v = o.MerchantID
	case "trader_id":
		v = o.TraderID
	}
	return v, v != ""
}
