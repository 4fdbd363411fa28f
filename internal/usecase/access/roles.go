package access

import "github.com/LavaJover/shvark-requisites-service/internal/domain"

const (
	RouteOrders     = "/"
	RouteHistory    = "/history"
	RouteRequisites = "/requisites"
	RouteBanks      = "/banks"
	RouteBalance    = "/balance"
	RouteWithdraw   = "/withdraw"
	RouteAppeals    = "/appeals"
	RouteSms        = "/sms"
	RouteUsers      = "/users"
)

var routeAccess = map[string][]domain.Role{
	RouteOrders:     domain.AllRoles,
	RouteHistory:    domain.AllRoles,
	RouteRequisites: {domain.RoleAdmin, domain.RoleTrader, domain.RoleMerchant},
	RouteBanks:      {domain.RoleAdmin, domain.RoleSupport},
	RouteBalance:    domain.AllRoles,
	RouteWithdraw:   domain.AllRoles,
	RouteAppeals:    domain.AllRoles,
	RouteSms:        domain.AllRoles,
	RouteUsers:      {domain.RoleAdmin, domain.RoleSupport},
}

var roleLabels = map[domain.Role]string{
	domain.RoleAdmin:    "Админ",
	domain.RoleMerchant: "Мерчант",
	domain.RoleTrader:   "Трейдер",
	domain.RoleSupport:  "Саппорт",
}

// CanAccess reports whether role may open route. Unknown routes are closed.
func CanAccess(route string, role domain.Role) bool {
	allowed, ok := routeAccess[route]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

func RoleLabel(role domain.Role) string {
	if label, ok := roleLabels[role]; ok {
		return label
	}
	return string(role)
}

// NavItem is a sidebar entry.
type NavItem struct {
	Route string `json:"route"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var navItems = []NavItem{
	{Route: RouteOrders, Label: "Сделки", Icon: "orders"},
	{Route: RouteRequisites, Label: "Реквизиты", Icon: "cards"},
	{Route: RouteBanks, Label: "Банки", Icon: "banks"},
	{Route: RouteBalance, Label: "Депозиты", Icon: "balance"},
	{Route: RouteWithdraw, Label: "Вывод", Icon: "withdraw"},
	{Route: RouteHistory, Label: "История", Icon: "history"},
	{Route: RouteAppeals, Label: "Апелляции", Icon: "appeals"},
	{Route: RouteSms, Label: "Автоматизация", Icon: "sms"},
	{Route: RouteUsers, Label: "Пользователи", Icon: "profile"},
}

// Navigation lists the sidebar entries open to role, in menu order.
func Navigation(role domain.Role) []NavItem {
	items := make([]NavItem, 0, len(navItems))
	for _, item := range navItems {
		if CanAccess(item.Route, role) {
			items = append(items, item)
		}
	}
	return items
}
