package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LavaJover/shvark-requisites-service/internal/domain"
)

func TestCanAccess(t *testing.T) {
	cases := []struct {
		route string
		role  domain.Role
		want  bool
	}{
		{RouteRequisites, domain.RoleAdmin, true},
		{RouteRequisites, domain.RoleTrader, true},
		{RouteRequisites, domain.RoleMerchant, true},
		{RouteRequisites, domain.RoleSupport, false},
		{RouteBanks, domain.RoleSupport, true},
		{RouteBanks, domain.RoleTrader, false},
		{RouteUsers, domain.RoleMerchant, false},
		{RouteHistory, domain.RoleMerchant, true},
		{"/settings", domain.RoleAdmin, false},
		{RouteOrders, domain.Role("guest"), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CanAccess(tc.route, tc.role), "%s as %s", tc.route, tc.role)
	}
}

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Трейдер", RoleLabel(domain.RoleTrader))
	assert.Equal(t, "guest", RoleLabel(domain.Role("guest")))
}

func TestNavigation(t *testing.T) {
	routes := func(role domain.Role) []string {
		var out []string
		for _, item := range Navigation(role) {
			out = append(out, item.Route)
		}
		return out
	}

	assert.Len(t, routes(domain.RoleAdmin), len(navItems))
	assert.NotContains(t, routes(domain.RoleSupport), RouteRequisites)
	assert.Contains(t, routes(domain.RoleSupport), RouteUsers)
	assert.Equal(t, RouteOrders, routes(domain.RoleTrader)[0])
	assert.Empty(t, routes(domain.Role("guest")))
}
