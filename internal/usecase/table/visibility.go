package table

import "github.com/LavaJover/shvark-requisites-service/internal/domain"

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// RoleMap restricts columns to a set of roles. Columns without an entry are
// visible to everyone.
type RoleMap map[string][]domain.Role

func (m RoleMap) Allows(columnKey string, role domain.Role) bool {
	allowed, restricted := m[columnKey]
	if !restricted {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// VisibleColumns keeps the columns the role may see, in their original order.
func VisibleColumns(all []Column, role domain.Role, roleMap RoleMap) []Column {
	visible := make([]Column, 0, len(all))
	for _, col := range all {
		if roleMap.Allows(col.Key, role) {
			visible = append(visible, col)
		}
	}
	return visible
}
