package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMerchant Role = "merchant"
	RoleTrader   Role = "trader"
	RoleSupport  Role = "support"
)

var AllRoles = []Role{RoleAdmin, RoleMerchant, RoleTrader, RoleSupport}

func (r Role) Valid() bool {
	for _, role := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	UserID      string `json:"user_id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	PhoneNumber string `json:"phone_number"`
	StatusCode  string `json:"status_code"`
	CreateDttm  string `json:"create_dttm"`
}

// CurrentUser is the active operator as supplied by the caller.
type CurrentUser struct {
	ID   string
	Role Role
}
