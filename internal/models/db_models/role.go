package db_models

import "strings"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleCityAdmin Role = "CITYADMIN"
	RoleSuperUser Role = "SUPERUSER"
	RoleUser      Role = "USER"
)

var Roles = []Role{RoleAdmin, RoleCityAdmin, RoleSuperUser, RoleUser}

func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole accepts the enum name in any casing.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}
