package auth

import "staffeval/utils"

// Actor is who is calling. StaffId is nil when the account is not linked to a staff profile.
type Actor struct {
	UserId  int
	StaffId *int
	Roles   []string
}

func (a Actor) HasRole(roles ...string) bool {
	for _, role := range roles {
		if utils.Contains(a.Roles, role) {
			return true
		}
	}
	return false
}
