package utils

const (
	RoleFarmer     = "ag"
	RoleAdvertiser = "an"
	RoleBuyer      = "co"
)

var ValidRoles = []string{RoleFarmer, RoleAdvertiser, RoleBuyer}

func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if role == r {
			return true
		}
	}
	return false
}
