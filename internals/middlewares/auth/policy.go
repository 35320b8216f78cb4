package auth

import "fmt"

// Policy is what a route declares it needs. The zero value is Public.
type Policy struct {
	Authenticated bool
	Role          string
}

var (
	Public        = Policy{}
	Authenticated = Policy{Authenticated: true}
)

// RoleOf requires a verified token whose user document carries role.
func RoleOf(role string) Policy {
	return Policy{Authenticated: true, Role: role}
}

func (p Policy) String() string {
	switch {
	case p.Role != "":
		return fmt.Sprintf("role=%s", p.Role)
	case p.Authenticated:
		return "authenticated"
	default:
		return "public"
	}
}
