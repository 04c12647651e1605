package user

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Roles is the set of role labels held by a user.
type Roles []Role

func NewRoles(labels []string) (Roles, error) {
	if len(labels) == 0 {
		return nil, ErrInvalidRole
	}
	roles := make(Roles, 0, len(labels))
	seen := make(map[Role]bool, len(labels))
	for _, l := range labels {
		r, err := NewRole(l)
		if err != nil {
			return nil, err
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		roles = append(roles, r)
	}
	return roles, nil
}

func (rs Roles) Has(role Role) bool {
	for _, r := range rs {
		if r == role {
			return true
		}
	}
	return false
}

func (rs Roles) IsAdmin() bool {
	return rs.Has(RoleAdmin)
}

func (rs Roles) Strings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
