package domain

// Policy is the fixed allow-list of roles attached to a gated route.
// There is no hierarchy and no wildcard; a role is either listed or it is not.
type Policy struct {
	roles map[Role]struct{}
}

// NewPolicy builds a Policy allowing exactly the given roles.
func NewPolicy(roles ...Role) Policy {
	p := Policy{roles: make(map[Role]struct{}, len(roles))}
	for _, r := range roles {
		if r == "" {
			continue
		}
		p.roles[r] = struct{}{}
	}
	return p
}

// Allows reports whether role is on the allow-list. The empty role is never allowed.
func (p Policy) Allows(role Role) bool {
	if role == "" {
		return false
	}
	_, ok := p.roles[role]
	return ok
}

// Roles returns the allowed roles in no particular order.
func (p Policy) Roles() []Role {
	out := make([]Role, 0, len(p.roles))
	for r := range p.roles {
		out = append(out, r)
	}
	return out
}
