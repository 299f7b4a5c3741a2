package api

import "github.com/carnival/stall-booking/internal/core/domain"

// Route policies. Each gated route names exactly one of these.
var (
	usersPolicy = domain.NewPolicy(domain.RoleAdmin, domain.RoleSuper)

	bookingsReadPolicy = domain.NewPolicy(
		domain.RoleAdmin, domain.RoleSuper, domain.RoleCommittee, domain.RoleAllocator, domain.RoleFinance,
	)

	bookingsWritePolicy = domain.NewPolicy(
		domain.RoleAdmin, domain.RoleSuper, domain.RoleCommittee, domain.RoleAllocator,
	)

	reportsPolicy = domain.NewPolicy(
		domain.RoleAdmin, domain.RoleSuper, domain.RoleCommittee, domain.RoleFinance,
	)

	allocationPolicy = domain.NewPolicy(
		domain.RoleAdmin, domain.RoleSuper, domain.RoleCommittee, domain.RoleAllocator,
	)
)
