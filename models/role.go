package models

// Role is the closed set of access tiers a user may hold.
//
// The wire values are the Portuguese labels the dashboard frontend was built
// against; they are stored verbatim in the users.user_type column.
type Role string

const (
	// RoleMember is the default tier: owns and manages only their demandas.
	RoleMember Role = "colaborador"

	// RoleManager can additionally read every user's demandas and the user list.
	RoleManager Role = "diretor"

	// RoleSupremeAdmin is the single highest tier: can mutate roles and delete
	// users. At most one user holds this role at any time.
	RoleSupremeAdmin Role = "adm_supremo"
)

// Roles returns all valid role values.
func Roles() []Role {
	return []Role{RoleMember, RoleManager, RoleSupremeAdmin}
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleManager, RoleSupremeAdmin:
		return true
	}
	return false
}

// Capability enumerates the role-gated operations of the service.
// Every route handler consults the same table via [Role.Can]; no handler
// compares role strings directly.
type Capability int

const (
	// CapViewAllDemandas allows reading demandas owned by other users.
	CapViewAllDemandas Capability = iota

	// CapViewAllUsers allows listing all user accounts.
	CapViewAllUsers

	// CapManageRoles allows changing another user's role.
	CapManageRoles

	// CapDeleteUsers allows deleting user accounts (with demanda cascade).
	CapDeleteUsers
)

var capabilities = map[Role]map[Capability]bool{
	RoleMember: {},
	RoleManager: {
		CapViewAllDemandas: true,
		CapViewAllUsers:    true,
	},
	RoleSupremeAdmin: {
		CapViewAllDemandas: true,
		CapViewAllUsers:    true,
		CapManageRoles:     true,
		CapDeleteUsers:     true,
	},
}

// Can reports whether the role grants the given capability.
// Unknown roles grant nothing.
func (r Role) Can(c Capability) bool {
	return capabilities[r][c]
}
