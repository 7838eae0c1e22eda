package model

// Role is the capability level a user holds on a board. Owner is a resolved
// sentinel: it is never stored on a membership row and always comes from
// comparing the user against the board's owner_id.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Capability is a named permission checked independently per action.
type Capability string

const (
	CapRead          Capability = "read"
	CapWrite         Capability = "write"
	CapManageMembers Capability = "manage_members"
	CapArchive       Capability = "archive"
	CapToggleStar    Capability = "toggle_star"
	CapDelete        Capability = "delete"
)

// capabilityTable is the single source of truth for what each role may do.
// Every permission check routes through it. Missing entries grant nothing,
// so an unrecognized role or capability fails closed.
var capabilityTable = map[Capability]map[Role]bool{
	CapRead: {
		RoleOwner:  true,
		RoleEditor: true,
		RoleViewer: true,
	},
	CapWrite: {
		RoleOwner:  true,
		RoleEditor: true,
	},
	CapManageMembers: {
		RoleOwner: true,
	},
	CapArchive: {
		RoleOwner: true,
	},
	CapToggleStar: {
		RoleOwner:  true,
		RoleEditor: true,
	},
	CapDelete: {
		RoleOwner: true,
	},
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	return capabilityTable[c][r]
}

// Assignable reports whether the role may be stored on a membership row.
// Owner is excluded: ownership is structural, never a row.
func (r Role) Assignable() bool {
	return r == RoleEditor || r == RoleViewer
}
