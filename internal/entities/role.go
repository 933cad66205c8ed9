package entities

// Role of a user. A user holds exactly one role at a time.
type Role string

// Roles.
const (
	RoleUser      Role = "user"
	RoleNKO       Role = "nko"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// Capability is an action a role may perform. Capabilities gate the client
// surface only; the backend independently enforces authorization.
type Capability string

// Capabilities.
const (
	CapFavorite           Capability = "favorite"
	CapAttendEvents       Capability = "attend-events"
	CapManageOrganization Capability = "manage-organization"
	CapModerate           Capability = "moderate"
	CapManageContent      Capability = "manage-content"
	CapManageUsers        Capability = "manage-users"
)

var roleCapabilities = map[Role][]Capability{
	RoleUser:      {CapFavorite, CapAttendEvents},
	RoleNKO:       {CapFavorite, CapAttendEvents, CapManageOrganization},
	RoleModerator: {CapFavorite, CapAttendEvents, CapModerate},
	RoleAdmin:     {CapFavorite, CapAttendEvents, CapModerate, CapManageContent, CapManageUsers},
}

// Can reports whether the role grants the capability.
func (r Role) Can(c Capability) bool {
	for _, v := range roleCapabilities[r] {
		if v == c {
			return true
		}
	}

	return false
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleNKO, RoleModerator, RoleAdmin:
		return true
	}

	return false
}
