package model

// Role as returned by /api/Role/GetRoleData. Note the upstream's
// inconsistent key casing (roleID here, roleId on writes); both are part
// of the wire contract.
type Role struct {
	RoleID   int    `json:"roleID"`
	RoleName string `json:"roleName"`
}

// RoleMapping is one activity row of a role's permission matrix as
// submitted to /api/Role/MapRole. Unlike ActivityPermission these are real
// booleans on the wire.
type RoleMapping struct {
	ActivityID int  `json:"activityId"`
	CanView    bool `json:"canView"`
	CanCreate  bool `json:"canCreate"`
	CanUpdate  bool `json:"canUpdate"`
	CanDelete  bool `json:"canDelete"`
}

// Granted reports whether the mapping carries at least one capability.
func (m RoleMapping) Granted() bool {
	return m.CanView || m.CanCreate || m.CanUpdate || m.CanDelete
}

// PruneMappings drops all-false rows. A role's mapping set is saved as a
// full replace, and the upstream expects rows with no capability to be
// omitted rather than sent as explicit denials.
func PruneMappings(in []RoleMapping) []RoleMapping {
	out := make([]RoleMapping, 0, len(in))
	for _, m := range in {
		if m.Granted() {
			out = append(out, m)
		}
	}
	return out
}

// MapRoleRequest is the full-replace save payload for a role and its
// mappings.
type MapRoleRequest struct {
	RoleID       int           `json:"roleId"`
	RoleName     string        `json:"roleName"`
	IsDeleted    string        `json:"isDeleted"`
	UserName     string        `json:"userName"`
	RoleMappings []RoleMapping `json:"roleMappings"`
}

// RoleDelete is the soft-delete payload for /api/Role/InsertUpdateDeleteRole.
type RoleDelete struct {
	RoleID     int    `json:"roleId"`
	IsDeleted  string `json:"isDeleted"`
	ModifiedBy string `json:"modifiedBy"`
}
