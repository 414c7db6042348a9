package model

// FlagTrue is the literal the records API uses for a granted capability.
// Anything else on the wire (absent field, "False", lowercase "true") means
// not granted.
const FlagTrue = "True"

// Activity names form a closed set, one per console page.
const (
	ActivityHome           = "Home"
	ActivityUserManagement = "User Management"
	ActivityRoleManagement = "Role Management"
	ActivityHealthFacility = "Health Facility"
	ActivityHealthWorker   = "Health Worker"
	ActivityPatient        = "Patient"
	ActivityActivityLog    = "Activity Log"
)

// Activity pairs the fixed upstream id with its name. The id table is part
// of the role-mapping wire contract.
type Activity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Activities lists every known activity in sidebar order.
var Activities = []Activity{
	{ID: 1, Name: ActivityHome},
	{ID: 2, Name: ActivityUserManagement},
	{ID: 3, Name: ActivityRoleManagement},
	{ID: 4, Name: ActivityHealthFacility},
	{ID: 5, Name: ActivityHealthWorker},
	{ID: 6, Name: ActivityPatient},
	{ID: 7, Name: ActivityActivityLog},
}

// ActivityPermission is one per-activity grant exactly as the records API
// issues it at login. The CRUD flags are string tri-states; they are
// normalized to booleans via Grant() and never compared elsewhere.
type ActivityPermission struct {
	ActivityID   int    `json:"activityId"`
	ActivityName string `json:"activityName"`
	CanView      string `json:"canView"`
	CanCreate    string `json:"canCreate"`
	CanUpdate    string `json:"canUpdate"`
	CanDelete    string `json:"canDelete"`
}

// Grant is the normalized, in-process form of a permission entry.
type Grant struct {
	View   bool `json:"view"`
	Create bool `json:"create"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// Grant normalizes the wire flags. This is the only place the string
// contract is interpreted.
func (p ActivityPermission) Grant() Grant {
	return Grant{
		View:   p.CanView == FlagTrue,
		Create: p.CanCreate == FlagTrue,
		Update: p.CanUpdate == FlagTrue,
		Delete: p.CanDelete == FlagTrue,
	}
}
