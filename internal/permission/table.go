// Package permission resolves a session's permission grants into a
// read-only capability table, computed once per request instead of
// re-parsed ad hoc by every page.
package permission

import "go-health-console/internal/model"

// Action kinds, matching the four CRUD flags of a grant.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Table maps activity name to its normalized grant.
type Table struct {
	grants map[string]model.Grant
}

// NewTable builds a capability table from the session's grant sequence.
// An activity name appearing more than once invalidates every entry under
// that name: Can answers true only when exactly one grant exists.
func NewTable(perms []model.ActivityPermission) Table {
	grants := make(map[string]model.Grant, len(perms))
	seen := make(map[string]int, len(perms))
	for _, p := range perms {
		seen[p.ActivityName]++
		grants[p.ActivityName] = p.Grant()
	}
	for name, n := range seen {
		if n > 1 {
			delete(grants, name)
		}
	}
	return Table{grants: grants}
}

// Can reports whether the activity carries the given action. Unknown
// activities, unknown actions and duplicated grants all answer false.
func (t Table) Can(activity, action string) bool {
	g, ok := t.grants[activity]
	if !ok {
		return false
	}
	switch action {
	case ActionView:
		return g.View
	case ActionCreate:
		return g.Create
	case ActionUpdate:
		return g.Update
	case ActionDelete:
		return g.Delete
	default:
		return false
	}
}

// Grant returns the normalized grant for an activity, zero-valued when the
// activity is unknown. Used to embed action flags in list view-models.
func (t Table) Grant(activity string) model.Grant {
	return t.grants[activity]
}
