// Package menu derives the sidebar's visible entries from the session's
// permission grants.
package menu

import "go-health-console/internal/model"

// routes is the fixed activity → path table. An activity with no entry
// here is silently dropped from the menu.
var routes = map[string]string{
	model.ActivityHome:           "/dashboard/",
	model.ActivityUserManagement: "/dashboard/user-management",
	model.ActivityRoleManagement: "/dashboard/role-management",
	model.ActivityHealthFacility: "/dashboard/health-facility",
	model.ActivityHealthWorker:   "/dashboard/health-worker",
	model.ActivityPatient:        "/dashboard/patient",
	model.ActivityActivityLog:    "/dashboard/activity-log",
}

// Entry is one visible sidebar link. Exact marks the Home entry as an
// exact-match route so it does not stay highlighted under nested routes.
type Entry struct {
	ActivityID int    `json:"activityId"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	Exact      bool   `json:"exact"`
}

// Build filters the grant sequence to viewable activities with a known
// route, preserving the input order.
func Build(perms []model.ActivityPermission) []Entry {
	entries := make([]Entry, 0, len(perms))
	for _, p := range perms {
		if !p.Grant().View {
			continue
		}
		path, ok := routes[p.ActivityName]
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			ActivityID: p.ActivityID,
			Name:       p.ActivityName,
			Path:       path,
			Exact:      p.ActivityName == model.ActivityHome,
		})
	}
	return entries
}
