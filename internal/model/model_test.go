package model

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestPermissionGrant(t *testing.T) {
	t.Run("Exact Literal Only", func(t *testing.T) {
		p := ActivityPermission{CanView: "True", CanCreate: "true", CanUpdate: "TRUE", CanDelete: "1"}
		g := p.Grant()
		if !g.View {
			t.Error("exact literal should grant")
		}
		if g.Create || g.Update || g.Delete {
			t.Errorf("non-exact values should not grant: %+v", g)
		}
	})

	t.Run("Absent Flags Deny", func(t *testing.T) {
		g := ActivityPermission{}.Grant()
		if g.View || g.Create || g.Update || g.Delete {
			t.Errorf("zero permission should deny everything: %+v", g)
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Run("Short Value Untouched", func(t *testing.T) {
		if got := Truncate("/api/Auth/Login"); got != "/api/Auth/Login" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Boundary Value Untouched", func(t *testing.T) {
		s := strings.Repeat("x", TruncateLimit)
		if got := Truncate(s); got != s {
			t.Errorf("value at the limit should not be truncated, got %q", got)
		}
	})

	t.Run("Long Value Shortened", func(t *testing.T) {
		s := strings.Repeat("x", TruncateLimit+5)
		got := Truncate(s)
		if got != strings.Repeat("x", TruncateLimit)+"..." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Multibyte Characters Stay Intact", func(t *testing.T) {
		s := strings.Repeat("é", TruncateLimit+5)
		got := Truncate(s)
		if !utf8.ValidString(got) {
			t.Fatalf("truncation produced invalid UTF-8: %q", got)
		}
		if got != strings.Repeat("é", TruncateLimit)+"..." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("Multibyte At The Limit Untouched", func(t *testing.T) {
		s := strings.Repeat("郡", TruncateLimit)
		if got := Truncate(s); got != s {
			t.Errorf("value of %d runes should not be truncated, got %q", TruncateLimit, got)
		}
	})
}

func TestLogEntryDisplayRow(t *testing.T) {
	long := strings.Repeat("a", 50)
	e := LogEntry{
		LogID:        7,
		Action:       "Insert",
		Endpoint:     long,
		Method:       "POST",
		RequestData:  long,
		ResponseData: long,
		StatusCode:   "00",
	}

	row := e.DisplayRow()

	t.Run("Long Fields Truncated", func(t *testing.T) {
		for name, v := range map[string]string{
			"endpoint":     row.Endpoint,
			"requestData":  row.RequestData,
			"responseData": row.ResponseData,
		} {
			if len(v) != TruncateLimit+3 || !strings.HasSuffix(v, "...") {
				t.Errorf("%s: got %q", name, v)
			}
		}
	})

	t.Run("Other Fields And Source Untouched", func(t *testing.T) {
		if row.Action != "Insert" || row.Method != "POST" || row.StatusCode != "00" {
			t.Errorf("short fields changed: %+v", row)
		}
		if e.Endpoint != long {
			t.Error("DisplayRow must not mutate the source entry")
		}
	})
}

func TestPruneMappings(t *testing.T) {
	t.Run("Drops All-False Rows", func(t *testing.T) {
		got := PruneMappings([]RoleMapping{
			{ActivityID: 1, CanView: true},
			{ActivityID: 2},
			{ActivityID: 3, CanDelete: true},
			{ActivityID: 4},
		})
		if len(got) != 2 || got[0].ActivityID != 1 || got[1].ActivityID != 3 {
			t.Errorf("unexpected result: %+v", got)
		}
	})

	t.Run("All Pruned Yields Empty Non-Nil Slice", func(t *testing.T) {
		got := PruneMappings([]RoleMapping{{ActivityID: 1}, {ActivityID: 2}})
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty slice, got %v", got)
		}
	})
}

func TestSessionAuthenticated(t *testing.T) {
	cases := []struct {
		name string
		sess *Session
		want bool
	}{
		{"Nil Session", nil, false},
		{"Empty Session", &Session{}, false},
		{"With Identity", &Session{User: &UserProfile{UserID: 3, Name: "Admin"}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sess.Authenticated(); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestActivityIDTable(t *testing.T) {
	// The id table is part of the role-mapping wire contract and must not
	// drift.
	want := map[int]string{
		1: ActivityHome,
		2: ActivityUserManagement,
		3: ActivityRoleManagement,
		4: ActivityHealthFacility,
		5: ActivityHealthWorker,
		6: ActivityPatient,
		7: ActivityActivityLog,
	}

	if len(Activities) != len(want) {
		t.Fatalf("expected %d activities, got %d", len(want), len(Activities))
	}
	for _, a := range Activities {
		if want[a.ID] != a.Name {
			t.Errorf("id %d: got %q, want %q", a.ID, a.Name, want[a.ID])
		}
	}
}
