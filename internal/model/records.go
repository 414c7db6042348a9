package model

// SoftDeleted is the isDeleted flag value on a delete write. Records are
// never removed, only flagged; the upstream excludes flagged records from
// list responses.
const SoftDeleted = "1"

// HealthFacility record. Fields are omitempty so that write payloads carry
// only what the caller set (a delete is just id + flag + actor).
type HealthFacility struct {
	ID       int    `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	District string `json:"district,omitempty"`
	Region   string `json:"region,omitempty"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country,omitempty"`
}

// HealthWorker record. HealthFacilityName is denormalized by the upstream
// for table rendering; HealthFacilityID is what the edit form round-trips.
type HealthWorker struct {
	ID                 int    `json:"id,omitempty"`
	Name               string `json:"name,omitempty"`
	Designation        string `json:"designation,omitempty"`
	Email              string `json:"email,omitempty"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	HealthFacilityID   int    `json:"healthFacilityId,omitempty"`
	HealthFacilityName string `json:"healthFacilityName,omitempty"`
}

// Patient record.
type Patient struct {
	ID                 int    `json:"id,omitempty"`
	Name               string `json:"name,omitempty"`
	Gender             string `json:"gender,omitempty"`
	Address            string `json:"address,omitempty"`
	HealthFacilityID   int    `json:"healthFacilityId,omitempty"`
	HealthFacilityName string `json:"healthFacilityName,omitempty"`
}

// User record. The upstream keys the id as userID on reads and takes the
// role as a bare id under "role" on writes.
type User struct {
	UserID             int    `json:"userID,omitempty"`
	Name               string `json:"name,omitempty"`
	Email              string `json:"email,omitempty"`
	Address            string `json:"address,omitempty"`
	PhoneNumber        string `json:"phoneNumber,omitempty"`
	Role               int    `json:"role,omitempty"`
	RoleName           string `json:"roleName,omitempty"`
	HealthFacilityID   int    `json:"healthFacilityId,omitempty"`
	HealthFacilityName string `json:"healthFacilityName,omitempty"`
}

// Audit carries the actor tags and soft-delete flag attached to every
// InsertUpdateDelete call. Creates tag createdBy, edits and deletes tag
// modifiedBy.
type Audit struct {
	IsDeleted  string `json:"isDeleted,omitempty"`
	CreatedBy  string `json:"createdBy,omitempty"`
	ModifiedBy string `json:"modifiedBy,omitempty"`
}

// FacilitySave is the write payload for a health facility.
type FacilitySave struct {
	HealthFacility
	Audit
}

// WorkerSave is the write payload for a health worker.
type WorkerSave struct {
	HealthWorker
	Audit
}

// PatientSave is the write payload for a patient.
type PatientSave struct {
	Patient
	Audit
}

// UserSave is the write payload for a console user.
type UserSave struct {
	User
	Audit
}

// DropdownItem is one entry of an auxiliary reference list.
type DropdownItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Dropdowns holds the reference lists that populate form selectors. They
// are fetched regardless of view permission, matching the original pages.
type Dropdowns struct {
	Roles            []DropdownItem `json:"roleDropdown"`
	HealthFacilities []DropdownItem `json:"healthFacilityDropdown"`
}
