package model

// Aggregate rows from the three dashboard endpoints.

type FacilityPatientCount struct {
	FacilityName string `json:"facilityName"`
	PatientCount int    `json:"patientCount"`
}

type RegionWorkerCount struct {
	Region      string `json:"region"`
	WorkerCount int    `json:"workerCount"`
}

type GenderCount struct {
	Gender       string `json:"gender"`
	PatientCount int    `json:"patientCount"`
}

// ChartData is the label/value shape the console's charts consume. A
// failed aggregate fetch leaves it zero-valued, which renders as an empty
// chart rather than an error.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}
