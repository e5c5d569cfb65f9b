package types

// HoneypotField is the hidden form input legitimate users never fill in.
// It is excluded from notification rendering and never stored.
const HoneypotField = "company"

// ParentSubmission is the raw body of POST /api/parents, before any
// normalization.
type ParentSubmission struct {
	FullName       string `form:"full_name" json:"full_name"`
	Email          string `form:"email" json:"email"`
	Phone          string `form:"phone" json:"phone"`
	BabyTiming     string `form:"baby_timing" json:"baby_timing"`
	StartTimeframe string `form:"start_timeframe" json:"start_timeframe"`
	Notes          string `form:"notes" json:"notes"`
	UpdatesOptIn   string `form:"updates_opt_in" json:"updates_opt_in"`
	Consent        string `form:"consent" json:"consent"`
	Company        string `form:"company" json:"company"`
}

// CaregiverSubmission is the raw body of POST /api/caregivers.
type CaregiverSubmission struct {
	FullName        string   `form:"full_name" json:"full_name"`
	Email           string   `form:"email" json:"email"`
	Phone           string   `form:"phone" json:"phone"`
	Certs           []string `form:"certs" json:"certs"`
	YearsExperience string   `form:"years_experience" json:"years_experience"`
	Availability    string   `form:"availability" json:"availability"`
	Notes           string   `form:"notes" json:"notes"`
	UpdatesOptIn    string   `form:"updates_opt_in" json:"updates_opt_in"`
	Consent         string   `form:"consent" json:"consent"`
	Company         string   `form:"company" json:"company"`
}

// ApplicationSubmission is the raw body of POST /api/caregivers/apply, the
// extended network application. Location, work areas, schedule, rate and the
// experience summary are composed into the stored note.
type ApplicationSubmission struct {
	FullName          string   `form:"full_name" json:"full_name"`
	Email             string   `form:"email" json:"email"`
	Phone             string   `form:"phone" json:"phone"`
	Location          string   `form:"location" json:"location"`
	Certs             []string `form:"certs" json:"certs"`
	WorkAreas         []string `form:"work_areas" json:"work_areas"`
	YearsExperience   string   `form:"years_experience" json:"years_experience"`
	Availability      string   `form:"availability" json:"availability"`
	AvailabilityNotes string   `form:"availability_notes" json:"availability_notes"`
	HourlyRate        string   `form:"hourly_rate" json:"hourly_rate"`
	ExperienceSummary string   `form:"experience_summary" json:"experience_summary"`
	UpdatesOptIn      string   `form:"updates_opt_in" json:"updates_opt_in"`
	Company           string   `form:"company" json:"company"`
}
