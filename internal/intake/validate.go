package intake

import (
	"regexp"
	"strings"

	"nightnurse/pkg/types"
)

// FieldErrors maps a form field name to a human-readable problem. Handlers
// return the whole map at once so a form can render every problem together.
type FieldErrors map[string]string

// Intentionally permissive, matching the form's client-side check. Real
// deliverability is established by the operator following up, not here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type rule struct {
	field   string
	ok      bool
	message string
}

// collect evaluates every rule; there is deliberately no short-circuit.
func collect(rules []rule) FieldErrors {
	errs := FieldErrors{}
	for _, r := range rules {
		if !r.ok {
			errs[r.field] = r.message
		}
	}
	return errs
}

func filled(v string) bool {
	return strings.TrimSpace(v) != ""
}

// ValidateParent checks a parent interest submission. The second return is
// the bot flag: a non-empty honeypot field. Bot submissions carry no field
// errors; callers acknowledge them exactly like a success.
func ValidateParent(s types.ParentSubmission) (FieldErrors, bool) {
	errs := collect([]rule{
		{"full_name", filled(s.FullName), "Please add your name so we can address you properly."},
		{"email", emailPattern.MatchString(s.Email), "Please add your email so we can follow up."},
		{"phone", filled(s.Phone), "Please add your phone number."},
		{"baby_timing", filled(s.BabyTiming), "Please tell us your due date or baby's age."},
		{"start_timeframe", s.StartTimeframe != "", "Please select when you might need care."},
		{"consent", s.Consent != "", "Please confirm you understand this is an interest list."},
	})
	return errs, s.Company != ""
}

// ValidateCaregiver checks a basic caregiver submission.
func ValidateCaregiver(s types.CaregiverSubmission) (FieldErrors, bool) {
	errs := collect([]rule{
		{"full_name", filled(s.FullName), "Please add your name."},
		{"email", emailPattern.MatchString(s.Email), "Please add your email so we can follow up."},
		{"phone", filled(s.Phone), "Please add your phone number."},
		{"availability", s.Availability != "", "Please select your availability."},
		{"consent", s.Consent != "", "Please confirm you understand background checks may be required."},
	})
	return errs, s.Company != ""
}

// ValidateApplication checks the extended network application, which demands
// location, experience and a substantive summary on top of the basics.
func ValidateApplication(s types.ApplicationSubmission) (FieldErrors, bool) {
	errs := collect([]rule{
		{"full_name", filled(s.FullName), "Full name is required."},
		{"email", emailPattern.MatchString(s.Email), "Valid email is required."},
		{"phone", filled(s.Phone), "Phone number is required."},
		{"location", filled(s.Location), "Location is required."},
		{"years_experience", s.YearsExperience != "", "Years of experience is required."},
		{"availability", s.Availability != "", "Availability is required."},
		{"experience_summary", len([]rune(strings.TrimSpace(s.ExperienceSummary))) >= 50,
			"Experience summary is required (minimum 50 characters)."},
	})
	return errs, s.Company != ""
}
