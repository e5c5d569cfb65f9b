package intake

import (
	"fmt"
	"strconv"
	"strings"

	"nightnurse/pkg/types"
)

// Note length ceilings. Hard caps applied by truncation before storage,
// never surfaced as validation errors.
const (
	NoteLimitBasic       = 280
	NoteLimitApplication = 500
)

// NormalizeEmail produces the reconciliation key: trimmed, lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// optional trims v and returns nil for the empty string, so omitted form
// fields land as NULL.
func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func note(v string, limit int) *string {
	trimmed := truncateRunes(strings.TrimSpace(v), limit)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func optIn(v string) bool {
	return v == "on" || v == "true"
}

// years parses a submitted years-of-experience value, returning nil for
// anything that is not a plain integer.
func years(v string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}

func joined(values []string) *string {
	return optional(strings.Join(values, ", "))
}

// NewParent normalizes a validated parent submission into its stored form.
func NewParent(s types.ParentSubmission) *types.Parent {
	return &types.Parent{
		FullName:       strings.TrimSpace(s.FullName),
		Email:          NormalizeEmail(s.Email),
		Phone:          optional(s.Phone),
		BabyTiming:     optional(s.BabyTiming),
		StartTimeframe: s.StartTimeframe,
		Notes:          note(s.Notes, NoteLimitBasic),
		UpdatesOptIn:   optIn(s.UpdatesOptIn),
	}
}

// NewCaregiver normalizes a validated basic caregiver submission.
func NewCaregiver(s types.CaregiverSubmission) *types.Caregiver {
	return &types.Caregiver{
		FullName:        strings.TrimSpace(s.FullName),
		Email:           NormalizeEmail(s.Email),
		Phone:           strings.TrimSpace(s.Phone),
		Certs:           joined(s.Certs),
		YearsExperience: years(s.YearsExperience),
		Availability:    s.Availability,
		Notes:           note(s.Notes, NoteLimitBasic),
		UpdatesOptIn:    optIn(s.UpdatesOptIn),
	}
}

// NewCaregiverFromApplication normalizes an extended network application.
// Location, work areas, schedule, rate and the experience summary are
// composed into a single pipe-delimited note capped at 500 characters.
func NewCaregiverFromApplication(s types.ApplicationSubmission) *types.Caregiver {
	segments := make([]string, 0, 5)
	appendSegment := func(label, value string) {
		if value != "" {
			segments = append(segments, fmt.Sprintf("%s: %s", label, value))
		}
	}
	appendSegment("Location", s.Location)
	appendSegment("Work Areas", strings.Join(s.WorkAreas, ", "))
	appendSegment("Schedule", s.AvailabilityNotes)
	appendSegment("Rate", s.HourlyRate)
	appendSegment("Experience", s.ExperienceSummary)

	return &types.Caregiver{
		FullName:        strings.TrimSpace(s.FullName),
		Email:           NormalizeEmail(s.Email),
		Phone:           strings.TrimSpace(s.Phone),
		Certs:           joined(s.Certs),
		YearsExperience: years(s.YearsExperience),
		Availability:    s.Availability,
		Notes:           note(strings.Join(segments, " | "), NoteLimitApplication),
		UpdatesOptIn:    optIn(s.UpdatesOptIn),
	}
}
