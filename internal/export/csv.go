// Package export renders a full collection as CSV for the operator download.
// Output is deterministic for a given record sequence: fixed column order,
// header row always present, RFC 3339 UTC timestamps.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"nightnurse/pkg/types"
)

var ParentColumns = []string{
	"id", "full_name", "email", "phone", "baby_timing", "start_timeframe",
	"notes", "updates_opt_in", "created_at", "updated_at",
}

var CaregiverColumns = []string{
	"id", "full_name", "email", "phone", "certs", "years_experience",
	"availability", "notes", "updates_opt_in", "created_at", "updated_at",
}

// Parents writes the parent collection, header first.
func Parents(w io.Writer, parents []*types.Parent) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ParentColumns); err != nil {
		return fmt.Errorf("write parent header: %w", err)
	}

	for _, p := range parents {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.FullName,
			p.Email,
			stringValue(p.Phone),
			stringValue(p.BabyTiming),
			p.StartTimeframe,
			stringValue(p.Notes),
			strconv.FormatBool(p.UpdatesOptIn),
			timestamp(p.CreatedAt),
			timestamp(p.UpdatedAt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write parent row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Caregivers writes the caregiver collection, header first.
func Caregivers(w io.Writer, caregivers []*types.Caregiver) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CaregiverColumns); err != nil {
		return fmt.Errorf("write caregiver header: %w", err)
	}

	for _, c := range caregivers {
		row := []string{
			strconv.FormatInt(c.ID, 10),
			c.FullName,
			c.Email,
			c.Phone,
			stringValue(c.Certs),
			intValue(c.YearsExperience),
			c.Availability,
			stringValue(c.Notes),
			strconv.FormatBool(c.UpdatesOptIn),
			timestamp(c.CreatedAt),
			timestamp(c.UpdatedAt),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write caregiver row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
