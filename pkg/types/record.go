package types

import "time"

// Parent is an interest-list record for a family seeking overnight care.
// Exactly one row exists per normalized email; repeat submissions overwrite
// the mutable attributes in place.
type Parent struct {
	ID             int64     `db:"id"`
	FullName       string    `db:"full_name"`
	Email          string    `db:"email"`
	Phone          *string   `db:"phone"`
	BabyTiming     *string   `db:"baby_timing"`
	StartTimeframe string    `db:"start_timeframe"`
	Notes          *string   `db:"notes"`
	UpdatesOptIn   bool      `db:"updates_opt_in"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Caregiver is an application record for someone offering care. Both the
// basic caregiver form and the extended network application land here.
type Caregiver struct {
	ID              int64     `db:"id"`
	FullName        string    `db:"full_name"`
	Email           string    `db:"email"`
	Phone           string    `db:"phone"`
	Certs           *string   `db:"certs"`
	YearsExperience *int      `db:"years_experience"`
	Availability    string    `db:"availability"`
	Notes           *string   `db:"notes"`
	UpdatesOptIn    bool      `db:"updates_opt_in"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}
