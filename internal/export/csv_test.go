package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"nightnurse/internal/utils"
	"nightnurse/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleParents() []*types.Parent {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []*types.Parent{
		{
			ID: 3, FullName: "Carol Chen", Email: "carol@example.com",
			Phone:          utils.StringPtr("555-0003"),
			BabyTiming:     utils.StringPtr("newborn, 3 weeks"),
			StartTimeframe: "ASAP",
			Notes:          utils.StringPtr("has a \"quote\", a comma,\nand a newline"),
			UpdatesOptIn:   true,
			CreatedAt:      base.Add(2 * time.Hour), UpdatedAt: base.Add(3 * time.Hour),
		},
		{
			ID: 2, FullName: "Bob Berg", Email: "bob@example.com",
			StartTimeframe: "6+ months",
			CreatedAt:      base.Add(time.Hour), UpdatedAt: base.Add(time.Hour),
		},
		{
			ID: 1, FullName: "Ann Avery", Email: "ann@example.com",
			Phone:          utils.StringPtr("555-0001"),
			StartTimeframe: "1-3 months",
			CreatedAt:      base, UpdatedAt: base,
		},
	}
}

func TestParentsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Parents(&buf, sampleParents()))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, ParentColumns, rows[0])

	carol := rows[1]
	assert.Equal(t, "3", carol[0])
	assert.Equal(t, "Carol Chen", carol[1])
	assert.Equal(t, "has a \"quote\", a comma,\nand a newline", carol[6])
	assert.Equal(t, "true", carol[7])
	assert.Equal(t, "2025-06-01T14:00:00Z", carol[8])

	// nil optionals come back as empty strings
	bob := rows[2]
	assert.Equal(t, "", bob[3])
	assert.Equal(t, "", bob[6])
	assert.Equal(t, "false", bob[7])
}

func TestParentsDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Parents(&first, sampleParents()))
	require.NoError(t, Parents(&second, sampleParents()))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestCaregiversColumns(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	caregivers := []*types.Caregiver{
		{
			ID: 1, FullName: "Ada Night", Email: "ada@example.com", Phone: "555-2222",
			Certs:           utils.StringPtr("CPR, NCS"),
			YearsExperience: utils.IntPtr(7),
			Availability:    "Weekends",
			CreatedAt:       base, UpdatedAt: base,
		},
		{
			ID: 2, FullName: "Sam Rivers", Email: "sam@example.com", Phone: "555-0000",
			Availability: "Flexible",
			CreatedAt:    base, UpdatedAt: base,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Caregivers(&buf, caregivers))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, CaregiverColumns, rows[0])
	assert.Equal(t, "7", rows[1][5])
	assert.Equal(t, "", rows[2][4])
	assert.Equal(t, "", rows[2][5])
}
