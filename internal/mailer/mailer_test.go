package mailer

import (
	"io"
	"testing"

	"nightnurse/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNotifyWithoutConfigIsNoOp(t *testing.T) {
	m := New(&types.Config{}, quietLogger())
	// Must neither panic nor attempt a dial.
	m.Notify("parent", map[string]string{"full_name": "Jane Doe"})
}

func TestRenderBody(t *testing.T) {
	body := renderBody("New Parent Interest - Tahoe Night Nurse", map[string]string{
		"full_name":       "Jane Doe",
		"baby_timing":     "due March",
		"notes":           "",
		"company":         "Totally Real LLC",
		"updates_opt_in":  "on",
		"start_timeframe": "1-3 months",
	})

	assert.Contains(t, body, "<h2>New Parent Interest - Tahoe Night Nurse</h2>")
	assert.Contains(t, body, "Full Name:")
	assert.Contains(t, body, "Baby Timing:")
	assert.Contains(t, body, "Updates Opt In:")
	assert.Contains(t, body, "Jane Doe")

	// empty values render as N/A
	assert.Contains(t, body, "N/A")

	// the honeypot never reaches the operator
	assert.NotContains(t, body, "Company")
	assert.NotContains(t, body, "Totally Real LLC")
}

func TestRenderBodyDeterministic(t *testing.T) {
	fields := map[string]string{"b_field": "2", "a_field": "1", "c_field": "3"}
	assert.Equal(t, renderBody("s", fields), renderBody("s", fields))
}

func TestRenderBodyEscapesHTML(t *testing.T) {
	body := renderBody("s", map[string]string{"notes": "<script>alert(1)</script>"})
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Full Name", fieldLabel("full_name"))
	assert.Equal(t, "Years Experience", fieldLabel("years_experience"))
	assert.Equal(t, "Email", fieldLabel("email"))
}
