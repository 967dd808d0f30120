package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGroupStatus(t *testing.T) {
	status, err := ParseGroupStatus("1")
	require.NoError(t, err)
	assert.Equal(t, GroupUpdate, status)
	assert.Equal(t, "Update", status.String())

	status, err = ParseGroupStatus("4")
	require.NoError(t, err)
	assert.Equal(t, GroupTestOnly, status)
	assert.Equal(t, "Test Only", status.String())

	_, err = ParseGroupStatus("5")
	assert.Error(t, err, "group status codes stop at 4")

	_, err = ParseGroupStatus("")
	assert.Error(t, err)
}

func TestParseAsOfDateModifier(t *testing.T) {
	mod, err := ParseAsOfDateModifier("3")
	require.NoError(t, err)
	assert.Equal(t, InterimSameDay, mod)
	assert.Equal(t, "Interim same-day data", mod.String())

	_, err = ParseAsOfDateModifier("0")
	assert.Error(t, err)
}

func TestStatusCodes(t *testing.T) {
	code, err := NewStatusCode(15)
	require.NoError(t, err)
	assert.Equal(t, "Closing Ledger", code.Description())
	assert.Equal(t, "015 Closing Ledger", code.String())

	_, err = NewStatusCode(99)
	assert.Error(t, err, "code 099 is in the status band but not a known status code")

	_, err = NewStatusCode(100)
	assert.Error(t, err, "code 100 is outside the status band")
}

func TestSummaryAndDetailCodes(t *testing.T) {
	summary, err := NewSummaryCode(400)
	require.NoError(t, err)
	assert.Equal(t, "Total Debits", summary.Description())

	_, err = NewSummaryCode(799)
	assert.Error(t, err, "unknown summary codes are rejected, not defaulted")

	detail, err := NewDetailCode(495)
	require.NoError(t, err)
	assert.Equal(t, "Outgoing Money Transfer", detail.Description())

	_, err = NewDetailCode(42)
	assert.Error(t, err, "detail codes start at 100")

	_, err = NewDetailCode(998)
	assert.Error(t, err)
}

func TestIsStatusRange(t *testing.T) {
	assert.True(t, IsStatusRange(1))
	assert.True(t, IsStatusRange(99))
	assert.False(t, IsStatusRange(0))
	assert.False(t, IsStatusRange(100))
}

func TestLoadCodeOverlay(t *testing.T) {
	defer func() { codeOverlay = nil }()

	overlayFile := filepath.Join(t.TempDir(), "codes.yaml")
	overlay := "\"890\": \"Site-Local Sweep Credit\"\n\"015\": \"EOD Ledger\"\n"
	require.NoError(t, os.WriteFile(overlayFile, []byte(overlay), 0600))

	require.NoError(t, LoadCodeOverlay(overlayFile))

	// overlay-only codes become recognized
	detail, err := NewDetailCode(890)
	require.NoError(t, err)
	assert.Equal(t, "Site-Local Sweep Credit", detail.Description())

	// overlay descriptions shadow the built-in table
	status, err := NewStatusCode(15)
	require.NoError(t, err)
	assert.Equal(t, "EOD Ledger", status.Description())
}

func TestLoadCodeOverlayInvalid(t *testing.T) {
	overlayFile := filepath.Join(t.TempDir(), "codes.yaml")
	require.NoError(t, os.WriteFile(overlayFile, []byte("\"not-a-code\": \"x\"\n"), 0600))
	assert.Error(t, LoadCodeOverlay(overlayFile))

	assert.Error(t, LoadCodeOverlay(filepath.Join(t.TempDir(), "missing.yaml")))
}
