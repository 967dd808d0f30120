package models

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// GroupStatus classifies a group header record.
type GroupStatus uint8

const (
	GroupUpdate     GroupStatus = 1
	GroupDeletion   GroupStatus = 2
	GroupCorrection GroupStatus = 3
	GroupTestOnly   GroupStatus = 4
)

// ParseGroupStatus maps a group status field to its enumerant.
func ParseGroupStatus(field string) (GroupStatus, error) {
	switch field {
	case "1":
		return GroupUpdate, nil
	case "2":
		return GroupDeletion, nil
	case "3":
		return GroupCorrection, nil
	case "4":
		return GroupTestOnly, nil
	default:
		return 0, fmt.Errorf("unrecognized group status code '%s'", field)
	}
}

func (s GroupStatus) String() string {
	switch s {
	case GroupUpdate:
		return "Update"
	case GroupDeletion:
		return "Deletion"
	case GroupCorrection:
		return "Correction"
	case GroupTestOnly:
		return "Test Only"
	default:
		return fmt.Sprintf("GroupStatus(%d)", uint8(s))
	}
}

// AsOfDateModifier qualifies the as-of date of a group.
type AsOfDateModifier uint8

const (
	InterimPreviousDay AsOfDateModifier = 1
	FinalPreviousDay   AsOfDateModifier = 2
	InterimSameDay     AsOfDateModifier = 3
	FinalSameDay       AsOfDateModifier = 4
)

// ParseAsOfDateModifier maps an as-of-date modifier field to its enumerant.
func ParseAsOfDateModifier(field string) (AsOfDateModifier, error) {
	switch field {
	case "1":
		return InterimPreviousDay, nil
	case "2":
		return FinalPreviousDay, nil
	case "3":
		return InterimSameDay, nil
	case "4":
		return FinalSameDay, nil
	default:
		return 0, fmt.Errorf("unrecognized as-of-date modifier '%s'", field)
	}
}

func (m AsOfDateModifier) String() string {
	switch m {
	case InterimPreviousDay:
		return "Interim previous-day data"
	case FinalPreviousDay:
		return "Final previous-day data"
	case InterimSameDay:
		return "Interim same-day data"
	case FinalSameDay:
		return "Final same-day data"
	default:
		return fmt.Sprintf("AsOfDateModifier(%d)", uint8(m))
	}
}

// StatusCode is an account status balance code (001-099).
type StatusCode uint16

// SummaryCode is an account summary balance code (100-799).
type SummaryCode uint16

// DetailCode is a transaction detail code (100-999).
type DetailCode uint16

// The built-in code tables. Immutable after process start; safe to share
// across concurrent pipeline instances.
var statusCodeNames = map[uint16]string{
	10: "Opening Ledger",
	11: "Average Opening Ledger MTD",
	15: "Closing Ledger",
	20: "Average Closing Ledger MTD",
	25: "Average Closing Ledger YTD",
	30: "Current Ledger",
	40: "Opening Available",
	45: "Closing Available",
	50: "Average Closing Available MTD",
	55: "Average Closing Available YTD",
	60: "Current Available",
	72: "One-Day Float",
	74: "Two-or-More Day Float",
}

var summaryCodeNames = map[uint16]string{
	100: "Total Credits",
	101: "Total Credit Amount MTD",
	105: "Credits Not Detailed",
	110: "Total Lockbox Deposits",
	140: "Total ACH Credits",
	190: "Total Incoming Money Transfers",
	275: "Total ZBA Credits",
	301: "Total Commercial Deposits",
	400: "Total Debits",
	401: "Total Debit Amount MTD",
	405: "Total Debits Excluding Returned Items",
	450: "Total ACH Debits",
	470: "Total Checks Paid",
	495: "Total Outgoing Money Transfers",
	575: "Total ZBA Debits",
}

var detailCodeNames = map[uint16]string{
	108: "Credit",
	115: "Lockbox Deposit",
	165: "Preauthorized ACH Credit",
	191: "Individual Incoming Internal Money Transfer",
	195: "Incoming Money Transfer",
	206: "Book Transfer Credit",
	275: "ZBA Credit",
	301: "Commercial Deposit",
	399: "Miscellaneous Credit",
	408: "Float Adjustment",
	451: "ACH Debit Received",
	475: "Check Paid",
	491: "Individual Outgoing Internal Money Transfer",
	495: "Outgoing Money Transfer",
	506: "Book Transfer Debit",
	555: "Deposited Item Returned",
	575: "ZBA Debit",
	699: "Miscellaneous Debit",
}

// Site-local description overlay loaded from YAML, checked before the
// built-in tables. Populated once at startup by LoadCodeOverlay.
var codeOverlay map[uint16]string

// IsStatusRange reports whether a numeric code falls in the status band.
// Codes 001-099 are status balances; 100 and up are summaries or details
// depending on the record they appear in.
func IsStatusRange(n uint16) bool {
	return n >= 1 && n <= 99
}

// NewStatusCode validates a numeric code against the status table.
func NewStatusCode(n uint16) (StatusCode, error) {
	if !IsStatusRange(n) {
		return 0, fmt.Errorf("code %03d is outside the status range 001-099", n)
	}
	if !knownCode(statusCodeNames, n) {
		return 0, fmt.Errorf("unrecognized status code %03d", n)
	}
	return StatusCode(n), nil
}

// NewSummaryCode validates a numeric code against the summary table.
func NewSummaryCode(n uint16) (SummaryCode, error) {
	if n < 100 || n > 799 {
		return 0, fmt.Errorf("code %03d is outside the summary range 100-799", n)
	}
	if !knownCode(summaryCodeNames, n) {
		return 0, fmt.Errorf("unrecognized summary code %03d", n)
	}
	return SummaryCode(n), nil
}

// NewDetailCode validates a numeric code against the detail table.
func NewDetailCode(n uint16) (DetailCode, error) {
	if n < 100 || n > 999 {
		return 0, fmt.Errorf("code %03d is outside the detail range 100-999", n)
	}
	if !knownCode(detailCodeNames, n) {
		return 0, fmt.Errorf("unrecognized detail code %03d", n)
	}
	return DetailCode(n), nil
}

func knownCode(table map[uint16]string, n uint16) bool {
	if _, ok := codeOverlay[n]; ok {
		return true
	}
	_, ok := table[n]
	return ok
}

func describe(table map[uint16]string, n uint16) string {
	if name, ok := codeOverlay[n]; ok {
		return name
	}
	if name, ok := table[n]; ok {
		return name
	}
	return fmt.Sprintf("Code %03d", n)
}

// Description returns the human-readable name of the code.
func (c StatusCode) Description() string { return describe(statusCodeNames, uint16(c)) }

// Description returns the human-readable name of the code.
func (c SummaryCode) Description() string { return describe(summaryCodeNames, uint16(c)) }

// Description returns the human-readable name of the code.
func (c DetailCode) Description() string { return describe(detailCodeNames, uint16(c)) }

func (c StatusCode) String() string  { return fmt.Sprintf("%03d %s", uint16(c), c.Description()) }
func (c SummaryCode) String() string { return fmt.Sprintf("%03d %s", uint16(c), c.Description()) }
func (c DetailCode) String() string  { return fmt.Sprintf("%03d %s", uint16(c), c.Description()) }

// LoadCodeOverlay reads a YAML file mapping numeric type codes to site-local
// descriptions and merges it over the built-in tables. Codes present only in
// the overlay become recognized. Call once at startup, before parsing begins.
func LoadCodeOverlay(path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error reading code overlay file: %w", err)
	}
	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing code overlay file: %w", err)
	}
	overlay := make(map[uint16]string, len(raw))
	for key, name := range raw {
		n, err := strconv.ParseUint(key, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid type code '%s' in overlay file: %w", key, err)
		}
		overlay[uint16(n)] = name
	}
	codeOverlay = overlay
	return nil
}
