package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownFilingStatus is returned when a filing status is not one of the supported values.
	ErrUnknownFilingStatus = errors.New("unknown filing status")
	// ErrNegativeAmount is returned when a prior-year figure is below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")
	// ErrInvalidConstants is returned when a tax-year table breaks its own invariants.
	ErrInvalidConstants = errors.New("invalid tax year constants")
)

// FilingStatus is the federal filing status of the taxpayer
type FilingStatus string

const (
	FilingStatusSingle  FilingStatus = "single"
	FilingStatusMarried FilingStatus = "married"
)

// FilingStatuses lists every supported status in display order.
func FilingStatuses() []FilingStatus {
	return []FilingStatus{FilingStatusSingle, FilingStatusMarried}
}

// Valid reports whether the status is one of the supported values
func (fs FilingStatus) Valid() bool {
	return fs == FilingStatusSingle || fs == FilingStatusMarried
}

// Label returns a human readable form of the status
func (fs FilingStatus) Label() string {
	switch fs {
	case FilingStatusSingle:
		return "Single"
	case FilingStatusMarried:
		return "Married Filing Jointly"
	default:
		return string(fs)
	}
}

// ParseFilingStatus accepts the canonical values plus a few common spellings.
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "s":
		return FilingStatusSingle, nil
	case "married", "mfj", "married-filing-jointly", "married_filing_jointly", "joint":
		return FilingStatusMarried, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilingStatus, s)
	}
}
