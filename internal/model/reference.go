// Package model defines the core domain models used throughout the application.
package model

// ReferenceEntry pairs a diagnosis phrase with its ICD-10 billing code.
type ReferenceEntry struct {
	Label string
	Code  string
}

// DefaultReferences returns the built-in reference table.
// A fresh slice is returned on every call so callers can never mutate the shared table.
func DefaultReferences() []ReferenceEntry {
	return []ReferenceEntry{
		{Label: "Type 2 diabetes mellitus", Code: "E11.9"},
		{Label: "Essential hypertension", Code: "I10"},
		{Label: "Acute upper respiratory infection", Code: "J06.9"},
		{Label: "Major depressive disorder", Code: "F32.9"},
		{Label: "Asthma", Code: "J45.909"},
		{Label: "Low back pain", Code: "M54.5"},
	}
}
