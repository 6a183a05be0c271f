package model

import "fmt"

// Severity is the normalized severity of a security event.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

var severityWeights = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// ParseSeverity validates a raw severity string.
func ParseSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if _, ok := severityWeights[sev]; !ok {
		return "", fmt.Errorf("unrecognized severity: %q", s)
	}
	return sev, nil
}

// Weight returns the ordering weight of the severity, 0 for unknown values.
func (s Severity) Weight() int {
	return severityWeights[s]
}

// AtLeast reports whether s is at or above min in the severity order.
func (s Severity) AtLeast(min Severity) bool {
	return s.Weight() >= min.Weight()
}

// Valid reports whether the severity is one of the recognized levels.
func (s Severity) Valid() bool {
	_, ok := severityWeights[s]
	return ok
}

// Category is the event category an alert belongs to.
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryIdentity      Category = "identity"
	CategoryCompliance    Category = "compliance"
	CategoryInformational Category = "informational"
)

var categoryWeights = map[Category]int{
	CategorySecurity:      4,
	CategoryIdentity:      3,
	CategoryCompliance:    2,
	CategoryInformational: 1,
}

// Weight returns the priority contribution of the category.
// Unlisted categories contribute 0.
func (c Category) Weight() int {
	return categoryWeights[c]
}

// KnownCategories returns the categories covered by the capability table.
func KnownCategories() []Category {
	return []Category{
		CategorySecurity,
		CategoryIdentity,
		CategoryCompliance,
		CategoryInformational,
	}
}

// PriorityScore derives an alert's priority from its severity and category.
// The formula is deterministic so identical events always score identically.
func PriorityScore(sev Severity, cat Category) int {
	return sev.Weight()*10 + cat.Weight()
}
