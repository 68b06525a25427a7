package entity

import (
	"strings"

	"github.com/samber/lo"
)

// IncidentType represents the nature of a reported complaint
type IncidentType string

const (
	IncidentTheftAndRobbery   IncidentType = "Theft & Robbery"
	IncidentPhysicalInjury    IncidentType = "Physical Injury"
	IncidentFireAndDisaster   IncidentType = "Fire & Disaster"
	IncidentMedicalEmergency  IncidentType = "Medical Emergency"
	IncidentVAWC              IncidentType = "VAWC"
	IncidentPublicDisturbance IncidentType = "Public Disturbance"
	IncidentGeneral           IncidentType = "General Incident"
)

// IncidentTypes lists every incident type in prompt order
var IncidentTypes = []IncidentType{
	IncidentTheftAndRobbery,
	IncidentPhysicalInjury,
	IncidentFireAndDisaster,
	IncidentMedicalEmergency,
	IncidentVAWC,
	IncidentPublicDisturbance,
	IncidentGeneral,
}

// UrgencyLevel represents the severity tier of a complaint
type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "Critical"
	UrgencyHigh     UrgencyLevel = "High"
	UrgencyMedium   UrgencyLevel = "Medium"
	UrgencyLow      UrgencyLevel = "Low"
)

// UrgencyLevels lists every urgency level from most to least severe
var UrgencyLevels = []UrgencyLevel{
	UrgencyCritical,
	UrgencyHigh,
	UrgencyMedium,
	UrgencyLow,
}

// IsValid reports whether t is one of the known incident types
func (t IncidentType) IsValid() bool {
	return lo.Contains(IncidentTypes, t)
}

// IsValid reports whether l is one of the known urgency levels
func (l UrgencyLevel) IsValid() bool {
	return lo.Contains(UrgencyLevels, l)
}

// ParseIncidentType matches s against the taxonomy ignoring case and surrounding space
func ParseIncidentType(s string) (IncidentType, bool) {
	return lo.Find(IncidentTypes, func(t IncidentType) bool {
		return strings.EqualFold(string(t), strings.TrimSpace(s))
	})
}

// ParseUrgencyLevel matches s against the taxonomy ignoring case and surrounding space
func ParseUrgencyLevel(s string) (UrgencyLevel, bool) {
	return lo.Find(UrgencyLevels, func(l UrgencyLevel) bool {
		return strings.EqualFold(string(l), strings.TrimSpace(s))
	})
}
