package goats

import "time"

// Gender define el sexo del animal.
// @Enum Male, Female
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// HealthStatus es el estado sanitario actual. Vacío = sin informar (se cuenta como Healthy).
// @Enum Healthy, Sick, Under Treatment, Quarantine
type HealthStatus string

const (
	HealthHealthy        HealthStatus = "Healthy"
	HealthSick           HealthStatus = "Sick"
	HealthUnderTreatment HealthStatus = "Under Treatment"
	HealthQuarantine     HealthStatus = "Quarantine"
)

// BreedingStatus es el estado reproductivo actual. Vacío = sin informar (se cuenta como Available).
// @Enum Available, Pregnant, Nursing, Retired
type BreedingStatus string

const (
	BreedingAvailable BreedingStatus = "Available"
	BreedingPregnant  BreedingStatus = "Pregnant"
	BreedingNursing   BreedingStatus = "Nursing"
	BreedingRetired   BreedingStatus = "Retired"
)

// Goat representa un animal registrado en el rebaño.
type Goat struct {
	ID        string
	TagNumber string
	OwnerName string

	Gender Gender

	GoatPhotoURL string
	TagPhotoURL  string

	BirthDate *time.Time
	Weight    *float64

	HealthStatus   HealthStatus
	BreedingStatus BreedingStatus

	SireID string
	DamID  string

	Notes string

	CreatedAt time.Time
	CreatedBy string
}

// ListFilter replica los filtros del listado (tag parcial + estados exactos).
type ListFilter struct {
	Tag            string
	Gender         Gender
	HealthStatus   HealthStatus
	BreedingStatus BreedingStatus
}

func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

func ValidHealthStatus(s HealthStatus) bool {
	switch s {
	case HealthHealthy, HealthSick, HealthUnderTreatment, HealthQuarantine:
		return true
	}
	return false
}

func ValidBreedingStatus(s BreedingStatus) bool {
	switch s {
	case BreedingAvailable, BreedingPregnant, BreedingNursing, BreedingRetired:
		return true
	}
	return false
}
