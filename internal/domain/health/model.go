package health

import "time"

// RecordType clasifica el evento sanitario.
// @Enum Vaccination, Treatment, Checkup, Weight, Other
type RecordType string

const (
	RecordTypeVaccination RecordType = "Vaccination"
	RecordTypeTreatment   RecordType = "Treatment"
	RecordTypeCheckup     RecordType = "Checkup"
	RecordTypeWeight      RecordType = "Weight"
	RecordTypeOther       RecordType = "Other"
)

func ValidRecordType(t RecordType) bool {
	switch t {
	case RecordTypeVaccination, RecordTypeTreatment, RecordTypeCheckup, RecordTypeWeight, RecordTypeOther:
		return true
	}
	return false
}

// Record es inmutable una vez creado.
type Record struct {
	ID     string
	GoatID string

	Type        RecordType
	Title       string
	Description string

	Date        time.Time
	NextDueDate *time.Time

	Cost         *float64
	Veterinarian string

	CreatedAt time.Time
	CreatedBy string
}
