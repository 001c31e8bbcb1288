package breeding

import "time"

// GestationDays es el periodo fijo de gestación usado para derivar la fecha esperada de parto.
const GestationDays = 150

// PregnancyStatus sigue el ciclo Bred -> Confirmed -> Birthed, o Bred -> Failed.
// @Enum Bred, Confirmed, Failed, Birthed
type PregnancyStatus string

const (
	StatusBred      PregnancyStatus = "Bred"
	StatusConfirmed PregnancyStatus = "Confirmed"
	StatusFailed    PregnancyStatus = "Failed"
	StatusBirthed   PregnancyStatus = "Birthed"
)

var transitions = map[PregnancyStatus][]PregnancyStatus{
	StatusBred:      {StatusConfirmed, StatusFailed},
	StatusConfirmed: {StatusBirthed},
}

// CanTransition indica si from -> to es un paso válido del ciclo.
func CanTransition(from, to PregnancyStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Party son los datos desnormalizados de la hembra o el macho para mostrar.
type Party struct {
	TagNumber string
	OwnerName string
}

type Record struct {
	ID     string
	DoeID  string
	BuckID string

	BreedingDate    time.Time
	ExpectedDueDate *time.Time
	ActualBirthDate *time.Time

	Status       PregnancyStatus
	NumberOfKids *int
	Notes        string

	CreatedAt time.Time
	CreatedBy string

	Doe  *Party
	Buck *Party
}

// ExpectedDueDate = fecha de monta + GestationDays (días calendario).
func ExpectedDueDate(bred time.Time) time.Time {
	return bred.AddDate(0, 0, GestationDays)
}
