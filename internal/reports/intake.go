package reports

import (
	"fmt"

	"github.com/google/uuid"
)

// NewLog is an operator-submitted stop report. Intake is a stub: the record
// is validated and acknowledged but never written, and the prediction is a
// fixed placeholder rather than a model.
type NewLog struct {
	StopDate         string `json:"stop_date"`
	StopTime         string `json:"stop_time"`
	CountryName      string `json:"country_name"`
	DriverGender     string `json:"driver_gender"`
	DriverAge        int    `json:"driver_age"`
	DriverRace       string `json:"driver_race"`
	SearchConducted  bool   `json:"search_conducted"`
	SearchType       string `json:"search_type"`
	DrugsRelatedStop bool   `json:"drugs_related_stop"`
	StopDuration     string `json:"stop_duration"`
	VehicleNumber    string `json:"vehicle_number"`
}

type Receipt struct {
	ReceiptID          string `json:"receipt_id"`
	PredictedOutcome   string `json:"predicted_outcome"`
	PredictedViolation string `json:"predicted_violation"`
}

func (l NewLog) Validate() error {
	if l.DriverAge < 16 || l.DriverAge > 100 {
		return fmt.Errorf("driver_age must be between 16 and 100, got %d", l.DriverAge)
	}
	switch l.DriverGender {
	case "male", "female", "other":
	default:
		return fmt.Errorf("driver_gender must be male, female or other, got %q", l.DriverGender)
	}
	return nil
}

// IntakeLog validates a submitted log and returns the placeholder
// prediction. No row is persisted.
func (s *Service) IntakeLog(l NewLog) (Receipt, error) {
	if err := l.Validate(); err != nil {
		return Receipt{}, err
	}
	return Receipt{
		ReceiptID:          uuid.NewString(),
		PredictedOutcome:   "Citation",
		PredictedViolation: "Speeding",
	}, nil
}
