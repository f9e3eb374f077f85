package enums

import "fmt"

// DealStage is the pipeline position of a deal.
type DealStage string

const (
	DealStageProspecting   DealStage = "prospecting"
	DealStageQualification DealStage = "qualification"
	DealStageProposal      DealStage = "proposal"
	DealStageNegotiation   DealStage = "negotiation"
	DealStageClosedWon     DealStage = "closed_won"
	DealStageClosedLost    DealStage = "closed_lost"
)

var validDealStages = []DealStage{
	DealStageProspecting,
	DealStageQualification,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosedWon,
	DealStageClosedLost,
}

// AllDealStages returns every declared stage in pipeline order.
func AllDealStages() []DealStage {
	return append([]DealStage(nil), validDealStages...)
}

// String implements fmt.Stringer.
func (d DealStage) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DealStage.
func (d DealStage) IsValid() bool {
	for _, candidate := range validDealStages {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDealStage converts raw input into a DealStage.
func ParseDealStage(value string) (DealStage, error) {
	for _, candidate := range validDealStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deal stage %q", value)
}

// UnmarshalText rejects unknown stages at the decoding boundary.
func (d *DealStage) UnmarshalText(text []byte) error {
	parsed, err := ParseDealStage(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
