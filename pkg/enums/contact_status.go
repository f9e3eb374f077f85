package enums

import "fmt"

// ContactStatus tracks where a contact sits in the funnel.
type ContactStatus string

const (
	ContactStatusLead     ContactStatus = "lead"
	ContactStatusProspect ContactStatus = "prospect"
	ContactStatusCustomer ContactStatus = "customer"
)

var validContactStatuses = []ContactStatus{
	ContactStatusLead,
	ContactStatusProspect,
	ContactStatusCustomer,
}

// String implements fmt.Stringer.
func (c ContactStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ContactStatus.
func (c ContactStatus) IsValid() bool {
	for _, candidate := range validContactStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseContactStatus converts raw input into a ContactStatus.
func ParseContactStatus(value string) (ContactStatus, error) {
	for _, candidate := range validContactStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid contact status %q", value)
}

// UnmarshalText rejects unknown statuses at the decoding boundary.
func (c *ContactStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseContactStatus(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
