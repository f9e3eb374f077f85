package enums

import "fmt"

// InteractionType classifies a logged touchpoint with a contact.
type InteractionType string

const (
	InteractionTypeCall    InteractionType = "call"
	InteractionTypeEmail   InteractionType = "email"
	InteractionTypeMeeting InteractionType = "meeting"
	InteractionTypeNote    InteractionType = "note"
)

var validInteractionTypes = []InteractionType{
	InteractionTypeCall,
	InteractionTypeEmail,
	InteractionTypeMeeting,
	InteractionTypeNote,
}

// String implements fmt.Stringer.
func (i InteractionType) String() string {
	return string(i)
}

// IsValid reports whether the value is a known InteractionType.
func (i InteractionType) IsValid() bool {
	for _, candidate := range validInteractionTypes {
		if candidate == i {
			return true
		}
	}
	return false
}

// ParseInteractionType converts raw input into an InteractionType.
func ParseInteractionType(value string) (InteractionType, error) {
	for _, candidate := range validInteractionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid interaction type %q", value)
}

// UnmarshalText rejects unknown types at the decoding boundary.
func (i *InteractionType) UnmarshalText(text []byte) error {
	parsed, err := ParseInteractionType(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
