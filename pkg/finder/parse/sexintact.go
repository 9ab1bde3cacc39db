package parse

import "strings"

// Sex is the canonical sex of an animal.
type Sex string

// Canonical sex values.
const (
	SexMale    Sex = "Male"
	SexFemale  Sex = "Female"
	SexUnknown Sex = "Unknown"
)

// IntactStatus is the canonical reproductive status of an animal.
type IntactStatus string

// Canonical intact status values.
const (
	StatusIntact   IntactStatus = "Intact"
	StatusNeutered IntactStatus = "Neutered"
	StatusSpayed   IntactStatus = "Spayed"
	StatusUnknown  IntactStatus = "Unknown"
)

// SexIntact splits a combined shelter string such as "Neutered Male" or
// "Intact Female" into its two attributes. The attributes are determined
// independently: a string naming only one of them still yields a defined
// value for that one and Unknown for the other. Nil, non-string, empty
// and literal "unknown" input yield (Unknown, Unknown).
func SexIntact(raw any) (Sex, IntactStatus) {
	s, ok := raw.(string)
	if !ok {
		return SexUnknown, StatusUnknown
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "unknown" {
		return SexUnknown, StatusUnknown
	}

	sex := SexUnknown
	// "female" contains "male", so test it first.
	if strings.Contains(s, "female") {
		sex = SexFemale
	} else if strings.Contains(s, "male") {
		sex = SexMale
	}

	status := StatusUnknown
	switch {
	case strings.Contains(s, "neutered"):
		status = StatusNeutered
	case strings.Contains(s, "spayed"):
		status = StatusSpayed
	case strings.Contains(s, "intact"):
		status = StatusIntact
	}

	return sex, status
}
