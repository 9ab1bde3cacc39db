// Package breeds maps rescue disciplines to the breed names eligible for
// them and answers substring containment queries against free-form breed
// strings ("Labrador Retriever Mix", "German Shepherd/Rottweiler").
package breeds

import "strings"

// Sets maps a discipline name to its eligible breed names, lowercase.
type Sets map[string][]string

// Default returns the fixed discipline→breed table. tracking shares the
// disaster set and is resolved as an alias at lookup time.
func Default() Sets {
	return Sets{
		"water": {
			"labrador retriever",
			"chesapeake bay retriever",
			"newfoundland",
		},
		"mountain": {
			"german shepherd",
			"alaskan malamute",
			"old english sheepdog",
			"siberian husky",
			"rottweiler",
		},
		"disaster": {
			"doberman pinscher",
			"german shepherd",
			"golden retriever",
			"bloodhound",
			"rottweiler",
		},
	}
}

// FromConfig builds a Sets from configuration, lowercasing every breed
// name. Disciplines absent from cfg fall back to the default table.
func FromConfig(cfg map[string][]string) Sets {
	sets := Default()
	for discipline, names := range cfg {
		normalized := make([]string, len(names))
		for i, name := range names {
			normalized[i] = strings.ToLower(strings.TrimSpace(name))
		}
		sets[strings.ToLower(strings.TrimSpace(discipline))] = normalized
	}
	return sets
}

// Matches reports whether any eligible breed name for the discipline
// occurs as a substring of the given breed string. Empty breed strings
// and unknown disciplines never match.
func (s Sets) Matches(breed, discipline string) bool {
	b := strings.ToLower(strings.TrimSpace(breed))
	if b == "" {
		return false
	}

	names, ok := s[resolveAlias(discipline)]
	if !ok {
		return false
	}

	for _, name := range names {
		if strings.Contains(b, name) {
			return true
		}
	}
	return false
}

// Matches queries the default table.
func Matches(breed, discipline string) bool {
	return Default().Matches(breed, discipline)
}

func resolveAlias(discipline string) string {
	switch strings.ToLower(strings.TrimSpace(discipline)) {
	case "tracking":
		return "disaster"
	case "wilderness":
		return "mountain"
	default:
		return strings.ToLower(strings.TrimSpace(discipline))
	}
}
