package breeds

import "testing"

func TestMatchesWater(t *testing.T) {
	tests := []struct {
		breed string
		want  bool
	}{
		{"Labrador Retriever", true},
		{"Labrador Retriever Mix", true},
		{"Chesapeake Bay Retriever", true},
		{"Newfoundland", true},
		{"Labrador Retriever/Pit Bull", true},
		{"Poodle", false},
		{"German Shepherd", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.breed, "water"); got != tt.want {
			t.Errorf("Matches(%q, water) = %v, want %v", tt.breed, got, tt.want)
		}
	}
}

func TestMatchesMountain(t *testing.T) {
	for _, breed := range []string{
		"German Shepherd",
		"Alaskan Malamute",
		"Old English Sheepdog",
		"Siberian Husky",
		"Rottweiler",
	} {
		if !Matches(breed, "mountain") {
			t.Errorf("Matches(%q, mountain) = false, want true", breed)
		}
	}
	if Matches("Labrador Retriever", "mountain") {
		t.Error("Labrador Retriever should not match mountain")
	}
}

func TestMatchesDisasterAndTrackingAlias(t *testing.T) {
	for _, breed := range []string{
		"Doberman Pinscher",
		"German Shepherd",
		"Golden Retriever",
		"Bloodhound",
		"Rottweiler",
	} {
		if !Matches(breed, "disaster") {
			t.Errorf("Matches(%q, disaster) = false, want true", breed)
		}
		if !Matches(breed, "tracking") {
			t.Errorf("Matches(%q, tracking) = false, want true", breed)
		}
	}
}

func TestMatchesWildernessAlias(t *testing.T) {
	if !Matches("Siberian Husky", "wilderness") {
		t.Error("wilderness should resolve to the mountain set")
	}
}

func TestMatchesCaseInsensitive(t *testing.T) {
	if !Matches("LABRADOR RETRIEVER MIX", "water") {
		t.Error("uppercase breed should match")
	}
	if !Matches("german shepherd", "MOUNTAIN") {
		t.Error("uppercase discipline should match")
	}
}

func TestMatchesRejects(t *testing.T) {
	if Matches("", "water") {
		t.Error("empty breed should not match")
	}
	if Matches("   ", "water") {
		t.Error("whitespace breed should not match")
	}
	if Matches("Labrador Retriever", "underwater") {
		t.Error("unknown discipline should not match")
	}
	if Matches("Labrador Retriever", "") {
		t.Error("empty discipline should not match")
	}
}

func TestFromConfigOverridesOneDiscipline(t *testing.T) {
	sets := FromConfig(map[string][]string{
		"water": {"Portuguese Water Dog"},
	})

	if !sets.Matches("Portuguese Water Dog Mix", "water") {
		t.Error("override breed should match water")
	}
	if sets.Matches("Labrador Retriever", "water") {
		t.Error("default water set should be replaced by the override")
	}
	// Untouched disciplines keep their defaults.
	if !sets.Matches("Bloodhound", "disaster") {
		t.Error("disaster set should still hold defaults")
	}
}
