// Package entities contains core domain data structures.
package entities

import "time"

// HeroProfile is the fixed set of descriptive fields returned by structured
// generation. All fields are free text; the upstream model may fill them with
// anything, so no length or format constraints are enforced here.
type HeroProfile struct {
	Name              string `json:"name"`
	Superpowers       string `json:"superpowers"`
	Hometown          string `json:"hometown"`
	Backstory         string `json:"backstory"`
	PersonalityTraits string `json:"personality_traits"`
	Appearance        string `json:"appearance"`
}

// MissingFields returns the names of required profile fields that are empty.
// A profile with missing fields must be rejected before it reaches the catalog.
func (p *HeroProfile) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", p.Name},
		{"superpowers", p.Superpowers},
		{"hometown", p.Hometown},
		{"backstory", p.Backstory},
		{"personality_traits", p.PersonalityTraits},
		{"appearance", p.Appearance},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Hero is a catalog record for a generated superhero. ID uniqueness is the
// only invariant; records are never deleted and are updated in place only to
// attach a portrait image path.
type Hero struct {
	ID string `json:"id"`
	HeroProfile
	// ImagePath is relative to the data directory, empty when no portrait
	// could be fetched.
	ImagePath string    `json:"image_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
