package trainer

import (
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

const (
	MinSpecialties = 1
	MaxSpecialties = 5

	MinPrice = 10
	MaxPrice = 200

	MaxExperienceYears = 50

	MinBioLength = 20
	MaxBioLength = 300
)

// Profile is the part of a trainer record the trainer edits. Rating, review
// count and avatar are managed elsewhere.
type Profile struct {
	Name            string
	Specialties     []string
	Location        string
	PricePerSession float64
	ExperienceYears int
	Bio             string
}

// Normalize trims text fields and drops blank or repeated specialties.
func (p Profile) Normalize() Profile {
	p.Name = strings.TrimSpace(p.Name)
	p.Location = strings.TrimSpace(p.Location)
	p.Bio = strings.TrimSpace(p.Bio)

	seen := make(map[string]bool, len(p.Specialties))
	out := make([]string, 0, len(p.Specialties))
	for _, s := range p.Specialties {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	p.Specialties = out
	return p
}

func (p Profile) Validate() error {
	if n := len(p.Specialties); n < MinSpecialties || n > MaxSpecialties {
		return ErrInvalidSpecialties
	}
	if p.Location == "" {
		return ErrInvalidLocation
	}
	if p.PricePerSession < MinPrice || p.PricePerSession > MaxPrice {
		return ErrInvalidPrice
	}
	if p.ExperienceYears < 0 || p.ExperienceYears > MaxExperienceYears {
		return ErrInvalidExperience
	}
	if n := utf8.RuneCountInString(p.Bio); n < MinBioLength || n > MaxBioLength {
		return ErrInvalidBio
	}
	return nil
}

// ApplyTo copies the editable fields onto t. An empty name keeps the
// current one.
func (p Profile) ApplyTo(t *models.Trainer) {
	if p.Name != "" {
		t.Name = p.Name
	}
	t.Specialties = p.Specialties
	t.Location = p.Location
	t.PricePerSession = p.PricePerSession
	t.ExperienceYears = p.ExperienceYears
	t.Bio = p.Bio
}
