package trainer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProfile() Profile {
	return Profile{
		Name:            "Carlos",
		Specialties:     []string{"Strength", "Mobility"},
		Location:        "Madrid",
		PricePerSession: 35,
		ExperienceYears: 6,
		Bio:             "Certified coach focused on strength and mobility.",
	}
}

func TestProfile_Normalize(t *testing.T) {
	p := Profile{
		Name:        "  Carlos ",
		Specialties: []string{" Yoga", "", "yoga", "Pilates "},
		Location:    " Madrid ",
	}.Normalize()

	assert.Equal(t, "Carlos", p.Name)
	assert.Equal(t, "Madrid", p.Location)
	assert.Equal(t, []string{"Yoga", "Pilates"}, p.Specialties)
}

func TestProfile_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr error
	}{
		{"valid", func(p *Profile) {}, nil},
		{"no specialties", func(p *Profile) { p.Specialties = nil }, ErrInvalidSpecialties},
		{"too many specialties", func(p *Profile) {
			p.Specialties = []string{"a", "b", "c", "d", "e", "f"}
		}, ErrInvalidSpecialties},
		{"no location", func(p *Profile) { p.Location = "" }, ErrInvalidLocation},
		{"price too low", func(p *Profile) { p.PricePerSession = 9.99 }, ErrInvalidPrice},
		{"price too high", func(p *Profile) { p.PricePerSession = 201 }, ErrInvalidPrice},
		{"negative experience", func(p *Profile) { p.ExperienceYears = -1 }, ErrInvalidExperience},
		{"experience too high", func(p *Profile) { p.ExperienceYears = 51 }, ErrInvalidExperience},
		{"bio too short", func(p *Profile) { p.Bio = "short" }, ErrInvalidBio},
		{"bio too long", func(p *Profile) { p.Bio = strings.Repeat("b", MaxBioLength+1) }, ErrInvalidBio},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)

			err := p.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
