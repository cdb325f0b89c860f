package trainer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

func catalog() []models.Trainer {
	return []models.Trainer{
		{UserID: "1", Name: "Carlos Rodríguez", Specialties: []string{"Pérdida de peso", "Fuerza"}, Location: "Cáceres", PricePerSession: 35, Rating: 4.5},
		{UserID: "2", Name: "María González", Specialties: []string{"Yoga", "Pilates"}, Location: "Badajoz", PricePerSession: 30, Rating: 4.9},
		{UserID: "3", Name: "Javier Martín", Specialties: []string{"CrossFit", "Funcional"}, Location: "Cáceres", PricePerSession: 40, Rating: 4.5},
	}
}

func ids(ts []models.Trainer) []string {
	out := []string{}
	for _, t := range ts {
		out = append(out, t.UserID)
	}
	return out
}

func TestApply_OrdersByRatingKeepingTies(t *testing.T) {
	assert.Equal(t, []string{"2", "1", "3"}, ids(Apply(catalog(), Filter{})))
}

func TestApply_Filters(t *testing.T) {
	cases := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"query matches location", Filter{Query: "cáceres"}, []string{"1", "3"}},
		{"query matches specialty", Filter{Query: "yog"}, []string{"2"}},
		{"location substring", Filter{Location: "bada"}, []string{"2"}},
		{"specialty exact ignoring case", Filter{Specialty: "crossfit"}, []string{"3"}},
		{"price range", Filter{MinPrice: 32, MaxPrice: 38}, []string{"1"}},
		{"min rating", Filter{MinRating: 4.8}, []string{"2"}},
		{"no match", Filter{Query: "boxeo"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(Apply(catalog(), tc.filter)))
		})
	}
}
