package trainer

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

type Filter struct {
	Query     string
	Location  string
	Specialty string
	MinPrice  float64
	MaxPrice  float64
	MinRating float64
}

func (f Filter) Match(t models.Trainer) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !contains(t.Name, q) && !contains(t.Location, q) && !anyContains(t.Specialties, q) {
			return false
		}
	}

	if loc := strings.ToLower(strings.TrimSpace(f.Location)); loc != "" && !contains(t.Location, loc) {
		return false
	}

	if sp := strings.TrimSpace(f.Specialty); sp != "" && !hasSpecialty(t.Specialties, sp) {
		return false
	}

	if f.MinPrice > 0 && t.PricePerSession < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && t.PricePerSession > f.MaxPrice {
		return false
	}
	if f.MinRating > 0 && t.Rating < f.MinRating {
		return false
	}

	return true
}

// Apply filters trainers and orders them by rating, best first. Equal ratings
// keep their stored order.
func Apply(trainers []models.Trainer, f Filter) []models.Trainer {
	out := make([]models.Trainer, 0, len(trainers))
	for _, t := range trainers {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

func contains(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

func anyContains(ss []string, lowerNeedle string) bool {
	for _, s := range ss {
		if contains(s, lowerNeedle) {
			return true
		}
	}
	return false
}

func hasSpecialty(ss []string, want string) bool {
	for _, s := range ss {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}
