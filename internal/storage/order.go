package storage

import (
	"sort"
	"time"

	"github.com/aTrapDeer/portfolio-backend/internal/models"
)

// now is the insert timestamp source. Truncated so sqlite round trips compare equal.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// newestFirst orders by creation time descending; equal timestamps put the
// later insert (higher id) first.
func newestFirst(created func(i int) time.Time, id func(i int) int) func(i, j int) bool {
	return func(i, j int) bool {
		ci, cj := created(i), created(j)
		if !ci.Equal(cj) {
			return ci.After(cj)
		}
		return id(i) > id(j)
	}
}

func sortProjects(items []models.Project) {
	sort.SliceStable(items, newestFirst(
		func(i int) time.Time { return items[i].CreatedAt },
		func(i int) int { return items[i].ID },
	))
}

func sortMessages(items []models.Message) {
	sort.SliceStable(items, newestFirst(
		func(i int) time.Time { return items[i].CreatedAt },
		func(i int) int { return items[i].ID },
	))
}

// sortExperiences orders by Order descending; ties keep insertion order.
func sortExperiences(items []models.Experience) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Order != items[j].Order {
			return items[i].Order > items[j].Order
		}
		return items[i].ID < items[j].ID
	})
}

func sortSkills(items []models.Skill) {
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
}

func isFeatured(p models.Project) bool {
	return p.Featured && p.Status == models.ProjectPublished
}
