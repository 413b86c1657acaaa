package domain

import (
	"strings"
	"time"
)

// ProjectStatusActive is the only status Zebra reports for projects it returns.
const ProjectStatusActive = "active"

// Project represents a Zebra project in the domain layer.
type Project struct {
	ID          int64
	Backend     string // name of the backend the project was fetched from
	Name        string
	Description string
	Budget      float64
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	Team        string // parent id of the roles belonging to the project team
	Activities  []Activity
	Aliases     map[string]int64 // activity alias -> activity id
}

// Activity is a bookable activity of a Project.
type Activity struct {
	ID    int64
	Name  string
	Rate  float64
	Alias string
}

// Activity returns the activity with the given id.
func (p Project) Activity(id int64) (Activity, bool) {
	for _, a := range p.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// Matches reports whether the project or one of its activities contains
// term, ignoring case. An empty term matches everything.
func (p Project) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	for _, a := range p.Activities {
		if strings.Contains(strings.ToLower(a.Name), term) {
			return true
		}
	}
	return false
}
