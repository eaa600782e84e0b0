// Package selector holds the state of a cascading country -> state -> city
// picker. It performs no I/O: selection methods return the Request the
// caller should send, and the caller hands the outcome back through Apply.
package selector

import (
	"fmt"

	"location-selector/models"
)

// User-facing error texts, one per level.
const (
	ErrCountriesUnavailable = "Unable to load countries. Please try again later."
	ErrStatesUnavailable    = "Unable to load states for the selected country."
	ErrCitiesUnavailable    = "Unable to load cities for the selected state."
)

// FailureMessage returns the text shown when a fetch at level fails.
func FailureMessage(level models.Level) string {
	switch level {
	case models.LevelCountry:
		return ErrCountriesUnavailable
	case models.LevelState:
		return ErrStatesUnavailable
	case models.LevelCity:
		return ErrCitiesUnavailable
	}
	return ""
}

// Request describes one list fetch. Seq ties the eventual Result to the
// selection that caused it.
type Request struct {
	Level   models.Level
	Country models.LocationName
	State   models.LocationName
	Seq     uint64
}

func (r Request) String() string {
	switch r.Level {
	case models.LevelState:
		return fmt.Sprintf("states of %s", r.Country)
	case models.LevelCity:
		return fmt.Sprintf("cities of %s, %s", r.State, r.Country)
	}
	return "countries"
}

// Result is the outcome of a Request.
type Result struct {
	Request Request
	Names   []models.LocationName
	Err     error
}

// Selector is not safe for concurrent use; drive it from a single event loop.
type Selector struct {
	lists    [3][]models.LocationName
	selected [3]models.LocationName
	message  string
	err      string

	// seq holds the latest issued sequence per level. A result carrying any
	// other value answers a selection that no longer exists.
	seq     [3]uint64
	next    uint64
	pending [3]bool
}

func New() *Selector {
	return &Selector{}
}

// Mount clears everything and requests the country list.
func (s *Selector) Mount() Request {
	s.selected = [3]models.LocationName{}
	s.invalidateFrom(models.LevelCountry)
	s.message = ""
	return s.issue(models.LevelCountry)
}

// SelectCountry changes the country. Descendant selections, their lists and
// the message are reset whatever happens next. ok is false when name is
// empty, in which case nothing needs to be fetched.
func (s *Selector) SelectCountry(name models.LocationName) (req Request, ok bool) {
	s.selected[models.LevelCountry] = name
	s.selected[models.LevelState] = ""
	s.selected[models.LevelCity] = ""
	s.invalidateFrom(models.LevelState)
	s.message = ""

	if name == "" {
		return Request{}, false
	}
	return s.issue(models.LevelState), true
}

// SelectState changes the state, resetting the city, its list and the
// message. ok is false when either the country or the state is empty.
func (s *Selector) SelectState(name models.LocationName) (req Request, ok bool) {
	s.selected[models.LevelState] = name
	s.selected[models.LevelCity] = ""
	s.invalidateFrom(models.LevelCity)
	s.message = ""

	if s.selected[models.LevelCountry] == "" || name == "" {
		return Request{}, false
	}
	return s.issue(models.LevelCity), true
}

// SelectCity changes the city and recomputes the message.
func (s *Selector) SelectCity(name models.LocationName) {
	s.selected[models.LevelCity] = name
	s.recomputeMessage()
}

// Select dispatches to the setter for level. ok reports whether req must be
// fetched.
func (s *Selector) Select(level models.Level, name models.LocationName) (req Request, ok bool) {
	switch level {
	case models.LevelCountry:
		return s.SelectCountry(name)
	case models.LevelState:
		return s.SelectState(name)
	case models.LevelCity:
		s.SelectCity(name)
	}
	return Request{}, false
}

// Apply records the outcome of a fetch. It reports false and changes nothing
// when the result is stale.
func (s *Selector) Apply(res Result) bool {
	if s.Stale(res) {
		return false
	}

	level := res.Request.Level
	s.pending[level] = false
	if res.Err != nil {
		s.err = FailureMessage(level)
		s.lists[level] = nil
		return true
	}

	s.err = ""
	s.lists[level] = append([]models.LocationName(nil), res.Names...)
	return true
}

// Stale reports whether res would be ignored by Apply.
func (s *Selector) Stale(res Result) bool {
	level := res.Request.Level
	if level < models.LevelCountry || level > models.LevelCity {
		return true
	}
	return res.Request.Seq == 0 || res.Request.Seq != s.seq[level]
}

func (s *Selector) Options(level models.Level) []models.LocationName {
	return s.lists[level]
}

func (s *Selector) Selected(level models.Level) models.LocationName {
	return s.selected[level]
}

func (s *Selector) Countries() []models.LocationName { return s.lists[models.LevelCountry] }
func (s *Selector) States() []models.LocationName    { return s.lists[models.LevelState] }
func (s *Selector) Cities() []models.LocationName    { return s.lists[models.LevelCity] }

func (s *Selector) Country() models.LocationName { return s.selected[models.LevelCountry] }
func (s *Selector) State() models.LocationName   { return s.selected[models.LevelState] }
func (s *Selector) City() models.LocationName    { return s.selected[models.LevelCity] }

// Message is "You selected {city}, {state}, {country}" once all three are
// chosen, empty otherwise.
func (s *Selector) Message() string { return s.message }

// Error is the text for the most recent failed fetch, if any.
func (s *Selector) Error() string { return s.err }

// Loading reports whether the list for level has been requested and not yet
// answered.
func (s *Selector) Loading(level models.Level) bool {
	return s.pending[level]
}

// Enabled reports whether the control for level can be used: the country
// control always, the others only once their parent is chosen.
func (s *Selector) Enabled(level models.Level) bool {
	switch level {
	case models.LevelCountry:
		return true
	case models.LevelState:
		return s.selected[models.LevelCountry] != ""
	case models.LevelCity:
		return s.selected[models.LevelState] != ""
	}
	return false
}

func (s *Selector) issue(level models.Level) Request {
	s.next++
	s.seq[level] = s.next
	s.pending[level] = true
	s.lists[level] = nil
	s.err = ""
	return Request{
		Level:   level,
		Country: s.selected[models.LevelCountry],
		State:   s.selected[models.LevelState],
		Seq:     s.next,
	}
}

// invalidateFrom drops the lists at level and below and orphans any request
// still in flight for them.
func (s *Selector) invalidateFrom(level models.Level) {
	for l := level; l <= models.LevelCity; l++ {
		s.next++
		s.seq[l] = s.next
		s.pending[l] = false
		s.lists[l] = nil
	}
}

func (s *Selector) recomputeMessage() {
	country := s.selected[models.LevelCountry]
	state := s.selected[models.LevelState]
	city := s.selected[models.LevelCity]
	if country != "" && state != "" && city != "" {
		s.message = fmt.Sprintf("You selected %s, %s, %s", city, state, country)
		return
	}
	s.message = ""
}
