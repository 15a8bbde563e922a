package domain

import (
	"strings"
	"unicode"
)

// Predicate is a boolean test over an applicant used for filtering.
type Predicate interface {
	Test(a *Applicant) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(a *Applicant) bool

// Test calls f(a).
func (f PredicateFunc) Test(a *Applicant) bool {
	return f(a)
}

// ShowAll matches every applicant.
var ShowAll Predicate = PredicateFunc(func(*Applicant) bool { return true })

// IsPinned matches pinned applicants.
var IsPinned Predicate = PredicateFunc(func(a *Applicant) bool { return a.IsPinned() })

// ApplicationStatusPredicate matches applicants whose status contains the
// keyword as a whole word, ignoring case. The keyword is expected to have
// been validated by the caller.
type ApplicationStatusPredicate struct {
	keyword string
}

// NewApplicationStatusPredicate returns a predicate for the given keyword.
func NewApplicationStatusPredicate(keyword string) ApplicationStatusPredicate {
	return ApplicationStatusPredicate{keyword: keyword}
}

// Keyword returns the keyword the predicate matches.
func (p ApplicationStatusPredicate) Keyword() string {
	return p.keyword
}

// Test reports whether a's status contains the keyword as a whole word.
func (p ApplicationStatusPredicate) Test(a *Applicant) bool {
	return a != nil && containsWordIgnoreCase(a.status.value, p.keyword)
}

func containsWordIgnoreCase(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" || strings.ContainsFunc(word, unicode.IsSpace) {
		return false
	}
	for _, w := range strings.Fields(sentence) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}
