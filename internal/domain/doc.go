// Package domain contains the core entities and value objects of TrackAScholar:
// the validated applicant fields, the Applicant aggregate with its identity and
// ordering rules, and the predicates used to filter applicants. The package is
// pure computation; it performs no I/O and never logs.
package domain
