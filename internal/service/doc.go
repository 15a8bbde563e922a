// Package service contains the application's use cases. ApplicantService
// owns the applicant registry, runs one command at a time against it and
// announces every change through an events.EventEmitter.
//
// The service never re-implements domain rules. Raw input is turned into
// domain values by the domain constructors, and uniqueness is enforced by
// store.Registry; the service only coordinates the two and translates
// positions in the listing into registry entries.
package service
