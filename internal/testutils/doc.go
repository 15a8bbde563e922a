// Package testutils provides testing utilities for TrackAScholar.
//
// # Test Applicants
//
// For creating applicants, use the following patterns:
//
//	// Create an applicant with default values:
//	a := testutils.MustCreateApplicantForTest(t)
//
//	// Create an applicant with specific options:
//	a := testutils.MustCreateApplicantForTest(t,
//	    testutils.WithName("Bob Choo"),
//	    testutils.WithStatus("accepted"),
//	    testutils.WithMajors("Mathematics", "Physics"),
//	)
//
// The typical applicants (Alice, Benson, Carl, Daniel, Elle) have fixed
// field values that tests can rely on when checking sort order:
//
//	r := testutils.NewTypicalRegistry(t)
//
// # Log Capture
//
// TestSlogHandler records log entries in memory so tests can assert on what
// was logged:
//
//	h := testutils.NewTestSlogHandler()
//	logger := slog.New(h)
package testutils
