package domain

// TestAssignment is one test assigned to a student. Percentage is nil until
// the student has completed the test.
type TestAssignment struct {
	Percentage *float64 `json:"percentage"`
}

// Completed reports whether the assignment carries a result.
func (a TestAssignment) Completed() bool { return a.Percentage != nil }
