package testutil

import "testing"

// Given, When and Then name nested subtests as scenario steps:
//
//	Given(t, "a document expiring in 5 days", func(t *testing.T) {
//		When(t, "reminders are computed", func(t *testing.T) {
//			Then(t, "it is escalated to level 2", ...)
//		})
//	})
func Given(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	step(t, "Given", desc, fn)
}

func When(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	step(t, "When", desc, fn)
}

func Then(t *testing.T, desc string, fn func(t *testing.T)) {
	t.Helper()
	step(t, "Then", desc, fn)
}

func step(t *testing.T, keyword, desc string, fn func(t *testing.T)) {
	t.Helper()
	t.Run(keyword+" "+desc, fn)
}
