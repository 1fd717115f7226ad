// Package timezone pins every wall-clock calculation to one application location.
//
// The location is read from APP_TIMEZONE when the package is first imported and can
// be replaced with Init. Slot dates are calendar days, so "future slots" means
// date >= Today() in this location.
//
//	today := timezone.Today()
//	t, err := timezone.Parse(time.DateOnly, "2025-11-03")
//	formatted := timezone.Format(createdAt, time.RFC3339)
//
// Use IANA names ("UTC", "Asia/Kolkata", "Europe/London").
package timezone
