// Package timezone keeps the application clock.
//
// Instants (created_at, expires_at, alert times) are rendered in the zone named by
// APP_TIMEZONE, which is loaded when the package is imported:
//
//	timezone.Now()
//	timezone.Format(approval.ExpiresAt, "02 Jan 2006 15:04")
//
// Pricing days are calendar dates and are handled as UTC midnights, independent of the
// application zone:
//
//	today := timezone.Today()
//	day, err := timezone.ParseDate("2026-10-24")
package timezone
