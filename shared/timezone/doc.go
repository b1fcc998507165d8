// Package timezone pins every calendar computation to the hotel's timezone.
//
// Bookings carry plain dates (check_in/check_out) while shift reports carry instants; both are
// compared on the hotel-local calendar:
//
//	from, err := timezone.ParseDate("2024-11-10") // local midnight
//	day := timezone.DateOf(report.Finish)        // "2024-11-12"
//
// The zone is configured via APP_TIMEZONE (IANA names such as "Asia/Almaty") and is resolved when
// the package is imported.
package timezone
