// Package timezone pins every wall-clock computation to the configured APP_TIMEZONE.
//
// Booking dates and minute-of-day values are always derived through this package
// so that "today" and "now" agree between the web process, the notifier and the
// database rows they compare against.
//
//	today := timezone.Today()              // midnight of the current local day
//	minute := timezone.MinuteOfDay(now)    // 0..1439
//	day, err := timezone.ParseDay("2025-03-14")
package timezone
