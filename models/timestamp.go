package models

// TimestampLayout renders UTC instants with a fixed-width microsecond
// fraction so that lexicographic order on stored timestamps equals
// chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"
