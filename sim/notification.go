package sim

// Notification is a timed HUD message. It is removed once Remaining reaches
// zero.
type Notification struct {
	Text      string
	Remaining float64
}
