package sim

// Audio receives fire-and-forget sound triggers from the simulation. Triggers
// never fail into the simulation; a collaborator that cannot play a cue drops
// it silently.
type Audio interface {
	PlayLaser()
	PlayExplosion()
	PlayUpgrade()

	PlayMusic()
	StopMusic()
	// Update runs per-frame stream housekeeping.
	Update()
}

// NopAudio discards every cue. Used in tests and when running muted.
type NopAudio struct{}

func (NopAudio) PlayLaser()     {}
func (NopAudio) PlayExplosion() {}
func (NopAudio) PlayUpgrade()   {}
func (NopAudio) PlayMusic()     {}
func (NopAudio) StopMusic()     {}
func (NopAudio) Update()        {}
