package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// SampleRate is the fixed rate for every synthesized cue.
const SampleRate = 44100

// The game ships no sound files; every cue is synthesized at startup into
// raw 16-bit stereo PCM that ebiten's audio context plays directly.

// laserPCM is a short downward square sweep.
func laserPCM() []byte {
	const dur = 0.15
	return renderPCM(dur, func(t, u float64) float64 {
		freq := 880 - 660*u
		return square(t*freq) * (1 - u) * 0.5
	})
}

// explosionPCM is a decaying noise burst. The noise source is seeded so the
// cue sounds identical every run.
func explosionPCM() []byte {
	const dur = 0.4
	rng := rand.New(rand.NewSource(7))
	return renderPCM(dur, func(t, u float64) float64 {
		decay := math.Pow(1-u, 2)
		return (rng.Float64()*2 - 1) * decay * 0.6
	})
}

// upgradePCM is a rising three-note arpeggio.
func upgradePCM() []byte {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	const noteDur = 0.09
	dur := noteDur * float64(len(notes))
	return renderPCM(dur, func(t, u float64) float64 {
		idx := int(t / noteDur)
		if idx >= len(notes) {
			idx = len(notes) - 1
		}
		local := (t - float64(idx)*noteDur) / noteDur
		return math.Sin(2*math.Pi*notes[idx]*t) * (1 - local) * 0.4
	})
}

// musicPCM is a two-second bass loop fed to an infinite loop stream.
func musicPCM() []byte {
	notes := []float64{110, 110, 130.81, 98} // A2 A2 C3 G2
	const noteDur = 0.5
	dur := noteDur * float64(len(notes))
	return renderPCM(dur, func(t, u float64) float64 {
		idx := int(t/noteDur) % len(notes)
		local := math.Mod(t, noteDur) / noteDur
		env := 1.0
		if local > 0.8 {
			env = (1 - local) / 0.2
		}
		return square(t*notes[idx]) * env * 0.15
	})
}

func square(phase float64) float64 {
	if math.Mod(phase, 1) < 0.5 {
		return 1
	}
	return -1
}

// renderPCM samples gen over dur seconds into 16-bit little-endian stereo.
// gen receives the absolute time t and normalized progress u in [0,1).
func renderPCM(dur float64, gen func(t, u float64) float64) []byte {
	n := int(dur * SampleRate)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		u := float64(i) / float64(n)
		v := gen(t, u)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}
