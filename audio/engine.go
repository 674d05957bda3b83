package audio

import (
	"bytes"
	"log"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Engine plays the game's sound cues and background music through a single
// ebiten audio context. Every method is safe on a nil or partially
// constructed engine: a cue that cannot play is dropped, never surfaced to
// the simulation.
type Engine struct {
	ctx *eaudio.Context

	laser     []byte
	explosion []byte
	upgrade   []byte

	music   *eaudio.Player
	started bool
}

// NewEngine synthesizes all cues and prepares the music loop. Construction
// problems degrade to a silent engine.
func NewEngine() *Engine {
	e := &Engine{
		ctx:       eaudio.NewContext(SampleRate),
		laser:     laserPCM(),
		explosion: explosionPCM(),
		upgrade:   upgradePCM(),
	}

	loopSrc := musicPCM()
	loop := eaudio.NewInfiniteLoop(bytes.NewReader(loopSrc), int64(len(loopSrc)))
	player, err := e.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("audio: music player: %v", err)
	} else {
		player.SetVolume(0.3)
		e.music = player
	}
	return e
}

func (e *Engine) PlayLaser() { e.play(e.laser) }

func (e *Engine) PlayExplosion() { e.play(e.explosion) }

func (e *Engine) PlayUpgrade() { e.play(e.upgrade) }

func (e *Engine) play(pcm []byte) {
	if e == nil || e.ctx == nil || len(pcm) == 0 {
		return
	}
	p := e.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(0.7)
	p.Play()
}

// PlayMusic starts the loop from the beginning.
func (e *Engine) PlayMusic() {
	if e == nil || e.music == nil {
		return
	}
	if err := e.music.Rewind(); err != nil {
		log.Printf("audio: rewind music: %v", err)
	}
	e.music.Play()
	e.started = true
}

// StopMusic pauses the loop.
func (e *Engine) StopMusic() {
	if e == nil || e.music == nil {
		return
	}
	e.music.Pause()
	e.started = false
}

// Update restarts the music if it was started but stopped playing, mirroring
// stream housekeeping for file-backed music.
func (e *Engine) Update() {
	if e == nil || e.music == nil || !e.started {
		return
	}
	if !e.music.IsPlaying() {
		e.music.Play()
	}
}
