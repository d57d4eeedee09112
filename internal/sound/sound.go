// Package sound plays the short click heard when the bubble snaps into place.
package sound

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate   = 44100
	channelCount = 2

	clickFreq     = 1800.0
	clickDuration = 25 * time.Millisecond
	clickDecay    = 180.0
	clickGain     = 0.35
)

// Clicker plays the snap click.
type Clicker interface {
	Click()
}

// Nop is a silent Clicker.
type Nop struct{}

func (Nop) Click() {}

// Player plays the click through oto.
type Player struct {
	ctx     *oto.Context
	pcm     []byte
	mu      sync.Mutex
	playing []*oto.Player
}

// New opens the audio device and prepares the click.
func New() (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready
	return &Player{ctx: ctx, pcm: ClickPCM()}, nil
}

// Click starts the click and returns immediately.
func (p *Player) Click() {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Drop players that have finished so they can be collected.
	live := p.playing[:0]
	for _, pl := range p.playing {
		if pl.IsPlaying() {
			live = append(live, pl)
		} else {
			pl.Close()
		}
	}
	p.playing = live

	pl := p.ctx.NewPlayer(bytes.NewReader(p.pcm))
	pl.Play()
	p.playing = append(p.playing, pl)
}

// ClickPCM synthesizes the click as interleaved signed 16-bit little endian
// stereo: a sine burst with an exponential decay.
func ClickPCM() []byte {
	frames := int(float64(sampleRate) * clickDuration.Seconds())
	buf := make([]byte, frames*channelCount*2)
	for i := 0; i < frames; i++ {
		t := float64(i) / sampleRate
		v := math.Sin(2*math.Pi*clickFreq*t) * math.Exp(-clickDecay*t) * clickGain
		s := int16(v * math.MaxInt16)
		for c := 0; c < channelCount; c++ {
			binary.LittleEndian.PutUint16(buf[(i*channelCount+c)*2:], uint16(s))
		}
	}
	return buf
}
