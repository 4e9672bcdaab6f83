package sound

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Config controls audio feedback.
type Config struct {
	// Mute disables all sound; the audio device is never opened.
	Mute bool
	// Volume scales every effect, in [0, 1].
	Volume float64
	// SampleRate of the synthesized PCM in Hz.
	SampleRate int
}

// DefaultConfig returns full volume at DefaultSampleRate.
func DefaultConfig() Config {
	return Config{
		Volume:     1.0,
		SampleRate: DefaultSampleRate,
	}
}

// Player synthesizes and plays feedback tones. It satisfies
// quiz.ToneEmitter: every trigger is fire-and-forget and failures are
// logged and swallowed.
type Player struct {
	cfg  Config
	log  *zap.Logger
	open func(sampleRate int) (output, error)
}

// NewPlayer creates a Player backed by the shared audio device.
func NewPlayer(cfg Config, log *zap.Logger) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		cfg:  cfg,
		log:  log.Named("sound"),
		open: sharedOutput,
	}
}

// Selection plays the pop.
func (p *Player) Selection() { p.emit(TonePop) }

// Transition plays the whoosh.
func (p *Player) Transition() { p.emit(ToneWhoosh) }

// Completion plays the chime.
func (p *Player) Completion() { p.emit(ToneChime) }

func (p *Player) emit(t Tone) {
	if p.cfg.Mute {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.log.Debug("tone playback panicked", zap.Stringer("tone", t), zap.Any("panic", r))
			}
		}()
		if _, err := p.start(t); err != nil {
			p.log.Debug("tone playback failed", zap.Stringer("tone", t), zap.Error(err))
		}
	}()
}

// PlayAndWait plays t and blocks until it finishes or ctx is done.
// Unlike the trigger methods it reports failures.
func (p *Player) PlayAndWait(ctx context.Context, t Tone) error {
	if p.cfg.Mute {
		return nil
	}
	done, err := p.start(t)
	if err != nil {
		return err
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Player) start(t Tone) (<-chan struct{}, error) {
	out, err := p.open(p.cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	samples := Synthesize(t, p.cfg.SampleRate, nil)
	if samples == nil {
		return nil, fmt.Errorf("no synthesis for %s", t)
	}
	return out.Play(EncodePCM16(samples, p.cfg.Volume))
}
