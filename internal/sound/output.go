package sound

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// output is an audio sink for mono 16-bit PCM.
type output interface {
	// Play starts playback and returns a channel closed once it finishes.
	Play(pcm []byte) (<-chan struct{}, error)
}

// openOutput opens the system audio device. Replaced in tests.
var openOutput = openOto

// shared is the process-wide audio device, opened on first use and never
// closed. The sample rate of the first caller wins.
var shared struct {
	once sync.Once
	out  output
	err  error
}

func sharedOutput(sampleRate int) (output, error) {
	shared.once.Do(func() {
		shared.out, shared.err = openOutput(sampleRate)
	})
	return shared.out, shared.err
}

// otoOutput plays through an oto context.
type otoOutput struct {
	ctx *oto.Context
}

const drainPoll = 10 * time.Millisecond

func openOto(sampleRate int) (output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready
	return &otoOutput{ctx: ctx}, nil
}

func (o *otoOutput) Play(pcm []byte) (<-chan struct{}, error) {
	p := o.ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()
	if err := p.Err(); err != nil {
		_ = p.Close()
		return nil, fmt.Errorf("start playback: %w", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for p.IsPlaying() {
			time.Sleep(drainPoll)
		}
		_ = p.Close()
	}()
	return done, nil
}
