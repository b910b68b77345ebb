package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	bellSampleRate = 44100
	bellFreq       = 440
	bellDuration   = 80 * time.Millisecond
)

// speakerBell plays a short sine tone through the default audio device
type speakerBell struct {
	sampleRate beep.SampleRate
}

func newSpeakerBell() (*speakerBell, error) {
	sr := beep.SampleRate(bellSampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &speakerBell{sampleRate: sr}, nil
}

func (b *speakerBell) Ring() {
	sine, err := generators.SineTone(b.sampleRate, bellFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(b.sampleRate.N(bellDuration), sine))
}

func (b *speakerBell) Close() {
	speaker.Close()
}
