package main

import "github.com/hajimehoshi/ebiten/v2/audio"

const sampleRate = 44100

// audioContext returns the process-wide audio context, creating it on first
// use. ebiten allows only one.
func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}
