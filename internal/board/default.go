package board

import (
	"embed"
	"fmt"
)

// Adding a clip means dropping a WAV in sounds/ and adding a row below;
// the board is fixed at build time.
//
//go:embed sounds/*.wav
var sounds embed.FS

var builtinEntries = []struct {
	trigger string
	label   string
	file    string
}{
	{"a", "airhorn", "sounds/airhorn.wav"},
	{"b", "badum-tss", "sounds/badum-tss.wav"},
	{"c", "applause", "sounds/applause.wav"},
	{"t", "sad-trombone", "sounds/sad-trombone.wav"},
	{"w", "womp", "sounds/womp.wav"},
}

// Builtin returns the compiled-in board.
func Builtin() (*Registry, error) {
	clips := make([]Clip, 0, len(builtinEntries))
	for _, e := range builtinEntries {
		data, err := sounds.ReadFile(e.file)
		if err != nil {
			return nil, fmt.Errorf("load embedded clip %s: %w", e.file, err)
		}
		clips = append(clips, Clip{Trigger: e.trigger, Label: e.label, Data: data})
	}
	return NewRegistry(clips), nil
}
