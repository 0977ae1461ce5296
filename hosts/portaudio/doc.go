// SPDX-License-Identifier: EPL-2.0

//go:build cgo

// Package portaudio provides the production engine.Host over a real audio
// device, using github.com/gordonklaus/portaudio in callback mode.
//
// The PortAudio stream callback is the hardware-triggered context: it runs
// on a high-priority audio thread at the block rate and forwards every
// block to the engine's render function. The usual real-time rules apply to
// whatever callback the engine dispatches to.
//
//	host := portaudio.NewHost()
//	e, err := engine.New(host, engine.Config{...})
//	...
//	defer e.Close()
package portaudio
