// SPDX-License-Identifier: EPL-2.0

// Package audrt provides a real-time audio data plane for Go applications.
//
// The module is built from small layers:
//
//   - container: fixed-capacity queues, stacks and ring buffers that never
//     allocate after construction, safe to touch from an audio callback
//   - engine: the callback dispatch engine that drives blocks of samples
//     between an audio host and a hot-swappable render callback
//   - audio: decoded-side plumbing (sources, resampler, mono mixer, pump)
//   - formats: WAV, AIFF, MP3 and Ogg Vorbis decoders plus a WAV writer
//   - hosts/portaudio: a production engine.Host backed by PortAudio
//
// This root package ties the layers together with two convenience types.
//
// # Playing a Source
//
// Player streams any audio.Source through an engine:
//
//	file, _ := os.Open("audio.wav")
//	src, _ := (wav.Decoder{}).Decode(file)
//
//	player, _ := audrt.NewPlayer(portaudio.NewHost(), src, 256)
//	defer player.Close()
//
//	_ = player.Play(context.Background())
//
// # Recording to WAV
//
// Recorder captures the engine's input stream and writes it out as a
// 16-bit PCM WAV file:
//
//	rec, _ := audrt.NewRecorder(portaudio.NewHost(), 44100, 1, 256)
//	_ = rec.Start()
//	// ... call rec.Drain() periodically ...
//	_ = rec.Stop()
//
//	out, _ := os.Create("take.wav")
//	_ = rec.WriteWAV(out)
//
// Both types are thin compositions of the lower layers; applications that
// need different buffering or lifecycle policies should use the container,
// audio and engine packages directly.
package audrt
