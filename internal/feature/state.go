package feature

import "time"

// Per-tick attenuation applied to the energetic fields once updates stop
// arriving. Keeps the display fading out instead of freezing.
const decayFactor = 0.92

// State holds the latest feature Vector plus its arrival instant. It is a
// plain shared cell: the protocol router writes it, the frame scheduler
// reads it, both on the same event loop, so no locking.
type State struct {
	vec        Vector
	lastUpdate time.Time
}

// NewState returns a State holding an all-default Vector with empty buffers.
func NewState() *State {
	return &State{
		vec: Vector{
			TempoBPM:      DefaultTempoBPM,
			Brightness:    DefaultBrightness,
			Waveform:      make([]float64, WaveformLen),
			FFTMagnitudes: make([]float64, FFTLen),
		},
	}
}

// Vector returns the current snapshot.
func (s *State) Vector() Vector {
	return s.vec
}

// LastUpdate returns the arrival instant of the most recent update.
func (s *State) LastUpdate() time.Time {
	return s.lastUpdate
}

// Apply replaces the vector wholesale from a partial update. Scalar fields
// absent from the update reset to their documented defaults; the waveform
// and FFT buffers persist until an update carries replacements, and are
// then swapped in as whole sequences. Records now as the arrival instant.
func (s *State) Apply(u Update, now time.Time) {
	next := Vector{
		EnergyLow:     orZero(u.EnergyLow),
		EnergyMid:     orZero(u.EnergyMid),
		EnergyHigh:    orZero(u.EnergyHigh),
		BeatPulse:     orZero(u.BeatPulse),
		BeatPhase:     orZero(u.BeatPhase),
		Roughness:     orZero(u.Roughness),
		SectionEnergy: orZero(u.SectionEnergy),
		Amplitude:     orZero(u.Amplitude),
		TempoBPM:      DefaultTempoBPM,
		Brightness:    DefaultBrightness,
		Waveform:      s.vec.Waveform,
		FFTMagnitudes: s.vec.FFTMagnitudes,
	}
	if u.IsBeat != nil {
		next.IsBeat = *u.IsBeat
	}
	if u.BeatCount != nil {
		next.BeatCount = *u.BeatCount
	}
	if u.TempoBPM != nil && *u.TempoBPM > 0 {
		next.TempoBPM = *u.TempoBPM
	}
	if u.Brightness != nil {
		next.Brightness = *u.Brightness
	}
	if u.Waveform != nil {
		next.Waveform = u.Waveform
	}
	if u.FFTMagnitudes != nil {
		next.FFTMagnitudes = u.FFTMagnitudes
	}

	s.vec = next
	s.lastUpdate = now
}

// DecayIfStale attenuates the energetic fields toward zero when no update
// has arrived within threshold, and forces IsBeat off. Reports whether the
// state is currently stale.
func (s *State) DecayIfStale(now time.Time, threshold time.Duration) bool {
	if now.Sub(s.lastUpdate) <= threshold {
		return false
	}
	s.vec.BeatPulse *= decayFactor
	s.vec.Amplitude *= decayFactor
	s.vec.EnergyLow *= decayFactor
	s.vec.EnergyMid *= decayFactor
	s.vec.EnergyHigh *= decayFactor
	s.vec.IsBeat = false
	return true
}
