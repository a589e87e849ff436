package feature

// Nominal buffer lengths sent by the analyzer. Updates may carry other
// lengths; the buffers are always replaced wholesale, never spliced.
const (
	WaveformLen = 128
	FFTLen      = 64
)

// Defaults for fields absent from an update.
const (
	DefaultTempoBPM   = 120.0
	DefaultBrightness = 0.5
)

// Vector is one snapshot of the precomputed audio-analysis features.
// Every field always holds a defined value; absent or invalid fields in
// an incoming update resolve to the documented defaults instead.
type Vector struct {
	EnergyLow  float64
	EnergyMid  float64
	EnergyHigh float64

	BeatPulse float64 // instantaneous beat intensity, decays toward 0
	IsBeat    bool    // true only on the update that signaled the beat
	BeatCount int
	BeatPhase float64 // position within the current beat interval [0,1)
	TempoBPM  float64

	Brightness    float64 // hue/warmth bias [0,1]
	Roughness     float64
	SectionEnergy float64
	Amplitude     float64

	Waveform      []float64 // time domain, nominally WaveformLen samples
	FFTMagnitudes []float64 // frequency domain, nominally FFTLen bins
}

// Update is the wire-side partial form of Vector. Pointer fields
// distinguish "absent" from a legitimate zero.
type Update struct {
	EnergyLow  *float64 `json:"energyLow"`
	EnergyMid  *float64 `json:"energyMid"`
	EnergyHigh *float64 `json:"energyHigh"`

	BeatPulse *float64 `json:"beatPulse"`
	IsBeat    *bool    `json:"isBeat"`
	BeatCount *int     `json:"beatCount"`
	BeatPhase *float64 `json:"beatPhase"`
	TempoBPM  *float64 `json:"tempoBpm"`

	Brightness    *float64 `json:"brightness"`
	Roughness     *float64 `json:"roughness"`
	SectionEnergy *float64 `json:"sectionEnergy"`
	Amplitude     *float64 `json:"amplitude"`

	Waveform      []float64 `json:"waveform"`
	FFTMagnitudes []float64 `json:"fftMagnitudes"`
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
