package parameter

import "time"

// Cue synthesis
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = 100 * time.Millisecond

	// CuePlacementFreq is the root of the two-tone placement chime
	CuePlacementFreq     = 660.0
	CuePlacementInterval = 1.5 // Second tone ratio (perfect fifth)
	CuePlacementDuration = 90 * time.Millisecond

	CueBoundsFreq     = 220.0
	CueBoundsDuration = 30 * time.Millisecond

	// CueVolume is beep effects.Volume exponent (base 2), negative attenuates
	CueVolume = -2.0
)
