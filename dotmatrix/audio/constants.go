package audio

// Timing constants
// Reference: https://gbdev.io/pandocs/Audio_details.html
const (
	// cyclesPerStep is the number of CPU cycles per frame sequencer tick.
	// The frame sequencer runs at 512 Hz: 4194304 Hz / 512 Hz = 8192 t-cycles
	cyclesPerStep = 8192

	// cyclesPerSample is the interval of the per-channel sample tap.
	// One sample every 95 t-cycles lands at 4194304/95 ~ 44.1 kHz, which
	// fills one 735-sample buffer per video frame.
	cyclesPerSample = 95
)

// Channel constants
const (
	// waveRAMSize is the size of wave pattern RAM in bytes (16 bytes = 32 nibbles)
	waveRAMSize = 16
)
