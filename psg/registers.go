package psg

// Register offsets into the PSG's 15 addressable registers.
const (
	RegChAPeriodLow = 0
	RegChAPeriodHigh = 1
	RegChBPeriodLow = 2
	RegChBPeriodHigh = 3
	RegChCPeriodLow = 4
	RegChCPeriodHigh = 5
	RegNoisePeriod   = 6
	RegEnable        = 7
	RegChAAmplitude  = 8
	RegChBAmplitude  = 9
	RegChCAmplitude  = 10
	RegEnvDurationLow  = 11
	RegEnvDurationHigh = 12
	RegEnvShape        = 13
	RegIOPortA         = 14

	NumRegisters = 15
)

const (
	cyclesPerSecond = 998400
	audioFrequency  = 44100
	cycleShift      = 12
)

// voltab is the AY-3-8912 16-step logarithmic volume table, as used by
// Oricutron and reused here unchanged.
var voltab = [16]uint16{
	0, 128, 207, 309, 480, 809, 1231, 2277,
	2586, 4469, 6170, 7610, 9711, 11817, 14100, 16383,
}

// envGoto marks the entry in an envelope shape table where the shape
// counter should wrap (ANDed with 0x7f to find the wrap target), rather
// than continuing to increment.
const envGoto = 0x80

// envelopeShapes are the 16 canonical AY-3-8912 envelope cycle tables,
// selected by the low 4 bits of the ENV_SHAPE register.
var envelopeShapes = [16][]byte{
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, envGoto | 0xf},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, envGoto | 0xf},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, envGoto | 0xf},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, envGoto | 0xf},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, envGoto | 0x10},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, envGoto | 0x10},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, envGoto | 0x10},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, envGoto | 0x10},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, envGoto | 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, envGoto | 0xf},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
		0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, envGoto | 0},
	{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 15, envGoto | 0x10},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, envGoto | 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, envGoto | 0xf},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
		15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, envGoto | 0},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0, envGoto | 0x10},
}
