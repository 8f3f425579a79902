package via

// Register offsets, the 4-bit index a bus address selects.
const (
	RegORB = 0x0
	RegORA = 0x1
	RegDDRB = 0x2
	RegDDRA = 0x3
	RegT1CL = 0x4
	RegT1CH = 0x5
	RegT1LL = 0x6
	RegT1LH = 0x7
	RegT2CL = 0x8
	RegT2CH = 0x9
	RegSR   = 0xA
	RegACR  = 0xB
	RegPCR  = 0xC
	RegIFR  = 0xD
	RegIER  = 0xE
	RegORANoHS = 0xF
)

// Interrupt flag register bits.
const (
	IRQCA2 = 0x01
	IRQCA1 = 0x02
	IRQSR  = 0x04
	IRQCB2 = 0x08
	IRQCB1 = 0x10
	IRQT2  = 0x20
	IRQT1  = 0x40
	IRQAny = 0x80
)

// Auxiliary control register bits/fields.
const (
	acrPALatchEnable = 0x01
	acrPBLatchEnable = 0x02
	acrShiftModeMask = 0x1C
	acrT2PulseCount  = 0x20
	acrT1ControlMask = 0xC0
)

// Peripheral control register fields.
const (
	pcrCA1Mask = 0x01
	pcrCA2Mask = 0x0E
	pcrCB1Mask = 0x10
	pcrCB2Mask = 0xE0
)
