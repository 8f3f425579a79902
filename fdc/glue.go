package fdc

import "github.com/pugo/oric8/drive"

// IRQLine is the interrupt line the glue asserts through when the WD1793
// raises an interrupt and interrupts are enabled.
type IRQLine interface {
	IRQAssert()
	IRQRelease()
}

// Glue is the drive-select register sitting alongside the WD1793 on the
// Oric's disk interface card: it selects which of up to four drives is
// live, carries the BASIC/disk ROM overlay and density bits, and gates
// whether the FDC's interrupt actually reaches the CPU.
type Glue struct {
	irq IRQLine

	drives      [4]*drive.Drive
	driveNumber int
	side        int

	interruptsEnabled bool
	basicROMOverlay   bool
	diskROMEnable     bool
	density           bool
	fastClock         bool

	irqPending bool
	drqPending bool
}

// NewGlue returns a glue register with no drives attached.
func NewGlue(irq IRQLine) *Glue {
	return &Glue{irq: irq}
}

// AttachDrive mounts d as drive number n (0-3).
func (g *Glue) AttachDrive(n int, d *drive.Drive) {
	g.drives[n&3] = d
}

// ActiveDrive returns the currently selected drive, or nil if none was
// attached at that slot.
func (g *Glue) ActiveDrive() *drive.Drive {
	return g.drives[g.driveNumber]
}

// DiskROMEnabled reports whether the disk controller's boot ROM should
// currently be mapped into the address space.
func (g *Glue) DiskROMEnabled() bool { return g.diskROMEnable }

// BasicROMOverlay reports whether BASIC ROM should currently overlay the
// disk ROM window.
func (g *Glue) BasicROMOverlay() bool { return g.basicROMOverlay }

// WriteByte handles writes to the glue's two registers.
func (g *Glue) WriteByte(offset uint16, value byte) {
	switch offset {
	case RegGlueControl:
		g.interruptsEnabled = value&0x01 != 0
		g.basicROMOverlay = value&0x02 != 0
		g.density = value&0x04 != 0
		g.fastClock = value&0x08 != 0
		g.side = int((value >> 4) & 0x01)
		g.driveNumber = int((value >> 5) & 0x03)
		g.diskROMEnable = value&0x80 == 0
		if d := g.ActiveDrive(); d != nil {
			d.SetSide(g.side)
		}
		if g.interruptsEnabled && g.irqPending {
			g.irq.IRQAssert()
		}
	case RegGlueDRQ:
		g.ClearDRQ()
	}
}

// ReadByte handles reads of the glue's two registers.
func (g *Glue) ReadByte(offset uint16) byte {
	switch offset {
	case RegGlueControl:
		return g.readIRQStatus()
	case RegGlueDRQ:
		return g.readDRQStatus()
	}
	return 0
}

// readIRQStatus reports interrupt state in bit 7 (the low 7 bits read
// back as 1 regardless): set means no interrupt is pending.
func (g *Glue) readIRQStatus() byte {
	if g.irqPending {
		return 0x7F
	}
	return 0xFF
}

func (g *Glue) readDRQStatus() byte {
	if g.drqPending {
		return 0x7F
	}
	return 0xFF
}

// RequestInterrupt is called by the FDC when its interrupt condition
// fires. It is only forwarded to the CPU's IRQ line if interrupts are
// currently enabled on the glue register.
func (g *Glue) RequestInterrupt() {
	g.irqPending = true
	if g.interruptsEnabled {
		g.irq.IRQAssert()
	}
}

// ClearInterrupt cancels a pending interrupt, called when the FDC's
// status register is read.
func (g *Glue) ClearInterrupt() {
	g.irqPending = false
	g.irq.IRQRelease()
}

// RequestDRQ marks a data request pending.
func (g *Glue) RequestDRQ() { g.drqPending = true }

// ClearDRQ cancels a pending data request.
func (g *Glue) ClearDRQ() { g.drqPending = false }
