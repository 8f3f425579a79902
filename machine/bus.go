package machine

import (
	"github.com/pugo/oric8/fdc"
	"github.com/pugo/oric8/memory"
	"github.com/pugo/oric8/via"
)

// Address windows for the machine's two memory-mapped peripherals. No
// address decode map survived retrieval alongside the chip sources
// themselves, so these follow the real Oric 1/Atmos hardware layout: the
// 6522 sits at $0300-$030F, and the disk controller's four WD1793
// registers plus its drive-select glue register occupy $0310-$031F.
const (
	viaBase = 0x0300
	viaSize = 0x10
	fdcBase = 0x0310
	fdcSize = 0x10
)

// Bus is the CPU- and ULA-facing address space: RAM and ROM overlays
// through Memory, with the VIA and disk controller windowed in above
// it. It satisfies both cpu.Bus and ula.Bus.
type Bus struct {
	mem  *memory.Memory
	via  *via.VIA
	fdc  *fdc.FDC
	glue *fdc.Glue
}

// NewBus wires the given chips into a single flat address space.
func NewBus(mem *memory.Memory, v *via.VIA, f *fdc.FDC, g *fdc.Glue) *Bus {
	return &Bus{mem: mem, via: v, fdc: f, glue: g}
}

// ReadByte decodes addr and returns the byte visible there.
func (b *Bus) ReadByte(addr uint16) byte {
	switch {
	case addr >= viaBase && addr < viaBase+viaSize:
		return b.via.ReadByte(addr - viaBase)
	case addr >= fdcBase && addr < fdcBase+fdcSize:
		return b.readFDC(addr - fdcBase)
	default:
		return b.mem.ReadByte(addr)
	}
}

// WriteByte decodes addr and stores value there.
func (b *Bus) WriteByte(addr uint16, value byte) {
	switch {
	case addr >= viaBase && addr < viaBase+viaSize:
		b.via.WriteByte(addr-viaBase, value)
	case addr >= fdcBase && addr < fdcBase+fdcSize:
		b.writeFDC(addr-fdcBase, value)
	default:
		b.mem.WriteByte(addr, value)
	}
}

// readFDC dispatches the disk controller's combined register window: the
// WD1793's own four registers below offset 0x4, the glue's two registers
// at 0x4 and 0x8 above that.
func (b *Bus) readFDC(offset uint16) byte {
	switch offset {
	case fdc.RegGlueControl, fdc.RegGlueDRQ:
		return b.glue.ReadByte(offset)
	default:
		return b.fdc.ReadByte(offset)
	}
}

func (b *Bus) writeFDC(offset uint16, value byte) {
	switch offset {
	case fdc.RegGlueControl, fdc.RegGlueDRQ:
		b.glue.WriteByte(offset, value)
		b.mem.SetDiskROMEnabled(b.glue.DiskROMEnabled())
	default:
		b.fdc.WriteByte(offset, value)
	}
}
