package memory

import (
	"fmt"
	"strings"

	"github.com/pugo/oric8/random"
)

const (
	// Size is the full 64KiB address space seen by the CPU.
	Size = 0x10000

	basicROMBase = 0xC000
	basicROMSize = 0x4000

	diskROMBase = 0xE000
	diskROMSize = 0x2000
)

// Memory is the Oric's address space: flat RAM with two overlayable ROM
// banks. Reads within an active overlay's range return the ROM byte; writes
// always go to RAM, whether or not an overlay currently shadows it.
type Memory struct {
	ram [Size]byte

	basicROM []byte
	diskROM  []byte

	diskROMEnabled bool
}

// New returns a Memory with RAM zeroed and no ROM loaded.
func New() *Memory {
	return &Memory{}
}

// ReadByte returns the byte visible at addr, honouring whichever ROM
// overlay (if any) currently shadows it.
func (m *Memory) ReadByte(addr uint16) byte {
	if m.diskROMEnabled && addr >= diskROMBase {
		return m.diskROM[addr-diskROMBase]
	}
	if len(m.basicROM) > 0 && addr >= basicROMBase {
		return m.basicROM[addr-basicROMBase]
	}
	return m.ram[addr]
}

// ReadWord returns the little-endian word at addr, addr+1.
func (m *Memory) ReadWord(addr uint16) uint16 {
	lo := m.ReadByte(addr)
	hi := m.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteByte stores value in RAM at addr. A ROM overlay covering addr is
// unaffected: the write is invisible until the overlay is disabled.
func (m *Memory) WriteByte(addr uint16, value byte) {
	m.ram[addr] = value
}

// LoadBasicROM installs data as the BASIC ROM overlay, mapped at 0xC000.
func (m *Memory) LoadBasicROM(data []byte) error {
	if len(data) == 0 || len(data) > basicROMSize {
		return fmt.Errorf("memory: basic ROM must be 1..%d bytes, got %d", basicROMSize, len(data))
	}
	rom := make([]byte, basicROMSize)
	copy(rom, data)
	m.basicROM = rom
	return nil
}

// LoadDiskROM installs data as the disk controller's boot ROM overlay,
// mapped at 0xE000 when enabled via SetDiskROMEnabled.
func (m *Memory) LoadDiskROM(data []byte) error {
	if len(data) == 0 || len(data) > diskROMSize {
		return fmt.Errorf("memory: disk ROM must be 1..%d bytes, got %d", diskROMSize, len(data))
	}
	rom := make([]byte, diskROMSize)
	copy(rom, data)
	m.diskROM = rom
	return nil
}

// SetDiskROMEnabled toggles the disk ROM overlay, driven by the FDC glue
// register.
func (m *Memory) SetDiskROMEnabled(enabled bool) {
	m.diskROMEnabled = enabled
}

// DiskROMEnabled reports whether the disk ROM overlay is currently active.
func (m *Memory) DiskROMEnabled() bool {
	return m.diskROMEnabled
}

// Randomize fills RAM with bytes drawn from rng, standing in for the
// unpredictable contents real RAM holds at power-on instead of the zeroed
// state New leaves it in.
func (m *Memory) Randomize(rng *random.Random) {
	src := rng.Source()
	for i := range m.ram {
		m.ram[i] = byte(src.Intn(256))
	}
}

// RawRAM exposes the underlying RAM array for components (the ULA, snapshot
// encoding) that need direct, bulk access rather than per-byte accessors.
func (m *Memory) RawRAM() *[Size]byte {
	return &m.ram
}

// Show renders length bytes starting at pos as a hex/ASCII dump, in the
// style of a monitor's memory inspector.
func (m *Memory) Show(pos, length uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Showing 0x%04X bytes from $%04X\n", length, pos)

	var chars strings.Builder
	for i := uint16(0); i < length; i++ {
		if i%16 == 0 {
			if i > 0 {
				fmt.Fprintf(&b, "    %s\n", chars.String())
				chars.Reset()
			}
			fmt.Fprintf(&b, "[%04X] ", pos+i)
		}
		v := m.ReadByte(pos + i)
		fmt.Fprintf(&b, "%02X ", v)
		if v&0x7f >= 32 {
			chars.WriteByte(v & 0x7f)
			chars.WriteByte(' ')
		} else {
			chars.WriteString("  ")
		}
	}
	fmt.Fprintf(&b, "    %s\n", chars.String())
	return b.String()
}
