package memory

// State is the address space's gob-encodable RAM contents and overlay
// state. The BASIC and disk ROM images themselves are not included:
// they are reloaded from their source files by the collaborator that
// restores a snapshot, the same way the original reattaches ROM images
// rather than embedding them.
type State struct {
	RAM            [Size]byte
	DiskROMEnabled bool
}

// Snapshot captures the current RAM contents and ROM overlay state.
func (m *Memory) Snapshot() State {
	return State{RAM: m.ram, DiskROMEnabled: m.diskROMEnabled}
}

// Restore puts RAM and the disk ROM overlay flag into the state
// previously captured by Snapshot.
func (m *Memory) Restore(s State) {
	m.ram = s.RAM
	m.diskROMEnabled = s.DiskROMEnabled
}
