package drive

import "fmt"

// MaxTrack is the highest track a drive's head can step to; track 0 is
// the home position a Restore command seeks to.
const MaxTrack = 79

// Drive is one physical floppy drive: a head position and side select
// driven by FDC step commands, with an optionally inserted Disk.
type Drive struct {
	disk *Disk

	track int
	side  int
	motor bool

	writeProtect bool
}

// New returns an empty drive with its head parked at track 0.
func New() *Drive {
	return &Drive{}
}

// Insert mounts disk into the drive. writeProtect marks the media
// read-only regardless of what the image itself allows.
func (d *Drive) Insert(disk *Disk, writeProtect bool) {
	d.disk = disk
	d.writeProtect = writeProtect
}

// Eject removes any inserted disk.
func (d *Drive) Eject() {
	d.disk = nil
}

// Ready reports whether a disk is inserted and the motor is spun up.
// The FDC does not consult it: its NotReady status bit reflects only
// whether a drive is attached.
func (d *Drive) Ready() bool { return d.disk != nil && d.motor }

// SetMotor turns the spindle motor on or off.
func (d *Drive) SetMotor(on bool) { d.motor = on }

// WriteProtected reports whether the inserted media rejects writes.
func (d *Drive) WriteProtected() bool { return d.writeProtect }

// Track returns the current head track, 0-based.
func (d *Drive) Track() int { return d.track }

// AtTrackZero reports whether the head is parked at the home track, the
// condition a Restore command seeks for and a Step command's direction
// flag can never move past.
func (d *Drive) AtTrackZero() bool { return d.track == 0 }

// SetSide selects side 0 or 1 for double-sided media.
func (d *Drive) SetSide(side int) { d.side = side }

// Side returns the currently selected side.
func (d *Drive) Side() int { return d.side }

// Restore seeks the head back to track 0, the Type I RESTORE command.
func (d *Drive) Restore() { d.track = 0 }

// StepIn moves the head one track towards the disk's centre (increasing
// track number), clamped at MaxTrack.
func (d *Drive) StepIn() {
	if d.track < MaxTrack {
		d.track++
	}
}

// StepOut moves the head one track towards the rim (decreasing track
// number), clamped at track 0.
func (d *Drive) StepOut() {
	if d.track > 0 {
		d.track--
	}
}

// SeekTo moves the head directly to the given track, as a Type I SEEK
// command does once the target track is loaded into the data register.
func (d *Drive) SeekTo(track int) {
	switch {
	case track < 0:
		d.track = 0
	case track > MaxTrack:
		d.track = MaxTrack
	default:
		d.track = track
	}
}

// ReadSector locates sectorNumber on the current track and side.
func (d *Drive) ReadSector(sectorNumber byte) (*Sector, error) {
	if d.disk == nil {
		return nil, fmt.Errorf("drive: no disk inserted")
	}
	return d.disk.FindSector(d.track, d.side, sectorNumber)
}

// WriteSector locates sectorNumber on the current track and side and
// overwrites its data, failing if the media is write-protected.
func (d *Drive) WriteSector(sectorNumber byte, data []byte) error {
	if d.disk == nil {
		return fmt.Errorf("drive: no disk inserted")
	}
	if d.writeProtect {
		return fmt.Errorf("drive: write protected")
	}
	sector, err := d.disk.FindSector(d.track, d.side, sectorNumber)
	if err != nil {
		return err
	}
	return d.disk.WriteSector(sector, data)
}

// RawTrack returns the raw MFM byte stream for the current track and
// side, for a Type III READ TRACK command.
func (d *Drive) RawTrack() []byte {
	if d.disk == nil {
		return nil
	}
	return d.disk.trackBytes(d.track, d.side)
}

// ReadAddress returns the ID field of the first sector encountered after
// the head's current position, as a Type III READ ADDRESS command does.
func (d *Drive) ReadAddress() (*Sector, error) {
	if d.disk == nil {
		return nil, fmt.Errorf("drive: no disk inserted")
	}
	raw := d.disk.trackBytes(d.track, d.side)
	for i := 0; i+8 < len(raw); i++ {
		if raw[i] == idMarkA1 && raw[i+1] == idMarkA1 && raw[i+2] == idMarkA1 && raw[i+3] == idMarkFE {
			return &Sector{
				Track:    raw[i+4],
				Side:     raw[i+5],
				Number:   raw[i+6],
				SizeCode: raw[i+7],
			}, nil
		}
	}
	return nil, fmt.Errorf("drive: no sector ID found on track %d side %d", d.track, d.side)
}
