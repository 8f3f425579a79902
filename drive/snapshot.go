package drive

// DiskState is a disk image's gob-encodable content: the decoded
// geometry plus the raw track-major MFM byte stream, preserving any
// writes made to it since it was loaded.
type DiskState struct {
	Sides        int
	Tracks       int
	GeometryCode uint32
	TrackData    []byte
}

// Snapshot captures the disk's current geometry and track contents.
func (d *Disk) Snapshot() DiskState {
	return DiskState{
		Sides: d.Sides, Tracks: d.Tracks, GeometryCode: d.GeometryCode,
		TrackData: append([]byte(nil), d.trackData...),
	}
}

// RestoreDisk rebuilds a Disk from state previously captured by
// Disk.Snapshot.
func RestoreDisk(s DiskState) *Disk {
	return &Disk{
		Sides: s.Sides, Tracks: s.Tracks, GeometryCode: s.GeometryCode,
		trackData: append([]byte(nil), s.TrackData...),
	}
}

// State is a drive's gob-encodable head position and media state.
type State struct {
	HasDisk      bool
	Disk         DiskState
	WriteProtect bool

	Track int
	Side  int
	Motor bool
}

// Snapshot captures the drive's current head position, motor state and,
// if one is inserted, its disk's contents.
func (d *Drive) Snapshot() State {
	s := State{
		WriteProtect: d.writeProtect,
		Track:        d.track,
		Side:         d.side,
		Motor:        d.motor,
	}
	if d.disk != nil {
		s.HasDisk = true
		s.Disk = d.disk.Snapshot()
	}
	return s
}

// RestoreSnapshot puts the drive into the state previously captured by
// Snapshot.
func (d *Drive) RestoreSnapshot(s State) {
	d.writeProtect = s.WriteProtect
	d.track = s.Track
	d.side = s.Side
	d.motor = s.Motor
	d.disk = nil
	if s.HasDisk {
		d.disk = RestoreDisk(s.Disk)
	}
}
