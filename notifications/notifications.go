package notifications

// Notice describes an event that changes how the emulation should be
// presented, without being part of the synchronized chip state itself.
type Notice string

const (
	// NotifyTapeMotorOn/Off is raised when the VIA's PB6 tape-motor line
	// changes, so the status bar can show a "loading" indicator.
	NotifyTapeMotorOn  Notice = "NotifyTapeMotorOn"
	NotifyTapeMotorOff Notice = "NotifyTapeMotorOff"

	// NotifyDiskChanged is raised when a drive's loaded image is swapped.
	NotifyDiskChanged Notice = "NotifyDiskChanged"

	// NotifyWarpModeOn/Off mirrors the scheduler's warp flag.
	NotifyWarpModeOn  Notice = "NotifyWarpModeOn"
	NotifyWarpModeOff Notice = "NotifyWarpModeOff"

	// NotifySnapshotSaved/Loaded is raised by the snapshot package.
	NotifySnapshotSaved  Notice = "NotifySnapshotSaved"
	NotifySnapshotLoaded Notice = "NotifySnapshotLoaded"
)

// Notify is implemented by anything that wants to observe machine-wide
// notices, typically a status-bar collaborator.
type Notify interface {
	Notify(notice Notice) error
}
