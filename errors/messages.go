package errors

var messages = map[Errno]string{
	LoadFailure:     "%s",
	ImageFormat:     "%s",
	CommandInvalid:  "%s",
	Overflow:        "%s",
	ChipBusy:        "%s",
	SnapshotFailure: "%s",
	DeviceFailure:   "%s",
}
