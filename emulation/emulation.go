// Package emulation defines the small vocabulary used by collaborators
// (display, monitor, CLI) to control and observe a running machine without
// depending on the machine package directly, avoiding an import cycle.
package emulation

// Mode indicates the broad features the emulation should support.
type Mode int

const (
	ModePlay Mode = iota
	ModeMonitor
)

// State indicates the emulation's current run state. Values are ordered so
// that comparisons like `state >= Running` are meaningful.
type State int

const (
	Initialising State = iota
	Paused
	Stepping
	Running
	Ending
)

// FeatureReq is a request to change some aspect of a running emulation, sent
// from a collaborator (CLI, monitor) to the machine.
type FeatureReq string

// FeatureReqData is the argument associated with a FeatureReq; see the
// commentary on each FeatureReq constant for the expected underlying type.
type FeatureReqData interface{}

const (
	// ReqSetPause pauses or resumes the scheduler loop. bool.
	ReqSetPause FeatureReq = "ReqSetPause"

	// ReqSetWarp enables or disables warp mode. bool.
	ReqSetWarp FeatureReq = "ReqSetWarp"

	// ReqSaveSnapshot / ReqLoadSnapshot take no argument.
	ReqSaveSnapshot FeatureReq = "ReqSaveSnapshot"
	ReqLoadSnapshot FeatureReq = "ReqLoadSnapshot"
)
