package main

import (
	"github.com/pugo/oric8/emulation"
	"github.com/pugo/oric8/machine"
	"github.com/pugo/oric8/snapshot"
)

// controller bridges emulation.FeatureReq requests raised by the display's
// hotkeys to the machine and snapshot packages, which display itself must
// not import directly (snapshot already imports machine, so machine cannot
// import snapshot back without a cycle).
type controller struct {
	m            *machine.Machine
	snapshotFile string
}

func newController(m *machine.Machine, snapshotFile string) *controller {
	return &controller{m: m, snapshotFile: snapshotFile}
}

// SetFeature implements display.FeatureRequester.
func (c *controller) SetFeature(req emulation.FeatureReq, data emulation.FeatureReqData) error {
	switch req {
	case emulation.ReqSetWarp:
		on, _ := data.(bool)
		c.m.SetWarpMode(on)
	case emulation.ReqSaveSnapshot:
		return snapshot.Save(c.snapshotFile, c.m)
	case emulation.ReqLoadSnapshot:
		return snapshot.Load(c.snapshotFile, c.m)
	}
	return nil
}
