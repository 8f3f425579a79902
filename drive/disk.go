package drive

import (
	"encoding/binary"
	"fmt"
)

const (
	mfmDiskMagic  = "MFM_DISK"
	diskHeaderSize = 256
	bytesPerTrack  = 6400

	idMarkA1    = 0xA1
	idMarkFE    = 0xFE
	dataMarkFB  = 0xFB // normal sector data
	dataMarkF8  = 0xF8 // deleted sector data
	idFieldOverhead = 7 // bytes between the 4-byte ID field and the data mark
	crcSize         = 2
)

// Disk is a parsed MFM-encoded disk image: an in-memory array of raw
// per-track byte streams, decoded on demand by sector lookup rather than
// up front.
type Disk struct {
	Sides        int
	Tracks       int
	GeometryCode uint32

	trackData []byte // sides*tracks*bytesPerTrack, track-major: index = side*Tracks+track
}

// Sector is one decoded sector located within a track's MFM stream.
type Sector struct {
	Track, Side, Number, SizeCode byte
	Deleted                       bool
	Data                          []byte

	trackOffset int // byte offset of Data within its track, for WriteSector
}

// Size returns the sector's byte length, 128 shifted left by SizeCode.
func (s *Sector) Size() int { return 128 << s.SizeCode }

// LoadImage parses an MFM_DISK image, as described by its 256-byte header
// (8-byte magic tag, then little-endian side count, track count and
// geometry code at offsets 8, 12, 16) followed by sides*tracks*6400 bytes
// of raw MFM track data.
func LoadImage(data []byte) (*Disk, error) {
	if len(data) < diskHeaderSize || string(data[:8]) != mfmDiskMagic {
		return nil, fmt.Errorf("drive: not an MFM_DISK image")
	}
	sides := int(binary.LittleEndian.Uint32(data[8:12]))
	tracks := int(binary.LittleEndian.Uint32(data[12:16]))
	geometry := binary.LittleEndian.Uint32(data[16:20])

	want := diskHeaderSize + sides*tracks*bytesPerTrack
	if len(data) < want {
		return nil, fmt.Errorf("drive: MFM_DISK image truncated: have %d bytes, want %d", len(data), want)
	}

	d := &Disk{
		Sides:        sides,
		Tracks:       tracks,
		GeometryCode: geometry,
		trackData:    make([]byte, sides*tracks*bytesPerTrack),
	}
	copy(d.trackData, data[diskHeaderSize:want])
	return d, nil
}

func (d *Disk) trackBytes(track, side int) []byte {
	start := (side*d.Tracks + track) * bytesPerTrack
	return d.trackData[start : start+bytesPerTrack]
}

// FindSector scans the (track, side) MFM stream for the ID field
// identifying sectorNumber, then locates and decodes its data field.
func (d *Disk) FindSector(track, side int, sectorNumber byte) (*Sector, error) {
	if track < 0 || track >= d.Tracks || side < 0 || side >= d.Sides {
		return nil, fmt.Errorf("drive: track %d side %d out of range", track, side)
	}
	raw := d.trackBytes(track, side)

	for i := 0; i+4 < len(raw); i++ {
		if raw[i] != idMarkA1 || raw[i+1] != idMarkA1 || raw[i+2] != idMarkA1 || raw[i+3] != idMarkFE {
			continue
		}
		idPos := i + 4
		if idPos+4 > len(raw) {
			break
		}
		idTrack, idSide, idSector, idSize := raw[idPos], raw[idPos+1], raw[idPos+2], raw[idPos+3]
		if idSector != sectorNumber {
			continue
		}
		dataMarkPos := idPos + 4 + idFieldOverhead
		if dataMarkPos >= len(raw) {
			continue
		}
		deleted := raw[dataMarkPos] == dataMarkF8
		if raw[dataMarkPos] != dataMarkFB && !deleted {
			continue
		}
		dataStart := dataMarkPos + 1
		size := 128 << idSize
		if dataStart+size+crcSize > len(raw) {
			continue
		}
		return &Sector{
			Track: idTrack, Side: idSide, Number: idSector, SizeCode: idSize,
			Deleted:     deleted,
			Data:        raw[dataStart : dataStart+size],
			trackOffset: start(track, side, d.Tracks) + dataStart,
		}, nil
	}
	return nil, fmt.Errorf("drive: sector %d not found on track %d side %d", sectorNumber, track, side)
}

func start(track, side, tracks int) int { return (side*tracks + track) * bytesPerTrack }

// WriteSector overwrites sector's decoded data region in place within the
// disk's track stream. sector must have been returned by FindSector on
// this disk.
func (d *Disk) WriteSector(sector *Sector, data []byte) error {
	if len(data) != len(sector.Data) {
		return fmt.Errorf("drive: write size %d does not match sector size %d", len(data), len(sector.Data))
	}
	copy(d.trackData[sector.trackOffset:sector.trackOffset+len(data)], data)
	return nil
}
