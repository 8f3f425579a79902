package loader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/pugo/oric8/errors"
)

// Kind identifies what sort of image a Loader has been pointed at.
type Kind string

const (
	KindUnknown Kind = ""
	KindROM     Kind = "ROM"
	KindTape    Kind = "TAPE"
	KindDisk    Kind = "DISK"
)

// Loader reads a ROM/tape/disk image into memory, either from a local file
// or an http(s) URL, and reports its Kind and content hash.
type Loader struct {
	// Filename, or URL, of the image to load.
	Filename string

	// Kind may be set explicitly; if left as KindUnknown, NewLoader
	// infers it from the file extension.
	Kind Kind

	// Hash is the sha1 of the loaded data, hex encoded. Populated by
	// Load(). If set beforehand, Load() verifies the loaded data matches.
	Hash string

	// Data is the raw bytes of the loaded image.
	Data []byte
}

// NewLoader creates a Loader for filename, inferring Kind from its
// extension unless kind is given explicitly.
func NewLoader(filename string, kind Kind) Loader {
	ld := Loader{Filename: filename, Kind: kind}
	if ld.Kind == KindUnknown {
		ld.Kind = kindFromExtension(filename)
	}
	return ld
}

func kindFromExtension(filename string) Kind {
	switch strings.ToUpper(path.Ext(filename)) {
	case ".ROM", ".BIN":
		return KindROM
	case ".TAP":
		return KindTape
	case ".DSK", ".MFM":
		return KindDisk
	default:
		return KindUnknown
	}
}

// ShortName returns filename with its directory and extension stripped.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true once Load() has successfully populated Data.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load reads the image into Data. Supports plain local files and http(s)
// URLs. A non-empty Hash set before calling Load() is verified against the
// loaded data's hash.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error
	switch scheme {
	case "http", "https":
		ld.Data, err = loadHTTP(ld.Filename)
	case "file", "":
		ld.Data, err = loadFile(ld.Filename)
	default:
		err = errors.New(errors.LoadFailure, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		return errors.New(errors.LoadFailure, "loaded image does not match expected hash")
	}
	ld.Hash = hash

	return nil
}

func loadHTTP(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, errors.New(errors.LoadFailure, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.New(errors.LoadFailure, err.Error())
	}
	return data, nil
}

func loadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.New(errors.LoadFailure, err.Error())
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.New(errors.LoadFailure, err.Error())
	}
	return data, nil
}
