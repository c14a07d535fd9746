package burgerlib

import (
	"os"
	"strings"
	"testing"
	"time"
)

// testAdapter is a minimal PlatformAdapter rooted at an arbitrary host
// directory (normally a t.TempDir()), following the same native-path
// translation rules as platform/posix.Adapter. It lives here, inside the
// root package's own tests, rather than importing platform/posix: that
// package imports burgerlib, so importing it back from a burgerlib test
// would be a cycle.
type testAdapter struct {
	FeaturesFn

	root  string
	label string
}

func newTestAdapter(root string) *testAdapter {
	ta := &testAdapter{root: root, label: "Boot"}
	ta.SetFeatures(FeatLongFilenames | FeatVolumeLabels)

	return ta
}

func (ta *testAdapter) OSType() OSType { return OsLinux }

func (ta *testAdapter) GetNative(fn *Filename) (string, ErrorCode) {
	segs := Segments(fn.String())
	if len(segs) == 0 {
		return ta.root, Ok
	}

	if segs[0] != ta.label {
		return "", ErrVolumeNotFound
	}

	rest := strings.Join(segs[1:], "/")
	if rest == "" {
		return ta.root, Ok
	}

	return ta.root + "/" + rest, Ok
}

func (ta *testAdapter) SetNative(native string) (string, ErrorCode) {
	rel := strings.TrimPrefix(native, ta.root)
	rel = strings.Trim(rel, "/")

	var b strings.Builder

	b.WriteByte(':')
	b.WriteString(ta.label)
	b.WriteByte(':')

	if rel != "" {
		for _, part := range strings.Split(rel, "/") {
			b.WriteString(part)
			b.WriteByte(':')
		}
	}

	return b.String(), Ok
}

func (ta *testAdapter) VolumeName(index int) (string, ErrorCode) {
	if index != 0 {
		return "", ErrVolumeNotFound
	}

	return ":" + ta.label + ":", Ok
}

func (ta *testAdapter) VolumeNumber(name string) (int, ErrorCode) {
	if strings.Trim(name, ":") != ta.label {
		return 0, ErrVolumeNotFound
	}

	return 0, Ok
}

func (ta *testAdapter) Stat(native string) (DirEntry, ErrorCode) {
	info, err := os.Stat(native)
	if err != nil {
		if os.IsNotExist(err) {
			return DirEntry{}, ErrFileNotFound
		}

		return DirEntry{}, ErrIO
	}

	mtime := TimeDate{Seconds: info.ModTime().Unix()}

	return DirEntry{
		Name:     info.Name(),
		Size:     info.Size(),
		Created:  mtime,
		Modified: mtime,
		IsDir:    info.IsDir(),
	}, Ok
}

func (ta *testAdapter) SetModificationTime(native string, mtime TimeDate) ErrorCode {
	t := time.Unix(mtime.Seconds, 0)
	if err := os.Chtimes(native, t, t); err != nil {
		return ErrIO
	}

	return Ok
}

func (ta *testAdapter) Mkdir(native string) ErrorCode {
	const dirPerm = 0o755

	err := os.Mkdir(native, dirPerm)
	if err == nil {
		return Ok
	}

	if os.IsExist(err) {
		return Ok
	}

	return ErrIO
}

func (ta *testAdapter) Remove(native string) ErrorCode {
	if err := os.Remove(native); err != nil {
		return ErrIO
	}

	return Ok
}

func (ta *testAdapter) Rename(oldNative, newNative string) ErrorCode {
	if err := os.Rename(oldNative, newNative); err != nil {
		return ErrIO
	}

	return Ok
}

func (ta *testAdapter) ReadDirNames(native string) ([]string, ErrorCode) {
	entries, err := os.ReadDir(native)
	if err != nil {
		return nil, ErrIO
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}

	return names, Ok
}

func (ta *testAdapter) CreatorAndFileType(string) (creator, fileType uint32, err ErrorCode) {
	return 0, 0, ErrNotSupportedOnThisPlatform
}

func (ta *testAdapter) SetCreatorAndFileType(string, uint32, uint32) ErrorCode {
	return ErrNotSupportedOnThisPlatform
}

func (ta *testAdapter) SystemWorkingDirectory() (string, ErrorCode) {
	return ":" + ta.label + ":", Ok
}

func (ta *testAdapter) ApplicationDirectory() (string, ErrorCode) {
	return ":" + ta.label + ":", Ok
}

func (ta *testAdapter) BootVolume() (string, ErrorCode) {
	return ":" + ta.label + ":", Ok
}

func (ta *testAdapter) SystemPrefsDirectory() (string, ErrorCode) {
	return ":" + ta.label + ":prefs:", Ok
}

func (ta *testAdapter) UserPrefsDirectory() (string, ErrorCode) {
	return ":" + ta.label + ":user:", Ok
}

// newTestConfig returns an isolated Config rooted at a fresh t.TempDir(),
// with default prefixes initialized, so tests never share state through
// the package-level Cfg.
func newTestConfig(t testing.TB) (*Config, string) {
	t.Helper()

	root := t.TempDir()
	cfg := NewConfig()
	adapter := newTestAdapter(root)
	cfg.SetPlatformAdapter(adapter)

	if ec := cfg.Prefixes().InitDefaults(adapter); ec != Ok {
		t.Fatalf("InitDefaults: %v", ec)
	}

	return cfg, root
}
