package posix

import (
	"os"
	"testing"

	"github.com/Olde-Skuul/burgerlib-sub014"
)

var _ burgerlib.PlatformAdapter = (*Adapter)(nil)

func TestNewDefaultsBootLabel(t *testing.T) {
	a := New(burgerlib.OsLinux, "")

	name, ec := a.VolumeName(0)
	if ec != burgerlib.Ok || name != ":Boot:" {
		t.Errorf("VolumeName(0) = %q, %v, want :Boot:, Ok", name, ec)
	}
}

func TestDarwinGetsResourceForkFeature(t *testing.T) {
	a := New(burgerlib.OsDarwin, "Boot")

	if !a.HasFeature(burgerlib.FeatResourceFork) {
		t.Error("a Darwin adapter should report FeatResourceFork")
	}

	linux := New(burgerlib.OsLinux, "Boot")
	if linux.HasFeature(burgerlib.FeatResourceFork) {
		t.Error("a Linux adapter should not report FeatResourceFork")
	}
}

func TestGetNativeSetNativeRoundTrip(t *testing.T) {
	a := New(burgerlib.OsLinux, "Boot")

	cfg := burgerlib.NewConfig()
	cfg.SetPlatformAdapter(a)

	fn := burgerlib.NewFilename(cfg, ":Boot:dir:file.txt:")

	native, ec := fn.GetNative()
	if ec != burgerlib.Ok {
		t.Fatalf("GetNative: %v", ec)
	}

	if native != "/dir/file.txt" {
		t.Errorf("GetNative() = %q, want %q", native, "/dir/file.txt")
	}

	burger, ec := a.SetNative(native)
	if ec != burgerlib.Ok {
		t.Fatalf("SetNative: %v", ec)
	}

	if burger != ":Boot:dir:file.txt:" {
		t.Errorf("SetNative() = %q, want %q", burger, ":Boot:dir:file.txt:")
	}
}

func TestGetNativeUnknownVolume(t *testing.T) {
	a := New(burgerlib.OsLinux, "Boot")

	cfg := burgerlib.NewConfig()
	cfg.SetPlatformAdapter(a)

	fn := burgerlib.NewFilename(cfg, ":Other:file.txt:")

	if _, ec := fn.GetNative(); ec != burgerlib.ErrVolumeNotFound {
		t.Errorf("GetNative() on an unknown volume = %v, want ErrVolumeNotFound", ec)
	}
}

func TestStatMkdirRemoveRoundTrip(t *testing.T) {
	a := New(burgerlib.OsLinux, "Boot")
	root := t.TempDir()

	dir := root + "/sub"
	if ec := a.Mkdir(dir); ec != burgerlib.Ok {
		t.Fatalf("Mkdir: %v", ec)
	}

	// Re-creating an existing directory must still report Ok.
	if ec := a.Mkdir(dir); ec != burgerlib.Ok {
		t.Fatalf("Mkdir (existing): %v", ec)
	}

	entry, ec := a.Stat(dir)
	if ec != burgerlib.Ok || !entry.IsDir {
		t.Fatalf("Stat(%q) = %+v, %v, want IsDir=true, Ok", dir, entry, ec)
	}

	if ec := a.Remove(dir); ec != burgerlib.Ok {
		t.Fatalf("Remove: %v", ec)
	}

	if _, ec := a.Stat(dir); ec != burgerlib.ErrFileNotFound {
		t.Errorf("Stat after Remove = %v, want ErrFileNotFound", ec)
	}
}

func TestCreatorAndFileTypeUnsupported(t *testing.T) {
	a := New(burgerlib.OsDarwin, "Boot")

	if _, _, ec := a.CreatorAndFileType("/anything"); ec != burgerlib.ErrNotSupportedOnThisPlatform {
		t.Errorf("CreatorAndFileType = %v, want ErrNotSupportedOnThisPlatform", ec)
	}
}

func TestSetModificationTime(t *testing.T) {
	a := New(burgerlib.OsLinux, "Boot")
	root := t.TempDir()

	path := root + "/f.txt"
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	const wantSeconds = 1_000_000_000

	if ec := a.SetModificationTime(path, burgerlib.TimeDate{Seconds: wantSeconds}); ec != burgerlib.Ok {
		t.Fatalf("SetModificationTime: %v", ec)
	}

	entry, ec := a.Stat(path)
	if ec != burgerlib.Ok {
		t.Fatalf("Stat: %v", ec)
	}

	if entry.Modified.Seconds != wantSeconds {
		t.Errorf("Modified.Seconds = %d, want %d", entry.Modified.Seconds, wantSeconds)
	}
}
