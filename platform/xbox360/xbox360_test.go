package xbox360

import (
	"os"
	"testing"

	"github.com/Olde-Skuul/burgerlib-sub014"
)

var _ burgerlib.PlatformAdapter = (*Adapter)(nil)

func TestNewDefaultsToGameDevice(t *testing.T) {
	a := New(nil)

	name, ec := a.VolumeName(0)
	if ec != burgerlib.Ok || name != ":D:" {
		t.Errorf("VolumeName(0) = %q, %v, want :D:, Ok", name, ec)
	}
}

func TestGetNativeRejectsDeviceNumber(t *testing.T) {
	a := New([]string{"D", "E"})

	cfg := burgerlib.NewConfig()
	cfg.SetPlatformAdapter(a)

	fn := burgerlib.NewFilename(cfg, ".D0:save.dat:")

	if _, ec := fn.GetNative(); ec != burgerlib.ErrNotSupportedOnThisPlatform {
		t.Errorf("GetNative on a device-numbered path = %v, want ErrNotSupportedOnThisPlatform", ec)
	}
}

func TestGetNativeKnownDevice(t *testing.T) {
	a := New([]string{"D", "E"})

	cfg := burgerlib.NewConfig()
	cfg.SetPlatformAdapter(a)

	fn := burgerlib.NewFilename(cfg, ":E:save:game.dat:")

	native, ec := fn.GetNative()
	if ec != burgerlib.Ok {
		t.Fatalf("GetNative: %v", ec)
	}

	if want := `E:\save\game.dat`; native != want {
		t.Errorf("GetNative() = %q, want %q", native, want)
	}
}

func TestGetNativeUnknownDevice(t *testing.T) {
	a := New([]string{"D"})

	cfg := burgerlib.NewConfig()
	cfg.SetPlatformAdapter(a)

	fn := burgerlib.NewFilename(cfg, ":F:save.dat:")

	if _, ec := fn.GetNative(); ec != burgerlib.ErrVolumeNotFound {
		t.Errorf("GetNative on an unknown device = %v, want ErrVolumeNotFound", ec)
	}
}

func TestSetNativeRoundTrip(t *testing.T) {
	a := New([]string{"D", "E"})

	burger, ec := a.SetNative(`E:\save\game.dat`)
	if ec != burgerlib.Ok {
		t.Fatalf("SetNative: %v", ec)
	}

	if want := ":E:save:game.dat:"; burger != want {
		t.Errorf("SetNative() = %q, want %q", burger, want)
	}
}

func TestSetNativeMalformedFallsBackToBootDevice(t *testing.T) {
	a := New([]string{"D"})

	burger, ec := a.SetNative("save.dat")
	if ec != burgerlib.Ok {
		t.Fatalf("SetNative: %v", ec)
	}

	if want := ":D:save.dat:"; burger != want {
		t.Errorf("SetNative() = %q, want %q", burger, want)
	}
}

func TestVolumeNameAndNumber(t *testing.T) {
	a := New([]string{"D", "E"})

	if _, ec := a.VolumeName(5); ec != burgerlib.ErrVolumeNotFound {
		t.Errorf("VolumeName(out of range) = %v, want ErrVolumeNotFound", ec)
	}

	idx, ec := a.VolumeNumber(":E:")
	if ec != burgerlib.Ok || idx != 1 {
		t.Errorf("VolumeNumber(:E:) = %d, %v, want 1, Ok", idx, ec)
	}

	if _, ec := a.VolumeNumber(":Z:"); ec != burgerlib.ErrVolumeNotFound {
		t.Errorf("VolumeNumber(unknown) = %v, want ErrVolumeNotFound", ec)
	}
}

// withTempWorkingDir chdirs into a fresh temp directory for the duration of
// the test, since nativeToHostPath maps device paths onto directories
// relative to the current directory.
func withTempWorkingDir(t *testing.T) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}

	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})
}

func TestStatMkdirRemoveRoundTrip(t *testing.T) {
	withTempWorkingDir(t)

	a := New([]string{"D"})

	if ec := a.Mkdir(`D:\`); ec != burgerlib.Ok {
		t.Fatalf("Mkdir(root): %v", ec)
	}

	if ec := a.Mkdir(`D:\save`); ec != burgerlib.Ok {
		t.Fatalf("Mkdir: %v", ec)
	}

	entry, ec := a.Stat(`D:\save`)
	if ec != burgerlib.Ok || !entry.IsDir {
		t.Fatalf("Stat = %+v, %v, want IsDir=true, Ok", entry, ec)
	}

	if ec := a.Remove(`D:\save`); ec != burgerlib.Ok {
		t.Fatalf("Remove: %v", ec)
	}

	if _, ec := a.Stat(`D:\save`); ec != burgerlib.ErrFileNotFound {
		t.Errorf("Stat after Remove = %v, want ErrFileNotFound", ec)
	}
}

func TestSetModificationTime(t *testing.T) {
	withTempWorkingDir(t)

	a := New([]string{"D"})

	if ec := a.Mkdir(`D:\`); ec != burgerlib.Ok {
		t.Fatalf("Mkdir(root): %v", ec)
	}

	if ec := a.Mkdir(`D:\save`); ec != burgerlib.Ok {
		t.Fatalf("Mkdir: %v", ec)
	}

	const wantSeconds = 1_000_000_000

	if ec := a.SetModificationTime(`D:\save`, burgerlib.TimeDate{Seconds: wantSeconds}); ec != burgerlib.Ok {
		t.Fatalf("SetModificationTime: %v", ec)
	}

	entry, ec := a.Stat(`D:\save`)
	if ec != burgerlib.Ok {
		t.Fatalf("Stat: %v", ec)
	}

	if entry.Modified.Seconds != wantSeconds {
		t.Errorf("Modified.Seconds = %d, want %d", entry.Modified.Seconds, wantSeconds)
	}
}

func TestSystemPrefsAndUserPrefsUnsupported(t *testing.T) {
	a := New([]string{"D"})

	if _, ec := a.SystemPrefsDirectory(); ec != burgerlib.ErrNotSupportedOnThisPlatform {
		t.Errorf("SystemPrefsDirectory = %v, want ErrNotSupportedOnThisPlatform", ec)
	}

	if _, ec := a.UserPrefsDirectory(); ec != burgerlib.ErrNotSupportedOnThisPlatform {
		t.Errorf("UserPrefsDirectory = %v, want ErrNotSupportedOnThisPlatform", ec)
	}
}

func TestBootAndApplicationDirectory(t *testing.T) {
	a := New([]string{"D"})

	if dir, ec := a.BootVolume(); ec != burgerlib.Ok || dir != ":D:" {
		t.Errorf("BootVolume() = %q, %v, want :D:, Ok", dir, ec)
	}

	if dir, ec := a.ApplicationDirectory(); ec != burgerlib.Ok || dir != ":D:" {
		t.Errorf("ApplicationDirectory() = %q, %v, want :D:, Ok", dir, ec)
	}
}
