package burgerlib

import "testing"

func TestFileSetModificationTimeRoundTrip(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)
	if ec := f.Open(*NewFilename(cfg, ":Boot:touched.bin:"), WriteOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	defer f.Close()

	const wantSeconds = 1_000_000_000

	if ec := f.SetModificationTime(TimeDate{Seconds: wantSeconds}); ec != Ok {
		t.Fatalf("SetModificationTime: %v", ec)
	}

	got, ec := f.GetModificationTime()
	if ec != Ok {
		t.Fatalf("GetModificationTime: %v", ec)
	}

	if got.Seconds != wantSeconds {
		t.Errorf("GetModificationTime() = %d, want %d", got.Seconds, wantSeconds)
	}
}

func TestFileSetCreationTimeUnsupported(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)
	if ec := f.Open(*NewFilename(cfg, ":Boot:touched2.bin:"), WriteOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	defer f.Close()

	if ec := f.SetCreationTime(TimeDate{Seconds: 0}); ec != ErrNotSupportedOnThisPlatform {
		t.Errorf("SetCreationTime = %v, want ErrNotSupportedOnThisPlatform", ec)
	}
}

func TestFileWriteReadRoundTrip(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)

	if ec := f.Open(*NewFilename(cfg, ":Boot:data.bin:"), WriteOnly); ec != Ok {
		t.Fatalf("Open(WriteOnly): %v", ec)
	}

	want := []byte("burgerlib file handle")

	n, ec := f.Write(want)
	if ec != Ok || n != len(want) {
		t.Fatalf("Write: n=%d ec=%v", n, ec)
	}

	if ec := f.Close(); ec != Ok {
		t.Fatalf("Close: %v", ec)
	}

	f2 := NewFile(cfg)
	if ec := f2.Open(*NewFilename(cfg, ":Boot:data.bin:"), ReadOnly); ec != Ok {
		t.Fatalf("Open(ReadOnly): %v", ec)
	}

	defer f2.Close()

	got := make([]byte, len(want))

	n, ec = f2.Read(got)
	if ec != Ok || n != len(want) {
		t.Fatalf("Read: n=%d ec=%v", n, ec)
	}

	if string(got) != string(want) {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestFileOpenMissing(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)
	if ec := f.Open(*NewFilename(cfg, ":Boot:missing.bin:"), ReadOnly); ec != ErrFileNotFound {
		t.Errorf("Open(missing, ReadOnly) = %v, want ErrFileNotFound", ec)
	}
}

func TestFileMarkAndSize(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)
	if ec := f.Open(*NewFilename(cfg, ":Boot:mark.bin:"), WriteOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	if _, ec := f.Write([]byte("0123456789")); ec != Ok {
		t.Fatalf("Write: %v", ec)
	}

	size, ec := f.GetFileSize()
	if ec != Ok || size != 10 {
		t.Fatalf("GetFileSize = %d, %v, want 10, Ok", size, ec)
	}

	if ec := f.SetMark(3); ec != Ok {
		t.Fatalf("SetMark: %v", ec)
	}

	mark, ec := f.GetMark()
	if ec != Ok || mark != 3 {
		t.Errorf("GetMark() = %d, %v, want 3, Ok", mark, ec)
	}

	f.Close()
}

func TestFileReadBigLittleEndian(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)
	if ec := f.Open(*NewFilename(cfg, ":Boot:ints.bin:"), WriteOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	if _, ec := f.Write([]byte{0x00, 0x01, 0x02, 0x03}); ec != Ok {
		t.Fatalf("Write: %v", ec)
	}

	f.Close()

	f2 := NewFile(cfg)
	if ec := f2.Open(*NewFilename(cfg, ":Boot:ints.bin:"), ReadOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	defer f2.Close()

	got, ec := f2.ReadBigU16()
	if ec != Ok || got != 0x0001 {
		t.Errorf("ReadBigU16() = %#x, %v, want 0x0001, Ok", got, ec)
	}

	if ec := f2.SetMark(0); ec != Ok {
		t.Fatalf("SetMark: %v", ec)
	}

	gotLE, ec := f2.ReadLittleU16()
	if ec != Ok || gotLE != 0x0100 {
		t.Errorf("ReadLittleU16() = %#x, %v, want 0x0100, Ok", gotLE, ec)
	}
}

func TestFileReadCString(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)
	if ec := f.Open(*NewFilename(cfg, ":Boot:cstr.bin:"), WriteOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	if _, ec := f.Write([]byte("hi\x00trailing")); ec != Ok {
		t.Fatalf("Write: %v", ec)
	}

	f.Close()

	f2 := NewFile(cfg)
	if ec := f2.Open(*NewFilename(cfg, ":Boot:cstr.bin:"), ReadOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	defer f2.Close()

	buf := make([]byte, 8)
	if ec := f2.ReadCString(buf); ec != Ok {
		t.Fatalf("ReadCString: %v", ec)
	}

	if want := "hi"; string(buf[:2]) != want || buf[2] != 0 {
		t.Errorf("ReadCString buf = %q, want %q followed by NUL", buf, want)
	}
}

func TestFileCreatorAndFileTypeUnsupported(t *testing.T) {
	cfg, _ := newTestConfig(t)

	f := NewFile(cfg)
	if ec := f.Open(*NewFilename(cfg, ":Boot:meta.bin:"), WriteOnly); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	defer f.Close()

	if _, _, ec := f.GetCreatorAndFileType(); ec != ErrNotSupportedOnThisPlatform {
		t.Errorf("GetCreatorAndFileType = %v, want ErrNotSupportedOnThisPlatform", ec)
	}
}
