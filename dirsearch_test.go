package burgerlib

import "testing"

func TestDirSearchEnumeratesEntries(t *testing.T) {
	cfg, _ := newTestConfig(t)

	if ec := CreateDirectoryPath(cfg, ":Boot:dir:"); ec != Ok {
		t.Fatalf("CreateDirectoryPath: %v", ec)
	}

	if ec := SaveFile(cfg, ":Boot:dir:a.txt:", []byte("a")); ec != Ok {
		t.Fatalf("SaveFile a: %v", ec)
	}

	if ec := SaveFile(cfg, ":Boot:dir:b.txt:", []byte("bb")); ec != Ok {
		t.Fatalf("SaveFile b: %v", ec)
	}

	ds := NewDirSearch(cfg)
	if ec := ds.Open(*NewFilename(cfg, ":Boot:dir:")); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	defer ds.Close()

	seen := map[string]int64{}

	for {
		entry, ok := ds.GetNextEntry()
		if !ok {
			break
		}

		seen[entry.Name] = entry.Size
	}

	if len(seen) != 2 {
		t.Fatalf("saw %d entries, want 2: %v", len(seen), seen)
	}

	if seen["a.txt"] != 1 {
		t.Errorf("a.txt size = %d, want 1", seen["a.txt"])
	}

	if seen["b.txt"] != 2 {
		t.Errorf("b.txt size = %d, want 2", seen["b.txt"])
	}
}

func TestDirSearchOnFileFails(t *testing.T) {
	cfg, _ := newTestConfig(t)

	if ec := SaveFile(cfg, ":Boot:notadir.txt:", []byte("x")); ec != Ok {
		t.Fatalf("SaveFile: %v", ec)
	}

	ds := NewDirSearch(cfg)
	if ec := ds.Open(*NewFilename(cfg, ":Boot:notadir.txt:")); ec != ErrPathNotFound {
		t.Errorf("Open on a plain file = %v, want ErrPathNotFound", ec)
	}
}

func TestDirSearchEmptyDirectory(t *testing.T) {
	cfg, _ := newTestConfig(t)

	if ec := CreateDirectoryPath(cfg, ":Boot:empty:"); ec != Ok {
		t.Fatalf("CreateDirectoryPath: %v", ec)
	}

	ds := NewDirSearch(cfg)
	if ec := ds.Open(*NewFilename(cfg, ":Boot:empty:")); ec != Ok {
		t.Fatalf("Open: %v", ec)
	}

	if _, ok := ds.GetNextEntry(); ok {
		t.Error("GetNextEntry on an empty directory should return ok=false")
	}
}
