package font

import "bytes"
import "compress/gzip"
import "os"
import "path/filepath"
import "testing"

import "golang.org/x/image/font/gofont/gomono"

func TestParseFromBytes(t *testing.T) {
	font, name, err := ParseFromBytes(gomono.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if font == nil { t.Fatal("expected non-nil font") }
	if name == "" { t.Fatal("expected non-empty font name") }

	_, _, err = ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err == nil { t.Fatal("expected error to be non-nil") }
}

func TestParseFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test-font.ttf")
	err := os.WriteFile(path, gomono.TTF, 0600)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	font, name, err := ParseFromPath(path)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if font == nil { t.Fatal("expected non-nil font") }

	directName, err := GetName(font)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if directName != name {
		t.Fatalf("expected '%s', got '%s'", name, directName)
	}

	_, _, err = ParseFromPath(filepath.Join(dir, "missing.ttf"))
	if err == nil { t.Fatal("expected error for missing file") }

	_, _, err = ParseFromPath(filepath.Join(dir, "not-a-font.png"))
	if err == nil { t.Fatal("expected error for invalid extension") }
}

func TestParseFromPathGzipped(t *testing.T) {
	var buffer bytes.Buffer
	gzipWriter := gzip.NewWriter(&buffer)
	_, err := gzipWriter.Write(gomono.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	err = gzipWriter.Close()
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	path := filepath.Join(t.TempDir(), "test-font.ttf.gz")
	err = os.WriteFile(path, buffer.Bytes(), 0600)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	font, _, err := ParseFromPath(path)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if font == nil { t.Fatal("expected non-nil font") }
}

func TestGetMissingRunes(t *testing.T) {
	font, _, err := ParseFromBytes(gomono.TTF)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }

	missing, err := GetMissingRunes(font, "#@g.")
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if len(missing) != 0 {
		t.Fatalf("expected no missing runes, got %d", len(missing))
	}

	missing, err = GetMissingRunes(font, "ab\uE303")
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if len(missing) != 1 {
		t.Fatalf("expected 1 missing rune, got %d", len(missing))
	}
}
