package tracks

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); nil != err {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0644); nil != err {
		t.Fatal(err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.MP3"))
	touch(t, filepath.Join(dir, "a.wav"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "song", "song.ogg"))
	touch(t, filepath.Join(dir, "song", "song.sm"))
	touch(t, filepath.Join(dir, "pack", "deep", "buried.mp3"))

	f := DirFinder{Directory: dir, Log: quietLogger()}
	found, err := f.Find()
	if nil != err {
		t.Fatal(err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 tracks, got %v", found)
	}
	expected := []Track{
		{Audio: filepath.Join(dir, "a.wav")},
		{Audio: filepath.Join(dir, "b.MP3")},
		{Audio: filepath.Join(dir, "song", "song.ogg"), Chart: filepath.Join(dir, "song", "song.sm")},
	}
	for i := range expected {
		if found[i] != expected[i] {
			t.Errorf("track %v: expected %+v, got %+v", i, expected[i], found[i])
		}
	}
	if found[2].Name() != "song" {
		t.Errorf("expected name song, got %v", found[2].Name())
	}
}

func TestFindEmpty(t *testing.T) {
	f := DirFinder{Directory: t.TempDir(), Log: quietLogger()}
	found, err := f.Find()
	if nil != err {
		t.Fatal(err)
	}
	if len(found) != 0 {
		t.Errorf("expected no tracks, got %v", found)
	}
}

func TestFindMissingDirectory(t *testing.T) {
	f := DirFinder{Directory: filepath.Join(t.TempDir(), "missing"), Log: quietLogger()}
	if _, err := f.Find(); nil == err {
		t.Error("expected an error for a missing directory")
	}
}

// lockedFS fails to list one folder, like a directory without read
// permission.
type lockedFS struct {
	fstest.MapFS
	locked string
}

func (l lockedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if name == l.locked {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return l.MapFS.ReadDir(name)
}

func TestFindSkipsUnreadableFolder(t *testing.T) {
	f := DirFinder{
		Directory: "music",
		Log:       quietLogger(),
		fsys: lockedFS{
			MapFS: fstest.MapFS{
				"a.ogg":        {},
				"locked/b.mp3": {},
				"open/c.wav":   {},
				"open/c.sm":    {},
			},
			locked: "locked",
		},
	}
	found, err := f.Find()
	if nil != err {
		t.Fatal(err)
	}
	expected := []Track{
		{Audio: filepath.Join("music", "a.ogg")},
		{Audio: filepath.Join("music", "open", "c.wav"), Chart: filepath.Join("music", "open", "c.sm")},
	}
	if len(found) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, found)
	}
	for i := range expected {
		if found[i] != expected[i] {
			t.Errorf("track %v: expected %+v, got %+v", i, expected[i], found[i])
		}
	}
}

func TestFindPrefersChartWithSameName(t *testing.T) {
	f := DirFinder{
		Directory: "music",
		Log:       quietLogger(),
		fsys: fstest.MapFS{
			"a.sm":  {},
			"b.mp3": {},
			"b.sm":  {},
			"c.ogg": {},
		},
	}
	found, err := f.Find()
	if nil != err {
		t.Fatal(err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 tracks, got %v", found)
	}
	if found[0].Chart != filepath.Join("music", "b.sm") {
		t.Errorf("expected b.sm for b.mp3, got %v", found[0].Chart)
	}
	if found[1].Chart != filepath.Join("music", "a.sm") {
		t.Errorf("expected the first chart for c.ogg, got %v", found[1].Chart)
	}
}
