package tracks

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Track is a playable audio file and, when one sits in the same directory,
// a StepMania chart to schedule notes from.
type Track struct {
	Audio string
	Chart string
}

func (t Track) Name() string {
	return strings.TrimSuffix(filepath.Base(t.Audio), filepath.Ext(t.Audio))
}

type Finder interface {
	Find() ([]Track, error)
}

// DirFinder lists the tracks in Directory and in its immediate
// subdirectories, one song folder deep.
type DirFinder struct {
	Directory string
	Log       *logrus.Logger

	fsys fs.FS // Directory itself unless set
}

func isAudio(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mp3", ".ogg", ".wav":
		return true
	}
	return false
}

func isChart(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".sm")
}

func stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}

// Find lists tracks in lexical order. Only an unreadable Directory is an
// error; song folders that cannot be read are logged and skipped.
func (f *DirFinder) Find() ([]Track, error) {
	fsys := f.fsys
	if nil == fsys {
		fsys = os.DirFS(f.Directory)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if nil != err {
		return nil, errors.Wrapf(err, "unable to read track directory %s", f.Directory)
	}
	found := f.scan(".", entries)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		sub, err := fs.ReadDir(fsys, e.Name())
		if nil != err {
			f.logger().WithError(err).WithField("dir", e.Name()).Warn("Skipping unreadable song folder")
			continue
		}
		found = append(found, f.scan(e.Name(), sub)...)
	}

	if len(found) == 0 {
		f.logger().WithField("dir", f.Directory).Info("No music files found")
	}
	return found, nil
}

// scan pairs every audio file in one folder with the chart of the same name,
// or with the folder's first chart when there is none.
func (f *DirFinder) scan(dir string, entries []fs.DirEntry) []Track {
	found := []Track{}
	charts := map[string]string{}
	first := ""
	for _, e := range entries {
		if e.IsDir() || !isChart(e.Name()) {
			continue
		}
		charts[strings.ToLower(stem(e.Name()))] = e.Name()
		if first == "" {
			first = e.Name()
		}
	}
	for _, e := range entries {
		if e.IsDir() || !isAudio(e.Name()) {
			continue
		}
		t := Track{Audio: filepath.Join(f.Directory, filepath.FromSlash(path.Join(dir, e.Name())))}
		chart, ok := charts[strings.ToLower(stem(e.Name()))]
		if !ok {
			chart = first
		}
		if chart != "" {
			t.Chart = filepath.Join(f.Directory, filepath.FromSlash(path.Join(dir, chart)))
		}
		found = append(found, t)
	}
	return found
}

func (f *DirFinder) logger() *logrus.Logger {
	if nil == f.Log {
		return logrus.StandardLogger()
	}
	return f.Log
}
