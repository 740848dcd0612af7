package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"math"

	"git.lost.host/meutraa/tapline/internal/game"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type DefaultScorer struct {
	Judgements game.Judgements
	LineY      float64
	Log        *logrus.Logger

	db *sql.DB
}

func (s *DefaultScorer) Init(file string) error {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return errors.Wrapf(err, "unable to open replay store %s", file)
	}

	initStatement := `
	create table if not exists replays
	  (
		  id integer not null primary key,
		  sum text,
		  mode text,
		  track text,
		  clock text,
		  settings bytearray,
		  schedule bytearray,
		  inputs bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return errors.Wrap(err, "unable to create replay table")
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
		s.db = nil
	}
}

// settings is the part of a History stored as one blob.
type settings struct {
	Field      game.Field
	Judgements game.Judgements
}

func hashSchedule(schedule game.Schedule) (string, error) {
	data, err := json.Marshal(schedule)
	if nil != err {
		return "", errors.Wrap(err, "unable to hash schedule")
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (s *DefaultScorer) Save(h *History) error {
	if nil == s.db {
		return errors.New("replay store is not open")
	}
	sum, err := hashSchedule(h.Schedule)
	if nil != err {
		return err
	}
	schedule, err := json.Marshal(h.Schedule)
	if nil != err {
		return errors.Wrap(err, "unable to marshal schedule")
	}
	inputs, err := json.Marshal(h.Inputs)
	if nil != err {
		return errors.Wrap(err, "unable to marshal inputs")
	}
	set, err := json.Marshal(settings{Field: h.Field, Judgements: h.Judgements})
	if nil != err {
		return errors.Wrap(err, "unable to marshal settings")
	}
	h.Sum = sum
	res, err := s.db.Exec("insert into replays(sum, mode, track, clock, settings, schedule, inputs) values(?, ?, ?, ?, ?, ?, ?)",
		h.Sum, h.Mode, h.Track, h.Clock, set, schedule, inputs)
	if nil != err {
		return errors.Wrap(err, "unable to save replay")
	}
	h.ID, _ = res.LastInsertId()
	s.logger().WithFields(logrus.Fields{
		"id":     h.ID,
		"mode":   h.Mode,
		"clock":  h.Clock,
		"inputs": len(h.Inputs),
	}).Debug("Replay saved")
	return nil
}

func (s *DefaultScorer) Load() ([]History, error) {
	if nil == s.db {
		return nil, errors.New("replay store is not open")
	}
	rows, err := s.db.Query("select id, sum, mode, track, clock, settings, schedule, inputs from replays order by id")
	if nil != err {
		return nil, errors.Wrap(err, "unable to load replays")
	}
	defer rows.Close()

	histories := []History{}
	for rows.Next() {
		var h History
		var set settings
		var blob, schedule, inputs []byte
		if err := rows.Scan(&h.ID, &h.Sum, &h.Mode, &h.Track, &h.Clock, &blob, &schedule, &inputs); nil != err {
			return nil, errors.Wrap(err, "unable to scan replay")
		}
		if err := json.Unmarshal(blob, &set); nil != err {
			s.logger().WithError(err).WithField("id", h.ID).Warn("Skipping replay with bad settings")
			continue
		}
		h.Field, h.Judgements = set.Field, set.Judgements
		if err := json.Unmarshal(schedule, &h.Schedule); nil != err {
			s.logger().WithError(err).WithField("id", h.ID).Warn("Skipping replay with bad schedule")
			continue
		}
		if err := json.Unmarshal(inputs, &h.Inputs); nil != err {
			s.logger().WithError(err).WithField("id", h.ID).Warn("Skipping replay with bad inputs")
			continue
		}
		histories = append(histories, h)
	}
	return histories, errors.Wrap(rows.Err(), "unable to read replays")
}

func (s *DefaultScorer) logger() *logrus.Logger {
	if nil == s.Log {
		return logrus.StandardLogger()
	}
	return s.Log
}

// Distance is the vertical gap between a note and the judgement line
func (s *DefaultScorer) Distance(n *game.Note) float64 {
	return math.Abs(n.Y - s.LineY)
}

// Judge checks notes in insertion order and takes the first whose circle
// contains the click, even when a later note is closer.
func (s *DefaultScorer) Judge(stats *Stats, notes []*game.Note, click game.Point) ([]*game.Note, Outcome) {
	candidate := -1
	for i, note := range notes {
		if math.Hypot(click.X-note.X, click.Y-note.Y) < note.Radius {
			candidate = i
			break
		}
	}
	if candidate < 0 {
		return notes, Outcome{Kind: NoTarget, Tier: -1}
	}

	note := notes[candidate]
	distance := s.Distance(note)
	tier, judgement := s.Judgements.Lookup(distance)
	if nil == judgement {
		stats.Combo = 0
		stats.Misses++
		return notes, Outcome{Kind: Miss, Tier: -1, Note: note, Distance: distance}
	}

	stats.Combo++
	if stats.Combo > stats.MaxCombo {
		stats.MaxCombo = stats.Combo
	}
	delta := judgement.Score + stats.Combo*10
	stats.Score += delta
	if tier < len(stats.Counts) {
		stats.Counts[tier]++
	}

	return remove(notes, map[int]bool{candidate: true}), Outcome{
		Kind:      Hit,
		Tier:      tier,
		Judgement: judgement,
		Note:      note,
		Distance:  distance,
		Delta:     delta,
	}
}

// Sweep removes every note below the worst tier and resets the combo once
// if any were removed.
func (s *DefaultScorer) Sweep(stats *Stats, notes []*game.Note) ([]*game.Note, int) {
	limit := s.LineY + s.Judgements.Worst().Threshold
	missed := map[int]bool{}
	for i, note := range notes {
		if note.Y > limit {
			missed[i] = true
		}
	}
	if len(missed) == 0 {
		return notes, 0
	}
	stats.Combo = 0
	stats.Misses += len(missed)
	return remove(notes, missed), len(missed)
}

// remove compacts notes after the scan, keeping insertion order.
func remove(notes []*game.Note, drop map[int]bool) []*game.Note {
	kept := make([]*game.Note, 0, len(notes)-len(drop))
	for i, note := range notes {
		if !drop[i] {
			kept = append(kept, note)
		}
	}
	return kept
}
