package boltdb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"confsched/schedule"
	"confsched/storage"
)

type LoggerFn func(string, ...interface{})

type repo struct {
	d    *bolt.DB
	root []byte
	path string
	log  LoggerFn
	err  LoggerFn
}

const (
	rootBucket = "sched"

	DefaultFile = "schedule.bdb"
)

// Config
type Config struct {
	Path  string
	LogFn LoggerFn
	ErrFn LoggerFn
}

// New returns a new schedule repository
func New(c Config) *repo {
	b := repo{
		root: []byte(rootBucket),
		path: c.Path,
		log:  func(string, ...interface{}) {},
		err:  func(string, ...interface{}) {},
	}
	if c.ErrFn != nil {
		b.err = c.ErrFn
	}
	if c.LogFn != nil {
		b.log = c.LogFn
	}

	return &b
}

func (r *repo) open() error {
	var err error
	r.d, err = bolt.Open(r.path, 0600, nil)
	if err != nil {
		return fmt.Errorf("could not open db %s %w", r.path, err)
	}
	err = r.d.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(r.root)
		if err != nil {
			return fmt.Errorf("unable to create root bucket %s: %w", r.root, err)
		}
		if !root.Writable() {
			return fmt.Errorf("non writeable root bucket %s", r.root)
		}
		return nil
	})
	return err
}

// close closes the boltdb database if possible.
func (r *repo) close() error {
	if r.d == nil {
		return nil
	}
	return r.d.Close()
}

// LoadEvent loads a single event of a room's day by its id.
func (r *repo) LoadEvent(room string, date time.Time, id string) schedule.Event {
	events, err := r.LoadEvents(storage.Day(date), room)
	if err != nil {
		r.err("error loading events: %s", err)
	}
	for _, event := range events {
		if event.ID == id {
			return event
		}
	}
	return schedule.Event{}
}

// LoadEvents loads the events in the cursor's interval, for the given rooms,
// or for every room when none is given.
func (r *repo) LoadEvents(cursor storage.DateCursor, rooms ...string) (schedule.Events, error) {
	var err error
	err = r.open()
	if err != nil {
		return nil, err
	}
	defer r.close()
	return loadFromBucket(r.d, r.root, cursor, rooms...)
}

func loadFromBucketRecursive(b *bolt.Bucket, min, max []byte) schedule.Events {
	events := make(schedule.Events, 0)

	c := b.Cursor()

	// bucket keys are single path segments, so the bounds are compared one
	// segment at a time; buckets matching a boundary segment are descended
	// with the remainder of that bound, everything strictly between the
	// bounds is in range wholesale
	minKey, minRest := splitSegment(min)
	maxKey, maxRest := splitSegment(max)

	first := func() ([]byte, []byte) { return c.First() }
	compare := func(k, v []byte) bool { return k != nil }
	if len(minKey) > 0 {
		first = func() ([]byte, []byte) { return c.Seek(minKey) }
	}
	if len(maxKey) > 0 {
		compare = func(k, v []byte) bool { return k != nil && bytes.Compare(k, maxKey) <= 0 }
	}
	for key, raw := first(); compare(key, raw); key, raw = c.Next() {
		if raw == nil {
			// this is a bucket mate: descend!
			var childMin, childMax []byte
			if bytes.Equal(key, minKey) {
				childMin = minRest
			}
			if bytes.Equal(key, maxKey) {
				childMax = maxRest
			}
			events = append(events, loadFromBucketRecursive(b.Bucket(key), childMin, childMax)...)
		} else {
			ev, _ := loadItem(raw)
			if ev.IsValid() {
				events = append(events, ev)
			}
		}
	}

	return events
}

func allRooms(rb *bolt.Bucket) []string {
	rooms := make([]string, 0)
	c := rb.Cursor()
	for key, raw := c.First(); key != nil; key, raw = c.Next() {
		if raw == nil {
			rooms = append(rooms, string(key))
		}
	}
	return rooms
}

func loadFromBucket(db *bolt.DB, root []byte, cursor storage.DateCursor, rooms ...string) (schedule.Events, error) {
	events := make(schedule.Events, 0)

	err := db.View(func(tx *bolt.Tx) error {
		rb := tx.Bucket(root)
		if rb == nil {
			return fmt.Errorf("invalid bucket %s", root)
		}
		if len(rooms) == 0 {
			rooms = allRooms(rb)
		}

		var err error
		for _, room := range rooms {
			var b *bolt.Bucket
			min, max := getCursorPaths(cursor, []byte(room))
			b, min, max, err = descendToLastCommonBucket(rb, min, max)
			if b == nil {
				continue
			}
			events = append(events, loadFromBucketRecursive(b, min, max)...)
		}
		return err
	})

	return events, err
}

func loadItem(raw []byte) (schedule.Event, error) {
	ev := schedule.Event{}
	if len(raw) == 0 {
		return ev, fmt.Errorf("empty raw item")
	}
	err := json.Unmarshal(raw, &ev)
	return ev, err
}

var pathSeparator = []byte{'/'}

func splitSegment(path []byte) ([]byte, []byte) {
	if i := bytes.Index(path, pathSeparator); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, nil
}

func getCursorPaths(c storage.DateCursor, room []byte) ([]byte, []byte) {
	var min, max []byte
	if c.D < 0 {
		max = itemBucketPath(room, c.T)
		min = itemBucketPath(room, c.T.Add(c.D))
	} else {
		min = itemBucketPath(room, c.T)
		max = itemBucketPath(room, c.T.Add(c.D))
	}
	return min, max
}

func itemBucketPath(room []byte, date time.Time) []byte {
	pathEl := make([][]byte, 0)

	pathEl = append(pathEl, room)
	pathEl = append(pathEl, []byte(date.Format("06")))
	pathEl = append(pathEl, []byte(date.Format("01")))
	pathEl = append(pathEl, []byte(date.Format("02")))
	pathEl = append(pathEl, []byte(date.Format("15")))
	pathEl = append(pathEl, []byte(date.Format("04")))

	return bytes.Join(pathEl, pathSeparator)
}

func descendToLastCommonBucket(root *bolt.Bucket, min, max []byte) (*bolt.Bucket, []byte, []byte, error) {
	minPieces := bytes.Split(min, pathSeparator)
	maxPieces := bytes.Split(max, pathSeparator)

	b := root
	lvl := 0
	// the length should be the same
	for i, k := range minPieces {
		if !bytes.Equal(k, maxPieces[i]) {
			break
		}
		cb := b.Bucket(k)
		if cb == nil {
			break
		}
		lvl = i
		b = cb
	}
	min = bytes.Join(minPieces[lvl+1:], pathSeparator)
	max = bytes.Join(maxPieces[lvl+1:], pathSeparator)
	return b, min, max, nil
}

func descendInBucket(root *bolt.Bucket, path []byte, create bool) (*bolt.Bucket, []byte, error) {
	if root == nil {
		return nil, path, fmt.Errorf("trying to descend into nil bucket")
	}
	if len(path) == 0 {
		return root, path, nil
	}
	buckets := bytes.Split(path, pathSeparator)

	lvl := 0
	b := root
	// descend the bucket tree up to the last found bucket
	for _, name := range buckets {
		lvl++
		if len(name) == 0 {
			continue
		}
		if b == nil {
			return root, path, fmt.Errorf("trying to load from nil bucket")
		}
		var cb *bolt.Bucket
		if create {
			cb, _ = b.CreateBucketIfNotExists(name)
		} else {
			cb = b.Bucket(name)
		}
		if cb == nil {
			lvl--
			break
		}
		b = cb
	}
	path = bytes.Join(buckets[lvl:], pathSeparator)

	return b, path, nil
}

// SaveEvents
func (r *repo) SaveEvents(events schedule.Events) error {
	var err error
	err = r.open()
	if err != nil {
		return err
	}
	defer r.close()

	for _, ev := range events {
		ev, err = save(r, ev)
		if err != nil {
			r.err("Error saving event %s: %s", ev.ID, err)
		}
	}
	return err
}

// SaveEvent
func (r *repo) SaveEvent(ev schedule.Event) error {
	var err error
	err = r.open()
	if err != nil {
		return err
	}
	defer r.close()

	ev, err = save(r, ev)
	return err
}

func save(r *repo, ev schedule.Event) (schedule.Event, error) {
	path := itemBucketPath([]byte(ev.RoomID), ev.StartTime)

	err := r.d.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		if !root.Writable() {
			return fmt.Errorf("non writeable bucket %s", r.root)
		}
		b, path, err := descendInBucket(root, path, true)
		if err != nil {
			return fmt.Errorf("unable to find %s in root bucket: %w", path, err)
		}
		if !b.Writable() {
			return fmt.Errorf("non writeable bucket %s", path)
		}
		entryBytes, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("could not marshal object: %w", err)
		}
		err = b.Put([]byte(ev.ID), entryBytes)
		if err != nil {
			return fmt.Errorf("could not store encoded object: %w", err)
		}

		return nil
	})

	return ev, err
}
