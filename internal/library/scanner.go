package library

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/handiism/tune/internal/audio"
	"github.com/handiism/tune/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// DefaultConcurrency is the number of files probed in parallel.
const DefaultConcurrency = 8

// Scanner discovers audio files and reads their metadata.
type Scanner struct {
	concurrency int
	readTags    func(path string) (audio.Tags, error)
	probe       func(path string) (time.Duration, error)

	totalFiles   int32
	scannedFiles int32

	onProgress func(ProgressEvent)
}

// NewScanner creates a Scanner probing up to concurrency files at once.
//
// A non-positive concurrency uses DefaultConcurrency. onProgress may be nil;
// it is called from the probing goroutines and must be safe for concurrent use.
func NewScanner(concurrency int, onProgress func(ProgressEvent)) *Scanner {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Scanner{
		concurrency: concurrency,
		readTags:    audio.ReadTags,
		probe:       audio.Probe,
		onProgress:  onProgress,
	}
}

// GetProgress returns the number of files scanned so far and the total found.
func (s *Scanner) GetProgress() (scanned, total int32) {
	return atomic.LoadInt32(&s.scannedFiles), atomic.LoadInt32(&s.totalFiles)
}

// Scan returns the tracks found under dir, sorted by artist then title.
//
// A symlinked root is followed. Symlinked files inside the tree are
// included; symlinked directories are not descended into.
func (s *Scanner) Scan(ctx context.Context, dir string) ([]*model.Track, error) {
	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("music directory: %w", err)
	}

	paths, err := s.collect(ctx, root)
	if err != nil {
		return nil, err
	}
	atomic.StoreInt32(&s.totalFiles, int32(len(paths)))
	s.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio files in %s", len(paths), dir), Level: LevelInfo})

	results := make([]*model.Track, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.scanFile(path)
			atomic.AddInt32(&s.scannedFiles, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	tracks := lo.Compact(results)
	model.SortTracks(tracks, model.SortArtist)

	s.progress(ProgressEvent{Message: fmt.Sprintf("Scanned %d tracks", len(tracks)), Level: LevelSuccess})
	return tracks, nil
}

// collect walks root and returns the supported audio files in walk order.
func (s *Scanner) collect(ctx context.Context, root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", path, err), Level: LevelWarning})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || !audio.IsSupported(path) {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				s.progress(ProgressEvent{Message: fmt.Sprintf("Skipping link %s", path), Level: LevelVerbose})
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// scanFile builds a Track for path, or returns nil if the file is unreadable.
func (s *Scanner) scanFile(path string) *model.Track {
	f, err := os.Open(path)
	if err != nil {
		s.progress(ProgressEvent{Message: fmt.Sprintf("Skipping unreadable %s: %v", filepath.Base(path), err), Level: LevelWarning})
		return nil
	}
	f.Close()

	tags, err := s.readTags(path)
	if err != nil {
		s.progress(ProgressEvent{Message: fmt.Sprintf("No tags in %s: %v", filepath.Base(path), err), Level: LevelVerbose})
	}

	var seconds uint64
	if d, err := s.probe(path); err != nil {
		s.progress(ProgressEvent{Message: fmt.Sprintf("Unknown duration for %s: %v", filepath.Base(path), err), Level: LevelVerbose})
	} else if d > 0 {
		seconds = uint64(d / time.Second)
	}

	return model.NewTrack(path, tags.Title, tags.Artist, seconds, tags.Lyrics)
}

func (s *Scanner) progress(event ProgressEvent) {
	logEvent(event)
	if s.onProgress != nil {
		s.onProgress(event)
	}
}

func logEvent(e ProgressEvent) {
	switch e.Level {
	case LevelError:
		log.Error().Msg(e.Message)
	case LevelWarning:
		log.Warn().Msg(e.Message)
	case LevelVerbose:
		log.Debug().Msg(e.Message)
	default:
		log.Info().Msg(e.Message)
	}
}
