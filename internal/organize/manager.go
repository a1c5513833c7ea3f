package organize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/handiism/audiorganizer/internal/audio"
	"github.com/handiism/audiorganizer/internal/config"
	ioutils "github.com/handiism/audiorganizer/internal/io"
	"github.com/handiism/audiorganizer/internal/model"
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

// ProgressEvent represents an organization progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// CoverArtReader extracts embedded pictures. audio.ID3Reader implements it.
type CoverArtReader interface {
	ReadCoverArt(path string) ([]byte, string, error)
}

// Manager organizes the audio files of one source directory.
type Manager struct {
	settings *config.Settings
	pathCfg  *model.PathConfig
	reader   audio.TagReader
	covers   CoverArtReader
	playlist *audio.PlaylistCreator
	coverArt *ioutils.CoverArtService

	totalFiles     int32
	processedFiles int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new Manager.
//
// reader supplies the tags of each file. If it also implements
// CoverArtReader, it is used for cover art extraction.
func NewManager(settings *config.Settings, reader audio.TagReader, onProgress func(ProgressEvent)) *Manager {
	pathCfg := settings.ToPathConfig()

	m := &Manager{
		settings:   settings,
		pathCfg:    pathCfg,
		reader:     reader,
		playlist:   audio.NewPlaylistCreator(pathCfg.PlaylistFormat, settings.M3UExtended),
		coverArt:   ioutils.NewCoverArtService(),
		onProgress: onProgress,
	}
	if covers, ok := reader.(CoverArtReader); ok {
		m.covers = covers
	}
	return m
}

// Run processes every audio file directly inside the source directory.
//
// Files are handled one at a time in directory order. A failure on one
// file is recorded in its Result and processing continues with the next
// file. Only a failure to list the source directory aborts the run, in
// which case no file has been touched.
//
// ctx is checked between files: once a transfer has started it runs to
// completion. When ctx is cancelled the remaining files are left in place
// and the partial summary is returned together with ctx.Err().
func (m *Manager) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		SourceDir: m.settings.SourceDir,
		DestDir:   m.settings.Destination(),
		Mode:      m.settings.Mode,
		DryRun:    m.settings.DryRun,
		StartedAt: time.Now(),
	}

	files, err := m.listAudioFiles()
	if err != nil {
		return nil, err
	}
	atomic.StoreInt32(&m.totalFiles, int32(len(files)))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d audio file(s) in %s", len(files), m.settings.SourceDir), Level: LevelInfo})

	albums := newAlbumSet(m.pathCfg)

	for i, path := range files {
		if ctx.Err() != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Interrupted, %d file(s) left untouched", len(files)-i), Level: LevelWarning})
			break
		}

		result, track := m.organizeFile(ctx, path)
		summary.add(result)
		if result.Status == StatusOrganized {
			albums.add(track)
		}
		atomic.AddInt32(&m.processedFiles, 1)
	}

	if ctx.Err() == nil && !m.settings.DryRun {
		m.writeSidecars(ctx, albums.list())
	}

	summary.finalize(time.Now())
	return summary, ctx.Err()
}

// Progress returns how many files have been processed out of the total
// found in the source directory. It is safe to call while Run is active.
func (m *Manager) Progress() (processed, total int32) {
	return atomic.LoadInt32(&m.processedFiles), atomic.LoadInt32(&m.totalFiles)
}

// listAudioFiles returns the paths of the regular entries of the source
// directory that carry the audio extension, in directory order.
func (m *Manager) listAudioFiles() ([]string, error) {
	entries, err := os.ReadDir(m.settings.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("list source directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(m.settings.SourceDir, entry.Name()))
	}
	return files, nil
}

// IsAudioFile reports whether name ends with the audio extension,
// ignoring case.
func IsAudioFile(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), config.AudioExtension)
}

// organizeFile reads tags, creates the destination directory and
// transfers one file. The returned track is nil when tags could not be
// read.
func (m *Manager) organizeFile(ctx context.Context, path string) (Result, *model.Track) {
	name := filepath.Base(path)
	result := Result{Source: path, FileName: name, Status: StatusFailed}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Reading tags: %s", name), Level: LevelVerbose})

	tags, err := m.reader.ReadTags(path)
	if err != nil {
		return m.fail(result, fmt.Errorf("read tags: %w", err)), nil
	}

	track := model.NewTrack(path, tags, m.pathCfg)
	result.Artist = track.Tags.Artist
	result.Album = track.Tags.Album
	result.Destination = track.DestPath
	if info, err := os.Stat(path); err == nil {
		result.Size = info.Size()
	}

	opts := ioutils.TransferOptions{Overwrite: m.settings.Overwrite}

	if m.settings.DryRun {
		if err := ioutils.CheckDestination(path, track.DestPath, opts); err != nil {
			return m.fail(result, fmt.Errorf("%s: %w", m.settings.Mode, err)), track
		}
		result.Status = StatusPlanned
		result.Action = "Would " + strings.ToLower(string(m.settings.Mode))
		m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %s -> %s", result.Action, name, track.DestPath), Level: LevelInfo})
		return result, track
	}

	if err := ioutils.EnsureDir(track.DestDir); err != nil {
		return m.fail(result, fmt.Errorf("create directory: %w", err)), track
	}

	// A started transfer is not interrupted.
	transferCtx := context.WithoutCancel(ctx)

	if m.settings.Mode == config.ModeCopy {
		err = ioutils.CopyFile(transferCtx, path, track.DestPath, opts)
	} else {
		err = ioutils.MoveFile(transferCtx, path, track.DestPath, opts)
	}
	if err != nil {
		return m.fail(result, fmt.Errorf("%s: %w", m.settings.Mode, err)), track
	}

	result.Status = StatusOrganized
	result.Action = m.settings.Mode.Verb()
	m.progress(ProgressEvent{Message: fmt.Sprintf("%s: %s -> %s", result.Action, name, track.DestPath), Level: LevelSuccess})
	return result, track
}

func (m *Manager) fail(result Result, err error) Result {
	result.Status = StatusFailed
	result.Err = err
	result.Error = err.Error()
	m.progress(ProgressEvent{Message: fmt.Sprintf("Error processing %s: %v", result.FileName, err), Level: LevelError})
	return result
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
