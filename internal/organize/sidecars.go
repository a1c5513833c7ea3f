package organize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	ioutils "github.com/handiism/audiorganizer/internal/io"
	"github.com/handiism/audiorganizer/internal/model"
)

// albumSet collects organized tracks per destination directory, keeping
// the order in which directories were first seen.
type albumSet struct {
	cfg    *model.PathConfig
	byPath map[string]*model.Album
	order  []*model.Album
}

func newAlbumSet(cfg *model.PathConfig) *albumSet {
	return &albumSet{cfg: cfg, byPath: make(map[string]*model.Album)}
}

func (s *albumSet) add(track *model.Track) {
	if album, ok := s.byPath[track.DestDir]; ok {
		album.Tracks = append(album.Tracks, track)
		return
	}
	album := model.NewAlbum(track, s.cfg)
	s.byPath[track.DestDir] = album
	s.order = append(s.order, album)
}

func (s *albumSet) list() []*model.Album {
	return s.order
}

// writeSidecars creates the optional playlist and cover art files for
// each album directory that received files in this run. Failures are
// reported as warnings and never affect file results.
func (m *Manager) writeSidecars(ctx context.Context, albums []*model.Album) {
	if !m.settings.CreatePlaylist && !m.settings.SaveCoverArt {
		return
	}

	for _, album := range albums {
		if m.settings.CreatePlaylist {
			m.writePlaylist(ctx, album)
		}
		if m.settings.SaveCoverArt {
			m.writeCoverArt(ctx, album)
		}
	}
}

func (m *Manager) writePlaylist(ctx context.Context, album *model.Album) {
	listed := &model.Album{
		Artist: album.Artist,
		Title:  album.Title,
		Path:   album.Path,
		Tracks: m.albumDirTracks(album),
	}

	content := m.playlist.CreatePlaylist(listed)
	if err := ioutils.WriteFile(ctx, album.PlaylistPath, []byte(content)); err != nil {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Error creating playlist for %s: %v", album.Title, err), Level: LevelWarning})
		return
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Created playlist: %s", album.PlaylistPath), Level: LevelSuccess})
}

// albumDirTracks returns every audio file in the album directory, so that
// a playlist also lists files organized by earlier runs. Tracks from this
// run keep their tags; older files inherit the album's labels.
func (m *Manager) albumDirTracks(album *model.Album) []*model.Track {
	known := make(map[string]*model.Track, len(album.Tracks))
	for _, track := range album.Tracks {
		known[track.FileName] = track
	}

	entries, err := os.ReadDir(album.Path)
	if err != nil {
		return album.Tracks
	}

	tags := model.TagPair{Artist: album.Artist, Album: album.Title}
	var tracks []*model.Track
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		if track, ok := known[entry.Name()]; ok {
			tracks = append(tracks, track)
			continue
		}
		tracks = append(tracks, model.NewTrack(filepath.Join(album.Path, entry.Name()), tags, m.pathCfg))
	}

	sort.SliceStable(tracks, func(i, j int) bool { return tracks[i].FileName < tracks[j].FileName })
	return tracks
}

func (m *Manager) writeCoverArt(ctx context.Context, album *model.Album) {
	if m.covers == nil || ioutils.Exists(album.ArtworkPath) {
		return
	}

	for _, track := range album.Tracks {
		picture, _, err := m.covers.ReadCoverArt(track.DestPath)
		if err != nil {
			continue
		}

		cover, err := m.coverArt.PrepareCover(ctx, picture, m.settings.CoverArtMaxSize)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error converting cover art from %s: %v", track.FileName, err), Level: LevelWarning})
			continue
		}

		if err := ioutils.WriteFile(ctx, album.ArtworkPath, cover); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving cover art for %s: %v", album.Title, err), Level: LevelWarning})
			return
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Saved cover art: %s", album.ArtworkPath), Level: LevelSuccess})
		return
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("No embedded cover art for %s", album.Title), Level: LevelVerbose})
}
