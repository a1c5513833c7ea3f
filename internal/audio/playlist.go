package audio

import (
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/handiism/audiorganizer/internal/model"
)

// PlaylistCreator renders the playlist written into an album directory.
//
// Entries are bare file names, since the playlist sits next to the
// tracks. Durations are not read from the files; formats that carry a
// length get -1 (unknown).
//
// Example:
//
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(album)
//
//	// #EXTM3U
//	// #EXTINF:-1,Artist - 01 Song
//	// 01 Song.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // M3U only: emit #EXTM3U/#EXTINF
}

// NewPlaylistCreator creates a new PlaylistCreator. extended is ignored
// for formats other than M3U.
func NewPlaylistCreator(format model.PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{format: format, extended: extended}
}

// CreatePlaylist returns the playlist content for album.
func (p *PlaylistCreator) CreatePlaylist(album *model.Album) string {
	var sb strings.Builder

	switch p.format {
	case model.PlaylistFormatPLS:
		writePLS(&sb, album)
	case model.PlaylistFormatWPL:
		writeSMIL(&sb, "wpl", "1.0", wplDocument(album))
	case model.PlaylistFormatZPL:
		writeSMIL(&sb, "zpl", "2.0", zplDocument(album))
	default:
		p.writeM3U(&sb, album)
	}

	return sb.String()
}

func (p *PlaylistCreator) writeM3U(w io.Writer, album *model.Album) {
	if p.extended {
		fmt.Fprintln(w, "#EXTM3U")
	}
	for _, track := range album.Tracks {
		if p.extended {
			fmt.Fprintf(w, "#EXTINF:-1,%s - %s\n", track.Tags.Artist, trackTitle(track))
		}
		fmt.Fprintln(w, track.FileName)
	}
}

// writePLS renders a PLS version 2 playlist:
//
//	[playlist]
//	File1=01 Song.mp3
//	Title1=01 Song
//	Length1=-1
//	NumberOfEntries=1
//	Version=2
func writePLS(w io.Writer, album *model.Album) {
	fmt.Fprintln(w, "[playlist]")
	for i, track := range album.Tracks {
		n := i + 1
		fmt.Fprintf(w, "File%d=%s\nTitle%d=%s\nLength%d=-1\n", n, track.FileName, n, trackTitle(track), n)
	}
	fmt.Fprintf(w, "NumberOfEntries=%d\nVersion=2\n", len(album.Tracks))
}

// smil is the document shared by Windows Media Player (WPL) and Zune
// (ZPL) playlists.
type smil struct {
	XMLName xml.Name  `xml:"smil"`
	Head    smilHead  `xml:"head"`
	Media   []smilRef `xml:"body>seq>media"`
}

type smilHead struct {
	Meta  []smilMeta `xml:"meta"`
	Title string     `xml:"title"`
}

type smilMeta struct {
	Name    string `xml:"name,attr"`
	Content string `xml:"content,attr"`
}

type smilRef struct {
	Src         string `xml:"src,attr"`
	AlbumTitle  string `xml:"albumTitle,attr,omitempty"`
	AlbumArtist string `xml:"albumArtist,attr,omitempty"`
	TrackTitle  string `xml:"trackTitle,attr,omitempty"`
	TrackArtist string `xml:"trackArtist,attr,omitempty"`
}

func wplDocument(album *model.Album) smil {
	doc := smil{Head: smilHead{Title: album.Title}}
	for _, track := range album.Tracks {
		doc.Media = append(doc.Media, smilRef{Src: track.FileName})
	}
	return doc
}

// zplDocument is a WPL document with album and artist attributes on every
// entry.
func zplDocument(album *model.Album) smil {
	doc := smil{Head: smilHead{
		Title: album.Title,
		Meta: []smilMeta{
			{Name: "Generator", Content: "audiorganizer"},
			{Name: "ItemCount", Content: fmt.Sprint(len(album.Tracks))},
		},
	}}
	for _, track := range album.Tracks {
		doc.Media = append(doc.Media, smilRef{
			Src:         track.FileName,
			AlbumTitle:  album.Title,
			AlbumArtist: album.Artist,
			TrackTitle:  trackTitle(track),
			TrackArtist: track.Tags.Artist,
		})
	}
	return doc
}

// writeSMIL writes the processing instruction for kind followed by doc.
func writeSMIL(w io.Writer, kind, version string, doc smil) {
	fmt.Fprintf(w, "<?%s version=%q?>\n", kind, version)

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	// Only strings are encoded; Encode cannot fail on this document.
	_ = enc.Encode(doc)
	fmt.Fprintln(w)
}

// trackTitle is the file name without its extension.
func trackTitle(track *model.Track) string {
	return strings.TrimSuffix(track.FileName, filepath.Ext(track.FileName))
}
