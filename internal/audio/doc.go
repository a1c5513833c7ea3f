// Package audio provides MP3 tag access and playlist generation.
//
// # Reading Tags
//
// ID3Reader implements TagReader using the id3v2 library:
//
//	reader := audio.NewID3Reader()
//	tags, err := reader.ReadTags("/in/song.mp3")
//	// tags.Artist, tags.Album are empty when the frames are absent
//
// Only the first value of a multi-valued frame is returned. Embedded
// cover art is available through ReadCoverArt.
//
// The id3v2 library only handles ID3v2.3 and ID3v2.4. NewReader chains
// ID3Reader with GenericReader (github.com/dhowden/tag), which also reads
// ID3v1 trailers and ID3v2.2 headers:
//
//	reader := audio.NewReader()
//	tags, err := reader.ReadTags("/in/old.mp3")
//
// # Writing Tags
//
//	tagger := audio.NewTagger(audio.DefaultTagConfig())
//	err := tagger.WriteTags(path, model.TagPair{Artist: "A", Album: "B"}, jpegBytes)
//
// # Playlist Generation
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(album)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio
