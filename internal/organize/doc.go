// Package organize provides the loop that sorts MP3 files into an
// artist/album directory tree.
//
// # Manager
//
// The Manager coordinates one run:
//
//  1. List the source directory (non-recursive) and keep .mp3 files
//  2. Read the artist and album tags of each file
//  3. Sanitize both labels into path segments
//  4. Create <dest>/<artist>/<album> if needed
//  5. Copy or move the file there
//  6. Write playlists and cover art per album (optional)
//
// # Basic Usage
//
//	manager := organize.NewManager(settings, audio.NewReader(), func(event organize.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := manager.Run(ctx)
//	if err != nil {
//	    log.Fatal(err) // source directory could not be listed
//	}
//	fmt.Printf("%d organized, %d failed\n", summary.Organized, summary.Failed)
//
// # Failures
//
// Files are processed sequentially. A file whose tags cannot be read, or
// whose directory or transfer fails, gets a StatusFailed Result and an
// error event; the next file is processed normally. Nothing is retried or
// rolled back.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Manager.Progress can be polled from another goroutine.
package organize
