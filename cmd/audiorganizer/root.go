package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/handiism/audiorganizer/internal/audio"
	"github.com/handiism/audiorganizer/internal/config"
	"github.com/handiism/audiorganizer/internal/organize"
)

type rootOptions struct {
	dest           string
	mode           string
	dryRun         bool
	overwrite      bool
	unknownArtist  string
	unknownAlbum   string
	nfc            bool
	playlist       bool
	playlistFormat string
	coverArt       bool
	coverArtSize   int
	report         string
	verbose        bool
	noColor        bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	defaults := config.DefaultSettings()
	opts := rootOptions{
		mode:           string(defaults.Mode),
		unknownArtist:  defaults.UnknownArtist,
		unknownAlbum:   defaults.UnknownAlbum,
		playlistFormat: defaults.PlaylistFormat,
		coverArtSize:   defaults.CoverArtMaxSize,
	}

	cmd := &cobra.Command{
		Use:   "audiorganizer <source_dir>",
		Short: "Sort MP3 files into artist/album folders",
		Long: "Reads the artist and album tags of every MP3 file directly inside\n" +
			"source_dir and copies or moves it to <dest>/<artist>/<album>/<file>.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings(args[0])
			if err != nil {
				return err
			}
			return runOrganize(cmd, settings, &opts, out)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dest, "dest", "", "Destination root (default: source_dir)")
	flags.StringVar(&opts.mode, "mode", opts.mode, "Transfer mode: copy or move")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Show where files would go without touching them")
	flags.BoolVar(&opts.overwrite, "overwrite", false, "Replace files that already exist at the destination")
	flags.StringVar(&opts.unknownArtist, "unknown-artist", opts.unknownArtist, "Folder name for files without an artist tag")
	flags.StringVar(&opts.unknownAlbum, "unknown-album", opts.unknownAlbum, "Folder name for files without an album tag")
	flags.BoolVar(&opts.nfc, "nfc", false, "Normalize tag labels to Unicode NFC before sanitizing")
	flags.BoolVar(&opts.playlist, "playlist", false, "Create a playlist in each album folder")
	flags.StringVar(&opts.playlistFormat, "playlist-format", opts.playlistFormat, "Playlist format: m3u, pls, wpl or zpl")
	flags.BoolVar(&opts.coverArt, "cover-art", false, "Save embedded cover art as a folder image")
	flags.IntVar(&opts.coverArtSize, "cover-art-size", opts.coverArtSize, "Maximum cover art edge in pixels (0 keeps the original size)")
	flags.StringVar(&opts.report, "report", "", "Write a JSON summary to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")

	return cmd
}

// settings maps the flags onto a validated Settings value.
func (o *rootOptions) settings(sourceDir string) (*config.Settings, error) {
	mode, err := config.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}

	settings := config.DefaultSettings()
	settings.SourceDir = sourceDir
	settings.DestDir = o.dest
	settings.Mode = mode
	settings.DryRun = o.dryRun
	settings.Overwrite = o.overwrite
	settings.UnknownArtist = o.unknownArtist
	settings.UnknownAlbum = o.unknownAlbum
	settings.NormalizeUnicode = o.nfc
	settings.CreatePlaylist = o.playlist
	settings.PlaylistFormat = o.playlistFormat
	settings.SaveCoverArt = o.coverArt
	settings.CoverArtMaxSize = o.coverArtSize

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func runOrganize(cmd *cobra.Command, settings *config.Settings, opts *rootOptions, out io.Writer) error {
	ctx := cmd.Context()
	p := newPrinter(out, opts.noColor)

	p.header(settings)

	manager := organize.NewManager(settings, audio.NewReader(), func(event organize.ProgressEvent) {
		if event.Level == organize.LevelVerbose && !opts.verbose {
			return
		}
		p.event(event)
	})

	summary, runErr := manager.Run(ctx)
	if summary == nil {
		return runErr
	}

	p.summary(summary)

	if opts.report != "" {
		// The report also records interrupted runs.
		if err := summary.WriteJSON(context.WithoutCancel(ctx), opts.report); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		p.event(organize.ProgressEvent{Message: "Report written to " + opts.report, Level: organize.LevelInfo})
	}

	return runErr
}
