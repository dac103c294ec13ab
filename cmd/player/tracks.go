package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jscyril/mock_music_player/api"
	"github.com/jscyril/mock_music_player/internal/album"
	"github.com/jscyril/mock_music_player/internal/player"
	apperrors "github.com/jscyril/mock_music_player/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// TracksParams are the flags of the tracks command
type TracksParams struct {
	Favorites []string `short:"f" optional:"true" help:"Only list these track ids (e.g. 2,4)"`
}

// TracksCmd prints the album as a table
func TracksCmd() *cobra.Command {
	return boa.CmdT[TracksParams]{
		Use:         "tracks",
		Aliases:     []string{"ls"},
		Short:       "List the album tracks",
		ParamEnrich: defaultParamEnricher(),
		RunFunc: func(params *TracksParams, cmd *cobra.Command, args []string) {
			if err := printTracks(os.Stdout, params); err != nil {
				fmt.Fprintf(os.Stderr, "tracks: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func printTracks(w io.Writer, params *TracksParams) error {
	a := album.Sample()

	tracks := a.Tracks
	if len(params.Favorites) > 0 {
		ids, err := parseIDs(a, params.Favorites)
		if err != nil {
			return err
		}
		tracks = album.Filter(a, ids)
	}

	fmt.Fprintf(w, "%s - %s\n", a.Title, a.Artist)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "ID", "Title", "Artist", "Duration", "Length"})
	for _, track := range tracks {
		t.AppendRow(table.Row{
			a.IndexOf(track.ID) + 1,
			track.ID,
			track.Title,
			track.Artist,
			track.Duration,
			player.FormatClock(track.Length()),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Tracks", len(tracks)})
	t.Render()

	return nil
}

// parseIDs accepts repeated flags as well as comma separated lists
func parseIDs(a *api.Album, values []string) ([]int, error) {
	parts := lo.FlatMap(values, func(v string, _ int) []string {
		return strings.Split(v, ",")
	})
	parts = lo.Compact(lo.Map(parts, func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))

	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid track id %q", p)
		}
		if !a.Has(id) {
			return nil, apperrors.Wrapf(apperrors.ErrTrackNotFound, "track id %d (album has %v)", id, album.IDs(a))
		}
		ids = append(ids, id)
	}
	return lo.Uniq(ids), nil
}
