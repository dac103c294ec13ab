// Package album holds the built-in album the player ships with.
package album

import (
	"github.com/jscyril/mock_music_player/api"
	"github.com/samber/lo"
)

const (
	sampleTitle  = "Bad guy"
	sampleArtist = "Billie Eilish Pirate Baird"
	sampleCover  = "/api/placeholder/300/300"
)

var sampleTracks = []api.Track{
	{ID: 1, Title: "Small Talk", Duration: "4:29", Artist: "Billie Eilish"},
	{ID: 2, Title: "Boyfriend", Duration: "3:38", Artist: "Billie Eilish"},
	{ID: 3, Title: "OMG", Duration: "3:17", Artist: "Billie Eilish"},
	{ID: 4, Title: "Les Us Love", Duration: "3:02", Artist: "Billie Eilish"},
	{ID: 5, Title: "July", Duration: "3:42", Artist: "Billie Eilish"},
}

// Sample returns a fresh copy of the built-in album. Callers may not
// mutate the shared track list through it.
func Sample() *api.Album {
	tracks := make([]api.Track, len(sampleTracks))
	copy(tracks, sampleTracks)
	return &api.Album{
		Title:  sampleTitle,
		Artist: sampleArtist,
		Cover:  sampleCover,
		Tracks: tracks,
	}
}

// Filter returns the album tracks whose ids are in ids, in album order
func Filter(a *api.Album, ids []int) []api.Track {
	return lo.Filter(a.Tracks, func(t api.Track, _ int) bool {
		return lo.Contains(ids, t.ID)
	})
}

// IDs returns the track ids of the album in order
func IDs(a *api.Album) []int {
	return lo.Map(a.Tracks, func(t api.Track, _ int) int {
		return t.ID
	})
}
