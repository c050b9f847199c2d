package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"musiclibrary/internal/catalog"
)

type seedAlbum struct {
	Name   string
	Tracks []seedTrack
}

type seedTrack struct {
	Name     string
	Duration time.Duration
}

var demoCatalog = []struct {
	Artist string
	Albums []seedAlbum
}{
	{
		Artist: "Metallica",
		Albums: []seedAlbum{
			{
				Name: "Master of Puppets",
				Tracks: []seedTrack{
					{Name: "Battery", Duration: 5*time.Minute + 12*time.Second},
					{Name: "Master of Puppets", Duration: 8*time.Minute + 35*time.Second},
					{Name: "Orion", Duration: 8*time.Minute + 27*time.Second},
				},
			},
			{
				Name: "Ride the Lightning",
				Tracks: []seedTrack{
					{Name: "Fade to Black", Duration: 6*time.Minute + 55*time.Second},
					{Name: "For Whom the Bell Tolls", Duration: 5*time.Minute + 9*time.Second},
				},
			},
		},
	},
	{
		Artist: "Portishead",
		Albums: []seedAlbum{
			{
				Name: "Dummy",
				Tracks: []seedTrack{
					{Name: "Mysterons", Duration: 5*time.Minute + 2*time.Second},
					{Name: "Sour Times", Duration: 4*time.Minute + 11*time.Second},
					{Name: "Glory Box", Duration: 5*time.Minute + 6*time.Second},
				},
			},
		},
	},
}

// bootstrapDemoData fills an empty catalog with a few artists.
func bootstrapDemoData(ctx context.Context, repo catalog.Repository) error {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("list artists: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, entry := range demoCatalog {
		artist, err := catalog.NewArtist(entry.Artist)
		if err != nil {
			return fmt.Errorf("seed artist %q: %w", entry.Artist, err)
		}

		for _, seed := range entry.Albums {
			album, err := artist.AddAlbum(seed.Name)
			if err != nil {
				return fmt.Errorf("seed album %q: %w", seed.Name, err)
			}
			for _, track := range seed.Tracks {
				music, err := artist.AddMusic(track.Name, track.Duration)
				if err != nil {
					return fmt.Errorf("seed music %q: %w", track.Name, err)
				}
				if err := artist.AddMusicToAlbum(album.ID(), music.ID()); err != nil {
					return fmt.Errorf("link music %q: %w", track.Name, err)
				}
			}
		}

		if err := repo.Add(ctx, artist); err != nil {
			return fmt.Errorf("store artist %q: %w", entry.Artist, err)
		}
	}

	log.Info().Int("artists", len(demoCatalog)).Msg("seeded demo catalog")
	return nil
}
