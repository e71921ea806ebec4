package sonarr

import (
	"time"

	"github.com/reoring/goarr/arr"
	"github.com/reoring/goarr/codec"
)

// Episode is returned by /calendar and /episode.
type Episode struct {
	SeriesID                   int        `json:"seriesId"`
	EpisodeFileID              int        `json:"episodeFileId"`
	SeasonNumber               int        `json:"seasonNumber"`
	EpisodeNumber              int        `json:"episodeNumber"`
	Title                      string     `json:"title"`
	AirDate                    codec.Date `json:"airDate"`
	AirDateUTC                 time.Time  `json:"airDateUtc"`
	Overview                   string     `json:"overview"`
	HasFile                    bool       `json:"hasFile"`
	Monitored                  bool       `json:"monitored"`
	ID                         int        `json:"id"`
	AbsoluteEpisodeNumber      *int       `json:"absoluteEpisodeNumber"`
	SceneSeasonNumber          *int       `json:"sceneSeasonNumber"`
	SceneEpisodeNumber         *int       `json:"sceneEpisodeNumber"`
	SceneAbsoluteEpisodeNumber *int       `json:"sceneAbsoluteEpisodeNumber"`
	TVDBEpisodeID              *int       `json:"tvDbEpisodeId"`
	Series                     *Series    `json:"series"`
	Downloading                *bool      `json:"downloading"`
	UnverifiedSceneNumbering   *bool      `json:"unverifiedSceneNumbering"`
	LastSearchTime             *time.Time `json:"lastSearchTime"`
}

// EpisodeFile is returned by /episodefile.
type EpisodeFile struct {
	SeriesID     int           `json:"seriesId"`
	SeasonNumber int           `json:"seasonNumber"`
	Path         string        `json:"path"`
	Size         int64         `json:"size"`
	DateAdded    time.Time     `json:"dateAdded"`
	SceneName    string        `json:"sceneName"`
	Quality      QualityProper `json:"quality"`
	ID           int           `json:"id"`
}

// WantedMissing is a page of monitored episodes without files.
type WantedMissing struct {
	arr.Page[SortKey]
	Records []Episode `json:"records"`
}
