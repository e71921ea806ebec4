package sonarr

import (
	"time"

	"github.com/reoring/goarr/codec"
)

type SeasonStatistics struct {
	EpisodeFileCount  int        `json:"episodeFileCount"`
	EpisodeCount      int        `json:"episodeCount"`
	TotalEpisodeCount int        `json:"totalEpisodeCount"`
	SizeOnDisk        int64      `json:"sizeOnDisk"`
	PercentOfEpisodes float64    `json:"percentOfEpisodes"`
	PreviousAiring    *time.Time `json:"previousAiring"`
	NextAiring        *time.Time `json:"nextAiring"`
}

type Season struct {
	SeasonNumber int               `json:"seasonNumber"`
	Monitored    bool              `json:"monitored"`
	Statistics   *SeasonStatistics `json:"statistics"`
}

type Rating struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

type AlternateTitle struct {
	Title             string `json:"title"`
	SeasonNumber      *int   `json:"seasonNumber"`
	SceneSeasonNumber *int   `json:"sceneSeasonNumber"`
}

// Image is poster, banner or fanart metadata.
type Image struct {
	CoverType string `json:"coverType"`
	URL       string `json:"url"`
}

// Tag is a user-applied label.
type Tag struct {
	Label string `json:"label"`
	ID    int    `json:"id"`
}

// Series is returned by /series and /series/lookup. Lookup results carry no
// id, so most fields are optional.
type Series struct {
	TVDBID            int              `json:"tvdbId"`
	Title             string           `json:"title"`
	CleanTitle        string           `json:"cleanTitle"`
	Monitored         bool             `json:"monitored"`
	SeasonFolder      bool             `json:"seasonFolder"`
	TitleSlug         string           `json:"titleSlug"`
	TVRageID          *int             `json:"tvRageId"`
	Runtime           *int             `json:"runtime"`
	Status            *string          `json:"status"`
	QualityProfileID  *int             `json:"qualityProfileId"`
	Images            []Image          `json:"images" goarr:"default"`
	SeriesType        *string          `json:"seriesType"`
	UseSceneNumbering *bool            `json:"useSceneNumbering"`
	Year              *int             `json:"year"`
	Seasons           []Season         `json:"seasons" goarr:"default"`
	ID                *int             `json:"id"`
	AirTime           *codec.TimeOfDay `json:"airTime"`
	Overview          *string          `json:"overview"`
	IMDBID            *string          `json:"imdbId"`
	Network           *string          `json:"network"`
	QualityProfile    *QualityProfile  `json:"qualityProfile"`
	SortTitle         *string          `json:"sortTitle"`
	SeasonCount       *int             `json:"seasonCount"`
	ProfileID         *int             `json:"profileId"`
	TVMazeID          *int             `json:"tvMazeId"`
	Certification     *string          `json:"certification"`
	Genres            []string         `json:"genres" goarr:"default"`
	Tags              []int            `json:"tags" goarr:"default"`
	Added             *time.Time       `json:"added"`
	Ratings           *Rating          `json:"ratings"`
	AlternateTitles   []AlternateTitle `json:"alternateTitles" goarr:"default"`
	TotalEpisodeCount *int             `json:"totalEpisodeCount"`
	EpisodeCount      *int             `json:"episodeCount"`
	EpisodeFileCount  *int             `json:"episodeFileCount"`
	SizeOnDisk        *int64           `json:"sizeOnDisk"`
	FirstAired        *time.Time       `json:"firstAired"`
	PreviousAiring    *time.Time       `json:"previousAiring"`
	NextAiring        *time.Time       `json:"nextAiring"`
	RemotePoster      *string          `json:"remotePoster"`
	LastInfoSync      *time.Time       `json:"lastInfoSync"`
	Path              *string          `json:"path"`
}
