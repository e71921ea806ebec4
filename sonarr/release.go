package sonarr

import (
	"time"

	"github.com/reoring/goarr/codec"
)

// Release is returned by /release and /release/push.
type Release struct {
	GUID            string        `json:"guid"`
	Quality         QualityProper `json:"quality"`
	Age             int           `json:"age"`
	Size            int64         `json:"size"`
	IndexerID       int           `json:"indexerId"`
	Indexer         string        `json:"indexer"`
	ReleaseGroup    string        `json:"releaseGroup"`
	Title           string        `json:"title"`
	FullSeason      bool          `json:"fullSeason"`
	SceneSource     bool          `json:"sceneSource"`
	SeasonNumber    int           `json:"seasonNumber"`
	Language        string        `json:"language"`
	SeriesTitle     string        `json:"seriesTitle"`
	EpisodeNumbers  []int         `json:"episodeNumbers"`
	Approved        bool          `json:"approved"`
	TVRageID        int           `json:"tvRageId"`
	Rejections      []string      `json:"rejections"`
	PublishDate     time.Time     `json:"publishDate"`
	DownloadURL     string        `json:"downloadUrl"`
	DownloadAllowed bool          `json:"downloadAllowed"`
}

// ReleasePush is the body of a /release/push request.
type ReleasePush struct {
	Title       string     `json:"title"`
	DownloadURL string     `json:"downloadUrl"`
	Protocol    Protocol   `json:"protocol"`
	PublishDate codec.Date `json:"publishDate"`
}
