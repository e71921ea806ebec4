package sonarr

import (
	"time"

	"github.com/reoring/goarr/arr"
)

// DownloadData carries event-specific details of a history entry. Every key
// is optional because the set depends on the event type.
type DownloadData struct {
	DroppedPath    *string    `json:"droppedPath"`
	ImportedPath   *string    `json:"importedPath"`
	DownloadClient *string    `json:"downloadClient"`
	Reason         *string    `json:"reason"`
	Indexer        *string    `json:"indexer"`
	NZBInfoURL     *string    `json:"nzbInfoUrl"`
	ReleaseGroup   *string    `json:"releaseGroup"`
	Age            *string    `json:"age"`
	AgeHours       *string    `json:"ageHours"`
	AgeMinutes     *string    `json:"ageMinutes"`
	PublishedDate  *time.Time `json:"publishedDate"`
	Size           *string    `json:"size"`
	DownloadURL    *string    `json:"downloadUrl"`
	GUID           *string    `json:"guid"`
	TVDBID         *string    `json:"tvdbId"`
	TVRageID       *string    `json:"tvRageId"`
	Protocol       *string    `json:"protocol"`
}

// Download is one history entry.
type Download struct {
	EpisodeID           int             `json:"episodeId"`
	SeriesID            int             `json:"seriesId"`
	SourceTitle         string          `json:"sourceTitle"`
	Quality             QualityRevision `json:"quality"`
	QualityCutoffNotMet bool            `json:"qualityCutoffNotMet"`
	Date                time.Time       `json:"date"`
	EventType           string          `json:"eventType"`
	Data                DownloadData    `json:"data"`
	Episode             Episode         `json:"episode"`
	Series              Series          `json:"series"`
	ID                  int             `json:"id"`
	DownloadID          *string         `json:"downloadId"`
}

// History is a page of download history.
type History struct {
	arr.Page[SortKey]
	Records []Download `json:"records"`
}
