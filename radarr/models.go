package radarr

import (
	"time"

	"github.com/reoring/goarr/arr"
	"github.com/reoring/goarr/codec"
	"github.com/reoring/goarr/record"
)

// SortKey orders queue pages.
type SortKey int

const (
	SortTimeLeft SortKey = iota + 1
	SortTitle
	SortEstimatedCompletion
	SortAdded
	SortProgress
	SortProtocol
	SortQuality
	SortSize
	SortStatus
)

// SortKeys is the wire table for SortKey.
var SortKeys = codec.RegisterEnum(map[SortKey]string{
	SortTimeLeft:            "timeleft",
	SortTitle:               "title",
	SortEstimatedCompletion: "estimatedCompletionTime",
	SortAdded:               "added",
	SortProgress:            "progress",
	SortProtocol:            "protocol",
	SortQuality:             "quality",
	SortSize:                "size",
	SortStatus:              "status",
})

func (k SortKey) String() string { return SortKeys.Wire(k) }

type Image struct {
	CoverType string  `json:"coverType"`
	URL       *string `json:"url"`
	RemoteURL *string `json:"remoteUrl"`
}

type Rating struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

type Collection struct {
	Name   string  `json:"name"`
	TMDBID int     `json:"tmdbId"`
	Images []Image `json:"images" goarr:"default"`
}

// MovieFile is the file backing a downloaded movie.
type MovieFile struct {
	MovieID             int       `json:"movieId"`
	RelativePath        string    `json:"relativePath"`
	Path                string    `json:"path"`
	Size                int64     `json:"size"`
	DateAdded           time.Time `json:"dateAdded"`
	IndexerFlags        int       `json:"indexerFlags"`
	QualityCutoffNotMet bool      `json:"qualityCutoffNotMet"`
	ReleaseGroup        *string   `json:"releaseGroup"`
	ID                  int       `json:"id"`
}

// Movie is returned by /movie and /calendar.
type Movie struct {
	ID                  int         `json:"id"`
	Title               string      `json:"title"`
	SortTitle           string      `json:"sortTitle"`
	SizeOnDisk          int64       `json:"sizeOnDisk"`
	Overview            string      `json:"overview"`
	InCinemas           *time.Time  `json:"inCinemas"`
	PhysicalRelease     *time.Time  `json:"physicalRelease"`
	DigitalRelease      *time.Time  `json:"digitalRelease"`
	Images              []Image     `json:"images" goarr:"default"`
	Website             *string     `json:"website"`
	Year                int         `json:"year"`
	HasFile             bool        `json:"hasFile"`
	YouTubeTrailerID    *string     `json:"youTubeTrailerId"`
	Studio              *string     `json:"studio"`
	Path                string      `json:"path"`
	RootFolderPath      *string     `json:"rootFolderPath"`
	QualityProfileID    int         `json:"qualityProfileId"`
	Monitored           bool        `json:"monitored"`
	MinimumAvailability string      `json:"minimumAvailability"`
	IsAvailable         bool        `json:"isAvailable"`
	FolderName          *string     `json:"folderName"`
	Runtime             int         `json:"runtime"`
	CleanTitle          string      `json:"cleanTitle"`
	IMDBID              *string     `json:"imdbId"`
	TMDBID              int         `json:"tmdbId"`
	TitleSlug           string      `json:"titleSlug"`
	Certification       *string     `json:"certification"`
	Genres              []string    `json:"genres" goarr:"default"`
	Tags                []int       `json:"tags" goarr:"default"`
	Added               time.Time   `json:"added"`
	Ratings             Rating      `json:"ratings"`
	Collection          *Collection `json:"collection"`
	Status              string      `json:"status"`
	MovieFile           *MovieFile  `json:"movieFile"`
}

// QueueItem is an in-flight download.
type QueueItem struct {
	MovieID                 int            `json:"movieId"`
	Size                    int64          `json:"size"`
	Title                   string         `json:"title"`
	SizeLeft                int64          `json:"sizeleft"`
	TimeLeft                *time.Duration `json:"timeleft"`
	EstimatedCompletionTime *time.Time     `json:"estimatedCompletionTime"`
	Status                  string         `json:"status"`
	TrackedDownloadStatus   *string        `json:"trackedDownloadStatus"`
	TrackedDownloadState    *string        `json:"trackedDownloadState"`
	StatusMessages          []string       `json:"statusMessages" goarr:"default"`
	DownloadID              *string        `json:"downloadId"`
	Protocol                string         `json:"protocol"`
	DownloadClient          *string        `json:"downloadClient"`
	Indexer                 *string        `json:"indexer"`
	OutputPath              *string        `json:"outputPath"`
	ID                      int            `json:"id"`
}

// QueuePage is the paged /queue response.
type QueuePage struct {
	arr.Page[SortKey]
	Records []QueueItem `json:"records"`
}

func init() {
	record.MustRegister[Movie]()
	record.MustRegister[MovieFile]()
	record.MustRegister[QueueItem]()
	record.MustRegister[QueuePage]()
}
