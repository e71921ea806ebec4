package sonarr

import "time"

// QueueItem is an in-flight download returned by /queue.
type QueueItem struct {
	Series                  Series          `json:"series"`
	Episode                 Episode         `json:"episode"`
	Quality                 QualityRevision `json:"quality"`
	Size                    int64           `json:"size"`
	Title                   string          `json:"title"`
	SizeLeft                int64           `json:"sizeleft"`
	TimeLeft                time.Duration   `json:"timeleft"`
	EstimatedCompletionTime time.Time       `json:"estimatedCompletionTime"`
	Status                  string          `json:"status"`
	TrackedDownloadStatus   string          `json:"trackedDownloadStatus"`
	StatusMessages          []string        `json:"statusMessages"`
	DownloadID              string          `json:"downloadId"`
	Protocol                string          `json:"protocol"`
	ID                      int             `json:"id"`
}
