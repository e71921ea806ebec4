// Package sonarr is a typed client for the Sonarr v2 API. Every response is
// decoded through the record layer, so a payload that drifts from the
// declared records fails with goarr.Issues instead of yielding zero values.
package sonarr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reoring/goarr/arr"
	"github.com/reoring/goarr/codec"
	"github.com/reoring/goarr/record"
	"github.com/reoring/goarr/transport"
)

const (
	DefaultPort     = 8989
	DefaultBasePath = "/api/"
)

// Client talks to one Sonarr instance. It is safe for concurrent use.
type Client struct {
	r transport.Requester
}

// New builds a Client over an HTTP transport. Port and base path default to
// Sonarr's.
func New(cfg transport.Config) (*Client, error) {
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBasePath
	}
	tc, err := transport.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("sonarr: %w", err)
	}
	return NewWithRequester(tc), nil
}

// NewWithRequester builds a Client over any Requester.
func NewWithRequester(r transport.Requester) *Client { return &Client{r: r} }

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("sonarr: %s: %w", op, err)
}

func get[T any](ctx context.Context, c *Client, op, path string, q url.Values) (T, error) {
	v, err := arr.Fetch[T](ctx, c.r, transport.Request{Path: path, Query: q})
	return v, wrap(op, err)
}

func list[T any](ctx context.Context, c *Client, op, path string, q url.Values) ([]T, error) {
	vs, err := arr.FetchList[T](ctx, c.r, transport.Request{Path: path, Query: q})
	return vs, wrap(op, err)
}

func send[T any](ctx context.Context, c *Client, op, method, path string, body any) (T, error) {
	v, err := arr.Fetch[T](ctx, c.r, transport.Request{Method: method, Path: path, Body: body})
	return v, wrap(op, err)
}

func del(ctx context.Context, c *Client, op, path string, q url.Values) (bool, error) {
	ok, err := arr.Delete(ctx, c.r, transport.Request{Path: path, Query: q})
	return ok, wrap(op, err)
}

// Calendar lists episodes airing between start and end. Zero dates are left
// to the server (today and today+2).
func (c *Client) Calendar(ctx context.Context, start, end codec.Date) ([]Episode, error) {
	q := url.Values{}
	if !start.IsZero() {
		q.Set("start", start.String())
	}
	if !end.IsZero() {
		q.Set("end", end.String())
	}
	return list[Episode](ctx, c, "calendar", "calendar", q)
}

// Commands lists the currently queued and running commands.
func (c *Client) Commands(ctx context.Context) ([]CommandStatus, error) {
	return list[CommandStatus](ctx, c, "commands", "command", nil)
}

// Command returns the status of one command.
func (c *Client) Command(ctx context.Context, id int) (CommandStatus, error) {
	return get[CommandStatus](ctx, c, "command "+strconv.Itoa(id), "command/"+strconv.Itoa(id), nil)
}

func (c *Client) postCommand(ctx context.Context, name string, args map[string]any) (CommandStatus, error) {
	body := map[string]any{"name": name}
	for k, v := range args {
		body[k] = v
	}
	return send[CommandStatus](ctx, c, "command "+name, http.MethodPost, "command", body)
}

// RefreshAllSeries refreshes metadata for every series.
func (c *Client) RefreshAllSeries(ctx context.Context) (CommandStatus, error) {
	return c.postCommand(ctx, "RefreshSeries", nil)
}

// RefreshSeries refreshes metadata for one series.
func (c *Client) RefreshSeries(ctx context.Context, seriesID int) (CommandStatus, error) {
	return c.postCommand(ctx, "RefreshSeries", map[string]any{"seriesId": seriesID})
}

func (c *Client) RescanAllSeries(ctx context.Context) (CommandStatus, error) {
	return c.postCommand(ctx, "RescanSeries", nil)
}

func (c *Client) RescanSeries(ctx context.Context, seriesID int) (CommandStatus, error) {
	return c.postCommand(ctx, "RescanSeries", map[string]any{"seriesId": seriesID})
}

// SearchEpisodes searches indexers for the given episodes.
func (c *Client) SearchEpisodes(ctx context.Context, episodeIDs []int) (CommandStatus, error) {
	return c.postCommand(ctx, "EpisodeSearch", map[string]any{"episodeIds": nonNil(episodeIDs)})
}

func (c *Client) SearchSeason(ctx context.Context, seriesID, seasonNumber int) (CommandStatus, error) {
	return c.postCommand(ctx, "SeasonSearch", map[string]any{"seriesId": seriesID, "seasonNumber": seasonNumber})
}

func (c *Client) SearchSeries(ctx context.Context, seriesID int) (CommandStatus, error) {
	return c.postCommand(ctx, "SeriesSearch", map[string]any{"seriesId": seriesID})
}

// SyncRSS triggers an RSS sync of all indexers.
func (c *Client) SyncRSS(ctx context.Context) (CommandStatus, error) {
	return c.postCommand(ctx, "RssSync", nil)
}

func (c *Client) RenameFiles(ctx context.Context, fileIDs []int) (CommandStatus, error) {
	return c.postCommand(ctx, "RenameFiles", map[string]any{"files": nonNil(fileIDs)})
}

func (c *Client) RenameSeries(ctx context.Context, seriesIDs []int) (CommandStatus, error) {
	return c.postCommand(ctx, "RenameSeries", map[string]any{"seriesIds": nonNil(seriesIDs)})
}

// Backup starts a manual backup.
func (c *Client) Backup(ctx context.Context) (CommandStatus, error) {
	return c.postCommand(ctx, "Backup", nil)
}

// SearchMissingEpisodes searches for every monitored episode without a file.
func (c *Client) SearchMissingEpisodes(ctx context.Context) (CommandStatus, error) {
	return c.postCommand(ctx, "missingEpisodeSearch", nil)
}

func (c *Client) DiskSpace(ctx context.Context) ([]DiskSpace, error) {
	return list[DiskSpace](ctx, c, "diskspace", "diskspace", nil)
}

// Episodes lists the episodes of a series.
func (c *Client) Episodes(ctx context.Context, seriesID int) ([]Episode, error) {
	return list[Episode](ctx, c, "episodes", "episode", url.Values{"seriesId": {strconv.Itoa(seriesID)}})
}

func (c *Client) Episode(ctx context.Context, id int) (Episode, error) {
	return get[Episode](ctx, c, "episode "+strconv.Itoa(id), "episode/"+strconv.Itoa(id), nil)
}

// UpdateEpisode saves ep. Sonarr only honours changes to Monitored.
func (c *Client) UpdateEpisode(ctx context.Context, ep Episode) (Episode, error) {
	body, err := record.Encode(ctx, &ep)
	if err != nil {
		return Episode{}, wrap("update episode", err)
	}
	return send[Episode](ctx, c, "update episode", http.MethodPut, "episode", body)
}

func (c *Client) EpisodeFiles(ctx context.Context, seriesID int) ([]EpisodeFile, error) {
	return list[EpisodeFile](ctx, c, "episode files", "episodefile", url.Values{"seriesId": {strconv.Itoa(seriesID)}})
}

func (c *Client) EpisodeFile(ctx context.Context, id int) (EpisodeFile, error) {
	return get[EpisodeFile](ctx, c, "episode file "+strconv.Itoa(id), "episodefile/"+strconv.Itoa(id), nil)
}

func (c *Client) DeleteEpisodeFile(ctx context.Context, id int) (bool, error) {
	return del(ctx, c, "delete episode file", "episodefile/"+strconv.Itoa(id), nil)
}

// UpdateEpisodeFile sets the quality of an episode file.
func (c *Client) UpdateEpisodeFile(ctx context.Context, id int, quality QualityRevision) (EpisodeFile, error) {
	body, err := record.Encode(ctx, &quality)
	if err != nil {
		return EpisodeFile{}, wrap("update episode file", err)
	}
	return send[EpisodeFile](ctx, c, "update episode file", http.MethodPut, "episodefile/"+strconv.Itoa(id), body)
}

// HistoryQuery selects a history page. Zero values select sort key date,
// ascending, page 1 of 10.
type HistoryQuery struct {
	arr.PageQuery[SortKey]
	// EpisodeID restricts the history to one episode when non-zero.
	EpisodeID int
}

func (c *Client) History(ctx context.Context, hq HistoryQuery) (History, error) {
	pq := hq.PageQuery
	if pq.SortKey == 0 {
		pq.SortKey = SortDate
	}
	if pq.SortDirection == 0 {
		pq.SortDirection = arr.Ascending
	}
	q := pq.Values(SortKeys)
	if hq.EpisodeID != 0 {
		q.Set("episodeId", strconv.Itoa(hq.EpisodeID))
	}
	return get[History](ctx, c, "history", "history", q)
}

// WantedMissing pages through monitored episodes without files. Zero values
// select sort key airDateUtc, descending, page 1 of 10.
func (c *Client) WantedMissing(ctx context.Context, pq arr.PageQuery[SortKey]) (WantedMissing, error) {
	if pq.SortKey == 0 {
		pq.SortKey = SortAirDate
	}
	if pq.SortDirection == 0 {
		pq.SortDirection = arr.Descending
	}
	return get[WantedMissing](ctx, c, "wanted missing", "wanted/missing", pq.Values(SortKeys))
}

func (c *Client) Queue(ctx context.Context) ([]QueueItem, error) {
	return list[QueueItem](ctx, c, "queue", "queue", nil)
}

// DeleteQueueItem removes a download from the queue, optionally adding the
// release to the blacklist.
func (c *Client) DeleteQueueItem(ctx context.Context, id int, blacklist bool) (bool, error) {
	q := url.Values{"id": {strconv.Itoa(id)}, "blacklist": {strconv.FormatBool(blacklist)}}
	return del(ctx, c, "delete queue item", "queue", q)
}

// ParseTitle parses a release title.
func (c *Client) ParseTitle(ctx context.Context, title string) (ParseResult, error) {
	return get[ParseResult](ctx, c, "parse title", "parse", url.Values{"title": {title}})
}

// ParsePath parses a file path.
func (c *Client) ParsePath(ctx context.Context, path string) (ParseResult, error) {
	return get[ParseResult](ctx, c, "parse path", "parse", url.Values{"path": {path}})
}

func (c *Client) Profiles(ctx context.Context) ([]QualityAllowedProfile, error) {
	return list[QualityAllowedProfile](ctx, c, "profiles", "profile", nil)
}

// Releases searches indexers for releases of an episode.
func (c *Client) Releases(ctx context.Context, episodeID int) ([]Release, error) {
	return list[Release](ctx, c, "releases", "release", url.Values{"episodeId": {strconv.Itoa(episodeID)}})
}

// AddRelease sends a release from Sonarr's search cache to the download
// client. The cache lives for 30 minutes; an expired guid is a not-found error.
func (c *Client) AddRelease(ctx context.Context, guid string, indexerID int) ([]Release, error) {
	body := map[string]any{"guid": guid, "indexerId": indexerID}
	vs, err := arr.FetchList[Release](ctx, c.r, transport.Request{Method: http.MethodPost, Path: "release", Body: body})
	if transport.IsNotFound(err) {
		return nil, fmt.Errorf("sonarr: add release: %s not found: %w", guid, err)
	}
	return vs, wrap("add release", err)
}

// PushRelease offers a release to Sonarr, which grabs it if it is wanted.
func (c *Client) PushRelease(ctx context.Context, push ReleasePush) ([]Release, error) {
	body, err := record.Encode(ctx, &push)
	if err != nil {
		return nil, wrap("push release", err)
	}
	vs, err := arr.FetchList[Release](ctx, c.r, transport.Request{Method: http.MethodPost, Path: "release/push", Body: body})
	return vs, wrap("push release", err)
}

func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	return list[RootFolder](ctx, c, "root folders", "rootfolder", nil)
}

// AllSeries lists every series in the library.
func (c *Client) AllSeries(ctx context.Context) ([]Series, error) {
	return list[Series](ctx, c, "series", "series", nil)
}

// Series returns one series; a missing id is a not-found transport error.
func (c *Client) Series(ctx context.Context, id int) (Series, error) {
	return get[Series](ctx, c, "series "+strconv.Itoa(id), "series/"+strconv.Itoa(id), nil)
}

// NewSeries describes a series to add. Exactly one of Path and
// RootFolderPath must be set. SeasonFolder and Monitored default to true.
type NewSeries struct {
	TVDBID         int
	Title          string
	ProfileID      int
	TitleSlug      string
	Images         []Image
	Seasons        []Season
	Path           string
	RootFolderPath string
	TVRageID       int
	SeasonFolder   *bool
	Monitored      *bool

	IgnoreEpisodesWithFiles    bool
	IgnoreEpisodesWithoutFiles bool
	SearchForMissingEpisodes   bool
}

// ErrSeriesLocation is returned by AddSeries when not exactly one of Path and
// RootFolderPath is set.
var ErrSeriesLocation = errors.New("sonarr: must set exactly one of path and rootFolderPath")

func (c *Client) AddSeries(ctx context.Context, ns NewSeries) (Series, error) {
	if (ns.Path == "") == (ns.RootFolderPath == "") {
		return Series{}, ErrSeriesLocation
	}
	images, err := record.EncodeList(ctx, ns.Images)
	if err != nil {
		return Series{}, wrap("add series", err)
	}
	seasons, err := record.EncodeList(ctx, ns.Seasons)
	if err != nil {
		return Series{}, wrap("add series", err)
	}
	body := map[string]any{
		"tvdbId":       ns.TVDBID,
		"title":        ns.Title,
		"profileId":    ns.ProfileID,
		"titleSlug":    ns.TitleSlug,
		"images":       images,
		"seasons":      seasons,
		"seasonFolder": orTrue(ns.SeasonFolder),
		"monitored":    orTrue(ns.Monitored),
		"addOptions": map[string]any{
			"ignoreEpisodesWithFiles":    ns.IgnoreEpisodesWithFiles,
			"ignoreEpisodesWithoutFiles": ns.IgnoreEpisodesWithoutFiles,
			"searchForMissingEpisodes":   ns.SearchForMissingEpisodes,
		},
	}
	if ns.Path != "" {
		body["path"] = ns.Path
	}
	if ns.RootFolderPath != "" {
		body["rootFolderPath"] = ns.RootFolderPath
	}
	if ns.TVRageID != 0 {
		body["tvRageId"] = ns.TVRageID
	}
	return send[Series](ctx, c, "add series", http.MethodPost, "series", body)
}

func (c *Client) UpdateSeries(ctx context.Context, s Series) (Series, error) {
	body, err := record.Encode(ctx, &s)
	if err != nil {
		return Series{}, wrap("update series", err)
	}
	return send[Series](ctx, c, "update series", http.MethodPut, "series", body)
}

// DeleteSeries removes a series and, when deleteFiles is set, its files.
func (c *Client) DeleteSeries(ctx context.Context, id int, deleteFiles bool) (bool, error) {
	q := url.Values{"id": {strconv.Itoa(id)}, "deleteFiles": {strconv.FormatBool(deleteFiles)}}
	return del(ctx, c, "delete series", "series/"+strconv.Itoa(id), q)
}

// LookupSeries searches TheTVDB through Sonarr's metadata proxy.
func (c *Client) LookupSeries(ctx context.Context, term string) ([]Series, error) {
	return list[Series](ctx, c, "lookup series", "series/lookup", url.Values{"term": {term}})
}

func (c *Client) SystemStatus(ctx context.Context) (SystemStatus, error) {
	return get[SystemStatus](ctx, c, "system status", "system/status", nil)
}

func (c *Client) SystemBackups(ctx context.Context) ([]SystemBackup, error) {
	return list[SystemBackup](ctx, c, "system backups", "system/backup", nil)
}

func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	return list[Tag](ctx, c, "tags", "tag", nil)
}

func (c *Client) Tag(ctx context.Context, id int) (Tag, error) {
	return get[Tag](ctx, c, "tag "+strconv.Itoa(id), "tag/"+strconv.Itoa(id), nil)
}

func (c *Client) AddTag(ctx context.Context, label string) (Tag, error) {
	return send[Tag](ctx, c, "add tag", http.MethodPost, "tag", map[string]any{"label": label})
}

func (c *Client) UpdateTag(ctx context.Context, id int, label string) (Tag, error) {
	return send[Tag](ctx, c, "update tag", http.MethodPut, "tag", map[string]any{"label": label, "id": id})
}

func (c *Client) DeleteTag(ctx context.Context, id int) (bool, error) {
	return del(ctx, c, "delete tag", "tag/"+strconv.Itoa(id), nil)
}

func nonNil(ids []int) []int {
	if ids == nil {
		return []int{}
	}
	return ids
}

func orTrue(b *bool) bool { return b == nil || *b }
