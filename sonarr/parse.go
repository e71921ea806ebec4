package sonarr

type SeriesTitleInfo struct {
	Title            string `json:"title"`
	TitleWithoutYear string `json:"titleWithoutYear"`
	Year             int    `json:"year"`
}

type ParsedEpisodeInfo struct {
	ReleaseTitle             string          `json:"releaseTitle"`
	SeriesTitle              string          `json:"seriesTitle"`
	SeriesTitleInfo          SeriesTitleInfo `json:"seriesTitleInfo"`
	Quality                  QualityRevision `json:"quality"`
	SeasonNumber             int             `json:"seasonNumber"`
	EpisodeNumbers           []int           `json:"episodeNumbers"`
	AbsoluteEpisodeNumbers   []int           `json:"absoluteEpisodeNumbers"`
	Language                 string          `json:"language"`
	FullSeason               bool            `json:"fullSeason"`
	Special                  bool            `json:"special"`
	ReleaseGroup             string          `json:"releaseGroup"`
	ReleaseHash              string          `json:"releaseHash"`
	IsDaily                  bool            `json:"isDaily"`
	IsAbsoluteNumbering      bool            `json:"isAbsoluteNumbering"`
	IsPossibleSpecialEpisode bool            `json:"isPossibleSpecialEpisode"`
}

// ParseResult is returned by /parse. Series and Episodes are set only when
// the title matched a known series.
type ParseResult struct {
	Title             string            `json:"title"`
	ParsedEpisodeInfo ParsedEpisodeInfo `json:"parsedEpisodeInfo"`
	Episodes          []Episode         `json:"episodes"`
	Series            *Series           `json:"series"`
}
