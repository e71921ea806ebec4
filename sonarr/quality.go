package sonarr

// Quality is a quality definition.
type Quality struct {
	ID         int     `json:"id"`
	Name       *string `json:"name"`
	Source     *string `json:"source"`
	Resolution *int    `json:"resolution"`
	Weight     *int    `json:"weight"`
}

// Revision is the version of a release.
type Revision struct {
	Version int `json:"version"`
	Real    int `json:"real"`
}

// QualityRevision pairs a quality with its revision.
type QualityRevision struct {
	Quality  Quality  `json:"quality"`
	Revision Revision `json:"revision"`
}

type QualityValue struct {
	Name    string    `json:"name"`
	Allowed []Quality `json:"allowed"`
	Cutoff  Quality   `json:"cutoff"`
	ID      int       `json:"id"`
}

// QualityProfile is the profile attached to series in calendar results.
type QualityProfile struct {
	Value    QualityValue `json:"value"`
	IsLoaded bool         `json:"isLoaded"`
}

// QualityProper is the quality report of a file or release.
type QualityProper struct {
	Quality Quality `json:"quality"`
	Proper  bool    `json:"proper"`
}

type QualityAllowed struct {
	Quality Quality `json:"quality"`
	Allowed bool    `json:"allowed"`
}

// QualityAllowedProfile is returned by /profile.
type QualityAllowedProfile struct {
	Name     string           `json:"name"`
	Cutoff   Quality          `json:"cutoff"`
	Items    []QualityAllowed `json:"items"`
	ID       int              `json:"id"`
	Language *string          `json:"language"`
}
