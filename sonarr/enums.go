package sonarr

import "github.com/reoring/goarr/codec"

// SortKey orders history and wanted/missing pages.
type SortKey int

const (
	SortSeriesTitle SortKey = iota + 1
	SortDate
	SortAirDate
)

// SortKeys is the wire table for SortKey.
var SortKeys = codec.RegisterEnum(map[SortKey]string{
	SortSeriesTitle: "series.title",
	SortDate:        "date",
	SortAirDate:     "airDateUtc",
})

func (k SortKey) String() string { return SortKeys.Wire(k) }

// Protocol is a release download protocol.
type Protocol int

const (
	Usenet Protocol = iota + 1
	Torrent
)

// Protocols is the wire table for Protocol.
var Protocols = codec.RegisterEnum(map[Protocol]string{
	Usenet:  "Usenet",
	Torrent: "Torrent",
})

func (p Protocol) String() string { return Protocols.Wire(p) }
