package sonarr

import "github.com/reoring/goarr/record"

// Every response record is registered up front so declaration mistakes
// surface at init and the CLI can decode by name. Registration runs in init,
// after the enum tables in enums.go exist.
func init() {
	record.MustRegister[Quality]()
	record.MustRegister[QualityRevision]()
	record.MustRegister[QualityProfile]()
	record.MustRegister[QualityProper]()
	record.MustRegister[QualityAllowedProfile]()
	record.MustRegister[Series]()
	record.MustRegister[Season]()
	record.MustRegister[Tag]()
	record.MustRegister[Image]()
	record.MustRegister[Episode]()
	record.MustRegister[EpisodeFile]()
	record.MustRegister[WantedMissing]()
	record.MustRegister[History]()
	record.MustRegister[ParseResult]()
	record.MustRegister[QueueItem]()
	record.MustRegister[Release]()
	record.MustRegister[ReleasePush]()
	record.MustRegister[DiskSpace]()
	record.MustRegister[RootFolder]()
	record.MustRegister[SystemStatus]()
	record.MustRegister[SystemBackup]()
	record.MustRegister[CommandStatus]()
}
