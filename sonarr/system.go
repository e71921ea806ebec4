package sonarr

import "time"

// DiskSpace is returned by /diskspace.
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

type UnmappedFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// RootFolder is returned by /rootfolder.
type RootFolder struct {
	Path            string           `json:"path"`
	FreeSpace       int64            `json:"freeSpace"`
	UnmappedFolders []UnmappedFolder `json:"unmappedFolders"`
	ID              int              `json:"id"`
	TotalSpace      *int64           `json:"totalSpace"`
}

// SystemStatus is returned by /system/status.
type SystemStatus struct {
	Version           string    `json:"version"`
	BuildTime         time.Time `json:"buildTime"`
	IsDebug           bool      `json:"isDebug"`
	IsProduction      bool      `json:"isProduction"`
	IsAdmin           bool      `json:"isAdmin"`
	IsUserInteractive bool      `json:"isUserInteractive"`
	StartupPath       string    `json:"startupPath"`
	AppData           string    `json:"appData"`
	OSVersion         string    `json:"osVersion"`
	IsMono            bool      `json:"isMono"`
	IsLinux           bool      `json:"isLinux"`
	IsWindows         bool      `json:"isWindows"`
	Branch            string    `json:"branch"`
	Authentication    bool      `json:"authentication"`
	URLBase           string    `json:"urlBase"`
	StartOfWeek       *int      `json:"startOfWeek"`
	OSName            *string   `json:"osName"`
	RuntimeVersion    *string   `json:"runtimeVersion"`
	RuntimeName       *string   `json:"runtimeName"`
	IsMonoRuntime     *bool     `json:"isMonoRuntime"`
	IsOSX             *bool     `json:"isOsx"`
	SQLiteVersion     *string   `json:"sqliteVersion"`
}

// SystemBackup is returned by /system/backup.
type SystemBackup struct {
	Name string    `json:"name"`
	Path string    `json:"path"`
	Type string    `json:"type"`
	Time time.Time `json:"time"`
	ID   int       `json:"id"`
}
