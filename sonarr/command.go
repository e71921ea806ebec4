package sonarr

import "time"

// CommandStatusBody echoes the command as Sonarr queued it.
type CommandStatusBody struct {
	IsNewSeries         bool   `json:"isNewSeries"`
	SendUpdatesToClient bool   `json:"sendUpdatesToClient"`
	UpdateScheduledTask bool   `json:"updateScheduledTask"`
	CompletionMessage   string `json:"completionMessage"`
	RequiresDiskAccess  bool   `json:"requiresDiskAccess"`
	IsExclusive         bool   `json:"isExclusive"`
	Name                string `json:"name"`
	Trigger             string `json:"trigger"`
	SuppressMessages    bool   `json:"suppressMessages"`
}

// CommandStatus is returned by /command.
type CommandStatus struct {
	Name                string             `json:"name"`
	State               string             `json:"state"`
	StartedOn           time.Time          `json:"startedOn"`
	StateChangeTime     time.Time          `json:"stateChangeTime"`
	SendUpdatesToClient bool               `json:"sendUpdatesToClient"`
	ID                  int                `json:"id"`
	Message             *string            `json:"message"`
	Body                *CommandStatusBody `json:"body"`
	Priority            *string            `json:"priority"`
	Status              *string            `json:"status"`
	Queued              *time.Time         `json:"queued"`
	Started             *time.Time         `json:"started"`
	Trigger             *string            `json:"trigger"`
	Manual              *bool              `json:"manual"`
	UpdateScheduledTask *bool              `json:"updateScheduledTask"`
}
