package domain

const (
	StatusOffline   = "SYSTEM OFFLINE"
	StatusStable    = "SYSTEM STABLE"
	LocationUnknown = "UNKNOWN"
)

type SessionState struct {
	Status       string
	Inventory    []Item
	Location     string
	CurrentImage *LogEntry
}

func InitialSessionState() SessionState {
	return SessionState{
		Status:    StatusOffline,
		Inventory: []Item{},
		Location:  LocationUnknown,
	}
}

type SectorID int

type AudioThemeState struct {
	CurrentTheme *SectorID
	Muted        bool
}
