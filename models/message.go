package models

// Типы сообщений, рассылаемых клиентам по WebSocket.
const (
	MessagePlayerRegistered  = "PLAYER_REGISTERED"
	MessageRosterCleared     = "ROSTER_CLEARED"
	MessageSchedulePublished = "SCHEDULE_PUBLISHED"
)

// RosterRoom is the websocket room every roster/schedule viewer joins.
const RosterRoom = "roster"

type RosterClearedPayload struct {
	DeletedCount int64 `json:"deletedCount"`
}

type SchedulePublishedPayload struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	Total    int    `json:"total"`
}
