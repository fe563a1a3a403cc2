package monitor

import "time"

type GetMonitorResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Url              string    `json:"url"`
	CheckIntervalSec int32     `json:"check_interval_sec"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListMonitorsResponse struct {
	Limit    int32                `json:"limit"`
	Offset   int32                `json:"offset"`
	Monitors []GetMonitorResponse `json:"monitors"`
}
