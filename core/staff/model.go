package staff

import "time"

type CreateStaffRequest struct {
	Username          string `json:"username,omitempty"`
	IsManager         bool   `json:"isManager,omitempty"`
	PlainTextPassword string `json:"-"`
}

type Staff struct {
	Username       string
	HashedPassword string
	IsManager      bool
	Created        time.Time
}
