package domain

import "time"

type Review struct {
	ID            int64     `json:"id"`
	ServiceID     int64     `json:"service"`
	SeekerID      int64     `json:"seeker"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	SeekerDetails *User     `json:"seeker_details,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
