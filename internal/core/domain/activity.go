package domain

import (
	"errors"
	"time"
)

// DateLayout is the wire format of calendar dates (activities, galleries).
const DateLayout = "2006-01-02"

var ErrActivityNotFound = errors.New("activity not found")

// Activity is a scheduled event published in the back office.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Site        string    `json:"site"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
