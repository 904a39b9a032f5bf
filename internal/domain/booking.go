package domain

import "time"

// Booking represents a booked appointment slot
type Booking struct {
	ID         int64
	DoctorName string
	Date       string // каноничная дата dd-mm-yyyy
	Time       string // каноничное время hh:mm AM/PM
	Phone      string // последние 10 цифр номера
	CreatedAt  time.Time
}

// Holiday represents a hospital-wide holiday
type Holiday struct {
	ID       int64
	Date     string // каноничная дата dd-mm-yyyy
	Occasion string
}

// Leave represents an approved doctor leave for a single date
type Leave struct {
	ID         int64
	DoctorName string
	Date       string // каноничная дата dd-mm-yyyy
	Reason     string
}
