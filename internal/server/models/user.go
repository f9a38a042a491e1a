// Package models holds the domain records of the user directory.
package models

import "time"

// Status is the lifecycle state of a user record.
type Status int

const (
	StatusActive Status = iota
	StatusInactive
	StatusSuspended
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "ACTIVE"
	case StatusInactive:
		return "INACTIVE"
	case StatusSuspended:
		return "SUSPENDED"
	}
	return "UNKNOWN"
}

// User is a directory entry. ID zero means "not stored yet"; the store
// assigns ID, CreatedAt and UpdatedAt.
type User struct {
	ID        uint64
	Name      string
	Email     string
	Age       *int32
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a copy that shares no memory with u.
func (u User) Clone() User {
	if u.Age != nil {
		age := *u.Age
		u.Age = &age
	}
	return u
}
