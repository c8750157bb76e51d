package models

import "time"

// Application lifecycle statuses
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// Task statuses
const (
	TaskOpen   = "open"
	TaskClosed = "closed"
)

// User roles
const (
	RoleVolunteer = "volunteer"
	RoleOrganizer = "organizer"
)

// Volunteer represents a registered user. TotalHours and Badges are only
// mutated by the completion engine.
type Volunteer struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:volunteer" json:"role"`
	Skills       []string  `gorm:"serializer:json" json:"skills"`
	TotalHours   float64   `gorm:"default:0" json:"total_hours"`
	Badges       []string  `gorm:"serializer:json" json:"badges"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasBadge reports whether the volunteer already holds the named badge.
func (v *Volunteer) HasBadge(name string) bool {
	for _, b := range v.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// Event is a venue-bound occasion that tasks belong to
type Event struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	OrganizerID string    `gorm:"not null" json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Task represents a time-boxed shift belonging to an event
type Task struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	EventID        string    `gorm:"not null;index" json:"event_id"`
	Title          string    `gorm:"not null" json:"title"`
	RequiredSkills []string  `gorm:"serializer:json" json:"required_skills"`
	StartTime      time.Time `gorm:"not null" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	MaxVolunteers  int       `gorm:"default:1" json:"max_volunteers"`
	FilledSpots    int       `gorm:"default:0" json:"filled_spots"`
	Status         string    `gorm:"default:open" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// MatchesSkills reports whether the task's required skills share at least
// one tag with the given skill set.
func (t *Task) MatchesSkills(skills []string) bool {
	for _, req := range t.RequiredSkills {
		for _, s := range skills {
			if req == s {
				return true
			}
		}
	}
	return false
}

// Application is a volunteer's request to work a task
type Application struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	VolunteerID  string     `gorm:"not null;index:idx_vol_task" json:"volunteer_id"`
	TaskID       string     `gorm:"not null;index:idx_vol_task" json:"task_id"`
	Status       string     `gorm:"default:pending" json:"status"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	Rating       *int       `json:"rating,omitempty"`
	Feedback     string     `json:"feedback,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
