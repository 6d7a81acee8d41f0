// Package domain defines the persistence models for employees, tasks, chat
// transcripts, and job applications. These types are mapped with GORM and
// form the core data layer of the HR dashboard application.
package domain

import "time"

// Task statuses. Transitions are one-way: Pending → Done.
const (
	TaskPending = "Pending"
	TaskDone    = "Done"
)

// Chat roles stored in the transcript.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// JobRoles is the fixed set of roles an applicant can apply for. It drives
// both the application form and the applicant chatbot's "job roles" reply.
var JobRoles = []string{
	"Data Scientist", "Software Engineer", "HR Manager", "Product Manager",
	"DevOps Engineer", "UX Designer", "Business Analyst", "QA Engineer",
}

// Employee is the profile record keyed by the employee identifier. A row is
// created on first dashboard visit or first password set and is never deleted.
//
// Fields:
//   - ID: employee identifier chosen at login (primary key).
//   - Name / Age / Income / Satisfaction / OverTime / Involvement / Feedback:
//     profile fields editable from the dashboard form.
//   - LeavesTaken: leave-days counter; preserved across profile saves.
//   - PasswordHash: bcrypt hash; nil until the first password is set, which is
//     how the login flow distinguishes first-time users.
type Employee struct {
	ID           string    `json:"id"            gorm:"type:varchar(64);primaryKey"`
	Name         string    `json:"name"          gorm:"type:varchar(255);not null"`
	Age          int       `json:"age"           gorm:"not null"`
	Income       int       `json:"income"        gorm:"not null"`
	Satisfaction int       `json:"satisfaction"  gorm:"not null;check:satisfaction BETWEEN 1 AND 4"`
	OverTime     string    `json:"overtime"      gorm:"type:varchar(3);not null;default:'No'"`
	Involvement  int       `json:"involvement"   gorm:"not null;check:involvement BETWEEN 1 AND 4"`
	Feedback     string    `json:"feedback"      gorm:"type:text"`
	LeavesTaken  int       `json:"leaves_taken"  gorm:"not null;default:0"`
	PasswordHash *string   `json:"-"             gorm:"type:varchar(72)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName returns the database table name for Employee.
func (Employee) TableName() string { return "employees" }

// Task is a personal to-do item owned by an employee. Tasks are created as
// Pending and may only transition to Done; they are never deleted.
type Task struct {
	ID          uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	EmployeeID  string    `json:"employee_id" gorm:"type:varchar(64);not null;index:idx_employee_tasks"`
	Description string    `json:"description" gorm:"type:varchar(255);not null"`
	Status      string    `json:"status"      gorm:"type:varchar(8);not null;check:status IN ('Pending','Done')"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Task.
func (Task) TableName() string { return "tasks" }

// ChatMessage is a single transcript entry, owned either by an employee id or
// by a synthetic applicant session id. The transcript is append-only and
// ordered by creation time (row id breaks ties within the same timestamp).
type ChatMessage struct {
	ID        uint      `json:"id"        gorm:"primaryKey;autoIncrement"`
	OwnerID   string    `json:"owner_id"  gorm:"type:varchar(64);not null;index:idx_owner_messages,priority:1"`
	Role      string    `json:"role"      gorm:"type:varchar(8);not null;check:role IN ('user','bot')"`
	Content   string    `json:"content"   gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_owner_messages,priority:2"`
}

// TableName returns the database table name for ChatMessage.
func (ChatMessage) TableName() string { return "chat_messages" }

// Application is a job application submitted from the applicant portal.
// Applications are append-only.
type Application struct {
	ID          uint      `json:"id"          gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name"        gorm:"type:varchar(255);not null"`
	Designation string    `json:"designation" gorm:"type:varchar(255);not null"`
	Experience  int       `json:"experience"  gorm:"not null"`
	Role        string    `json:"role"        gorm:"type:varchar(64);not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the database table name for Application.
func (Application) TableName() string { return "applications" }

// ValidJobRole reports whether role is one of the fixed JobRoles.
func ValidJobRole(role string) bool {
	for _, r := range JobRoles {
		if r == role {
			return true
		}
	}
	return false
}
