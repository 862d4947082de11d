package models

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Upload is one multipart file handed to the lifecycle engine.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Narrative holds the optional free-text portfolio fields.
type Narrative struct {
	Statement       *string
	Postcode        *string
	Comments        *string
	TaskDescription *string
	JobType         *string
	ReasonForTask   *string
	ObjectiveOfJob  *string
	Method          *string
}

// CreatePortfolioInput carries form fields as received. Unit, LearningOutcome,
// Criteria and LinkedCriteria are JSON-encoded strings.
type CreatePortfolioInput struct {
	Title           string `validate:"required"`
	Unit            string `validate:"required"`
	LearningOutcome string
	Criteria        string `validate:"required"`
	LinkedCriteria  string
	Narrative
	DateTime *time.Time
	Status   string
	Images   []Upload
}

// UpdatePortfolioInput fields left nil or empty keep their current value.
// ExistingImages is a JSON array of references to retain.
type UpdatePortfolioInput struct {
	ID              uuid.UUID
	Title           *string
	Unit            *string
	LearningOutcome *string
	Criteria        *string
	LinkedCriteria  *string
	Narrative
	Status         *string
	ExistingImages *string
	Images         []Upload
}

type FeedbackInput struct {
	ID               uuid.UUID
	AssessorComments *string `json:"assessorComments"`
	Status           string  `json:"status"`
}

// PortfolioRecordUpdate is the merged write applied in a single statement.
// SubmissionIncrement and HistoryEntry are applied atomically by the store.
type PortfolioRecordUpdate struct {
	ID              uuid.UUID
	Title           string
	Unit            Unit
	LearningOutcome LearningOutcome
	Criteria        Criteria
	LinkedCriteria  []LinkedCriteria
	Narrative
	Images              []string
	AssessorComments    *string
	Status              Status
	SubmissionIncrement int
	HistoryEntry        StatusChange
	UpdatedAt           time.Time
}
