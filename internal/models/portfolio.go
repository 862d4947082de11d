package models

import (
	"time"

	"github.com/google/uuid"
)

type Unit struct {
	Number string `json:"number" bson:"number" validate:"required"`
	Title  string `json:"title" bson:"title"`
}

type LearningOutcome struct {
	Number      string `json:"number" bson:"number"`
	Description string `json:"description" bson:"description"`
}

type Criteria struct {
	Number      string `json:"number" bson:"number" validate:"required"`
	Description string `json:"description" bson:"description"`
}

type LinkedCriteria struct {
	UnitNumber      string `json:"unitNumber" bson:"unitNumber"`
	LearningOutcome string `json:"learningOutcome" bson:"learningOutcome"`
	CriteriaNumber  string `json:"criteriaNumber" bson:"criteriaNumber"`
}

// StatusChange is one append-only audit entry.
type StatusChange struct {
	Status    Status    `json:"status"`
	ChangedBy uuid.UUID `json:"changedBy"`
	Date      time.Time `json:"date"`
	Comments  *string   `json:"comments,omitempty"`
}

type Portfolio struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"userId"`
	Title            string           `json:"title"`
	Unit             Unit             `json:"unit"`
	LearningOutcome  LearningOutcome  `json:"learningOutcome"`
	Criteria         Criteria         `json:"criteria"`
	LinkedCriteria   []LinkedCriteria `json:"linkedCriteria"`
	Statement        *string          `json:"statement,omitempty"`
	DateTime         time.Time        `json:"dateTime"`
	Postcode         *string          `json:"postcode,omitempty"`
	Images           []string         `json:"images"`
	Comments         *string          `json:"comments,omitempty"`
	TaskDescription  *string          `json:"taskDescription,omitempty"`
	JobType          *string          `json:"jobType,omitempty"`
	ReasonForTask    *string          `json:"reasonForTask,omitempty"`
	ObjectiveOfJob   *string          `json:"objectiveOfJob,omitempty"`
	Method           *string          `json:"method,omitempty"`
	AssessorComments *string          `json:"assessorComments,omitempty"`
	Status           Status           `json:"status"`
	StatusHistory    []StatusChange   `json:"statusHistory"`
	SubmissionCount  int              `json:"submissionCount"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// Owner is the account summary joined onto portfolio listings.
type Owner struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type PortfolioWithOwner struct {
	*Portfolio
	User *Owner `json:"user,omitempty"`
}

// ExportedDocument is a rendered portfolio ready for download.
type ExportedDocument struct {
	Filename string
	Data     []byte
}
