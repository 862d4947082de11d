package models

import (
	"time"

	"github.com/google/uuid"
)

type PreviousStudy struct {
	FromMonthYear  string `json:"fromMonthYear,omitempty" bson:"fromMonthYear,omitempty"`
	ToMonthYear    string `json:"toMonthYear,omitempty" bson:"toMonthYear,omitempty"`
	Qualification  string `json:"qualification,omitempty" bson:"qualification,omitempty"`
	MajorSubject   string `json:"majorSubject,omitempty" bson:"majorSubject,omitempty"`
	Institution    string `json:"institution,omitempty" bson:"institution,omitempty"`
	Country        string `json:"country,omitempty" bson:"country,omitempty"`
	FullOrPartTime string `json:"fullOrPartTime,omitempty" bson:"fullOrPartTime,omitempty"`
}

type EmergencyContact struct {
	Name          string `json:"name,omitempty" bson:"name,omitempty"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	SameAsAbove   bool   `json:"sameAsAbove,omitempty" bson:"sameAsAbove,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	Relationship  string `json:"relationship,omitempty" bson:"relationship,omitempty"`
}

// ApplicationForm is a prospective student's course application. Dates are
// kept in the format the applicant submitted them.
type ApplicationForm struct {
	// Personal details
	FamilyName            string `json:"familyName,omitempty" bson:"familyName,omitempty"`
	FirstName             string `json:"firstName,omitempty" bson:"firstName,omitempty"`
	PermanentAddress      string `json:"permanentAddress,omitempty" bson:"permanentAddress,omitempty"`
	Postcode              string `json:"postcode,omitempty" bson:"postcode,omitempty"`
	HomePhone             string `json:"homePhone,omitempty" bson:"homePhone,omitempty"`
	Mobile                string `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Email                 string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	PassportNumber        string `json:"passportNumber,omitempty" bson:"passportNumber,omitempty"`
	Gender                string `json:"gender,omitempty" bson:"gender,omitempty"`
	Nationality           string `json:"nationality,omitempty" bson:"nationality,omitempty"`
	CountryOfResidence    string `json:"countryOfResidence,omitempty" bson:"countryOfResidence,omitempty"`
	DateOfBirth           string `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	HasDisability         string `json:"hasDisability,omitempty" bson:"hasDisability,omitempty"`
	HasCriminalConviction string `json:"hasCriminalConviction,omitempty" bson:"hasCriminalConviction,omitempty"`
	CourseToStudy         string `json:"courseToStudy,omitempty" bson:"courseToStudy,omitempty"`

	// English language qualifications
	EnglishTestType   string `json:"englishTestType,omitempty" bson:"englishTestType,omitempty"`
	EnglishTestDate   string `json:"englishTestDate,omitempty" bson:"englishTestDate,omitempty"`
	EnglishTestResult string `json:"englishTestResult,omitempty" bson:"englishTestResult,omitempty"`

	PreviousStudies []PreviousStudy `json:"previousStudies,omitempty" bson:"previousStudies,omitempty"`

	// Personal statement and declaration
	PersonalStatement    string `json:"personalStatement,omitempty" bson:"personalStatement,omitempty"`
	AgreedToDeclaration  bool   `json:"agreedToDeclaration,omitempty" bson:"agreedToDeclaration,omitempty"`
	DeclarationSignature string `json:"declarationSignature,omitempty" bson:"declarationSignature,omitempty"`
	DeclarationDate      string `json:"declarationDate,omitempty" bson:"declarationDate,omitempty"`

	// Equality and diversity monitoring
	GenderIdentity                string `json:"genderIdentity,omitempty" bson:"genderIdentity,omitempty"`
	AgeGroup                      string `json:"ageGroup,omitempty" bson:"ageGroup,omitempty"`
	Religion                      string `json:"religion,omitempty" bson:"religion,omitempty"`
	SexualOrientation             string `json:"sexualOrientation,omitempty" bson:"sexualOrientation,omitempty"`
	EthnicOrigin                  string `json:"ethnicOrigin,omitempty" bson:"ethnicOrigin,omitempty"`
	HasDisabilityDiversitySection string `json:"hasDisabilityDiversitySection,omitempty" bson:"hasDisabilityDiversitySection,omitempty"`

	EmergencyContacts []EmergencyContact `json:"emergencyContacts,omitempty" bson:"emergencyContacts,omitempty"`
	MedicalInfo       string             `json:"medicalInfo,omitempty" bson:"medicalInfo,omitempty"`

	// Photo and video consent
	ConsentGiven           bool   `json:"consentGiven,omitempty" bson:"consentGiven,omitempty"`
	PhotoConsentName       string `json:"photoConsentName,omitempty" bson:"photoConsentName,omitempty"`
	PhotoConsentAddress    string `json:"photoConsentAddress,omitempty" bson:"photoConsentAddress,omitempty"`
	PhotoConsentCity       string `json:"photoConsentCity,omitempty" bson:"photoConsentCity,omitempty"`
	PhotoConsentPostalCode string `json:"photoConsentPostalCode,omitempty" bson:"photoConsentPostalCode,omitempty"`
	PhotoConsentPhone      string `json:"photoConsentPhone,omitempty" bson:"photoConsentPhone,omitempty"`
	PhotoConsentFax        string `json:"photoConsentFax,omitempty" bson:"photoConsentFax,omitempty"`
	PhotoConsentEmail      string `json:"photoConsentEmail,omitempty" bson:"photoConsentEmail,omitempty" validate:"omitempty,email"`
	PhotoConsentSignature  string `json:"photoConsentSignature,omitempty" bson:"photoConsentSignature,omitempty"`
	PhotoConsentDate       string `json:"photoConsentDate,omitempty" bson:"photoConsentDate,omitempty"`
}

type Application struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ApplicationForm
}
