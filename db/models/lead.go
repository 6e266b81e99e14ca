package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeadStage is the pipeline position of a lead.
type LeadStage string

const (
	StageC0 LeadStage = "C0" // new
	StageC1 LeadStage = "C1" // assigned
	StageC2 LeadStage = "C2" // quoted / negotiating
	StageC3 LeadStage = "C3" // costed / final

	// StageQuotation is written when a quotation is created against a
	// lead. It sits outside the C0-C3 pipeline; report consumers key on
	// the literal value, so it is kept as-is and excluded from
	// ValidStage.
	StageQuotation LeadStage = "quotation"
)

// ValidStage reports whether s is one of the four pipeline codes.
func ValidStage(s LeadStage) bool {
	switch s {
	case StageC0, StageC1, StageC2, StageC3:
		return true
	}
	return false
}

// DseUpdate is one entry in a lead's status audit log. An entry is
// appended on every status mutation except assignment.
type DseUpdate struct {
	ActorID    string    `json:"actor_id"`
	Actor      string    `json:"actor"`
	Message    string    `json:"message"`
	StatusFrom LeadStage `json:"status_from"`
	StatusTo   LeadStage `json:"status_to"`
	Timestamp  time.Time `json:"timestamp"`
}

// Lead tracks a prospective customer's purchase/financing enquiry.
type Lead struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	// Product reference
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	ModelName string     `gorm:"type:varchar(120)" json:"model_name"`
	Variant   *string    `gorm:"type:varchar(120)" json:"variant"`

	// Pricing terms
	VehiclePrice Amount `json:"vehicle_price"`
	DownPayment  Amount `json:"down_payment"`
	LoanAmount   Amount `json:"loan_amount"`
	InterestRate Amount `json:"interest_rate"`
	TenureMonths int    `json:"tenure_months"`
	EstimatedEMI Amount `json:"estimated_emi"`

	// Applicant identity / KYC
	CustomerName   string  `gorm:"not null" json:"customer_name"`
	Phone          string  `gorm:"not null;index" json:"phone"`
	Email          *string `json:"email"`
	Address        *string `gorm:"type:text" json:"address"`
	PANNumber      *string `gorm:"type:varchar(20)" json:"pan_number"`
	AadhaarNumber  *string `gorm:"type:varchar(20)" json:"aadhaar_number"`
	KYCDocumentURL *string `json:"kyc_document_url"` // file-store reference, stored verbatim

	// Assignment
	AssigneeID    *uuid.UUID `gorm:"type:uuid;index" json:"assignee_id"`
	AssigneeName  *string    `json:"assignee_name"`
	AssigneeEmail *string    `json:"assignee_email"`

	Status LeadStage `gorm:"type:varchar(20);default:'C0';index" json:"status"`

	// Ordered status-change audit log
	DseUpdates datatypes.JSONSlice[DseUpdate] `json:"dse_updates"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`

	// Audit fields
	CreatedBy string         `json:"created_by"`
	UpdatedBy *string        `json:"updated_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AppendUpdate records a status mutation in the lead's audit log and
// applies the new status. The entry always captures the status the lead
// held before the call.
func (l *Lead) AppendUpdate(actorID, actor, message string, to LeadStage) {
	entry := DseUpdate{
		ActorID:    actorID,
		Actor:      actor,
		Message:    message,
		StatusFrom: l.Status,
		StatusTo:   to,
		Timestamp:  time.Now(),
	}
	l.DseUpdates = append(l.DseUpdates, entry)
	l.Status = to
}

// IsAssignedTo matches the actor against the assignee by id, email or
// name. DSEs frequently log in from shared terminals, so all three
// identifiers are accepted.
func (l *Lead) IsAssignedTo(actorID, actorEmail, actorName string) bool {
	if l.AssigneeID != nil && actorID != "" && l.AssigneeID.String() == actorID {
		return true
	}
	if l.AssigneeEmail != nil && actorEmail != "" && *l.AssigneeEmail == actorEmail {
		return true
	}
	if l.AssigneeName != nil && actorName != "" && *l.AssigneeName == actorName {
		return true
	}
	return false
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
