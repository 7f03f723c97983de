package services

import (
	"context"
	"time"

	"github.com/shipsync/shipsync-api/models"
)

type SubmitAssessmentInput struct {
	ShipmentID      string   `json:"shipmentId"`
	ItemSKU         string   `json:"itemSku"`
	ItemDescription string   `json:"itemDescription"`
	AssessorEmail   string   `json:"assessorEmail"`
	ParentEmail     string   `json:"parentEmail"`
	AssessmentNotes string   `json:"assessmentNotes"`
	QualityImages   []string `json:"qualityImages"`
}

// SubmitAssessment records one quality inspection for an item. There is no
// dedup and no cross-check that the SKU belongs to the named shipment; the
// owner resolves each submission on review.
func SubmitAssessment(ctx context.Context, st Stores, in SubmitAssessmentInput) (*models.QualityAssessment, error) {
	if in.ShipmentID == "" || in.ItemSKU == "" || in.AssessorEmail == "" || in.ParentEmail == "" {
		return nil, Invalid("missing required fields")
	}

	now := time.Now()
	assessment := &models.QualityAssessment{
		ShipmentID:        in.ShipmentID,
		ItemSKU:           in.ItemSKU,
		ItemDescription:   in.ItemDescription,
		AssessorEmail:     in.AssessorEmail,
		ParentEmail:       in.ParentEmail,
		AssessmentNotes:   in.AssessmentNotes,
		QualityImages:     in.QualityImages,
		IsVerifiedByOwner: false,
		Status:            models.AssessmentPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if assessment.QualityImages == nil {
		assessment.QualityImages = []string{}
	}

	if err := st.Assessments.Insert(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// ResolveAssessment records the owner's sign-off. Approving or rejecting an
// assessment does not touch shipment tracking state.
func ResolveAssessment(ctx context.Context, st Stores, id, decision string) (*models.QualityAssessment, error) {
	if decision != models.AssessmentApproved && decision != models.AssessmentRejected {
		return nil, ErrInvalidDecision
	}

	assessment, err := st.Assessments.Resolve(ctx, id, decision)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, ErrAssessmentNotFound
	}
	return assessment, nil
}
