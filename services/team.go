package services

import (
	"context"
	"time"

	"github.com/shipsync/shipsync-api/models"
)

type TeamMemberInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ParentEmail string `json:"parentEmail"`
	ParentRole  string `json:"parentRole"`
	TeamRole    string `json:"teamRole"`
}

// AddTeamMembers bulk-inserts pre-provisioned members under a parent
// company account.
func AddTeamMembers(ctx context.Context, st Stores, inputs []TeamMemberInput) error {
	if len(inputs) == 0 {
		return Invalid("no team members provided")
	}

	now := time.Now()
	rows := make([]models.TeamMember, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" || in.Email == "" || in.ParentEmail == "" {
			return Invalid("missing required fields")
		}
		if in.ParentRole != models.RoleSupplier && in.ParentRole != models.RoleLogistic {
			return Invalid("invalid parent role")
		}
		switch in.TeamRole {
		case models.TeamRoleOperations, models.TeamRoleQuality, models.TeamRoleFinance, models.TeamRoleDeliveryPartner:
		default:
			return Invalid("invalid team role")
		}
		rows = append(rows, models.TeamMember{
			Name:        in.Name,
			Email:       in.Email,
			ParentEmail: in.ParentEmail,
			ParentRole:  in.ParentRole,
			TeamRole:    in.TeamRole,
			Registered:  false,
			Skipped:     false,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return st.TeamMembers.InsertMany(ctx, rows)
}

// ListTeamMembers returns the members under a parent, filtering out the
// skipped-onboarding marker row. The returned flag reports whether the
// parent skipped team onboarding.
func ListTeamMembers(ctx context.Context, st Stores, parentEmail string) (bool, []models.TeamMember, error) {
	if parentEmail == "" {
		return false, nil, Invalid("parentEmail is required")
	}

	rows, err := st.TeamMembers.FindByParent(ctx, parentEmail)
	if err != nil {
		return false, nil, err
	}

	skipped := false
	members := make([]models.TeamMember, 0, len(rows))
	for _, row := range rows {
		if row.Skipped {
			skipped = true
			continue
		}
		members = append(members, row)
	}
	return skipped, members, nil
}

func UpdateTeamMember(ctx context.Context, st Stores, id string, patch TeamMemberPatch) (*models.TeamMember, error) {
	member, err := st.TeamMembers.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrTeamMemberNotFound
	}
	return member, nil
}

func DeleteTeamMember(ctx context.Context, st Stores, id string) error {
	deleted, err := st.TeamMembers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTeamMemberNotFound
	}
	return nil
}
