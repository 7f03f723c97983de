package services

import (
	"context"
	"regexp"
	"time"

	"github.com/shipsync/shipsync-api/models"
)

var (
	emailPattern   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	contactPattern = regexp.MustCompile(`^[0-9]{10}$`)
)

type OnboardCompanyInput struct {
	CompanyName   string                     `json:"companyName"`
	OwnerName     string                     `json:"ownerName"`
	ContactNumber string                     `json:"contactNumber"`
	CompanyEmail  string                     `json:"companyEmail"`
	GSTNumber     string                     `json:"gstNumber"`
	Address       string                     `json:"address"`
	TeamMembers   []models.CompanyTeamMember `json:"teamMembers"`
	TeamSkipped   bool                       `json:"teamSkipped"`
}

// SaveCompany persists an onboarding profile for the given role and, for
// supplier and logistic accounts, pre-provisions the listed team members.
// A skipped team step is recorded as a single marker row so later visits
// can tell "skipped" apart from "none added yet".
func SaveCompany(ctx context.Context, st Stores, role string, in OnboardCompanyInput) (*models.Company, error) {
	if role != models.RoleOwner && role != models.RoleSupplier && role != models.RoleLogistic {
		return nil, ErrInvalidRole
	}
	if len(in.CompanyName) < 2 || len(in.OwnerName) < 2 {
		return nil, Invalid("company and owner names must be at least 2 characters")
	}
	if !contactPattern.MatchString(in.ContactNumber) {
		return nil, Invalid("contact number must be 10 digits")
	}
	if !emailPattern.MatchString(in.CompanyEmail) {
		return nil, Invalid("invalid company email")
	}
	if len(in.GSTNumber) < 5 || len(in.Address) < 5 {
		return nil, Invalid("gst number and address are too short")
	}

	// Drop rows the form submitted empty.
	members := make([]models.CompanyTeamMember, 0, len(in.TeamMembers))
	if !in.TeamSkipped {
		for _, m := range in.TeamMembers {
			if m.Name == "" && m.Email == "" {
				continue
			}
			if len(m.Name) < 2 || !emailPattern.MatchString(m.Email) {
				return nil, Invalid("invalid team member entry")
			}
			switch m.Role {
			case models.TeamRoleOperations, models.TeamRoleQuality, models.TeamRoleFinance, models.TeamRoleDeliveryPartner:
			default:
				return nil, Invalid("invalid team member role")
			}
			members = append(members, m)
		}
	}

	now := time.Now()
	company := &models.Company{
		CompanyName:   in.CompanyName,
		OwnerName:     in.OwnerName,
		ContactNumber: in.ContactNumber,
		CompanyEmail:  in.CompanyEmail,
		GSTNumber:     in.GSTNumber,
		Address:       in.Address,
		TeamMembers:   members,
		TeamSkipped:   in.TeamSkipped,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := st.Companies.Insert(ctx, role, company); err != nil {
		return nil, err
	}

	// Owner accounts have no team pre-provisioning step.
	if role == models.RoleOwner {
		return company, nil
	}

	if in.TeamSkipped {
		marker := models.TeamMember{
			ParentEmail: in.CompanyEmail,
			ParentRole:  role,
			Registered:  false,
			Skipped:     true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := st.TeamMembers.InsertMany(ctx, []models.TeamMember{marker}); err != nil {
			return nil, err
		}
		return company, nil
	}

	if len(members) > 0 {
		rows := make([]models.TeamMember, 0, len(members))
		for _, m := range members {
			rows = append(rows, models.TeamMember{
				Name:        m.Name,
				Email:       m.Email,
				ParentEmail: in.CompanyEmail,
				ParentRole:  role,
				TeamRole:    m.Role,
				Registered:  false,
				Skipped:     false,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		if err := st.TeamMembers.InsertMany(ctx, rows); err != nil {
			return nil, err
		}
	}

	return company, nil
}

// GetCompanyProfile fetches a company profile by email for one role.
func GetCompanyProfile(ctx context.Context, st Stores, role, companyEmail string) (*models.Company, error) {
	if companyEmail == "" {
		return nil, Invalid("companyEmail is required")
	}
	company, err := st.Companies.FindByEmail(ctx, role, companyEmail)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, ErrCompanyNotFound
	}
	return company, nil
}
