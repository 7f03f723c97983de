package services

import (
	"context"
	"errors"
	"time"

	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/utils"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterUser creates an account. When the email was pre-provisioned as a
// team member, the requested role is overridden with the derived
// "<parentRole>-team" role and the TeamMember row flips to registered.
// The user insert and the flag flip share one transaction; a duplicate-key
// rejection from the unique email index maps to ErrUserExists, so two
// concurrent registrations for the same email cannot both succeed.
func RegisterUser(ctx context.Context, st Stores, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, Invalid("missing required fields")
	}
	if in.Role != models.RoleSupplier && in.Role != models.RoleLogistic && in.Role != models.RoleOwner {
		return nil, ErrInvalidRole
	}

	existing, err := st.Users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  hashed,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	member, err := st.TeamMembers.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if member != nil && !member.Skipped {
		user.IsTeamMember = true
		user.TeamRole = member.TeamRole
		user.ParentEmail = member.ParentEmail
		if member.ParentRole == models.RoleSupplier {
			user.Role = models.RoleSupplierTeam
		} else {
			user.Role = models.RoleLogisticTeam
		}
	}

	err = st.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := st.Users.Insert(ctx, user); err != nil {
			return err
		}
		if user.IsTeamMember {
			return st.TeamMembers.MarkRegistered(ctx, in.Email)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user, nil
}

// LoginUser verifies credentials and issues a signed token.
func LoginUser(ctx context.Context, st Stores, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", Invalid("missing required fields")
	}

	user, err := st.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !utils.ComparePassword(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
