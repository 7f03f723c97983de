package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/utils"
)

func TestRegisterUserValidation(t *testing.T) {
	st := Stores{Users: &mockUsers{}, TeamMembers: &mockTeamMembers{}, Tx: &mockTx{}}

	if _, err := RegisterUser(context.Background(), st, RegisterInput{Email: "a@b.com", Password: "x", Role: models.RoleOwner}); !IsValidation(err) {
		t.Errorf("missing name: expected validation error, got %v", err)
	}
	if _, err := RegisterUser(context.Background(), st, RegisterInput{Name: "A", Email: "a@b.com", Password: "x", Role: "admin"}); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("bad role: expected ErrInvalidRole, got %v", err)
	}
}

func TestRegisterUserPlain(t *testing.T) {
	users := &mockUsers{}
	st := Stores{Users: users, TeamMembers: &mockTeamMembers{}, Tx: &mockTx{}}

	user, err := RegisterUser(context.Background(), st, RegisterInput{
		Name: "Priya", Email: "priya@acme.com", Password: "hunter22", Role: models.RoleOwner,
	})
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if user.Role != models.RoleOwner || user.IsTeamMember {
		t.Errorf("role = %q isTeamMember = %v", user.Role, user.IsTeamMember)
	}
	if len(users.inserted) != 1 {
		t.Fatalf("expected 1 user inserted, got %d", len(users.inserted))
	}
	if !utils.ComparePassword("hunter22", user.Password) {
		t.Error("stored password is not a valid bcrypt hash of the input")
	}
}

func TestRegisterUserTeamMemberLinkage(t *testing.T) {
	cases := []struct {
		parentRole string
		wantRole   string
	}{
		{models.RoleSupplier, models.RoleSupplierTeam},
		{models.RoleLogistic, models.RoleLogisticTeam},
	}

	for _, tc := range cases {
		t.Run(tc.parentRole, func(t *testing.T) {
			members := &mockTeamMembers{byEmail: &models.TeamMember{
				Email:       "tm@acme.com",
				ParentEmail: "parent@acme.com",
				ParentRole:  tc.parentRole,
				TeamRole:    models.TeamRoleQuality,
			}}
			st := Stores{Users: &mockUsers{}, TeamMembers: members, Tx: &mockTx{}}

			user, err := RegisterUser(context.Background(), st, RegisterInput{
				Name: "Tim", Email: "tm@acme.com", Password: "pw123456", Role: models.RoleSupplier,
			})
			if err != nil {
				t.Fatalf("RegisterUser returned error: %v", err)
			}
			if user.Role != tc.wantRole {
				t.Errorf("role = %q, want %q", user.Role, tc.wantRole)
			}
			if user.TeamRole != models.TeamRoleQuality {
				t.Errorf("teamRole = %q, want quality", user.TeamRole)
			}
			if user.ParentEmail != "parent@acme.com" || !user.IsTeamMember {
				t.Errorf("parent linkage missing: %+v", user)
			}
			if len(members.registeredEmails) != 1 || members.registeredEmails[0] != "tm@acme.com" {
				t.Errorf("registered flag not flipped: %v", members.registeredEmails)
			}
		})
	}
}

func TestRegisterUserSkippedMarkerIgnored(t *testing.T) {
	members := &mockTeamMembers{byEmail: &models.TeamMember{
		ParentEmail: "parent@acme.com",
		ParentRole:  models.RoleSupplier,
		Skipped:     true,
	}}
	st := Stores{Users: &mockUsers{}, TeamMembers: members, Tx: &mockTx{}}

	user, err := RegisterUser(context.Background(), st, RegisterInput{
		Name: "Sam", Email: "sam@acme.com", Password: "pw123456", Role: models.RoleSupplier,
	})
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if user.IsTeamMember || user.Role != models.RoleSupplier {
		t.Errorf("skipped marker must not link: %+v", user)
	}
	if len(members.registeredEmails) != 0 {
		t.Error("registered flag must not flip for a skipped marker")
	}
}

func TestRegisterUserAlreadyExists(t *testing.T) {
	st := Stores{
		Users:       &mockUsers{byEmail: &models.User{Email: "a@b.com"}},
		TeamMembers: &mockTeamMembers{},
		Tx:          &mockTx{},
	}

	_, err := RegisterUser(context.Background(), st, RegisterInput{Name: "A", Email: "a@b.com", Password: "x1234567", Role: models.RoleOwner})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestRegisterUserDuplicateKeyRace(t *testing.T) {
	// Both racers pass the pre-check; the unique index rejects the loser
	// and the error maps to a clean "already exists".
	st := Stores{
		Users:       &mockUsers{insertErr: ErrDuplicateKey},
		TeamMembers: &mockTeamMembers{},
		Tx:          &mockTx{},
	}

	_, err := RegisterUser(context.Background(), st, RegisterInput{Name: "A", Email: "a@b.com", Password: "x1234567", Role: models.RoleOwner})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists on duplicate key, got %v", err)
	}
}

func TestLoginUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	hash, err := utils.HashPassword("correct-horse")
	if err != nil {
		t.Fatal(err)
	}
	users := &mockUsers{byEmail: &models.User{Email: "a@b.com", Password: hash, Role: models.RoleOwner}}
	st := Stores{Users: users}

	user, token, err := LoginUser(context.Background(), st, "a@b.com", "correct-horse")
	if err != nil {
		t.Fatalf("LoginUser returned error: %v", err)
	}
	if token == "" || user.Email != "a@b.com" {
		t.Errorf("token=%q user=%+v", token, user)
	}

	if _, _, err := LoginUser(context.Background(), st, "a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := LoginUser(context.Background(), Stores{Users: &mockUsers{}}, "ghost@b.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
}
