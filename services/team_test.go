package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shipsync/shipsync-api/models"
)

func TestAddTeamMembersValidation(t *testing.T) {
	st := Stores{TeamMembers: &mockTeamMembers{}}

	if err := AddTeamMembers(context.Background(), st, nil); !IsValidation(err) {
		t.Errorf("empty input: expected validation error, got %v", err)
	}

	bad := []TeamMemberInput{{Name: "A", Email: "a@b.com", ParentEmail: "p@b.com", ParentRole: "owner", TeamRole: models.TeamRoleQuality}}
	if err := AddTeamMembers(context.Background(), st, bad); !IsValidation(err) {
		t.Errorf("bad parent role: expected validation error, got %v", err)
	}

	bad = []TeamMemberInput{{Name: "A", Email: "a@b.com", ParentEmail: "p@b.com", ParentRole: models.RoleSupplier, TeamRole: "boss"}}
	if err := AddTeamMembers(context.Background(), st, bad); !IsValidation(err) {
		t.Errorf("bad team role: expected validation error, got %v", err)
	}
}

func TestAddTeamMembers(t *testing.T) {
	members := &mockTeamMembers{}
	st := Stores{TeamMembers: members}

	in := []TeamMemberInput{
		{Name: "Asha", Email: "asha@x.com", ParentEmail: "p@x.com", ParentRole: models.RoleSupplier, TeamRole: models.TeamRoleQuality},
		{Name: "Vik", Email: "vik@x.com", ParentEmail: "p@x.com", ParentRole: models.RoleSupplier, TeamRole: models.TeamRoleFinance},
	}
	if err := AddTeamMembers(context.Background(), st, in); err != nil {
		t.Fatalf("AddTeamMembers returned error: %v", err)
	}
	if len(members.inserted) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(members.inserted))
	}
	if members.inserted[0].Registered || members.inserted[0].Skipped {
		t.Error("new members must start unregistered")
	}
}

func TestListTeamMembersSkippedMarker(t *testing.T) {
	members := &mockTeamMembers{byParent: []models.TeamMember{
		{ParentEmail: "p@x.com", Skipped: true},
		{Name: "Asha", Email: "asha@x.com", ParentEmail: "p@x.com", TeamRole: models.TeamRoleQuality},
	}}
	st := Stores{TeamMembers: members}

	skipped, list, err := ListTeamMembers(context.Background(), st, "p@x.com")
	if err != nil {
		t.Fatalf("ListTeamMembers returned error: %v", err)
	}
	if !skipped {
		t.Error("skipped flag should be reported")
	}
	if len(list) != 1 || list[0].Email != "asha@x.com" {
		t.Errorf("marker row must be filtered out: %+v", list)
	}
}

func TestUpdateTeamMemberNotFound(t *testing.T) {
	st := Stores{TeamMembers: &mockTeamMembers{}}
	if _, err := UpdateTeamMember(context.Background(), st, "deadbeef", TeamMemberPatch{Name: "X"}); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Fatalf("expected ErrTeamMemberNotFound, got %v", err)
	}
}

func TestDeleteTeamMemberNotFound(t *testing.T) {
	st := Stores{TeamMembers: &mockTeamMembers{}}
	if err := DeleteTeamMember(context.Background(), st, "deadbeef"); !errors.Is(err, ErrTeamMemberNotFound) {
		t.Fatalf("expected ErrTeamMemberNotFound, got %v", err)
	}
}

func TestDeleteTeamMember(t *testing.T) {
	st := Stores{TeamMembers: &mockTeamMembers{deleted: true}}
	if err := DeleteTeamMember(context.Background(), st, "abc"); err != nil {
		t.Fatalf("DeleteTeamMember returned error: %v", err)
	}
}
