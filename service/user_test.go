package service

import (
	"context"
	"errors"
	"testing"

	"github.com/virtualpalace/palace-tour-service/model"
)

func TestUpdateUserRoleUnknownUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)
	knownID := seedUser(t, repo, "known@example.com", "pass", "user")

	// A well-formed id that matches no row must surface as not-found, the
	// same way the delete path reports it.
	missingID := "018f4f3a-0000-7000-8000-00000000dead"
	err := svc.UpdateUserRole(context.Background(), missingID, model.UpdateUserRoleRequest{Role: "guide"})
	if !errors.Is(err, model.ErrPrincipalNotFound) {
		t.Errorf("err = %v, want %v", err, model.ErrPrincipalNotFound)
	}

	if err = svc.UpdateUserRole(context.Background(), knownID, model.UpdateUserRoleRequest{Role: "guide"}); err != nil {
		t.Errorf("update known user: %v", err)
	}
}

func TestDeleteUserUnknownUser(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)

	err := svc.DeleteUser(context.Background(), "018f4f3a-0000-7000-8000-00000000dead")
	if !errors.Is(err, model.ErrPrincipalNotFound) {
		t.Errorf("err = %v, want %v", err, model.ErrPrincipalNotFound)
	}
}
