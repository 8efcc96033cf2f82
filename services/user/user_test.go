// File: services/user/user_test.go
package user

import (
	"errors"
	"net/http"
	"testing"

	"boatify/models"
	"boatify/services/svcerr"
	"boatify/utils"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	cp := *u
	f.users[cp.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	cp := *u
	f.users[cp.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func assertServiceError(t *testing.T, err error, wantCode int) {
	t.Helper()
	var svcErr *svcerr.Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected service error, got %v", err)
	}
	if svcErr.Code != wantCode {
		t.Fatalf("expected status %d, got %d (%s)", wantCode, svcErr.Code, svcErr.Message)
	}
}

func registerInput() models.RegisterInput {
	return models.RegisterInput{
		Name:       "Jonas",
		FamilyName: "Jonaitis",
		Username:   "jonas",
		Email:      "jonas@example.com",
		Phone:      "+37060000000",
		Country:    "LT",
		Password:   "labai-slapta",
	}
}

func TestRegister(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	resp, err := svc.Register(registerInput())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token to be issued")
	}
	if resp.User.Role != models.RoleUser {
		t.Errorf("expected role user, got %q", resp.User.Role)
	}
	if resp.User.PasswordHash == "labai-slapta" {
		t.Error("password stored in plain text")
	}

	// The token carries the user's identity.
	sub, role, err := utils.ExtractIdentityFromToken(resp.Token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if sub != resp.User.ID || role != models.RoleUser {
		t.Errorf("token claims mismatch: sub=%q role=%q", sub, role)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(registerInput()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	dupEmail := registerInput()
	dupEmail.Username = "kitas"
	_, err := svc.Register(dupEmail)
	assertServiceError(t, err, http.StatusBadRequest)

	dupUsername := registerInput()
	dupUsername.Email = "kitas@example.com"
	_, err = svc.Register(dupUsername)
	assertServiceError(t, err, http.StatusBadRequest)
}

func TestAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	if _, err := svc.Register(registerInput()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Authenticate(models.LoginInput{Email: "jonas@example.com", Password: "labai-slapta"})
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token to be issued")
	}

	// Wrong password and unknown email both fail the same way.
	_, err = svc.Authenticate(models.LoginInput{Email: "jonas@example.com", Password: "neteisinga"})
	assertServiceError(t, err, http.StatusBadRequest)
	_, err = svc.Authenticate(models.LoginInput{Email: "niekas@example.com", Password: "labai-slapta"})
	assertServiceError(t, err, http.StatusBadRequest)
}

func TestUpdateProfile(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	resp, err := svc.Register(registerInput())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	updated, err := svc.UpdateProfile(resp.User.ID, models.ProfileUpdateInput{Username: "jonas2"})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if updated.Username != "jonas2" {
		t.Errorf("expected username jonas2, got %q", updated.Username)
	}
	if updated.Email != "jonas@example.com" {
		t.Errorf("untouched email changed: %q", updated.Email)
	}

	// Changing the password keeps login working with the new one.
	if _, err := svc.UpdateProfile(resp.User.ID, models.ProfileUpdateInput{Password: "nauja-slapta"}); err != nil {
		t.Fatalf("password update failed: %v", err)
	}
	if _, err := svc.Authenticate(models.LoginInput{Email: "jonas@example.com", Password: "nauja-slapta"}); err != nil {
		t.Errorf("login with new password failed: %v", err)
	}
}

func TestAdminUpdateUserRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	resp, err := svc.Register(registerInput())
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	updated, err := svc.AdminUpdateUser(resp.User.ID, models.AdminUserUpdateInput{Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("AdminUpdateUser failed: %v", err)
	}
	if updated.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %q", updated.Role)
	}

	_, err = svc.AdminUpdateUser("no-such-user", models.AdminUserUpdateInput{Role: models.RoleAdmin})
	assertServiceError(t, err, http.StatusNotFound)
}
