package usecases

import (
	"testing"
	"time"

	"pitchcraft-server/apperr"
	"pitchcraft-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newAuthUseCase() (*AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	return NewAuthUseCase(repo, testSecret, time.Hour), repo
}

func TestRegister_Success(t *testing.T) {
	uc, _ := newAuthUseCase()

	user, token, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, entities.RoleStandard, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NotEmpty(t, token)
}

func TestRegister_ShortPasswordCreatesNoAccount(t *testing.T) {
	uc, repo := newAuthUseCase()

	_, _, err := uc.Register("Ann", "ann@x.com", "12345")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, repo.users)
}

func TestRegister_MissingFields(t *testing.T) {
	uc, _ := newAuthUseCase()

	for _, args := range [][3]string{
		{"", "ann@x.com", "secret1"},
		{"Ann", "", "secret1"},
		{"Ann", "ann@x.com", ""},
	} {
		_, _, err := uc.Register(args[0], args[1], args[2])
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, _, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, err = uc.Register("Other Ann", "ann@x.com", "secret2")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestLogin_TokenResolvesToSameAccount(t *testing.T) {
	uc, _ := newAuthUseCase()

	registered, _, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	user, token, err := uc.Login("ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	resolved, err := uc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
}

func TestLogin_WrongPasswordUniformMessage(t *testing.T) {
	uc, _ := newAuthUseCase()

	_, _, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, _, wrongPass := uc.Login("ann@x.com", "wrong-password")
	_, _, unknownEmail := uc.Login("nobody@x.com", "secret1")

	require.Error(t, wrongPass)
	require.Error(t, unknownEmail)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(wrongPass))
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(unknownEmail))
	// Same message either way so accounts cannot be enumerated
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())
}

func TestLogin_DeactivatedAccountRejected(t *testing.T) {
	uc, repo := newAuthUseCase()

	user, _, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	repo.users[user.ID].IsActive = false

	_, _, err = uc.Login("ann@x.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	// Wrong password on the same account fails identically
	_, _, err = uc.Login("ann@x.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestAuthenticate_Failures(t *testing.T) {
	uc, repo := newAuthUseCase()

	user, token, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	// missing token
	_, err = uc.Authenticate("")
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	// malformed token
	_, err = uc.Authenticate("garbage")
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	// account deleted after issuance
	delete(repo.users, user.ID)
	_, err = uc.Authenticate(token)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestAuthenticate_InactiveAccount(t *testing.T) {
	uc, repo := newAuthUseCase()

	user, token, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	repo.users[user.ID].IsActive = false

	_, err = uc.Authenticate(token)
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestUpdateProfile(t *testing.T) {
	uc, _ := newAuthUseCase()

	user, _, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	updated, err := uc.UpdateProfile(user.ID, "Annie", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Annie", updated.Name)
	assert.Equal(t, "ann@x.com", updated.Email)

	// Email change to an already registered address conflicts
	_, _, err = uc.Register("Bob", "bob@x.com", "secret1")
	require.NoError(t, err)
	_, err = uc.UpdateProfile(user.ID, "", "bob@x.com", "")
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Short replacement password rejected
	_, err = uc.UpdateProfile(user.ID, "", "", "12345")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Valid replacement password takes effect
	_, err = uc.UpdateProfile(user.ID, "", "", "newsecret")
	require.NoError(t, err)
	_, _, err = uc.Login("ann@x.com", "newsecret")
	require.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	uc, _ := newAuthUseCase()

	user, _, err := uc.Register("Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	// wrong current password
	err = uc.ChangePassword(user.ID, "wrong", "newsecret")
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))

	// short new password
	err = uc.ChangePassword(user.ID, "secret1", "12345")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// success
	err = uc.ChangePassword(user.ID, "secret1", "newsecret")
	require.NoError(t, err)

	_, _, err = uc.Login("ann@x.com", "secret1")
	require.Error(t, err)
	_, _, err = uc.Login("ann@x.com", "newsecret")
	require.NoError(t, err)
}
