package services

import (
	"context"
	"testing"

	"samajam-backend/internal/adapters/persistence/repositories"
	"samajam-backend/internal/core/domain"
	"samajam-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemberService(t *testing.T) (*MemberService, *fakeStore) {
	t.Helper()
	db := newTestDB(t)
	store := newFakeStore()
	repo := repositories.NewMemberRepository(db)
	return NewMemberService(repo, newTestStorage(store), testPhotosBucket), store
}

func TestMemberCreate(t *testing.T) {
	svc, _ := newTestMemberService(t)
	ctx := context.Background()

	member, err := svc.Create(ctx, &CreateMemberInput{
		SlNo:        42,
		Name:        "Asha Nair",
		MobileNo:    "9820012345",
		OtpPassword: "1234",
	})
	require.NoError(t, err)

	assert.Equal(t, 42, member.SlNo)
	assert.Equal(t, "Active", member.CurrentStatus, "status defaults to Active")
	assert.Equal(t, "1234", member.OtpPlain, "plaintext mirror kept for the admin OTP screen")
	assert.NotEqual(t, "1234", member.OtpPassword)
	assert.True(t, password.Verify("1234", member.OtpPassword))
}

func TestMemberCreateDuplicateSerial(t *testing.T) {
	svc, _ := newTestMemberService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{SlNo: 7, Name: "First", OtpPassword: "1111"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &CreateMemberInput{SlNo: 7, Name: "Second", OtpPassword: "2222"})
	assert.ErrorIs(t, err, domain.ErrSerialInUse)
}

func TestAdminUpdateAllowList(t *testing.T) {
	svc, _ := newTestMemberService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{SlNo: 10, Name: "Before", OtpPassword: "1234"})
	require.NoError(t, err)

	updated, err := svc.AdminUpdate(ctx, 10, map[string]interface{}{
		"name":        "After",
		"blood_group": "O+",
		"sl_no":       999, // immutable, silently dropped
		"otp_plain":   "hacked",
	})
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "O+", updated.BloodGroup)
	assert.Equal(t, 10, updated.SlNo)
	assert.Equal(t, "1234", updated.OtpPlain)
}

func TestAdminUpdateRehashesPassword(t *testing.T) {
	svc, _ := newTestMemberService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{SlNo: 11, Name: "Member", OtpPassword: "1234"})
	require.NoError(t, err)

	updated, err := svc.AdminUpdate(ctx, 11, map[string]interface{}{"otp_password": "5678"})
	require.NoError(t, err)

	assert.Equal(t, "5678", updated.OtpPlain, "plain mirror follows the new password")
	assert.True(t, password.Verify("5678", updated.OtpPassword))
	assert.False(t, password.Verify("1234", updated.OtpPassword))
}

func TestSelfUpdateAllowList(t *testing.T) {
	svc, _ := newTestMemberService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{SlNo: 12, Name: "Fixed Name", OtpPassword: "1234"})
	require.NoError(t, err)

	updated, err := svc.SelfUpdate(ctx, 12, map[string]interface{}{
		"address":      "New Address, Vasai East",
		"name":         "Renamed", // members cannot rename themselves
		"otp_password": "0000",    // nor change their password here
	})
	require.NoError(t, err)

	assert.Equal(t, "New Address, Vasai East", updated.Address)
	assert.Equal(t, "Fixed Name", updated.Name)
	assert.True(t, password.Verify("1234", updated.OtpPassword))
}

func TestUpdateUnknownMember(t *testing.T) {
	svc, _ := newTestMemberService(t)

	_, err := svc.AdminUpdate(context.Background(), 404, map[string]interface{}{"name": "Nobody"})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberDelete(t *testing.T) {
	svc, _ := newTestMemberService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{SlNo: 13, Name: "Temp", OtpPassword: "1234"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, 13)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete reports not found, no error
	deleted, err = svc.Delete(ctx, 13)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestReplacePhoto(t *testing.T) {
	svc, store := newTestMemberService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{SlNo: 20, Name: "Photographed", OtpPassword: "1234"})
	require.NoError(t, err)

	first, err := svc.ReplacePhoto(ctx, 20, []byte("first-photo"), "me.jpg", "image/jpeg")
	require.NoError(t, err)
	require.NotNil(t, first.ProfilePhoto)
	assert.Equal(t, 1, store.count())

	second, err := svc.ReplacePhoto(ctx, 20, []byte("second-photo"), "me2.png", "image/png")
	require.NoError(t, err)
	require.NotNil(t, second.ProfilePhoto)
	assert.NotEqual(t, *first.ProfilePhoto, *second.ProfilePhoto)
	assert.Equal(t, 1, store.count(), "old object removed on replace")
}

func TestRemovePhoto(t *testing.T) {
	svc, store := newTestMemberService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &CreateMemberInput{SlNo: 21, Name: "Photographed", OtpPassword: "1234"})
	require.NoError(t, err)

	t.Run("no photo yet", func(t *testing.T) {
		_, err := svc.RemovePhoto(ctx, 21)
		assert.ErrorIs(t, err, domain.ErrNoPhoto)
	})

	_, err = svc.ReplacePhoto(ctx, 21, []byte("photo"), "me.jpg", "image/jpeg")
	require.NoError(t, err)

	t.Run("removes object and clears column", func(t *testing.T) {
		member, err := svc.RemovePhoto(ctx, 21)
		require.NoError(t, err)
		assert.Nil(t, member.ProfilePhoto)
		assert.Equal(t, 0, store.count())
	})
}
