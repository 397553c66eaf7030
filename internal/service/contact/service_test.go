package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	mocks "github.com/ayubkhn/contact-mailer/internal/mocks/service/contact"
	"github.com/ayubkhn/contact-mailer/internal/model"
)

func TestService_CreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	svc := NewService(repoMock)

	contactID := uuid.New()
	c := model.Contact{Email: "jane@example.com", FirstName: "Jane"}

	repoMock.EXPECT().CreateContact(gomock.Any(), c).Return(contactID, nil)

	id, err := svc.CreateContact(context.Background(), c)
	assert.NoError(t, err)
	assert.Equal(t, contactID, id)
}

func TestService_CreateContact_EmailRequired(t *testing.T) {
	svc := NewService(nil)

	_, err := svc.CreateContact(context.Background(), model.Contact{Email: "   "})
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	svc := NewService(repoMock)

	rows := []ImportContact{
		{Email: "ok@example.com", FirstName: "Ok"},
		{Email: ""},
		{Email: "dup@example.com"},
	}

	repoMock.EXPECT().
		CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c model.Contact) (uuid.UUID, error) {
			assert.Equal(t, "ok@example.com", c.Email)
			return uuid.New(), nil
		})
	repoMock.EXPECT().
		CreateContact(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, errors.New("duplicate key"))

	result := svc.Import(context.Background(), rows)

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Equal(t, ErrEmailRequired.Error(), result.Errors[0].Error)
	assert.Equal(t, 2, result.Errors[1].Index)
	assert.Equal(t, "dup@example.com", result.Errors[1].Email)
}

func TestService_Import_NormalizesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockcontactRepository(ctrl)
	svc := NewService(repoMock)

	rows := []ImportContact{{
		Email:       "  jane@example.com  ",
		DateOfBirth: 25569.0, // Excel serial for 1970-01-01
		IsFavorite:  "yes",
		IsActive:    "0",
	}}

	repoMock.EXPECT().
		CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c model.Contact) (uuid.UUID, error) {
			assert.Equal(t, "jane@example.com", c.Email)
			if assert.NotNil(t, c.DateOfBirth) {
				assert.Equal(t, "1970-01-01", *c.DateOfBirth)
			}
			assert.True(t, c.IsFavorite)
			assert.False(t, c.IsActive)
			return uuid.New(), nil
		})

	result := svc.Import(context.Background(), rows)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 0, result.Failed)
}

func TestNormalizeDate(t *testing.T) {
	iso := func(s string) *string { return &s }

	cases := []struct {
		name string
		in   interface{}
		want *string
	}{
		{"nil", nil, nil},
		{"empty string", "   ", nil},
		{"iso date", "1990-05-17", iso("1990-05-17")},
		{"rfc3339", "1990-05-17T10:30:00Z", iso("1990-05-17")},
		{"datetime", "1990-05-17 10:30:00", iso("1990-05-17")},
		{"us date", "05/17/1990", iso("1990-05-17")},
		{"excel serial", 25569.0, iso("1970-01-01")},
		{"excel serial mid", 33005.0, iso("1990-05-12")},
		{"garbage", "not a date", nil},
		{"unsupported type", true, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeDate(tc.in)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}

			if assert.NotNil(t, got) {
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestNormalizeBool(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"number one", 1.0, true},
		{"number zero", 0.0, false},
		{"yes", "yes", true},
		{"Y", " Y ", true},
		{"TRUE", "TRUE", true},
		{"one string", "1", true},
		{"no", "no", false},
		{"empty", "", false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeBool(tc.in))
		})
	}
}
