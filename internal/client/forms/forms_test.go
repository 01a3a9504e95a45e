package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/churchhub/internal/client/models"
	"github.com/dmitrijs2005/churchhub/internal/common"
)

func fieldErrors(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.ErrorIs(t, err, common.ErrValidation)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	return ve
}

func TestLoginForm(t *testing.T) {
	v := New()

	f := &LoginForm{Email: "  Pastor@Church.com ", Password: "x"}
	require.NoError(t, v.Validate(f))
	assert.Equal(t, "pastor@church.com", f.Email)

	ve := fieldErrors(t, v.Validate(&LoginForm{Email: "not-an-email", Password: "   "}))
	assert.Equal(t, "must be a valid email", ve.Message("email"))
	assert.Equal(t, "is required", ve.Message("password"))

	ve = fieldErrors(t, v.Validate(&LoginForm{}))
	assert.Equal(t, "is required", ve.Message("email"))
}

func TestSignUpForm(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&SignUpForm{Name: "Ana", Email: "ana@church.com", Password: "secret"}))

	ve := fieldErrors(t, v.Validate(&SignUpForm{Name: "  ", Email: "ana@church.com", Password: "12345"}))
	assert.Equal(t, "is required", ve.Message("name"))
	assert.Equal(t, "must be at least 6 characters long", ve.Message("password"))
	assert.Empty(t, ve.Message("email"))
}

func TestGiveForm(t *testing.T) {
	v := New()

	for _, ok := range []string{"25", "25.50", "$10", " 0.01 "} {
		require.NoError(t, v.Validate(&GiveForm{Amount: ok}), ok)
	}
	for _, bad := range []string{"-5", "0", "abc", "", "NaN", "Inf"} {
		ve := fieldErrors(t, v.Validate(&GiveForm{Amount: bad}))
		assert.NotEmpty(t, ve.Message("amount"), bad)
	}

	long := make([]byte, 81)
	for i := range long {
		long[i] = 'a'
	}
	ve := fieldErrors(t, v.Validate(&GiveForm{Amount: "5", Name: string(long)}))
	assert.Equal(t, "must be at most 80 characters long", ve.Message("name"))
}

func TestParseAmount(t *testing.T) {
	f, err := ParseAmount("$ 12.5")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, f, 1e-9)

	_, err = ParseAmount("-5")
	require.Error(t, err)
}

func TestProfileForm_Phone(t *testing.T) {
	v := New()
	base := ProfileForm{Name: "Ana", Email: "ana@church.com"}

	for _, ok := range []string{"", "+1 (555) 010-0200", "5550100", "+351 912 345 678"} {
		f := base
		f.Phone = ok
		require.NoError(t, v.Validate(&f), ok)
	}
	for _, bad := range []string{"12345", "call me", "+1 555 CHURCH", "(((( ))))--", "555-0100-555-0100-555-0100"} {
		f := base
		f.Phone = bad
		ve := fieldErrors(t, v.Validate(&f))
		assert.Equal(t, "must be a valid phone number", ve.Message("phone"), bad)
	}
}

func TestProfileForm_Patch(t *testing.T) {
	u := models.User{ID: "2", Name: "Kids Ministry", Email: "kids@church.com", Role: models.RoleLeader}
	f := ProfileFormFrom(u)
	f.Phone = "5550100"

	p := f.Patch(u)
	require.NotNil(t, p.Phone)
	assert.Equal(t, "5550100", *p.Phone)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.Address)

	assert.True(t, ProfileFormFrom(u).Patch(u).Empty())
}
