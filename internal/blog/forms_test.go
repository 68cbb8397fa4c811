package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateForm(t *testing.T) {
	t.Run("EmptyComment", func(t *testing.T) {
		err := validateForm(CommentForm{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, map[string]string{"text": "This field is required."}, vErr.Fields)
	})

	t.Run("PasswordMismatch", func(t *testing.T) {
		err := validateForm(RegisterForm{Username: "alice", Password: "secret-one", PasswordConfirm: "secret-two"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "The two password fields didn't match.", vErr.Fields["password2"])
	})

	t.Run("ShortPasswordAndBadEmail", func(t *testing.T) {
		err := validateForm(RegisterForm{Username: "alice", Email: "nope", Password: "short", PasswordConfirm: "short"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Ensure this value has at least 8 characters.", vErr.Fields["password1"])
		assert.Equal(t, "Enter a valid email address.", vErr.Fields["email"])
	})

	t.Run("BadUsername", func(t *testing.T) {
		err := validateForm(ProfileForm{Username: "has space"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "username")
	})

	t.Run("ValidProfile", func(t *testing.T) {
		assert.NoError(t, validateForm(ProfileForm{Username: "alice.l@home+1", Email: "a@example.com"}))
	})

	t.Run("PostFormRequiredFields", func(t *testing.T) {
		err := validateForm(PostForm{})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Fields, 3)
		assert.Contains(t, vErr.Fields, "title")
		assert.Contains(t, vErr.Fields, "text")
		assert.Contains(t, vErr.Fields, "pub_date")
	})
}

func TestParsePubDate(t *testing.T) {
	want := time.Date(2024, 5, 1, 13, 30, 0, 0, time.UTC)

	for _, raw := range []string{"2024-05-01T13:30", "2024-05-01 13:30", "2024-05-01T13:30:00"} {
		got, err := parsePubDate(raw, time.UTC)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(got), raw)
	}

	got, err := parsePubDate("2024-05-01", time.UTC)
	require.NoError(t, err)
	assert.True(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).Equal(got))

	_, err = parsePubDate("yesterday", time.UTC)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "pub_date")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "second", "a": "first"}}
	assert.Equal(t, "validation failed: a: first; b: second", err.Error())
}
