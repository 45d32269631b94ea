package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-notes-api/internal/model"
)

func TestPasswordPolicy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"minimal valid", "Abcde1", true},
		{"typical valid", "Abcdef1", true},
		{"sixteen chars", "Abcdefghijklmn12", true},
		{"multibyte letters count as one character", "Pässwörd1", true},
		{"sixteen chars with multibyte", "Äbcdefghijklmn12", true},
		{"too short", "Abc1", false},
		{"too long", "Abcdefghijklmno12", false},
		{"no uppercase", "abcdef1", false},
		{"no lowercase", "ABCDEF1", false},
		{"no digit", "Abcdefg", false},
		{"contains space", "Abc def1", false},
	}

	v := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(model.RegisterRequest{
				Name:     "Alice",
				Email:    "a@b.com",
				Password: tc.password,
			})
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestRegisterMessagesUseJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Struct(model.RegisterRequest{Name: "ab", Email: "not-an-email", Password: "weak"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Messages, 3)
	require.Contains(t, validationErr.Messages, "name must be at least 3 characters long")
	require.Contains(t, validationErr.Messages, "please enter a valid email address")
}

func TestNoteRequestRules(t *testing.T) {
	t.Parallel()

	v := New()

	require.Error(t, v.Struct(model.CreateNoteRequest{Title: "   "}))
	require.NoError(t, v.Struct(model.CreateNoteRequest{Title: "T"}))

	tooMany := make([]string, 11)
	for i := range tooMany {
		tooMany[i] = "t"
	}
	require.Error(t, v.Struct(model.CreateNoteRequest{Title: "T", Tags: tooMany}))
	require.NoError(t, v.Struct(model.CreateNoteRequest{Title: "T", Tags: tooMany[:10]}))
}

func TestUpdateNoteAllowsAbsentFields(t *testing.T) {
	t.Parallel()

	v := New()
	require.NoError(t, v.Struct(model.UpdateNoteRequest{}))

	blank := "   "
	require.Error(t, v.Struct(model.UpdateNoteRequest{Title: &blank}))
}
