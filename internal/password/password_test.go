package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	encoded, err := Hash("Abcdef1")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := Verify("Abcdef1", encoded)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = Verify("wrong-password", encoded)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	t.Parallel()

	first, err := Hash("Abcdef1")
	require.NoError(t, err)
	second, err := Hash("Abcdef1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=65536,t=3,p=2$only-four-parts",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=bad,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	}

	for _, encoded := range cases {
		_, err := Verify("Abcdef1", encoded)
		require.ErrorIs(t, err, ErrMalformedHash, "hash: %q", encoded)
	}
}
