package breach_test

import (
	"testing"

	"leakwatch/internal/breach"
	"leakwatch/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		queryType domain.QueryType
		out       string
		ok        bool
	}{
		{
			name:      "email lowercased and trimmed",
			in:        "  User@Example.COM ",
			queryType: domain.QueryTypeEmail,
			out:       "user@example.com",
			ok:        true,
		},
		{
			name:      "email without tld rejected",
			in:        "user@host",
			queryType: domain.QueryTypeEmail,
			ok:        false,
		},
		{
			name:      "phone with trunk prefix and punctuation",
			in:        "8 (926) 123-45-67",
			queryType: domain.QueryTypePhone,
			out:       "+79261234567",
			ok:        true,
		},
		{
			name:      "phone already international",
			in:        "+7 926 123 45 67",
			queryType: domain.QueryTypePhone,
			out:       "+79261234567",
			ok:        true,
		},
		{
			name:      "bare ten digit phone",
			in:        "9261234567",
			queryType: domain.QueryTypePhone,
			out:       "+79261234567",
			ok:        true,
		},
		{
			name:      "too short phone rejected",
			in:        "12345",
			queryType: domain.QueryTypePhone,
			ok:        false,
		},
		{
			name:      "username lowercased",
			in:        "SomeUser",
			queryType: domain.QueryTypeUsername,
			out:       "someuser",
			ok:        true,
		},
		{
			name:      "username with spaces rejected",
			in:        "some user",
			queryType: domain.QueryTypeUsername,
			ok:        false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := breach.NormalizeIdentifier(tc.in, tc.queryType)
			if !tc.ok {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestMask(t *testing.T) {
	require.Equal(t, "v***m@example.com", breach.Mask("victim@example.com", domain.QueryTypeEmail))
	require.Equal(t, "a***@example.com", breach.Mask("ab@example.com", domain.QueryTypeEmail))
	require.Equal(t, "+792****67", breach.Mask("+79261234567", domain.QueryTypePhone))
	require.Equal(t, "so***", breach.Mask("someuser", domain.QueryTypeUsername))
}

func TestHashIdentifier_canonical(t *testing.T) {
	// hashing is case and whitespace insensitive so repeated checks match
	require.Equal(t,
		breach.HashIdentifier("User@Example.com "),
		breach.HashIdentifier("user@example.com"))
	require.NotEqual(t,
		breach.HashIdentifier("a@example.com"),
		breach.HashIdentifier("b@example.com"))
}
