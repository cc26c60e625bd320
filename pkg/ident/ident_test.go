package ident_test

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuxler/dbident/pkg/ident"
)

func subTestName(tName string, good bool) string {
	if tName == "" {
		tName = "empty"
	}
	if good {
		return "(good) " + tName
	}
	return "(bad) " + tName
}

func TestNew(t *testing.T) {
	testcases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "AbCdEfG", want: "abcdefg"},
		{input: "a0123456789", want: "a0123456789"},
		{input: "Hello World", want: "hello world"},
		{input: "_1a", want: "_1a"},
		{input: "_", want: "_"},
		{input: "a", want: "a"},
		{input: "Z", want: "z"},
		{input: "abc ", want: "abc "},
		{input: "A_B C", want: "a_b c"},
		{input: "already_lower", want: "already_lower"},
		{input: "", wantErr: true},
		{input: "1a", wantErr: true},
		{input: " abc ", wantErr: true},
		{input: " ", wantErr: true},
		{input: "0", wantErr: true},
		{input: "9abc", wantErr: true},
		{input: "my-table", wantErr: true},
		{input: "a.b", wantErr: true},
		{input: "a\tb", wantErr: true},
		{input: "a\nb", wantErr: true},
		{input: "héllo", wantErr: true},
		{input: "名前", wantErr: true},
		{input: "a;drop table users", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(subTestName(tc.input, !tc.wantErr), func(t *testing.T) {
			got, err := ident.New(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ident.ErrBadName)
				assert.True(t, got.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
			assert.False(t, got.IsZero())
		})
	}
}

func TestNew_Idempotent(t *testing.T) {
	inputs := []string{"AbCdEfG", "Hello World", "_1a", "a0123456789", "abc "}
	for _, input := range inputs {
		t.Run(subTestName(input, true), func(t *testing.T) {
			first := ident.MustNew(input)
			second := ident.MustNew(first.String())
			assert.Equal(t, first, second)
			assert.True(t, first == second)
		})
	}
}

func TestNew_CaseInsensitive(t *testing.T) {
	testcases := []struct {
		a string
		b string
	}{
		{"AbCdEfG", "aBcDeFg"},
		{"Hello World", "HELLO WORLD"},
		{"snake_CASE", "SNAKE_case"},
	}
	for _, tc := range testcases {
		t.Run(tc.a, func(t *testing.T) {
			left := ident.MustNew(tc.a)
			right := ident.MustNew(tc.b)
			assert.Equal(t, left, right)
			assert.True(t, left.Equal(right))
		})
	}
}

func TestNew_CanonicalIsLowercase(t *testing.T) {
	inputs := []string{"AbCdEfG", "HELLO WORLD", "_MiXeD_1 2 3", "Z"}
	for _, input := range inputs {
		got := ident.MustNew(input)
		assert.Equal(t, strings.ToLower(got.String()), got.String())
	}
}

func TestNew_WithMaxLength(t *testing.T) {
	_, err := ident.New("accounts", ident.WithMaxLength(3))
	assert.ErrorIs(t, err, ident.ErrBadName)

	got, err := ident.New("acc", ident.WithMaxLength(3))
	require.NoError(t, err)
	assert.Equal(t, "acc", got.String())

	// the default imposes no bound
	long := "a" + strings.Repeat("b", 4096)
	_, err = ident.New(long)
	assert.NoError(t, err)
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() {
		ident.MustNew("ok_name")
	})
	assert.Panics(t, func() {
		ident.MustNew("1bad")
	})
}

func TestNormalize(t *testing.T) {
	got, err := ident.Normalize("AbCdEfG")
	require.NoError(t, err)
	assert.Equal(t, "abcdefg", got)

	_, err = ident.Normalize(" abc ")
	assert.ErrorIs(t, err, ident.ErrBadName)
}

func TestValidate(t *testing.T) {
	testcases := []struct {
		input  string
		reason string
	}{
		{"", "non-empty name is required"},
		{"1a", "cannot start with a digit"},
		{" abc ", "cannot start with a space"},
		{"a-b", "disallowed character '-' at position 1"},
		{"ab\tc", "disallowed character '\\t' at position 2"},
		{"héllo", "disallowed character 'é' at position 1"},
	}
	for _, tc := range testcases {
		t.Run(subTestName(tc.input, false), func(t *testing.T) {
			err := ident.Validate(tc.input)
			assert.ErrorIs(t, err, ident.ErrBadName)
			assert.ErrorContains(t, err, tc.reason)
		})
	}

	assert.NoError(t, ident.Validate("Hello World"))
}

func TestIsValid(t *testing.T) {
	assert.True(t, ident.IsValid("Hello World"))
	assert.True(t, ident.IsValid("_1a"))
	assert.False(t, ident.IsValid(""))
	assert.False(t, ident.IsValid("1a"))
	assert.False(t, ident.IsValid(" abc "))
	assert.False(t, ident.IsValid("a!"))
}

func TestIdentifier_MapKey(t *testing.T) {
	counts := map[ident.Identifier]int{}
	counts[ident.MustNew("Accounts")]++
	counts[ident.MustNew("ACCOUNTS")]++
	counts[ident.MustNew("orders")]++

	assert.Len(t, counts, 2)
	assert.Equal(t, 2, counts[ident.MustNew("accounts")])
}

func TestIdentifier_Compare(t *testing.T) {
	a := ident.MustNew("Alpha")
	b := ident.MustNew("beta")

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, a.Compare(ident.MustNew("ALPHA")))

	ids := []ident.Identifier{b, a, ident.MustNew("Gamma")}
	slices.SortFunc(ids, ident.Identifier.Compare)
	assert.Equal(t, "alpha", ids[0].String())
	assert.Equal(t, "beta", ids[1].String())
	assert.Equal(t, "gamma", ids[2].String())
}

func TestIdentifier_GoString(t *testing.T) {
	id := ident.MustNew("Hello World")
	assert.Equal(t, `"hello world"`, fmt.Sprintf("%#v", id))
}

func TestIdentifier_TextCodec(t *testing.T) {
	type table struct {
		Name ident.Identifier `json:"name"`
	}

	data, err := json.Marshal(table{Name: ident.MustNew("Accounts")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "accounts"}`, string(data))

	var decoded table
	require.NoError(t, json.Unmarshal([]byte(`{"name": "ORDers"}`), &decoded))
	assert.Equal(t, ident.MustNew("orders"), decoded.Name)

	err = json.Unmarshal([]byte(`{"name": "1bad"}`), &decoded)
	assert.ErrorIs(t, err, ident.ErrBadName)
}
