//go:build unit

package user_test

import (
	"strings"
	"testing"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {

		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("admin@example.com")
		role, _ := user.NewRole("admin")
		expected := user.NewUser(email, "hashed_password", role)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "admin@example.com", actual.Email().Value())
		assert.True(t, actual.IsActive())
		assert.True(t, actual.CanAdminister())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "大文字混じりでもOK",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Admin@Example.COM") },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "無効な形式NG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "ドメインにドットなしNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("admin@localhost") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "表示名付きNG",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Admin <admin@example.com>") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("admin") },
			},
			{
				name:   "user ロールOK",
				mutate: func(b *builder.UserBuilder) { b.WithRole("user") },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("operator") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "大文字のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("ADMIN") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("状態検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) { /* デフォルトでアクティブ */ },
			},
			{
				name:   "非アクティブユーザーOK",
				mutate: func(b *builder.UserBuilder) { b.AsInactive() },
			},
		})
	})
}

func TestUser_CanAdminister(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.UserBuilder)
		want   bool
	}{
		{name: "アクティブな管理者は可", mutate: func(b *builder.UserBuilder) {}, want: true},
		{name: "非アクティブな管理者は不可", mutate: func(b *builder.UserBuilder) { b.AsInactive() }, want: false},
		{name: "一般ユーザーは不可", mutate: func(b *builder.UserBuilder) { b.WithRole("user") }, want: false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			u, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()
			require.NoError(t, err)
			assert.Equal(t, c.want, u.CanAdminister())
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleUser))
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleAdmin))
	assert.False(t, user.RoleUser.AtLeast(user.RoleAdmin))
	assert.False(t, user.Role("ghost").AtLeast(user.Role("ghost")))
}

func TestCredentials(t *testing.T) {
	t.Run("8文字のパスワードOK", func(t *testing.T) {
		creds, err := user.NewCredentials(" Admin@Example.com ", "password")
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", creds.Email().Value())
		assert.Equal(t, "password", creds.Password().Value())
	})

	t.Run("7文字のパスワードNG", func(t *testing.T) {
		_, err := user.NewCredentials("admin@example.com", strings.Repeat("a", 7))
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("無効なメールアドレスNG", func(t *testing.T) {
		_, err := user.NewCredentials("nope", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
