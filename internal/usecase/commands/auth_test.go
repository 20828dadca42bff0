//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/infra"
	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/errs"
	"sandwich-storefront/internal/pkg/jwt"
	"sandwich-storefront/internal/pkg/password"
	"sandwich-storefront/internal/usecase/commands"
	"sandwich-storefront/tests/common/builder"
	queriesmock "sandwich-storefront/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const plainPassword = "password123"

type authFixture struct {
	tx        *txMocks
	readStore *queriesmock.MockUserReadStore
	jwt       *jwt.Service
	sut       commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	m := newTxMocks(t)
	readStore := queriesmock.NewMockUserReadStore(gomock.NewController(t))
	svc := jwt.NewService("test-secret", time.Hour, clock.NewMockClock(time.Now()))
	return &authFixture{
		tx:        m,
		readStore: readStore,
		jwt:       svc,
		sut:       commands.NewAuthCommands(m.uow, readStore, svc),
	}
}

func credentials(t *testing.T, email, plain string) user.Credentials {
	t.Helper()
	c, err := user.NewCredentials(email, plain)
	require.NoError(t, err)
	return c
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword(plainPassword)
	require.NoError(t, err)

	t.Run("正常系: トークンを発行し最終ログインを更新する", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildReadModel()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), "admin@example.com").Return(view, hash, nil)
		f.tx.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(nil)

		got, err := f.sut.Login(ctx, credentials(t, " Admin@Example.com ", plainPassword))

		require.NoError(t, err)
		assert.Equal(t, view.ID, got.UserID)
		assert.Same(t, view, got.User)
		claims, err := f.jwt.ValidateToken(got.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("正常系: 最終ログインの更新失敗はログインを妨げない", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewUserBuilder().BuildReadModel()
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(view, hash, nil)
		f.tx.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).
			Return(infra.WrapRepoErr("failed to update last login", errors.New("connection reset")))

		got, err := f.sut.Login(ctx, credentials(t, "admin@example.com", plainPassword))

		require.NoError(t, err)
		assert.NotEmpty(t, got.AccessToken)
	})

	t.Run("異常系: 未登録のメールアドレスはパスワード誤りと同じ扱い", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", notFound("user not found"))

		_, err := f.sut.Login(ctx, credentials(t, "nobody@example.com", plainPassword))

		assert.True(t, errs.Is(err, errs.ErrInvalidCredentials))
	})

	t.Run("異常系: パスワード誤り", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().BuildReadModel(), hash, nil)

		_, err := f.sut.Login(ctx, credentials(t, "admin@example.com", "wrongpassword"))

		assert.True(t, errs.Is(err, errs.ErrInvalidCredentials))
	})

	t.Run("異常系: 無効なアカウントはパスワード確認の前に拒否する", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), hash, nil)

		_, err := f.sut.Login(ctx, credentials(t, "admin@example.com", "wrongpassword"))

		assert.True(t, errs.Is(err, errs.ErrInactiveUser))
	})

	t.Run("異常系: 管理者以外はログインできない", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().WithRole("user").BuildReadModel(), hash, nil)

		_, err := f.sut.Login(ctx, credentials(t, "admin@example.com", plainPassword))

		assert.True(t, errs.Is(err, errs.ErrInvalidCredentials))
	})

	t.Run("異常系: 読み取りストアの障害", func(t *testing.T) {
		f := newAuthFixture(t)
		f.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.WrapRepoErr("failed to find user", errors.New("connection reset")))

		_, err := f.sut.Login(ctx, credentials(t, "admin@example.com", plainPassword))

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
		assert.False(t, errs.Is(err, errs.ErrInvalidCredentials))
	})
}

func TestAuthCommands_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 既存アカウントには何もしない", func(t *testing.T) {
		f := newAuthFixture(t)
		existing, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		f.tx.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), existing.Email()).Return(existing, nil)

		assert.NoError(t, f.sut.EnsureAdmin(ctx, "admin@example.com", plainPassword))
	})

	t.Run("正常系: 未登録なら管理者を作成する", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tx.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound("user not found"))
		f.tx.users.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) error {
				assert.Equal(t, "owner@example.com", u.Email().Value())
				assert.Equal(t, user.RoleAdmin, u.Role())
				assert.True(t, u.IsActive())
				assert.NoError(t, password.ComparePassword(u.PasswordHash(), plainPassword))
				return nil
			})

		assert.NoError(t, f.sut.EnsureAdmin(ctx, "Owner@Example.com", plainPassword))
	})

	t.Run("異常系: 検索失敗はそのまま返す", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tx.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to find user", errors.New("connection reset")))

		err := f.sut.EnsureAdmin(ctx, "admin@example.com", plainPassword)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("異常系: 不正な認証情報", func(t *testing.T) {
		cases := map[string]struct{ email, plain string }{
			"メール形式が不正": {"not-an-email", plainPassword},
			"パスワードが短い": {"admin@example.com", "short"},
		}
		for name, tc := range cases {
			t.Run(name, func(t *testing.T) {
				f := newAuthFixture(t)

				err := f.sut.EnsureAdmin(ctx, tc.email, tc.plain)

				assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			})
		}
	})
}
