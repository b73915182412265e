package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/internal/models"
	mock_repository "github.com/19smabtahinoor/Vocab-FlashCard/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsersMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *UsersR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &UsersR{db: db}
}

func TestUsersR_CreateUser(t *testing.T) {
	t.Parallel()

	user := models.User{
		ID:           "u1",
		Email:        "user@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		f        func(*mock_repository.MockQueryI)
		wantErr  error
		anyError bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(driver.RowsAffected(1), nil)
			},
		},
		{
			name: "email already registered",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})
			},
			wantErr: models.ErrEmailTaken,
		},
		{
			name: "other error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			anyError: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newUsersMock(t, ctrl, tt.f)

			err := repo.CreateUser(context.Background(), user)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.anyError:
				require.Error(t, err)
				assert.NotErrorIs(t, err, models.ErrEmailTaken)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestUsersR_UserByEmail(t *testing.T) {
	t.Parallel()

	user := models.User{ID: "u1", Email: "user@example.com", PasswordHash: "hash"}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.User
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&models.User{}), gomock.Any(), "user@example.com").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.User) = user
						return nil
					})
			},
			want: user,
		},
		{
			name: "unknown email",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			wantErr: models.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newUsersMock(t, ctrl, tt.f)

			got, err := repo.UserByEmail(context.Background(), "user@example.com")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsersR_UserByID(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newUsersMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "missing").Return(sql.ErrNoRows)
	})

	_, err := repo.UserByID(context.Background(), "missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestUsersR_ConfirmUser(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr error
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "user@example.com", at).Return(driver.RowsAffected(1), nil)
			},
		},
		{
			name: "unknown email",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "user@example.com", at).Return(driver.RowsAffected(0), nil)
			},
			wantErr: models.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newUsersMock(t, ctrl, tt.f)

			err := repo.ConfirmUser(context.Background(), "user@example.com", at)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
