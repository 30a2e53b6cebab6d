package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-job-board/internal/models"
	"github.com/sbilibin2017/gw-job-board/internal/repositories"
	"github.com/sbilibin2017/gw-job-board/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		callWriter   bool
		writerID     int64
		writerErr    error
		wantID       int64
		wantErr      error
	}{
		{
			name:       "successful registration",
			username:   "alice",
			email:      "alice@example.com",
			password:   "pass123",
			callWriter: true,
			writerID:   7,
			wantID:     7,
		},
		{
			name:         "username or email taken",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{ID: 1, Username: "bob"},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:       "unique violation from concurrent insert",
			username:   "dave",
			email:      "dave@example.com",
			password:   "pass123",
			callWriter: true,
			writerErr:  repositories.ErrDuplicate,
			wantErr:    services.ErrUserAlreadyExists,
		},
		{
			name:       "writer error",
			username:   "carol",
			email:      "carol@example.com",
			password:   "pass123",
			callWriter: true,
			writerErr:  errors.New("save error"),
			wantErr:    errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
				Return(tt.existingUser, tt.readerErr)

			if tt.callWriter {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, tt.email, gomock.Any(), models.UserTypeSeeker).
					DoAndReturn(func(_ context.Context, _, _, hash string, _ models.UserType) (int64, error) {
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(tt.password)))
						return tt.writerID, tt.writerErr
					})
			}

			id, err := svc.Register(context.Background(), tt.username, tt.email, tt.password, models.UserTypeSeeker)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter)

	password := "secret"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		username  string
		loginPass string
		user      *models.UserDB
		readerErr error
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{ID: 3, Username: "alice", PasswordHash: string(hashed), UserType: models.UserTypeEmployer},
		},
		{
			name:      "unknown user",
			username:  "ghost",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "wrong password",
			username:  "alice",
			loginPass: "wrong",
			user:      &models.UserDB{ID: 3, Username: "alice", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			loginPass: password,
			readerErr: errors.New("db down"),
			wantErr:   errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsernameOrEmail(gomock.Any(), &tt.username, nil).
				Return(tt.user, tt.readerErr)

			user, err := svc.Login(context.Background(), tt.username, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.user.ID, user.ID)
			assert.Equal(t, models.UserTypeEmployer, user.UserType)
		})
	}
}

func TestAuthService_Seed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter)
	ctx := context.Background()
	username, email := "muser", "muser@example.com"

	t.Run("existing account is left alone", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsernameOrEmail(gomock.Any(), &username, nil).
			Return(&models.UserDB{ID: 1, Username: username}, nil)

		assert.NoError(t, svc.Seed(ctx, username, email, "muser", models.UserTypeSeeker))
	})

	t.Run("missing account is created", func(t *testing.T) {
		gomock.InOrder(
			mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, nil).Return(nil, nil),
			mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, &email).Return(nil, nil),
		)
		mockWriter.EXPECT().
			Save(gomock.Any(), username, email, gomock.Any(), models.UserTypeSeeker).
			Return(int64(1), nil)

		assert.NoError(t, svc.Seed(ctx, username, email, "muser", models.UserTypeSeeker))
	})

	t.Run("email taken by another account", func(t *testing.T) {
		gomock.InOrder(
			mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, nil).Return(nil, nil),
			mockReader.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, &email).Return(&models.UserDB{ID: 9}, nil),
		)

		assert.NoError(t, svc.Seed(ctx, username, email, "muser", models.UserTypeSeeker))
	})
}
