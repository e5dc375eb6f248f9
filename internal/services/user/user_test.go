package user

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/daily-diet/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *RepoMock) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *RepoMock) ListMealsOrdered(ctx context.Context, userID string) ([]*models.Meal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Meal), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestService_Register(t *testing.T) {
	req := models.DummyUser{
		Name:      "Alice",
		Email:     "alice@example.com",
		AvatarURL: "https://example.com/alice.png",
	}

	tests := []struct {
		name       string
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name: "успешная регистрация",
			setupMocks: func(r *RepoMock) {
				r.On("UserExistsByEmail", mock.Anything, req.Email).Return(false, nil)
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
					_, err := uuid.Parse(u.ID)
					return err == nil && u.Email == req.Email && u.SessionID == "token-1"
				})).Return(nil)
			},
		},
		{
			name: "почта уже занята",
			setupMocks: func(r *RepoMock) {
				r.On("UserExistsByEmail", mock.Anything, req.Email).Return(true, nil)
			},
			wantErr: models.ErrEmailTaken,
		},
		{
			name: "гонка регистраций: уникальный индекс закрывает вставку",
			setupMocks: func(r *RepoMock) {
				r.On("UserExistsByEmail", mock.Anything, req.Email).Return(false, nil)
				r.On("CreateUser", mock.Anything, mock.Anything).Return(models.ErrEmailTaken)
			},
			wantErr: models.ErrEmailTaken,
		},
		{
			name: "ошибка хранилища при проверке",
			setupMocks: func(r *RepoMock) {
				r.On("UserExistsByEmail", mock.Anything, req.Email).
					Return(false, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setupMocks(repo)

			svc := NewService(repo, newNoopLogger())
			err := svc.Register(context.Background(), req, "token-1")

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, models.ErrEmailTaken) {
					assert.ErrorIs(t, err, models.ErrEmailTaken)
				}
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func mealsFromFlags(flags []bool) []*models.Meal {
	meals := make([]*models.Meal, 0, len(flags))
	for i, onDiet := range flags {
		meals = append(meals, &models.Meal{
			ID:     uuid.New().String(),
			OnDiet: onDiet,
			// date_time монотонно возрастает, как того требует контракт формата
			DateTime: string(rune('a' + i)),
		})
	}
	return meals
}

func TestService_Metrics(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name  string
		flags []bool
		want  models.Metrics
	}{
		{
			name:  "пустая история",
			flags: nil,
			want:  models.Metrics{},
		},
		{
			name:  "пример из контракта: серия из трёх",
			flags: []bool{true, true, false, true, true, true},
			want: models.Metrics{
				TotalMealsQuantity:        6,
				MealsOnDietQuantity:       4,
				MealsOffDietQuantity:      2,
				BestSequenceOfMealsOnDiet: 3,
			},
		},
		{
			name:  "все приёмы в рамках диеты",
			flags: []bool{true, true, true},
			want: models.Metrics{
				TotalMealsQuantity:        3,
				MealsOnDietQuantity:       3,
				BestSequenceOfMealsOnDiet: 3,
			},
		},
		{
			name:  "все приёмы вне диеты",
			flags: []bool{false, false},
			want: models.Metrics{
				TotalMealsQuantity:   2,
				MealsOffDietQuantity: 2,
			},
		},
		{
			name:  "лучшая серия в начале",
			flags: []bool{true, true, false, true},
			want: models.Metrics{
				TotalMealsQuantity:        4,
				MealsOnDietQuantity:       3,
				MealsOffDietQuantity:      1,
				BestSequenceOfMealsOnDiet: 2,
			},
		},
		{
			name:  "лучшая серия в конце",
			flags: []bool{false, true, true},
			want: models.Metrics{
				TotalMealsQuantity:        3,
				MealsOnDietQuantity:       2,
				MealsOffDietQuantity:      1,
				BestSequenceOfMealsOnDiet: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("ListMealsOrdered", mock.Anything, userID).
				Return(mealsFromFlags(tt.flags), nil)

			svc := NewService(repo, newNoopLogger())
			got, err := svc.Metrics(context.Background(), userID)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			// Инвариант: total = on + off
			assert.Equal(t, got.TotalMealsQuantity,
				got.MealsOnDietQuantity+got.MealsOffDietQuantity)
		})
	}
}

func TestService_Metrics_RepoError(t *testing.T) {
	userID := uuid.New().String()
	repo := new(RepoMock)
	repo.On("ListMealsOrdered", mock.Anything, userID).
		Return(nil, errors.New("db error"))

	svc := NewService(repo, newNoopLogger())
	_, err := svc.Metrics(context.Background(), userID)

	require.Error(t, err)
}
