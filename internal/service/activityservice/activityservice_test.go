package activityservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ordertracker/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestList(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Activity
		expectedError error
	}{
		{
			name: "Activities found",
			prepareMock: func() {
				repo.EXPECT().ListActivities(gomock.Any(), domain.MaxActivities).Return([]domain.Activity{
					{ID: 2, Action: domain.ActionPayment},
					{ID: 1, Action: domain.ActionCreate},
				}, nil)
			},
			expected: []domain.Activity{
				{ID: 2, Action: domain.ActionPayment},
				{ID: 1, Action: domain.ActionCreate},
			},
		},
		{
			name: "Empty journal",
			prepareMock: func() {
				repo.EXPECT().ListActivities(gomock.Any(), domain.MaxActivities).Return(nil, nil)
			},
			expected: []domain.Activity{},
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().ListActivities(gomock.Any(), domain.MaxActivities).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			activities, err := service.List(context.Background())
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, activities)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, activities)
		})
	}
}
