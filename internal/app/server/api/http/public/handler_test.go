package public

import (
	"context"
	"testing"
	"time"

	"sharevault/internal/app/server/api/http/middleware/origin"
	"sharevault/internal/domain/access"
	"sharevault/internal/domain/share"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Create(ctx context.Context, userID, itemID int, expiresAt time.Time, maxViews int, password string) (share.CreateResult, error) {
	args := m.Called(ctx, userID, itemID, expiresAt, maxViews, password)
	return args.Get(0).(share.CreateResult), args.Error(1)
}

func (m *MockShareService) Metadata(ctx context.Context, token string) (share.Metadata, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(share.Metadata), args.Error(1)
}

func (m *MockShareService) ListForItem(ctx context.Context, userID, itemID int) ([]share.LinkStatus, error) {
	args := m.Called(ctx, userID, itemID)
	if statuses := args.Get(0); statuses != nil {
		return statuses.([]share.LinkStatus), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareService) Update(ctx context.Context, userID, linkID int, patch share.UpdatePatch) (share.LinkStatus, error) {
	args := m.Called(ctx, userID, linkID, patch)
	return args.Get(0).(share.LinkStatus), args.Error(1)
}

func (m *MockShareService) SoftDelete(ctx context.Context, userID, linkID int) error {
	args := m.Called(ctx, userID, linkID)
	return args.Error(0)
}

type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) Attempt(ctx context.Context, token, password, clientIP string) (access.Content, error) {
	args := m.Called(ctx, token, password, clientIP)
	return args.Get(0).(access.Content), args.Error(1)
}

func TestHandler_metadata(t *testing.T) {
	shares := new(MockShareService)
	evaluator := new(MockEvaluator)
	handler := NewHandler(shares, evaluator, slog.Default(), huma.Middlewares{})

	expiresAt := time.Now().Add(time.Hour)
	shares.On("Metadata", mock.Anything, "tok").Return(share.Metadata{
		Title:               "API key",
		IsPasswordProtected: true,
		ExpiresAt:           expiresAt,
		IsLocked:            false,
	}, nil)

	output, err := handler.metadata(context.Background(), &metadataInput{Token: "tok"})
	assert.NoError(t, err)
	assert.Equal(t, "API key", output.Body.Title)
	assert.True(t, output.Body.IsPasswordProtected)
}

func TestHandler_metadata_NotFound(t *testing.T) {
	shares := new(MockShareService)
	evaluator := new(MockEvaluator)
	handler := NewHandler(shares, evaluator, slog.Default(), huma.Middlewares{})

	shares.On("Metadata", mock.Anything, "missing").Return(share.Metadata{}, share.ErrNotFound)

	_, err := handler.metadata(context.Background(), &metadataInput{Token: "missing"})
	assert.Error(t, err)

	var statusErr huma.StatusError
	assert.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
	assert.Contains(t, err.Error(), "Link invalid or expired")
}

func TestHandler_access(t *testing.T) {
	shares := new(MockShareService)
	evaluator := new(MockEvaluator)
	handler := NewHandler(shares, evaluator, slog.Default(), huma.Middlewares{})

	ctx := origin.WithClientIP(context.Background(), "203.0.113.9")

	evaluator.On("Attempt", mock.Anything, "tok", "pw", "203.0.113.9").
		Return(access.Content{Content: "s3cret", Message: "Access granted."}, nil)

	output, err := handler.access(ctx, &accessInput{Token: "tok", Body: accessRequest{Password: "pw"}})
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", output.Body.Content)

	evaluator.AssertExpectations(t)
}

func TestHandler_access_DenialMapping(t *testing.T) {
	tests := []struct {
		name            string
		evalErr         error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "unknown token",
			evalErr:         share.ErrNotFound,
			expectedStatus:  404,
			expectedMessage: "Link not found",
		},
		{
			name:            "revoked",
			evalErr:         share.ErrRevoked,
			expectedStatus:  410,
			expectedMessage: "This link has been revoked.",
		},
		{
			name:            "expired",
			evalErr:         share.ErrExpired,
			expectedStatus:  410,
			expectedMessage: "This link has expired.",
		},
		{
			name:            "view limit",
			evalErr:         share.ErrExhausted,
			expectedStatus:  410,
			expectedMessage: "View limit reached.",
		},
		{
			name:            "bad password",
			evalErr:         share.ErrBadPassword,
			expectedStatus:  401,
			expectedMessage: "Incorrect password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := new(MockShareService)
			evaluator := new(MockEvaluator)
			handler := NewHandler(shares, evaluator, slog.Default(), huma.Middlewares{})

			evaluator.On("Attempt", mock.Anything, "tok", "", "unknown").
				Return(access.Content{}, tt.evalErr)

			_, err := handler.access(context.Background(), &accessInput{Token: "tok"})
			assert.Error(t, err)

			var statusErr huma.StatusError
			assert.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.expectedStatus, statusErr.GetStatus())
			assert.Contains(t, err.Error(), tt.expectedMessage)
		})
	}
}
