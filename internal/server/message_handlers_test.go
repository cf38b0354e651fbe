package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mediafeed/internal/models"
	"mediafeed/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMessageRepository is a mock of the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) GetConversation(ctx context.Context, userA, userB uint) ([]*models.Message, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Message), args.Error(1)
}

func newMessageTestServer(msgRepo *MockMessageRepository, userRepo *MockUserRepository) *Server {
	s := &Server{config: testConfig(), messageRepo: msgRepo, userRepo: userRepo}
	s.messageService = service.NewMessageService(msgRepo, userRepo)
	return s
}

func TestSendMessageHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		body           map[string]string
		mockSetup      func(msgRepo *MockMessageRepository, userRepo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Success",
			path: "/messages/2",
			body: map[string]string{"message": "hello"},
			mockSetup: func(msgRepo *MockMessageRepository, userRepo *MockUserRepository) {
				userRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
				msgRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty Body",
			path:           "/messages/2",
			body:           map[string]string{"message": "   "},
			mockSetup:      func(msgRepo *MockMessageRepository, userRepo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown Receiver",
			path: "/messages/99",
			body: map[string]string{"message": "hello"},
			mockSetup: func(msgRepo *MockMessageRepository, userRepo *MockUserRepository) {
				userRepo.On("GetByID", mock.Anything, uint(99)).Return(nil, models.NewNotFoundError("User"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid Receiver ID",
			path:           "/messages/abc",
			body:           map[string]string{"message": "hello"},
			mockSetup:      func(msgRepo *MockMessageRepository, userRepo *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			msgRepo := new(MockMessageRepository)
			userRepo := new(MockUserRepository)
			tt.mockSetup(msgRepo, userRepo)
			s := newMessageTestServer(msgRepo, userRepo)
			app.Post("/messages/:receiverId", asUser(1), s.SendMessage)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			msgRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestGetConversationHandler(t *testing.T) {
	app := fiber.New()
	msgRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	userRepo.On("GetByID", mock.Anything, uint(2)).Return(&models.User{ID: 2}, nil)
	msgRepo.On("GetConversation", mock.Anything, uint(1), uint(2)).Return([]*models.Message{
		{ID: 1, SenderID: 1, ReceiverID: 2, Body: "hi"},
		{ID: 2, SenderID: 2, ReceiverID: 1, Body: "hey"},
	}, nil)
	s := newMessageTestServer(msgRepo, userRepo)
	app.Get("/messages/:otherUserId", asUser(1), s.GetConversation)

	req := httptest.NewRequest(http.MethodGet, "/messages/2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var payload []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload, 2)
	assert.Equal(t, "hi", payload[0]["message"])
	assert.Equal(t, "hey", payload[1]["message"])
}
