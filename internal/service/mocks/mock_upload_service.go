package mocks

import (
	"context"

	"docdash/internal/service"
	"docdash/internal/upload"
	"github.com/stretchr/testify/mock"
)

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) session(args mock.Arguments) (*service.UploadSession, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadSession), args.Error(1)
}

func (m *MockUploadService) Open(ctx context.Context) (*service.UploadSession, error) {
	return m.session(m.Called(ctx))
}

func (m *MockUploadService) Get(ctx context.Context, id string) (*service.UploadSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockUploadService) SelectFile(ctx context.Context, id string, file upload.FileRef) (*service.UploadSession, error) {
	return m.session(m.Called(ctx, id, file))
}

func (m *MockUploadService) SetSummary(ctx context.Context, id string, summary string) (*service.UploadSession, error) {
	return m.session(m.Called(ctx, id, summary))
}

func (m *MockUploadService) Start(ctx context.Context, id string) (*service.UploadSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockUploadService) Cancel(ctx context.Context, id string) (*service.UploadSession, error) {
	return m.session(m.Called(ctx, id))
}

func (m *MockUploadService) Close(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUploadService) Shutdown() {
	m.Called()
}
