package usecase_test

import (
	"context"

	"skillmatch-backend/internal/domain"
	"skillmatch-backend/pkg/security/antivirus"

	"github.com/stretchr/testify/mock"
)

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Get(ctx context.Context, collection, id string) (domain.Document, bool, error) {
	args := m.Called(ctx, collection, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(domain.Document), args.Bool(1), args.Error(2)
}

func (m *MockDocumentStore) Merge(ctx context.Context, collection, id string, patch domain.Patch) error {
	return m.Called(ctx, collection, id, patch).Error(0)
}

func (m *MockDocumentStore) List(ctx context.Context, collection string) ([]domain.StoredDocument, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredDocument), args.Error(1)
}

type MockInference struct {
	mock.Mock
}

func (m *MockInference) Generate(ctx context.Context, turns []domain.Turn) (*domain.InferenceResponse, error) {
	args := m.Called(ctx, turns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InferenceResponse), args.Error(1)
}

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Put(ctx context.Context, key string, data []byte, contentType string) error {
	return m.Called(ctx, key, data, contentType).Error(0)
}

type MockScanner struct {
	mock.Mock
}

func (m *MockScanner) Scan(ctx context.Context, filename string, data []byte) antivirus.ScanResult {
	return m.Called(ctx, filename, data).Get(0).(antivirus.ScanResult)
}

func (m *MockScanner) Name() string {
	return "mock"
}

func (m *MockScanner) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
