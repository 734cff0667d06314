package staff

import "context"

type MockStaffService struct {
	CreateFunc func(ctx context.Context, req CreateStaffRequest) (Staff, error)
	GetFunc    func(ctx context.Context, username string) (Staff, error)
	DeleteFunc func(ctx context.Context, username string) error
	LoginFunc  func(ctx context.Context, username, password string) (Staff, error)
}

func NewMockStaffService() MockStaffService {
	return MockStaffService{
		CreateFunc: func(ctx context.Context, req CreateStaffRequest) (Staff, error) { return Staff{}, nil },
		GetFunc:    func(ctx context.Context, username string) (Staff, error) { return Staff{}, nil },
		DeleteFunc: func(ctx context.Context, username string) error { return nil },
		LoginFunc:  func(ctx context.Context, username, password string) (Staff, error) { return Staff{}, nil },
	}
}

func (m *MockStaffService) Create(ctx context.Context, req CreateStaffRequest) (Staff, error) {
	return m.CreateFunc(ctx, req)
}

func (m *MockStaffService) Get(ctx context.Context, username string) (Staff, error) {
	return m.GetFunc(ctx, username)
}

func (m *MockStaffService) Delete(ctx context.Context, username string) error {
	return m.DeleteFunc(ctx, username)
}

func (m *MockStaffService) Login(ctx context.Context, username, password string) (Staff, error) {
	return m.LoginFunc(ctx, username, password)
}
