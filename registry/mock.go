package registry

import (
	"github.com/enarx/keepbroker/interfaces"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockKeepRegistry mocks the KeepRegistry interface
type MockKeepRegistry struct {
	mock.Mock
}

// Claim mocks the Claim method
func (m *MockKeepRegistry) Claim(contractID uuid.UUID) (interfaces.Keep, error) {
	args := m.Called(contractID)
	return args.Get(0).(interfaces.Keep), args.Error(1)
}

// List mocks the List method
func (m *MockKeepRegistry) List() []interfaces.Keep {
	args := m.Called()
	return args.Get(0).([]interfaces.Keep)
}

// Get mocks the Get method
func (m *MockKeepRegistry) Get(keepID uuid.UUID) (interfaces.Keep, error) {
	args := m.Called(keepID)
	return args.Get(0).(interfaces.Keep), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockKeepRegistry) Delete(keepID uuid.UUID) error {
	args := m.Called(keepID)
	return args.Error(0)
}

// MockContractCatalog mocks the ContractCatalog interface
type MockContractCatalog struct {
	mock.Mock
}

// List mocks the List method
func (m *MockContractCatalog) List() []interfaces.Contract {
	args := m.Called()
	return args.Get(0).([]interfaces.Contract)
}

// Get mocks the Get method
func (m *MockContractCatalog) Get(id uuid.UUID) (interfaces.Contract, error) {
	args := m.Called(id)
	return args.Get(0).(interfaces.Contract), args.Error(1)
}
