//go:build unit
// +build unit

package v1

import (
	"context"

	"rsa_engine_service/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerator is a mock implementation of keys.KeyGenerator
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) GenerateKeyPair(ctx context.Context, bits int) (*keys.KeyPair, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyPair), args.Error(1)
}

func (m *MockKeyGenerator) GenerateKeyPairAsync(ctx context.Context, bits int) <-chan keys.KeyPairResult {
	args := m.Called(ctx, bits)
	return args.Get(0).(<-chan keys.KeyPairResult)
}

// MockKeyCodec is a mock implementation of keys.KeyCodec
type MockKeyCodec struct {
	mock.Mock
}

func (m *MockKeyCodec) ExportPublicKey(key *keys.PublicKey) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyCodec) ExportPrivateKey(key *keys.PrivateKey) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *MockKeyCodec) ImportPublicKey(encoded string) (*keys.PublicKey, error) {
	args := m.Called(encoded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.PublicKey), args.Error(1)
}

func (m *MockKeyCodec) ImportPrivateKey(encoded string) (*keys.PrivateKey, error) {
	args := m.Called(encoded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.PrivateKey), args.Error(1)
}

// MockTransformerFactory is a mock implementation of keys.TransformerFactory
type MockTransformerFactory struct {
	mock.Mock
}

func (m *MockTransformerFactory) FromStrings(publicKey, privateKey string) (keys.Transformer, error) {
	args := m.Called(publicKey, privateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(keys.Transformer), args.Error(1)
}

// MockTransformer is a mock implementation of keys.Transformer
type MockTransformer struct {
	mock.Mock
}

func (m *MockTransformer) Encrypt(data any) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockTransformer) Decrypt(ciphertext string) (any, error) {
	args := m.Called(ciphertext)
	return args.Get(0), args.Error(1)
}

func (m *MockTransformer) Sign(data any) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockTransformer) Verify(data any, signature string) (bool, error) {
	args := m.Called(data, signature)
	return args.Bool(0), args.Error(1)
}
