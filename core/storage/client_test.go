package storage_test

import (
	"context"
	"errors"
	"testing"

	"ebook-library/core/storage"
	"ebook-library/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "library",
			Region:    "us-east-1",
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithScheme", func(t *testing.T) {
		client, err := storage.NewClient(storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "library").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "library", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "library").Return(false, nil)
		client.On("MakeBucket", ctx, "library", minio.MakeBucketOptions{Region: "eu"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, client, "library", "eu"))
		client.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", ctx, "library").Return(false, errors.New("denied"))

		err := storage.EnsureBucket(ctx, client, "library", "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestConfigObjectName(t *testing.T) {
	cfg := storage.Config{Prefix: "datasets/"}
	assert.Equal(t, "datasets/books.json", cfg.ObjectName("books.json"))
}
