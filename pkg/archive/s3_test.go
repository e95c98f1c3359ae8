package archive

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"europlast-backend/config"
	"europlast-backend/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPutter struct {
	mock.Mock
	body []byte
}

func (m *MockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if params.Body != nil {
		m.body, _ = io.ReadAll(params.Body)
	}
	args := m.Called(aws.ToString(params.Bucket), aws.ToString(params.Key))
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func testSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:         "sub-1",
		ReceivedAt: time.Date(2025, 3, 1, 23, 30, 0, 0, time.FixedZone("CET", 3600)),
		ClientIP:   "10.0.0.1",
		Request: domain.NewContactRequest(domain.ContactInput{
			Name:    "Alice",
			Email:   "alice@example.com",
			Phone:   "12345678",
			Subject: "Quote",
			Message: "Need 200 rolls",
		}),
	}
}

func TestObjectKeyUsesUTCDay(t *testing.T) {
	assert.Equal(t, "contact-submissions/2025/03/01/sub-1.json", ObjectKey(testSubmission()))
}

func TestS3ArchiveDispatch(t *testing.T) {
	putter := new(MockPutter)
	putter.On("PutObject", "europlast-contact", "contact-submissions/2025/03/01/sub-1.json").Return(&s3.PutObjectOutput{}, nil)

	require.NoError(t, NewS3Archive(putter, "europlast-contact").Dispatch(context.Background(), testSubmission()))
	putter.AssertExpectations(t)

	var stored archivedSubmission
	require.NoError(t, json.Unmarshal(putter.body, &stored))
	assert.Equal(t, "sub-1", stored.ID)
	assert.Equal(t, "alice@example.com", stored.Contact.Email)
	assert.Equal(t, time.UTC, stored.ReceivedAt.Location())
}

func TestS3ArchiveDispatchError(t *testing.T) {
	putter := new(MockPutter)
	putter.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("AccessDenied"))

	err := NewS3Archive(putter, "bucket").Dispatch(context.Background(), testSubmission())
	assert.ErrorContains(t, err, "failed to archive submission sub-1: AccessDenied")
}

func TestNewConfig(t *testing.T) {
	app := &config.Config{
		S3Provider:           "wasabi",
		S3Region:             "eu-central-1",
		S3AccessKeyID:        "key",
		S3SecretAccessKey:    "secret",
		ContactArchiveBucket: "europlast-contact",
	}

	cfg := NewConfig(app)
	assert.Equal(t, ProviderWasabi, cfg.Provider)
	assert.Equal(t, "s3.eu-central-1.wasabisys.com", cfg.Endpoint)
	assert.True(t, cfg.Enabled())

	app.S3Provider = "aws"
	app.ContactArchiveBucket = ""
	cfg = NewConfig(app)
	assert.Equal(t, ProviderAWS, cfg.Provider)
	assert.Empty(t, cfg.Endpoint)
	assert.False(t, cfg.Enabled())
}
