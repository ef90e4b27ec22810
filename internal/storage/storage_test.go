package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// fakeS3 records calls and delegates presigning to a real offline client
type fakeS3 struct {
	S3API
	puts    []*s3.PutObjectInput
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, input)
	return &s3.PutObjectOutput{}, f.err
}

func (f *fakeS3) DeleteObjectWithContext(ctx aws.Context, input *s3.DeleteObjectInput, opts ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deletes = append(f.deletes, input)
	return &s3.DeleteObjectOutput{}, f.err
}

type ObjectStoreTestSuite struct {
	suite.Suite
	fake  *fakeS3
	store *ObjectStore
}

func (suite *ObjectStoreTestSuite) SetupTest() {
	suite.fake = &fakeS3{}
	suite.store = NewObjectStoreWithClient(suite.fake, "legal-uploads")
}

func (suite *ObjectStoreTestSuite) TestPut() {
	err := suite.store.Put(context.Background(), "workspace_1/original/a.pdf", "application/pdf", []byte("%PDF"))
	suite.Require().NoError(err)
	suite.Require().Len(suite.fake.puts, 1)

	in := suite.fake.puts[0]
	suite.Equal("legal-uploads", aws.StringValue(in.Bucket))
	suite.Equal("workspace_1/original/a.pdf", aws.StringValue(in.Key))
	suite.Equal("application/pdf", aws.StringValue(in.ContentType))
	suite.Equal(int64(4), aws.Int64Value(in.ContentLength))
	body, err := io.ReadAll(in.Body)
	suite.Require().NoError(err)
	suite.Equal("%PDF", string(body))
}

func (suite *ObjectStoreTestSuite) TestDelete() {
	suite.Require().NoError(suite.store.Delete(context.Background(), "k"))
	suite.Require().Len(suite.fake.deletes, 1)
	suite.Equal("k", aws.StringValue(suite.fake.deletes[0].Key))
}

func (suite *ObjectStoreTestSuite) TestErrorsAreWrapped() {
	suite.fake.err = errors.New("boom")
	err := suite.store.Put(context.Background(), "k", "text/plain", nil)
	suite.Error(err)
	suite.Contains(err.Error(), "put object k")

	err = suite.store.Delete(context.Background(), "k")
	suite.Error(err)
	suite.Contains(err.Error(), "delete object k")
}

func TestObjectStoreTestSuite(t *testing.T) {
	suite.Run(t, new(ObjectStoreTestSuite))
}

func TestPresignGet(t *testing.T) {
	store, err := NewObjectStore(&Config{
		Region:          "us-east-1",
		Bucket:          "legal-uploads",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	url, err := store.PresignGet("profile-images/me.png", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, strings.Contains(url, "profile-images/me.png"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
}

func TestNewObjectStoreRequiresBucket(t *testing.T) {
	_, err := NewObjectStore(&Config{Region: "us-east-1"})
	assert.Error(t, err)
}
