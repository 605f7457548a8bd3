package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestResumeArchivePut(t *testing.T) {
	fake := &fakePutter{}
	archive := &ResumeArchive{client: fake, bucket: "resumes"}

	err := archive.Put(context.Background(), "resumes/u1/1.pdf", []byte("%PDF"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "resumes", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "resumes/u1/1.pdf", aws.ToString(fake.input.Key))
	assert.Equal(t, "application/pdf", aws.ToString(fake.input.ContentType))
	assert.Equal(t, int64(4), aws.ToInt64(fake.input.ContentLength))
	assert.Equal(t, []byte("%PDF"), fake.body)
}

func TestResumeArchivePutError(t *testing.T) {
	archive := &ResumeArchive{client: &fakePutter{err: errors.New("access denied")}, bucket: "resumes"}
	err := archive.Put(context.Background(), "k", nil, "application/pdf")
	assert.ErrorContains(t, err, "access denied")
}

func TestS3ConfigEnabled(t *testing.T) {
	assert.False(t, S3Config{}.Enabled())
	assert.True(t, S3Config{Bucket: "b"}.Enabled())
}
