package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t,
		"https://cdn.hospital.test",
		publicBaseURL(S3Config{PublicBaseURL: "https://cdn.hospital.test/", Bucket: "avatars"}),
	)
	assert.Equal(t,
		"http://localhost:9000/avatars",
		publicBaseURL(S3Config{Endpoint: "http://localhost:9000", Bucket: "avatars"}),
	)
	assert.Equal(t,
		"https://avatars.s3.il-central-1.amazonaws.com",
		publicBaseURL(S3Config{Bucket: "avatars", Region: "il-central-1"}),
	)
}

func TestNewS3StoreKeepsBucket(t *testing.T) {
	s := NewS3Store(S3Config{Bucket: "avatars", Region: "il-central-1", AccessKey: "k", SecretKey: "s"})
	assert.Equal(t, "avatars", s.bucket)
	assert.NotNil(t, s.client)
}
