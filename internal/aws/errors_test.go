package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"

	"github.com/vietdv277/regauth/pkg/provider"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no such key", err: &s3types.NoSuchKey{Message: aws.String("missing")}, want: provider.ErrNotFound},
		{name: "wrapped no such bucket", err: fmt.Errorf("operation error S3: GetObject: %w", &s3types.NoSuchBucket{}), want: provider.ErrNotFound},
		{name: "head not found", err: &smithy.GenericAPIError{Code: "NotFound"}, want: provider.ErrNotFound},
		{name: "access denied", err: &smithy.GenericAPIError{Code: "AccessDenied"}, want: provider.ErrPermissionDenied},
		{name: "expired token", err: &smithy.GenericAPIError{Code: "ExpiredToken"}, want: provider.ErrAuthFailed},
		{name: "invalid access key", err: &smithy.GenericAPIError{Code: "InvalidAccessKeyId"}, want: provider.ErrAuthFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassify_Passthrough(t *testing.T) {
	assert.NoError(t, Classify(nil))

	plain := errors.New("dial tcp 52.216.0.1:443: i/o timeout")
	assert.Same(t, plain, Classify(plain))

	throttled := &smithy.GenericAPIError{Code: "SlowDown"}
	assert.Equal(t, error(throttled), Classify(throttled))
}
