package aws

import (
	"errors"
	"fmt"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/vietdv277/regauth/pkg/provider"
)

var (
	notFoundCodes = map[string]bool{
		"NoSuchKey":    true,
		"NoSuchBucket": true,
		"NotFound":     true,
	}

	deniedCodes = map[string]bool{
		"AccessDenied": true,
		"Forbidden":    true,
	}

	authCodes = map[string]bool{
		"InvalidAccessKeyId":    true,
		"InvalidClientTokenId":  true,
		"SignatureDoesNotMatch": true,
		"ExpiredToken":          true,
		"InvalidToken":          true,
	}
)

// Classify tags an SDK error with the matching provider sentinel.
// The SDK error stays in the chain; unknown errors are returned as is.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var noSuchKey *s3types.NoSuchKey
	var noSuchBucket *s3types.NoSuchBucket
	if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
		return fmt.Errorf("%w: %w", provider.ErrNotFound, err)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch code := apiErr.ErrorCode(); {
	case notFoundCodes[code]:
		return fmt.Errorf("%w: %w", provider.ErrNotFound, err)
	case deniedCodes[code]:
		return fmt.Errorf("%w: %w", provider.ErrPermissionDenied, err)
	case authCodes[code]:
		return fmt.Errorf("%w: %w", provider.ErrAuthFailed, err)
	}

	return err
}
