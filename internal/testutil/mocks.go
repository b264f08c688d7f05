// Package testutil provides mocks of the AWS SDK clients used by regauth.
package testutil

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// MockS3Client mocks the S3 GetObject operation.
type MockS3Client struct {
	GetObjectFunc func(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error)

	// Calls records every GetObject input
	Calls []*s3.GetObjectInput
}

// GetObject mocks the S3 GetObject operation.
func (m *MockS3Client) GetObject(
	ctx context.Context,
	params *s3.GetObjectInput,
	optFns ...func(*s3.Options),
) (*s3.GetObjectOutput, error) {
	m.Calls = append(m.Calls, params)
	if m.GetObjectFunc != nil {
		return m.GetObjectFunc(ctx, params, optFns...)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(""))}, nil
}

// MockIMDSClient mocks the instance identity document lookup.
type MockIMDSClient struct {
	GetInstanceIdentityDocumentFunc func(context.Context, *imds.GetInstanceIdentityDocumentInput, ...func(*imds.Options)) (*imds.GetInstanceIdentityDocumentOutput, error)

	CallCount int
}

// GetInstanceIdentityDocument mocks the IMDS identity document call.
func (m *MockIMDSClient) GetInstanceIdentityDocument(
	ctx context.Context,
	params *imds.GetInstanceIdentityDocumentInput,
	optFns ...func(*imds.Options),
) (*imds.GetInstanceIdentityDocumentOutput, error) {
	m.CallCount++
	if m.GetInstanceIdentityDocumentFunc != nil {
		return m.GetInstanceIdentityDocumentFunc(ctx, params, optFns...)
	}
	return &imds.GetInstanceIdentityDocumentOutput{}, nil
}

// MockSTSClient mocks the STS GetCallerIdentity operation.
type MockSTSClient struct {
	GetCallerIdentityFunc func(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// GetCallerIdentity mocks the STS GetCallerIdentity operation.
func (m *MockSTSClient) GetCallerIdentity(
	ctx context.Context,
	params *sts.GetCallerIdentityInput,
	optFns ...func(*sts.Options),
) (*sts.GetCallerIdentityOutput, error) {
	if m.GetCallerIdentityFunc != nil {
		return m.GetCallerIdentityFunc(ctx, params, optFns...)
	}
	return &sts.GetCallerIdentityOutput{}, nil
}

// IdentityInRegion returns an IMDS mock whose identity document reports region.
func IdentityInRegion(region string) *MockIMDSClient {
	return &MockIMDSClient{
		GetInstanceIdentityDocumentFunc: func(context.Context, *imds.GetInstanceIdentityDocumentInput, ...func(*imds.Options)) (*imds.GetInstanceIdentityDocumentOutput, error) {
			return &imds.GetInstanceIdentityDocumentOutput{
				InstanceIdentityDocument: imds.InstanceIdentityDocument{
					Region:           region,
					AvailabilityZone: region + "a",
					InstanceID:       "i-0123456789abcdef0",
					AccountID:        "123456789012",
				},
			}, nil
		},
	}
}

// ObjectWithContent returns an S3 mock serving content for every GetObject.
func ObjectWithContent(content string) *MockS3Client {
	return &MockS3Client{
		GetObjectFunc: func(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
			return &s3.GetObjectOutput{
				Body:          io.NopCloser(strings.NewReader(content)),
				ContentLength: aws.Int64(int64(len(content))),
				ETag:          aws.String(`"test-etag"`),
			}, nil
		},
	}
}
