package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietdv277/regauth/internal/testutil"
	"github.com/vietdv277/regauth/pkg/provider"
)

func TestGetInstanceIdentity(t *testing.T) {
	mock := &testutil.MockIMDSClient{
		GetInstanceIdentityDocumentFunc: func(context.Context, *imds.GetInstanceIdentityDocumentInput, ...func(*imds.Options)) (*imds.GetInstanceIdentityDocumentOutput, error) {
			return &imds.GetInstanceIdentityDocumentOutput{
				InstanceIdentityDocument: imds.InstanceIdentityDocument{
					Region:           "eu-central-1",
					AvailabilityZone: "eu-central-1b",
					InstanceID:       "i-0abc",
					InstanceType:     "t3.micro",
					AccountID:        "123456789012",
					ImageID:          "ami-0def",
					PrivateIP:        "10.0.1.15",
				},
			}, nil
		},
	}

	identity, err := GetInstanceIdentity(context.Background(), mock)
	require.NoError(t, err)
	assert.Equal(t, "eu-central-1", identity.Region)
	assert.Equal(t, "eu-central-1b", identity.AvailabilityZone)
	assert.Equal(t, "i-0abc", identity.InstanceID)
	assert.Equal(t, "t3.micro", identity.InstanceType)
	assert.Equal(t, "123456789012", identity.AccountID)
	assert.Equal(t, "ami-0def", identity.ImageID)
	assert.Equal(t, "10.0.1.15", identity.PrivateIP)
}

func TestInstanceRegion(t *testing.T) {
	region, err := InstanceRegion(context.Background(), testutil.IdentityInRegion("ap-northeast-1"))
	require.NoError(t, err)
	assert.Equal(t, "ap-northeast-1", region)
}

func TestInstanceRegion_Empty(t *testing.T) {
	_, err := InstanceRegion(context.Background(), &testutil.MockIMDSClient{})
	assert.ErrorIs(t, err, provider.ErrNoRegion)
}

func TestInstanceRegion_MetadataUnavailable(t *testing.T) {
	mock := &testutil.MockIMDSClient{
		GetInstanceIdentityDocumentFunc: func(context.Context, *imds.GetInstanceIdentityDocumentInput, ...func(*imds.Options)) (*imds.GetInstanceIdentityDocumentOutput, error) {
			return nil, errors.New("dial tcp 169.254.169.254:80: connect: no route to host")
		},
	}

	_, err := InstanceRegion(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get instance identity document")
	assert.Contains(t, err.Error(), "169.254.169.254")
}

func TestGetCallerIdentity(t *testing.T) {
	mock := &testutil.MockSTSClient{
		GetCallerIdentityFunc: func(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
			return &sts.GetCallerIdentityOutput{
				Account: aws.String("123456789012"),
				Arn:     aws.String("arn:aws:sts::123456789012:assumed-role/eb-ec2-role/i-0abc"),
				UserId:  aws.String("AROAEXAMPLE:i-0abc"),
			}, nil
		},
	}

	identity, err := GetCallerIdentity(context.Background(), mock)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", identity.Account)
	assert.Equal(t, "AROAEXAMPLE:i-0abc", identity.UserID)
	assert.Contains(t, identity.Arn, "assumed-role/eb-ec2-role")
}

func TestGetCallerIdentity_Expired(t *testing.T) {
	mock := &testutil.MockSTSClient{
		GetCallerIdentityFunc: func(context.Context, *sts.GetCallerIdentityInput, ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "ExpiredToken", Message: "The security token included in the request is expired"}
		},
	}

	_, err := GetCallerIdentity(context.Background(), mock)
	assert.ErrorIs(t, err, provider.ErrAuthFailed)
}
