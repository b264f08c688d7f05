package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/vietdv277/regauth/pkg/provider"
	"github.com/vietdv277/regauth/pkg/types"
)

// InstanceIdentityAPI is the subset of the IMDS client used to read the
// instance identity document
type InstanceIdentityAPI interface {
	GetInstanceIdentityDocument(ctx context.Context, params *imds.GetInstanceIdentityDocumentInput, optFns ...func(*imds.Options)) (*imds.GetInstanceIdentityDocumentOutput, error)
}

// CallerIdentityAPI is the subset of the STS client used by status
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// CallerIdentity represents AWS caller identity information
type CallerIdentity struct {
	Account string
	Arn     string
	UserID  string
}

// GetInstanceIdentity returns the identity document of the instance we run on
func GetInstanceIdentity(ctx context.Context, api InstanceIdentityAPI) (*types.InstanceIdentity, error) {
	output, err := api.GetInstanceIdentityDocument(ctx, &imds.GetInstanceIdentityDocumentInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get instance identity document: %w", err)
	}

	doc := output.InstanceIdentityDocument
	return &types.InstanceIdentity{
		Region:           doc.Region,
		AvailabilityZone: doc.AvailabilityZone,
		InstanceID:       doc.InstanceID,
		InstanceType:     doc.InstanceType,
		AccountID:        doc.AccountID,
		ImageID:          doc.ImageID,
		PrivateIP:        doc.PrivateIP,
	}, nil
}

// InstanceRegion returns the region field of the instance identity document
func InstanceRegion(ctx context.Context, api InstanceIdentityAPI) (string, error) {
	identity, err := GetInstanceIdentity(ctx, api)
	if err != nil {
		return "", err
	}

	if identity.Region == "" {
		return "", provider.ErrNoRegion
	}

	return identity.Region, nil
}

// GetCallerIdentity returns the current AWS caller identity
func GetCallerIdentity(ctx context.Context, api CallerIdentityAPI) (*CallerIdentity, error) {
	output, err := api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", Classify(err))
	}

	return &CallerIdentity{
		Account: deref(output.Account),
		Arn:     deref(output.Arn),
		UserID:  deref(output.UserId),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
