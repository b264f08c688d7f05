package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Client wraps AWS SDK clients
type Client struct {
	S3   GetObjectAPI
	IMDS InstanceIdentityAPI
	STS  CallerIdentityAPI

	cfg         aws.Config
	profile     string
	region      string
	endpointURL string
}

// ClientOption allows customizing the AWS Client
type ClientOption func(*Client)

// WithProfile sets the AWS profile for the client
func WithProfile(profile string) ClientOption {
	return func(c *Client) {
		c.profile = profile
	}
}

// WithRegion sets the AWS region for the client.
// When set, the instance identity document is not consulted.
func WithRegion(region string) ClientOption {
	return func(c *Client) {
		c.region = region
	}
}

// WithEndpointURL overrides the S3 endpoint derived from the region
func WithEndpointURL(url string) ClientOption {
	return func(c *Client) {
		c.endpointURL = url
	}
}

// NewClient creates a new AWS Client with the given options.
// The S3 and STS clients are built lazily by ObjectAPI and IdentityAPI
// once the region is known.
func NewClient(ctx context.Context, opts ...ClientOption) (*Client, error) {
	c := &Client{}

	// Apply options
	for _, opt := range opts {
		opt(c)
	}

	// Build config options
	var configOpts []func(*config.LoadOptions) error

	if c.profile != "" {
		configOpts = append(configOpts, config.WithSharedConfigProfile(c.profile))
	}

	if c.region != "" {
		configOpts = append(configOpts, config.WithRegion(c.region))
	}

	// Load AWS config
	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	c.cfg = cfg
	c.IMDS = imds.NewFromConfig(cfg)

	return c, nil
}

// Region returns the region the client operates in, reading it from the
// instance identity document when no region was configured.
func (c *Client) Region(ctx context.Context) (string, error) {
	if c.region != "" {
		return c.region, nil
	}

	region, err := InstanceRegion(ctx, c.IMDS)
	if err != nil {
		return "", err
	}

	c.region = region
	return region, nil
}

// Endpoint returns the S3 endpoint URL used for the given region
func (c *Client) Endpoint(region string) string {
	if c.endpointURL != "" {
		return c.endpointURL
	}
	return EndpointURL(region)
}

// ObjectAPI returns the S3 client bound to the resolved region's endpoint
func (c *Client) ObjectAPI(ctx context.Context) (GetObjectAPI, error) {
	if c.S3 != nil {
		return c.S3, nil
	}

	region, err := c.Region(ctx)
	if err != nil {
		return nil, err
	}

	cfg := c.cfg.Copy()
	cfg.Region = region
	c.S3 = s3.NewFromConfig(cfg, S3Options(region, c.Endpoint(region))...)

	return c.S3, nil
}

// IdentityAPI returns the STS client for the resolved region
func (c *Client) IdentityAPI(ctx context.Context) (CallerIdentityAPI, error) {
	if c.STS != nil {
		return c.STS, nil
	}

	region, err := c.Region(ctx)
	if err != nil {
		return nil, err
	}

	cfg := c.cfg.Copy()
	cfg.Region = region
	c.STS = sts.NewFromConfig(cfg)

	return c.STS, nil
}

// S3Options pins an S3 client to a region, a base endpoint and an explicit
// SigV4 signer.
func S3Options(region, endpointURL string) []func(*s3.Options) {
	return []func(*s3.Options){
		func(o *s3.Options) {
			o.Region = region
			o.BaseEndpoint = aws.String(endpointURL)
			o.HTTPSignerV4 = v4.NewSigner(func(so *v4.SignerOptions) {
				so.Logger = o.Logger
				so.LogSigning = o.ClientLogMode.IsSigning()
				// S3 object keys are signed as-is
				so.DisableURIPathEscaping = true
			})
			// objects uploaded without a checksum are the common case here
			o.DisableLogOutputChecksumValidationSkipped = true
		},
	}
}
