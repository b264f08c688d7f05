package aws

import "fmt"

// endpointOverrides lists regions whose S3 endpoint does not follow the
// legacy s3-<region> dash pattern.
var endpointOverrides = map[string]string{
	"us-east-1":    "s3.amazonaws.com",
	"eu-central-1": "s3.eu-central-1.amazonaws.com",
}

// EndpointHost returns the S3 endpoint host for a region
func EndpointHost(region string) string {
	if host, ok := endpointOverrides[region]; ok {
		return host
	}
	return fmt.Sprintf("s3-%s.amazonaws.com", region)
}

// EndpointURL returns the HTTPS base endpoint for a region
func EndpointURL(region string) string {
	return "https://" + EndpointHost(region)
}
