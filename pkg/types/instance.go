package types

// InstanceIdentity is the subset of the EC2 instance identity document we use
type InstanceIdentity struct {
	Region           string `json:"region"`
	AvailabilityZone string `json:"availability_zone"`
	InstanceID       string `json:"instance_id"`
	InstanceType     string `json:"instance_type"`
	AccountID        string `json:"account_id"`
	ImageID          string `json:"image_id"`
	PrivateIP        string `json:"private_ip"`
}
