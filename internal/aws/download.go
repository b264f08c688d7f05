package aws

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/afero"

	"github.com/vietdv277/regauth/internal/logger"
	"github.com/vietdv277/regauth/pkg/types"
)

// DefaultDestination is the registry auth file read by the container runtime
const DefaultDestination = "/root/.dockercfg"

// GetObjectAPI defines the interface for the GetObject function
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Downloader copies a single S3 object to a local file
type Downloader struct {
	api         GetObjectAPI
	fs          afero.Fs
	destination string
}

// DownloaderOption allows customizing the Downloader
type DownloaderOption func(*Downloader)

// WithFilesystem sets the filesystem the destination file is written to
func WithFilesystem(fs afero.Fs) DownloaderOption {
	return func(d *Downloader) {
		d.fs = fs
	}
}

// WithDestination sets the path the object is written to
func WithDestination(path string) DownloaderOption {
	return func(d *Downloader) {
		d.destination = path
	}
}

// NewDownloader creates a Downloader writing to DefaultDestination on the OS filesystem
func NewDownloader(api GetObjectAPI, opts ...DownloaderOption) *Downloader {
	d := &Downloader{
		api:         api,
		fs:          afero.NewOsFs(),
		destination: DefaultDestination,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Destination returns the path the object is written to
func (d *Downloader) Destination() string {
	return d.destination
}

// Download fetches bucket/key and writes its bytes verbatim to the destination.
//
// The bucket is not checked before the fetch; a missing bucket surfaces as a
// GetObject error. The destination is only opened once GetObject succeeds, so
// a failed fetch leaves an existing file untouched. A failure while streaming
// the body leaves whatever was written so far.
func (d *Downloader) Download(ctx context.Context, bucket, key string) (*types.Object, error) {
	startTime := time.Now()

	output, err := d.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, Classify(err))
	}
	defer output.Body.Close()

	file, err := d.fs.Create(d.destination)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", d.destination, err)
	}

	written, err := io.Copy(file, output.Body)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to write %s: %w", d.destination, err)
	}

	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", d.destination, err)
	}

	obj := &types.Object{
		Bucket:    bucket,
		Key:       key,
		Size:      written,
		ETag:      aws.ToString(output.ETag),
		VersionID: aws.ToString(output.VersionId),
		Path:      d.destination,
		Duration:  time.Since(startTime),
	}

	logger.Log.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Int64("bytes", written).
		Str("path", d.destination).
		Dur("took", obj.Duration).
		Msg("object downloaded")

	return obj, nil
}
