package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/filedrive-org/drived/internal/conf"
	"github.com/filedrive-org/drived/internal/driver"
	"github.com/pkg/errors"
)

type S3 struct {
	Addition
	client   *s3.S3
	uploader *s3manager.Uploader
}

func (d *S3) Config() driver.Config {
	return config
}

func (d *S3) Init(ctx context.Context) error {
	sc := conf.Conf.Storage
	d.Addition = Addition{
		Bucket:    sc.S3Bucket,
		Region:    sc.S3Region,
		Endpoint:  sc.S3Endpoint,
		AccessKey: sc.S3AccessKey,
		SecretKey: sc.S3SecretKey,
	}
	if d.Bucket == "" {
		return errors.New("s3 bucket is required")
	}
	cfg := &aws.Config{
		Region:           aws.String(d.Region),
		S3ForcePathStyle: aws.Bool(d.Endpoint != ""),
	}
	if d.Endpoint != "" {
		cfg.Endpoint = aws.String(d.Endpoint)
	}
	if d.AccessKey != "" {
		cfg.Credentials = credentials.NewStaticCredentials(d.AccessKey, d.SecretKey, "")
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to create s3 session")
	}
	d.client = s3.New(sess)
	d.uploader = s3manager.NewUploader(sess)
	_, err = d.client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{Bucket: aws.String(d.Bucket)})
	return errors.Wrapf(err, "failed to head bucket %s", d.Bucket)
}

func (d *S3) Drop(ctx context.Context) error {
	return nil
}

func (d *S3) Put(ctx context.Context, key string, r io.Reader, size int64) error {
	_, err := d.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	return errors.WithStack(err)
}

func (d *S3) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := d.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out.Body, nil
}

func (d *S3) Delete(ctx context.Context, key string) error {
	_, err := d.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(key),
	})
	if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
		return nil
	}
	return errors.WithStack(err)
}

var _ driver.Driver = (*S3)(nil)
