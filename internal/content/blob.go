// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Blob serves resources from an S3-compatible bucket under a fixed key
// prefix. It is the production backend: content is uploaded out of band
// and read fresh on every request.
type Blob struct {
	s3     *s3.Client
	bucket string
	prefix string
}

// BlobOptions configures a blob-backed store.
type BlobOptions struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string // key prefix, e.g. "data/" or "blog/"
}

// NewBlob creates an S3-backed store configured for path-style addressing
// (required by CEPH/Hetzner-style object storage).
func NewBlob(opts BlobOptions) *Blob {
	endpoint := strings.TrimRight(opts.Endpoint, "/")

	client := s3.New(s3.Options{
		Region:       opts.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		UsePathStyle: true,
	})

	return &Blob{
		s3:     client,
		bucket: opts.Bucket,
		prefix: normalizePrefix(opts.Prefix),
	}
}

// Fetch resolves the named resource to an object key and downloads it.
// Resolution lists objects under <prefix><name> and prefers an exact key
// match; when uploads carry a generated suffix the exact key misses, and
// the newest object sharing the prefix is used as a last resort.
func (b *Blob) Fetch(ctx context.Context, name string) ([]byte, error) {
	want := b.prefix + name

	out, err := b.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.bucket),
		Prefix: aws.String(want),
	})
	if err != nil {
		return nil, fmt.Errorf("list %s/%s: %w", b.bucket, want, err)
	}

	key, exact := pickObject(want, objectInfos(out))
	if key == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if !exact {
		slog.Warn("blob exact key missed, using newest upload",
			"want", want,
			"using", key,
		)
	}

	obj, err := b.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", b.bucket, key, err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", b.bucket, key, err)
	}
	return data, nil
}

// List returns all resource names under the store prefix, with the prefix
// stripped so callers see the same names the local backend produces.
func (b *Blob) List(ctx context.Context) ([]string, error) {
	var names []string
	var token *string

	for {
		out, err := b.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(b.bucket),
			Prefix:            aws.String(b.prefix),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("list %s/%s: %w", b.bucket, b.prefix, err)
		}

		for _, obj := range out.Contents {
			if obj.Key == nil {
				continue
			}
			names = append(names, strings.TrimPrefix(*obj.Key, b.prefix))
		}

		if out.IsTruncated == nil || !*out.IsTruncated {
			break
		}
		token = out.NextContinuationToken
	}

	return names, nil
}

// objectInfo is the slice of object metadata pickObject needs.
type objectInfo struct {
	key      string
	modified time.Time
}

func objectInfos(out *s3.ListObjectsV2Output) []objectInfo {
	infos := make([]objectInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		if obj.Key == nil {
			continue
		}
		info := objectInfo{key: *obj.Key}
		if obj.LastModified != nil {
			info.modified = *obj.LastModified
		}
		infos = append(infos, info)
	}
	return infos
}

// pickObject selects the object key for a wanted resource: an exact key
// match wins, otherwise the most recently modified object sharing the
// prefix. Returns ("", false) when the listing is empty.
func pickObject(want string, objects []objectInfo) (key string, exact bool) {
	var newest objectInfo
	for _, obj := range objects {
		if obj.key == want {
			return obj.key, true
		}
		if newest.key == "" || obj.modified.After(newest.modified) {
			newest = obj
		}
	}
	return newest.key, false
}

func normalizePrefix(prefix string) string {
	prefix = strings.TrimLeft(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return prefix
}
