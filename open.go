package snpscan

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return path, pfx.Err(err)
		}
		path = filepath.Join(usr.HomeDir, path[2:])
	}

	return path, nil
}

// SplitGSPath splits gs://bucket/path/to/object into its bucket and object
// name.
func SplitGSPath(path string) (bucket, object string, err error) {
	pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
	if len(pathParts) != 2 || pathParts[0] == "" || pathParts[1] == "" {
		return "", "", fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
	}

	return pathParts[0], pathParts[1], nil
}

// OpenRaw opens a local file, or a Google Storage object if the path starts
// with gs:// and client is non-nil. The stream is not decompressed.
func OpenRaw(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		if client == nil {
			return nil, fmt.Errorf("%s: a storage client is required to read from google storage", path)
		}

		bucketName, objectName, err := SplitGSPath(path)
		if err != nil {
			return nil, err
		}

		rdr, err := client.Bucket(bucketName).Object(objectName).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}

		return rdr, nil
	}

	local, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(local)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return f, nil
}

// Open opens path (local or gs://) and transparently decompresses it. The
// caller must Close the result, which closes the underlying file or object
// reader.
func Open(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	raw, err := OpenRaw(ctx, path, client)
	if err != nil {
		return nil, err
	}

	r, _, err := MaybeDecompress(raw)
	if err != nil {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return &readCloser{Reader: r, close: raw.Close}, nil
}

// readCloser pairs a (possibly decompressing) reader with the Close of the
// stream beneath it.
type readCloser struct {
	io.Reader
	close func() error
}

func (c *readCloser) Close() error {
	if c.close != nil {
		return c.close()
	}

	return nil
}
