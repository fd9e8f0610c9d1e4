package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"code.cloudfoundry.org/archiver/compressor"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/devscope/devscope/mimetype"
)

const defaultContentType = "application/octet-stream"

type Uploader struct {
	bucket Bucket
	clock  clock.Clock
	uuids  UUIDGenerator
}

func NewUploader(bucket Bucket, clock clock.Clock, uuids UUIDGenerator) *Uploader {
	return &Uploader{
		bucket: bucket,
		clock:  clock,
		uuids:  uuids,
	}
}

// UploadFile copies a local file into the bucket. The object name defaults
// to the file's base name.
func (u *Uploader) UploadFile(ctx context.Context, logger lager.Logger, localPath, object string) (string, error) {
	if object == "" {
		object = filepath.Base(localPath)
	}

	logger = logger.Session("upload-file", lager.Data{
		"path":   localPath,
		"object": object,
	})
	logger.Info("starting")

	f, err := os.Open(localPath)
	if err != nil {
		logger.Error("failed", err)
		return "", err
	}
	defer f.Close()

	contentType, ok := mimetype.ForFile(localPath)
	if !ok {
		contentType = defaultContentType
	}

	w := u.bucket.NewWriter(ctx, object, contentType)

	n, err := io.Copy(w, f)
	if err != nil {
		w.Close()
		logger.Error("failed", err)
		return "", fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	if err := w.Close(); err != nil {
		logger.Error("failed", err)
		return "", fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	logger.Info("done", lager.Data{
		"bytes":        n,
		"content-type": contentType,
	})

	return object, nil
}

// UploadDirectory bundles a directory into a gzipped tarball and uploads it
// as <prefix>/<YYYYMMDD>-<uuid>.tgz.
func (u *Uploader) UploadDirectory(ctx context.Context, logger lager.Logger, dir, prefix string) (string, error) {
	logger = logger.Session("upload-directory", lager.Data{
		"directory": dir,
		"prefix":    prefix,
	})
	logger.Info("starting")

	tmpDir, err := os.MkdirTemp("", "devscope-upload")
	if err != nil {
		logger.Error("failed", err)
		return "", err
	}
	defer os.RemoveAll(tmpDir)

	name := fmt.Sprintf("%s-%s.tgz", u.clock.Now().UTC().Format("20060102"), u.uuids.Generate())
	archive := filepath.Join(tmpDir, name)

	if err := compressor.NewTgz().Compress(dir, archive); err != nil {
		logger.Error("failed-to-compress", err)
		return "", fmt.Errorf("failed to archive %s: %w", dir, err)
	}

	object, err := u.UploadFile(ctx, logger, archive, path.Join(prefix, name))
	if err != nil {
		return "", err
	}

	logger.Info("done", lager.Data{"object": object})

	return object, nil
}

func (u *Uploader) Download(ctx context.Context, logger lager.Logger, object, dest string) error {
	logger = logger.Session("download", lager.Data{
		"object": object,
		"path":   dest,
	})
	logger.Info("starting")

	r, err := u.bucket.NewReader(ctx, object)
	if err != nil {
		logger.Error("failed", err)
		return fmt.Errorf("failed to read %s: %w", object, err)
	}
	defer r.Close()

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		logger.Error("failed", err)
		return err
	}

	f, err := os.Create(dest)
	if err != nil {
		logger.Error("failed", err)
		return err
	}

	_, err = io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dest)
		logger.Error("failed", err)
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	logger.Info("done")

	return nil
}

func (u *Uploader) Delete(ctx context.Context, logger lager.Logger, object string) error {
	logger = logger.Session("delete", lager.Data{"object": object})
	logger.Info("starting")

	if err := u.bucket.Delete(ctx, object); err != nil {
		logger.Error("failed", err)
		return fmt.Errorf("failed to delete %s: %w", object, err)
	}

	logger.Info("done")
	return nil
}

func (u *Uploader) List(ctx context.Context, logger lager.Logger, prefix string) ([]string, error) {
	logger = logger.Session("list", lager.Data{"prefix": prefix})

	names, err := u.bucket.Objects(ctx, prefix)
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	logger.Debug("done", lager.Data{"count": len(names)})

	return names, nil
}
