package commands

import (
	"context"
	"errors"
	"os"
	"path"

	"code.cloudfoundry.org/clock"
	"google.golang.org/api/option"

	"github.com/devscope/devscope/storage"
)

type BucketOptions struct {
	Bucket          string `short:"b" long:"bucket" description:"google cloud storage bucket" env:"GCS_BUCKET" value-name:"NAME"`
	CredentialsFile string `long:"google-credentials" description:"path to a service account key" env:"GOOGLE_APPLICATION_CREDENTIALS" value-name:"PATH"`
	Endpoint        string `long:"storage-endpoint" description:"storage api endpoint" value-name:"URL" hidden:"true"`
	Debug           bool   `long:"debug" description:"enables debug logging"`
}

func (o *BucketOptions) uploader(ctx context.Context) (*storage.Uploader, func() error, error) {
	if o.Bucket == "" {
		return nil, nil, errors.New("no bucket specified (GCS_BUCKET)")
	}

	var opts []option.ClientOption
	if o.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(o.CredentialsFile))
	}
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint), option.WithoutAuthentication())
	}

	bucket, err := storage.NewGCSBucket(ctx, o.Bucket, opts...)
	if err != nil {
		return nil, nil, err
	}

	return storage.NewUploader(bucket, clock.NewClock(), storage.NewGenerator()), bucket.Close, nil
}

type UploadCommand struct {
	BucketOptions

	Prefix string `long:"prefix" description:"object prefix used for directories" default:"output" value-name:"PREFIX"`
	Object string `long:"object" description:"object name for a single file; defaults to its base name" value-name:"NAME"`

	Args struct {
		Path string `positional-arg-name:"PATH" description:"file or directory to upload" required:"true"`
	} `positional-args:"yes"`
}

func (command *UploadCommand) Execute(args []string) error {
	warnIfOldExecutable()

	fi, err := os.Stat(command.Args.Path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	uploader, closeBucket, err := command.uploader(ctx)
	if err != nil {
		return err
	}
	defer closeBucket()

	logger := newLogger("storage", command.Debug)

	var object string
	if fi.IsDir() {
		object, err = uploader.UploadDirectory(ctx, logger, command.Args.Path, command.Prefix)
	} else {
		object, err = uploader.UploadFile(ctx, logger, command.Args.Path, command.Object)
	}
	if err != nil {
		return err
	}

	sayf("%s gs://%s/%s\n", green("[UPLOADED]"), command.Bucket, object)
	return nil
}

type ListCommand struct {
	BucketOptions

	Prefix string `long:"prefix" description:"only list objects under this prefix" value-name:"PREFIX"`
}

func (command *ListCommand) Execute(args []string) error {
	warnIfOldExecutable()

	ctx := context.Background()
	uploader, closeBucket, err := command.uploader(ctx)
	if err != nil {
		return err
	}
	defer closeBucket()

	names, err := uploader.List(ctx, newLogger("storage", command.Debug), command.Prefix)
	if err != nil {
		return err
	}

	for _, name := range names {
		say(name)
	}

	return nil
}

type DownloadCommand struct {
	BucketOptions

	Args struct {
		Object string `positional-arg-name:"OBJECT" description:"object to download" required:"true"`
		Dest   string `positional-arg-name:"DEST" description:"local path to write to"`
	} `positional-args:"yes"`
}

func (command *DownloadCommand) Execute(args []string) error {
	warnIfOldExecutable()

	ctx := context.Background()
	uploader, closeBucket, err := command.uploader(ctx)
	if err != nil {
		return err
	}
	defer closeBucket()

	dest := command.Args.Dest
	if dest == "" {
		dest = path.Base(command.Args.Object)
	}

	if err := uploader.Download(ctx, newLogger("storage", command.Debug), command.Args.Object, dest); err != nil {
		return err
	}

	sayf("%s %s\n", green("[DOWNLOADED]"), dest)
	return nil
}

type DeleteCommand struct {
	BucketOptions

	Args struct {
		Object string `positional-arg-name:"OBJECT" description:"object to delete" required:"true"`
	} `positional-args:"yes"`
}

func (command *DeleteCommand) Execute(args []string) error {
	warnIfOldExecutable()

	ctx := context.Background()
	uploader, closeBucket, err := command.uploader(ctx)
	if err != nil {
		return err
	}
	defer closeBucket()

	if err := uploader.Delete(ctx, newLogger("storage", command.Debug), command.Args.Object); err != nil {
		return err
	}

	sayf("%s gs://%s/%s\n", green("[DELETED]"), command.Bucket, command.Args.Object)
	return nil
}
