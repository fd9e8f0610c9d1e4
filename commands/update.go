package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/devscope/devscope/apply"
	"github.com/devscope/devscope/githubclient"
)

type UpdateCommand struct {
	Owner      string `long:"owner" description:"github owner publishing devscope releases" default:"devscope" value-name:"OWNER"`
	Repository string `long:"repository" description:"github repository publishing devscope releases" default:"devscope" value-name:"REPO"`
	APIURL     string `long:"github-api-url" description:"github rest endpoint" default:"https://api.github.com/" value-name:"URL" hidden:"true"`
	Debug      bool   `long:"debug" description:"enables debug logging"`
}

func (command *UpdateCommand) Execute(args []string) error {
	logger := newLogger("update", command.Debug)
	ctx := context.Background()

	client, err := githubclient.NewClient("", command.APIURL, http.DefaultClient)
	if err != nil {
		return err
	}

	release, err := client.LatestRelease(ctx, logger, command.Owner, command.Repository)
	if err != nil {
		return fmt.Errorf("fetching latest release: %w", err)
	}

	latestVersion := fmt.Sprintf("%s (%s)", release.TagName, release.TargetCommitish)

	if version == latestVersion {
		say("Already up to date.")
		return nil
	}

	assetName := fmt.Sprintf("devscope_%s_%s", runtime.GOOS, runtime.GOARCH)

	var downloadURL string
	for _, asset := range release.Assets {
		if asset.Name == assetName {
			downloadURL = asset.DownloadURL
			break
		}
	}
	if downloadURL == "" {
		return errors.New("unable to update devscope for this OS")
	}

	say("Downloading new devscope...")
	resp, err := http.Get(downloadURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New("error downloading latest release: " + resp.Status)
	}

	if err := apply.Apply(logger, resp.Body); err != nil {
		return err
	}

	sayf("Upgraded from %s to %s.\n", version, latestVersion)

	return nil
}
