package commands

type DevscopeCommand struct {
	Slack       SlackCommand       `command:"slack" description:"Extract messages from a Slack channel"`
	PRs         PRsCommand         `command:"prs" description:"Analyze GitHub pull requests and reviews"`
	LineWebhook LineWebhookCommand `command:"line-webhook" description:"Serve a LINE Messaging API webhook"`
	Upload      UploadCommand      `command:"upload" description:"Upload a file or directory to Google Cloud Storage"`
	List        ListCommand        `command:"list" description:"List objects in a Google Cloud Storage bucket"`
	Download    DownloadCommand    `command:"download" description:"Download an object from Google Cloud Storage"`
	Delete      DeleteCommand      `command:"delete" description:"Delete an object from Google Cloud Storage"`
	Update      UpdateCommand      `command:"update" description:"Update devscope to the latest version"`
	Version     VersionCommand     `command:"version" description:"Displays devscope version" alias:"V"`
}

var Devscope DevscopeCommand
