package commands

import (
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/devscope/devscope/linewebhook"
)

type LineWebhookCommand struct {
	Port          uint16 `short:"p" long:"port" description:"the port to listen on" default:"3000" env:"PORT" value-name:"PORT"`
	ChannelSecret string `long:"channel-secret" description:"LINE channel secret used to verify callbacks" env:"CHANNEL_SECRET" value-name:"SECRET"`
	Debug         bool   `long:"debug" description:"enables debug logging"`
}

func (command *LineWebhookCommand) Execute(args []string) error {
	warnIfOldExecutable()

	if command.ChannelSecret == "" {
		return errors.New("no channel secret specified (CHANNEL_SECRET)")
	}

	logger := newLogger("line-webhook", command.Debug)

	handler := linewebhook.NewHandler(logger, command.ChannelSecret)
	router := linewebhook.NewRouter(logger, handler)

	runner := sigmon.New(http_server.New(fmt.Sprintf(":%d", command.Port), router))

	serverLogger := logger.Session("server", lager.Data{
		"port": command.Port,
	})
	serverLogger.Info("starting")

	err := <-ifrit.Invoke(runner).Wait()
	if err != nil {
		serverLogger.Error("failed", err)
		return err
	}

	serverLogger.Info("done")
	return nil
}
