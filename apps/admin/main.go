package main

import (
	"log"
	"os"

	"github.com/trezcool/ripoti/core"
	"github.com/trezcool/ripoti/core/report"
	emailsvc "github.com/trezcool/ripoti/services/email"
	feedsvc "github.com/trezcool/ripoti/services/feed"
	logsvc "github.com/trezcool/ripoti/services/logger"
	"github.com/trezcool/ripoti/storage/database"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug)

	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
	defer func() { _ = db.Close() }()

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	cli := commandLine{
		conf:      conf,
		db:        db,
		reportSvc: report.NewService(feedsvc.NewClient(conf)),
		mailSvc:   mailSvc,
		std:       std,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
