package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/trezcool/ripoti/core"
	"github.com/trezcool/ripoti/core/report"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf      *core.Config
	db        *sqlx.DB
	reportSvc *report.Service
	mailSvc   core.EmailService
	std       *log.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate up|down|redo|status [ARGS] - run database migrations")
	fmt.Println("  exportreport -cohort COHORT [-out FILE] - export a cohort's compliance report as CSV")
	fmt.Println("  sendreport -cohort COHORT [-to EMAIL] - email a cohort's compliance report as a CSV attachment")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("exportreport", flag.ExitOnError)
	exportCohort := exportCmd.String("cohort", "", "The cohort id to export.")
	exportOut := exportCmd.String("out", "", "Output file path. Defaults to the standard report file name.")

	sendCmd := flag.NewFlagSet("sendreport", flag.ExitOnError)
	sendCohort := sendCmd.String("cohort", "", "The cohort id to report on.")
	sendTo := sendCmd.String("to", "", "Recipient email. Defaults to the configured staff email.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "exportreport":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportCohort == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.exportReport(*exportCohort, *exportOut)
	case "sendreport":
		if err := sendCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *sendCohort == "" {
			sendCmd.Usage()
			return errHelp
		}
		return cli.sendReport(*sendCohort, *sendTo)
	default:
		cli.printUsage()
		return errHelp
	}
}
