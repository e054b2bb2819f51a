package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/mail"
	"strings"

	"github.com/trezcool/ripoti/core"
)

var errNoReportData = errors.New("no report data available for this cohort")

func (cli *commandLine) exportReport(cohort, out string) error {
	filename, content, err := cli.reportSvc.ExportCSV(context.Background(), cohort)
	if err != nil {
		return err
	}
	if content == "" {
		return errNoReportData
	}

	if out == "" {
		out = filename
	}
	if err := ioutil.WriteFile(out, []byte(content), 0644); err != nil {
		return err
	}
	cli.std.Printf("report written to %s", out)
	return nil
}

func (cli *commandLine) sendReport(cohort, to string) error {
	filename, content, err := cli.reportSvc.ExportCSV(context.Background(), cohort)
	if err != nil {
		return err
	}
	if content == "" {
		return errNoReportData
	}

	recipient := cli.conf.StaffEmail
	if to != "" {
		recipient = mail.Address{Address: to}
	}
	if recipient.Address == "" {
		return errors.New("no recipient: pass -to or configure the staff email")
	}

	msg := &core.EmailMessage{
		To:      []mail.Address{recipient},
		Subject: fmt.Sprintf("Compliance report - cohort %s", cohort),
		BodyStr: fmt.Sprintf("Attached is the latest compliance report for cohort %s.", cohort),
	}
	if err := msg.Attach(strings.NewReader(content), filename, "text/csv"); err != nil {
		return err
	}
	cli.mailSvc.SendMessages(msg)

	cli.std.Printf("report sent to %s", recipient.Address)
	return nil
}
