// file: service/mailer.go

package service

import (
	"book-review-api/logger"

	"github.com/sirupsen/logrus"
)

// IMailer is the boundary to outbound email delivery. The real
// transport lives outside this service; handlers call it in a
// goroutine and never fail a request on a mail error.
type IMailer interface {
	SendWelcomeEmail(to, username string) error
}

// LogMailer writes the mail it would send to the application log.
// Used until a real delivery backend is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendWelcomeEmail(to, username string) error {
	logger.Log.WithFields(logrus.Fields{
		"to":      to,
		"subject": "Welcome to Bookly",
	}).Infof("Welcome email queued for %s", username)
	return nil
}
