/*
github.com/tcrain/synodbench - Experimental project for measuring consensus decision latency.
Copyright (C) 2020 The project authors - tcrain

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

*/

/*
Basic logging functionality.
*/
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/tcrain/synodbench/config"
)

// Fields is used to attach structured context to a log line.
type Fields = logrus.Fields

var logger = logrus.New()

// setup the logging level and format
func init() {
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000000"})
	logger.SetLevel(toLogrusLevel(config.LoggingFmtLevel))
}

func toLogrusLevel(lvl config.LogFmtLevel) logrus.Level {
	switch lvl {
	case config.LOGERROR:
		return logrus.ErrorLevel
	case config.LOGWARNING:
		return logrus.WarnLevel
	case config.LOGINFO:
		return logrus.InfoLevel
	case config.LOGDEBUG:
		return logrus.DebugLevel
	default:
		panic("Invalid logging level")
	}
}

// SetLevel changes the logging level, lvl is a logrus level name (error, warning, info, debug).
func SetLevel(lvl string) error {
	l, err := logrus.ParseLevel(lvl)
	if err != nil {
		return err
	}
	logger.SetLevel(l)
	return nil
}

// SetOutput changes where the logs are written.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// WithFields returns an entry that logs the given fields with each message.
func WithFields(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

// WithError returns an entry that logs err with each message.
func WithError(err error) *logrus.Entry {
	return logger.WithError(err)
}

// Printf logs args accoring to format, independent of the logging level.
func Printf(format string, args ...interface{}) {
	logger.Log(logger.GetLevel(), fmt.Sprintf(format, args...))
}

// Print logs args, independent of the logging level.
func Print(args ...interface{}) {
	logger.Log(logger.GetLevel(), fmt.Sprint(args...))
}

// Errorf logs an error args using format.
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Error logs an error args.
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Warningf logs a warning args using format.
func Warningf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Warning logs a warning args.
func Warning(args ...interface{}) {
	logger.Warn(args...)
}

// Infof logs an info message args using format.
func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Info logs an info message args.
func Info(args ...interface{}) {
	logger.Info(args...)
}

// Debugf logs a debug message args using format.
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
