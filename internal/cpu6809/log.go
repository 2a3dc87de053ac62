// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cpu6809

import "fmt"

// Logger is the sink for the core's critical/warning messages. Grounded on
// the teacher's own package-level Logger interface (go/mgnes/log.go):
// a single method, a no-op default, and package functions to swap it out.
type Logger interface {
	Log(msg string)
}

type defaultLogger struct{}

func (defaultLogger) Log(msg string) {}

var (
	logger    Logger = defaultLogger{}
	logEnable        = false
)

// SetLogger installs a custom Logger. Passing nil restores the no-op default.
func SetLogger(l Logger) {
	if l == nil {
		logger = defaultLogger{}
		return
	}
	logger = l
}

// SetLogEnable toggles whether logf actually forwards to the installed Logger.
func SetLogEnable(enable bool) {
	logEnable = enable
}

func logf(format string, args ...interface{}) {
	if !logEnable {
		return
	}
	logger.Log(fmt.Sprintf(format, args...))
}
