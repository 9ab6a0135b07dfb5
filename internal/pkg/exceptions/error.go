package exceptions

import (
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int         `json:"status_code"`
	Success       bool        `json:"success"`
	ClientMessage string      `json:"message"`
	Data          interface{} `json:"data,omitempty"`
	DevMessage    string      `json:"dev_message,omitempty"`
	Locations     []Location  `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) > 0 {
		loc := e.Locations[0]
		return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, loc.File, loc.Line, loc.FunctionName)
	}
	return e.DevMessage
}

func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
	}
}

// WithData attaches a response payload carried alongside the error body,
// used by the settlement 402 to report the wallet/online split.
func (e *CustomError) WithData(data interface{}) *CustomError {
	e.Data = data
	return e
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
