package aerr

//
// apperror.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"fmt"
	"io"
	"maps"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

//nolint:gochecknoglobals
var lastID atomic.Uint64

// AppError is immutable error value; every With* call returns modified copy.
// Copies keep identity of the source error so errors.Is(copy, source) is true.
type AppError struct {
	err     error
	tags    []string
	msg     string
	userMsg string
	meta    map[string]any
	stack   []string
	id      uint64
}

// New create error without stack; used mostly for sentinel errors.
func New(msg string, args ...any) AppError {
	return AppError{
		id:  lastID.Add(1),
		msg: sprintf(msg, args),
	}
}

// Newf create error with stack.
func Newf(msg string, args ...any) AppError {
	return AppError{
		id:    lastID.Add(1),
		stack: getStack(),
		msg:   sprintf(msg, args),
	}
}

func Wrap(err error) AppError {
	return AppError{
		id:    lastID.Add(1),
		stack: getStack(),
		err:   err,
	}
}

func Wrapf(err error, msg string, args ...any) AppError {
	return AppError{
		id:    lastID.Add(1),
		stack: getStack(),
		err:   err,
		msg:   sprintf(msg, args),
	}
}

func (a AppError) WithMsg(msg string, args ...any) AppError {
	n := a.clone()
	n.msg = sprintf(msg, args)

	return n
}

func (a AppError) WithTag(tag string) AppError {
	if slices.Contains(a.tags, tag) {
		return a
	}

	n := a.clone()
	n.tags = append(n.tags, tag)

	return n
}

func (a AppError) WithUserMsg(msg string, args ...any) AppError {
	n := a.clone()
	n.userMsg = sprintf(msg, args)

	return n
}

func (a AppError) WithMeta(keyval ...any) AppError {
	if len(keyval)%2 != 0 {
		panic("invalid argument number to call WithMeta")
	}

	nerr := a.clone()

	if nerr.meta == nil {
		nerr.meta = make(map[string]any)
	}

	for i := 0; i < len(keyval); i += 2 {
		key, ok := keyval[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keyval[i])
		}

		nerr.meta[key] = keyval[i+1]
	}

	return nerr
}

// WithError create copy of AppError with new cause and updated stack.
func (a AppError) WithError(err error) AppError {
	n := a.clone()
	n.err = err
	n.stack = getStack()

	return n
}

// Is report true when target is AppError created from the same origin.
func (a AppError) Is(target error) bool {
	tapperr, ok := target.(AppError) //nolint:errorlint
	if !ok {
		return false
	}

	return a.id != 0 && tapperr.id == a.id
}

func (a AppError) Error() string {
	switch {
	case a.msg != "" && a.err != nil:
		return a.msg + ": " + a.err.Error()
	case a.msg != "":
		return a.msg
	case a.err != nil:
		return a.err.Error()
	case a.userMsg != "":
		return a.userMsg
	default:
		return "unknown error"
	}
}

func (a AppError) Unwrap() error {
	return a.err
}

// String return message for user if defined.
func (a AppError) String() string {
	switch {
	case a.userMsg != "":
		return a.userMsg
	case a.msg != "":
		return a.msg
	case a.err != nil:
		return a.err.Error()
	default:
		return ""
	}
}

func (a AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%+v\n", CollectErrors(a))

			return
		}

		fallthrough
	case 's', 'q':
		io.WriteString(s, a.Error()) //nolint:errcheck
	}
}

// clone AppError; stack is not refreshed.
func (a AppError) clone() AppError {
	return AppError{
		id:      a.id,
		stack:   a.stack,
		msg:     a.msg,
		tags:    slices.Clone(a.tags),
		userMsg: a.userMsg,
		meta:    maps.Clone(a.meta),
		err:     a.err,
	}
}

//-------------------------------------------------------------

// ApplyFor create copy of `aerr` with `err` as cause and current stack.
// Optional arguments replace msg and userMsg (when not empty).
func ApplyFor(aerr AppError, err error, msg ...string) AppError {
	if err == nil {
		panic("err for apply is nil")
	}

	nerr := aerr.clone()
	nerr.stack = getStack()
	nerr.err = err

	if len(msg) > 0 && msg[0] != "" {
		nerr.msg = msg[0]
	}

	if len(msg) > 1 && msg[1] != "" {
		nerr.userMsg = msg[1]
	}

	return nerr
}

//-------------------------------------------------------------

func sprintf(msg string, args []any) string {
	if len(args) == 0 {
		return msg
	}

	return fmt.Sprintf(msg, args...)
}

//nolint:gochecknoglobals
var skipFunctions = []string{
	"net/http.HandlerFunc.ServeHTTP",
	"runtime.goexit",
}

const maxStack = 10

func getStack() []string {
	pc := make([]uintptr, 32) //nolint:mnd

	n := runtime.Callers(3, pc) //nolint:mnd
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	stack := make([]string, 0, n)

	for {
		frame, more := frames.Next()
		funcname := frame.Function

		if !slices.Contains(skipFunctions, funcname) {
			funcname = funcname[strings.LastIndex(funcname, "/")+1:]
			funcname = funcname[strings.Index(funcname, ".")+1:]
			stack = append(stack, frame.File+":"+strconv.Itoa(frame.Line)+":"+funcname)
		}

		if !more || len(stack) == maxStack {
			break
		}
	}

	return stack
}
