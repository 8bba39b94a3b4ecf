package aerr

//
// helpers.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"errors"
	"fmt"
	"slices"
)

func AsAppError(err error) (AppError, bool) {
	var ae AppError
	if errors.As(err, &ae) {
		return ae, true
	}

	return ae, false
}

func HasTag(err error, tag string) bool {
	for _, ae := range Flatten(err) {
		if slices.Contains(ae.tags, tag) {
			return true
		}
	}

	return false
}

func GetTags(err error) []string {
	tags := uniqueList{}

	for _, ae := range Flatten(err) {
		tags.append(ae.tags...)
	}

	return tags
}

// GetUserMessage return the outermost user message in errors chain.
func GetUserMessage(err error) string {
	for _, ae := range Flatten(err) {
		if ae.userMsg != "" {
			return ae.userMsg
		}
	}

	return ""
}

func GetUserMessageOr(err error, defaultmsg string) string {
	if msg := GetUserMessage(err); msg != "" {
		return msg
	}

	return defaultmsg
}

func GetStack(err error) []string {
	var stack []string

	// deepest stack is the most accurate
	for _, ae := range Flatten(err) {
		if len(ae.stack) > 0 {
			stack = ae.stack
		}
	}

	return stack
}

// Flatten return all AppErrors in chain, starting from the outermost.
func Flatten(err error) []AppError {
	errs := []AppError{}

	for ; err != nil; err = errors.Unwrap(err) {
		if ae, ok := err.(AppError); ok { //nolint:errorlint
			errs = append(errs, ae)
		}
	}

	return errs
}

// CollectErrors return description of each error in chain, starting from the deepest.
func CollectErrors(err error) []string {
	errs := []string{}

	for ; err != nil; err = errors.Unwrap(err) {
		apperr, ok := err.(AppError) //nolint:errorlint
		if !ok {
			errs = append(errs, err.Error())

			continue
		}

		errmsg := apperr.msg
		if errmsg == "" {
			errmsg = apperr.userMsg
		}

		if len(apperr.stack) > 0 {
			errmsg += " [" + apperr.stack[0] + "]"
		}

		if len(apperr.tags) > 0 || len(apperr.meta) > 0 {
			errmsg += fmt.Sprintf(" %v/%v", apperr.tags, apperr.meta)
		}

		errs = append(errs, errmsg)
	}

	slices.Reverse(errs)

	return errs
}

//-------------------------------------------------------------

type uniqueList []string

func (u *uniqueList) append(value ...string) {
	for _, v := range value {
		if !slices.Contains(*u, v) {
			*u = append(*u, v)
		}
	}
}
